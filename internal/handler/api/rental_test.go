//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"movie-rental-api/internal/handler/api"
	resdto "movie-rental-api/internal/handler/dto/response"
	"movie-rental-api/internal/usecase/commands"
	"movie-rental-api/internal/usecase/queries"
	"movie-rental-api/tests/common/builder"
	"movie-rental-api/tests/common/httptest"
	"movie-rental-api/tests/common/testutil"
	commandsmock "movie-rental-api/tests/mock/commands"
	queriesmock "movie-rental-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RentalHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRentalCommands
	mockQueries  *queriesmock.MockRentalQueries
	handler      *api.RentalHandler
}

func (s *RentalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRentalCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRentalQueries(s.mockCtrl)
	s.handler = api.NewRentalHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/rentals", s.handler.CheckOut)
	s.router.GET("/rentals", s.handler.ListRentals)
	s.router.GET("/rentals/:id", s.handler.GetRental)
	s.router.POST("/returns", s.handler.ReturnRental)
}

func (s *RentalHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRentalHandlerSuite(t *testing.T) {
	suite.Run(t, new(RentalHandlerTestSuite))
}

func (s *RentalHandlerTestSuite) TestCheckOut() {
	url := "/rentals"

	rentalBuilder := builder.NewRentalBuilder()
	reqBody := rentalBuilder.BuildCheckOutDTO()
	returnView := rentalBuilder.BuildView()

	s.Run("success: returns 201 Created with the open rental", func() {
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), reqBody).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.RentalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.CustomerName, response.Customer.Name)
		s.Equal(returnView.MovieTitle, response.Movie.Title)
		s.Equal("active", response.Status)
		s.Nil(response.RentalFeeCents)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: customer_id (required)", mutate: testutil.Field("customer_id", nil)},
			{name: "missing field: movie_id (required)", mutate: testutil.Field("movie_id", nil)},
			{name: "malformed customer_id", mutate: testutil.Field("customer_id", "not-a-uuid")},
			{name: "malformed movie_id", mutate: testutil.Field("movie_id", "not-a-uuid")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid customer",
				commandsError:  commands.ErrInvalidCustomer,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid customer",
			},
			{
				name:           "invalid movie",
				commandsError:  commands.ErrInvalidMovie,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid movie",
			},
			{
				name:           "out of stock",
				commandsError:  commands.ErrMovieOutOfStock,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Movie out of stock",
			},
			{
				name:           "pair already open",
				commandsError:  commands.ErrRentalAlreadyOpen,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Customer already has this movie checked out",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CheckOut(gomock.Any(), reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *RentalHandlerTestSuite) TestReturnRental() {
	url := "/returns"

	rentalBuilder := builder.NewRentalBuilder()
	reqBody := rentalBuilder.BuildReturnDTO()

	s.Run("success: returns 200 OK with the closed rental", func() {
		returnedAt := rentalBuilder.DateOut.Add(48 * time.Hour)
		returnView := rentalBuilder.AsReturned(returnedAt, 500).BuildView()

		s.mockCommands.EXPECT().Return(gomock.Any(), reqBody).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.RentalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("returned", response.Status)
		s.Require().NotNil(response.RentalFeeCents)
		s.Equal(int64(500), *response.RentalFeeCents)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "no rental for pair",
				commandsError:  commands.ErrRentalNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Rental not found",
			},
			{
				name:           "already returned",
				commandsError:  commands.ErrRentalAlreadyReturned,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Movie is already returned",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Return(gomock.Any(), reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *RentalHandlerTestSuite) TestListRentals() {
	url := "/rentals"

	s.Run("success: returns 200 OK with all rentals", func() {
		views := []*queries.RentalView{
			builder.NewRentalBuilder().BuildView(),
			builder.NewRentalBuilder().BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []*resdto.RentalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *RentalHandlerTestSuite) TestGetRental() {
	returnView := builder.NewRentalBuilder().BuildView()
	url := "/rentals/" + returnView.ID.String()

	s.Run("success: returns 200 OK with the rental", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.RentalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
	})

	s.Run("error: 400 on malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rentals/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid rental ID format")
	})

	s.Run("error: 404 when rental does not exist", func() {
		missingID := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), missingID).
			Return(nil, queries.ErrRentalNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rentals/"+missingID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Rental not found")
	})
}
