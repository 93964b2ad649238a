//go:build e2e

package rental_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"movie-rental-api/internal/handler/dto/request"
	"movie-rental-api/internal/handler/dto/response"
	"movie-rental-api/tests/common/authtest"
	"movie-rental-api/tests/common/dbtest"
	"movie-rental-api/tests/common/httptest"
	"movie-rental-api/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	rentalsURL = "/api/rentals"
	returnsURL = "/api/returns"
)

type RentalSuite struct {
	e2e.SharedSuite
}

func TestRentalSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RentalSuite))
}

func (s *RentalSuite) seedCatalog(stock int32, rateCents int64) (customerID, movieID uuid.UUID) {
	t := s.T()
	genreID := dbtest.CreateTestGenre(t, s.DB, "Action")
	customerID = dbtest.CreateTestCustomer(t, s.DB, "Alice Johnson", "555-0101", false)
	movieID = dbtest.CreateTestMovie(t, s.DB, "The Terminator", genreID, stock, rateCents)
	return customerID, movieID
}

func (s *RentalSuite) TestCheckOutAndReturn() {
	s.Run("Normal case: checkout takes stock, return restores it and charges the fee", func() {
		t := s.T()

		customerID, movieID := s.seedCatalog(3, 250)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "clerk@example.com", "member")

		reqBody := request.CheckOutRequest{CustomerID: customerID, MovieID: movieID}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.RentalResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		expected := &response.RentalResponse{
			Customer: response.RentalCustomerResponse{
				ID:    customerID,
				Name:  "Alice Johnson",
				Phone: "555-0101",
			},
			Movie: response.RentalMovieResponse{
				ID:             movieID,
				Title:          "The Terminator",
				DailyRateCents: 250,
			},
			Status: "active",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.RentalResponse{}, "ID", "DateOut"),
		}
		if diff := cmp.Diff(expected, &created, opts...); diff != "" {
			t.Errorf("Rental response mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, int32(2), dbtest.MovieStock(t, s.DB, movieID))

		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, returnsURL,
			request.ReturnRequest{CustomerID: customerID, MovieID: movieID}, token)
		require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())

		var returned response.RentalResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rw.Body, &returned))
		require.Equal(t, "returned", returned.Status)
		require.NotNil(t, returned.DateReturned)
		require.NotNil(t, returned.RentalFeeCents)
		// Same-day return rounds to zero rental days.
		require.Equal(t, int64(0), *returned.RentalFeeCents)
		require.Equal(t, int32(3), dbtest.MovieStock(t, s.DB, movieID))
	})

	s.Run("Normal case: fee charges the daily rate per elapsed day", func() {
		t := s.T()

		customerID, movieID := s.seedCatalog(3, 250)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "clerk@example.com", "member")

		dbtest.CreateTestRental(t, s.DB, customerID, movieID, 250, time.Now().Add(-72*time.Hour))

		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, returnsURL,
			request.ReturnRequest{CustomerID: customerID, MovieID: movieID}, token)
		require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())

		var returned response.RentalResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rw.Body, &returned))
		require.NotNil(t, returned.RentalFeeCents)
		require.Equal(t, int64(750), *returned.RentalFeeCents)
	})

	s.Run("Error case: checkout of an out-of-stock movie fails", func() {
		t := s.T()

		customerID, movieID := s.seedCatalog(0, 250)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "clerk@example.com", "member")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rentalsURL,
			request.CheckOutRequest{CustomerID: customerID, MovieID: movieID}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Movie out of stock")
		require.Equal(t, int32(0), dbtest.MovieStock(t, s.DB, movieID))
	})

	s.Run("Error case: unknown customer is rejected", func() {
		t := s.T()

		_, movieID := s.seedCatalog(3, 250)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "clerk@example.com", "member")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rentalsURL,
			request.CheckOutRequest{CustomerID: uuid.New(), MovieID: movieID}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid customer")
	})

	s.Run("Error case: second open rental for the same pair conflicts", func() {
		t := s.T()

		customerID, movieID := s.seedCatalog(3, 250)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "clerk@example.com", "member")
		reqBody := request.CheckOutRequest{CustomerID: customerID, MovieID: movieID}

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w1.Code)

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, reqBody, token)
		httptest.AssertErrorResponse(t, w2, http.StatusConflict, "Customer already has this movie checked out")

		// The rejected checkout must not consume stock.
		require.Equal(t, int32(2), dbtest.MovieStock(t, s.DB, movieID))
	})

	s.Run("Error case: double return is rejected and does not restock twice", func() {
		t := s.T()

		customerID, movieID := s.seedCatalog(3, 250)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "clerk@example.com", "member")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rentalsURL,
			request.CheckOutRequest{CustomerID: customerID, MovieID: movieID}, token)
		require.Equal(t, http.StatusCreated, w.Code)

		returnReq := request.ReturnRequest{CustomerID: customerID, MovieID: movieID}
		r1 := httptest.PerformRequest(t, s.Router, http.MethodPost, returnsURL, returnReq, token)
		require.Equal(t, http.StatusOK, r1.Code)

		r2 := httptest.PerformRequest(t, s.Router, http.MethodPost, returnsURL, returnReq, token)
		httptest.AssertErrorResponse(t, r2, http.StatusBadRequest, "Movie is already returned")
		require.Equal(t, int32(3), dbtest.MovieStock(t, s.DB, movieID))
	})

	s.Run("Error case: return without a rental is not found", func() {
		t := s.T()

		customerID, movieID := s.seedCatalog(3, 250)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "clerk@example.com", "member")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, returnsURL,
			request.ReturnRequest{CustomerID: customerID, MovieID: movieID}, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Rental not found")
	})

	s.Run("Auth test: checkout requires authentication", func() {
		t := s.T()

		customerID, movieID := s.seedCatalog(3, 250)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rentalsURL,
			request.CheckOutRequest{CustomerID: customerID, MovieID: movieID}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *RentalSuite) TestConcurrentCheckout() {
	s.Run("Concurrency: a single copy goes to exactly one of many customers", func() {
		t := s.T()

		genreID := dbtest.CreateTestGenre(t, s.DB, "Drama")
		movieID := dbtest.CreateTestMovie(t, s.DB, "Casablanca", genreID, 1, 199)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "clerk@example.com", "member")

		const workers = 8
		customerIDs := make([]uuid.UUID, workers)
		for i := range customerIDs {
			customerIDs[i] = dbtest.CreateTestCustomer(t, s.DB, "Race Customer", "555-0199", false)
		}

		var wg sync.WaitGroup
		codes := make(chan int, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(customerID uuid.UUID) {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, rentalsURL,
					request.CheckOutRequest{CustomerID: customerID, MovieID: movieID}, token)
				codes <- w.Code
			}(customerIDs[i])
		}
		wg.Wait()
		close(codes)

		var created, outOfStock, other int
		for code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusBadRequest:
				outOfStock++
			default:
				other++
			}
		}

		require.Equal(t, 1, created, "exactly one checkout may win the last copy")
		require.Equal(t, workers-1, outOfStock)
		require.Zero(t, other)
		require.Equal(t, int32(0), dbtest.MovieStock(t, s.DB, movieID))
	})
}

func (s *RentalSuite) TestListAndGetRentals() {
	s.Run("Normal case: rentals are listed newest first", func() {
		t := s.T()

		customerID, movieID := s.seedCatalog(3, 250)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "clerk@example.com", "member")

		dbtest.CreateTestRental(t, s.DB, customerID, movieID, 250, time.Now().Add(-48*time.Hour))
		newest := dbtest.CreateTestRental(t, s.DB, customerID, uuid.New(), 250, time.Now().Add(-1*time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, rentalsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var listed []response.RentalResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &listed))
		require.Len(t, listed, 2)
		require.Equal(t, newest, listed[0].ID)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, rentalsURL+"/"+newest.String(), nil, token)
		require.Equal(t, http.StatusOK, gw.Code)

		var fetched response.RentalResponse
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &fetched))
		require.Equal(t, newest, fetched.ID)
	})

	s.Run("Error case: unknown rental ID is not found", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "clerk@example.com", "member")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, rentalsURL+"/"+uuid.NewString(), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Rental not found")
	})
}
