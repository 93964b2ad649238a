//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"movie-rental-api/internal/handler/dto/request"
	"movie-rental-api/internal/handler/dto/response"
	"movie-rental-api/tests/common/authtest"
	"movie-rental-api/tests/common/dbtest"
	"movie-rental-api/tests/common/httptest"
	"movie-rental-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/users"
	loginURL    = "/api/auth/login"
	meURL       = "/api/auth/me"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestRegisterAndLogin() {
	s.Run("Normal case: register, login and fetch the profile", func() {
		t := s.T()

		reqBody := request.RegisterUserRequest{
			Name:     "New Clerk",
			Email:    "newclerk@example.com",
			Password: "password123",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		require.NotEmpty(t, w.Header().Get("x-auth-token"))

		var created response.RegisterResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotEqual(t, uuid.Nil, created.ID)

		token := authtest.LoginUser(t, s.Router, reqBody.Email, reqBody.Password)

		mw := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, mw.Code, mw.Body.String())

		var me response.UserResponse
		require.NoError(t, httptest.DecodeResponseBody(t, mw.Body, &me))
		require.Equal(t, reqBody.Email, me.Email)
		require.Equal(t, "member", me.Role)
	})

	s.Run("Error case: duplicate email registration conflicts", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "taken@example.com", "member")

		reqBody := request.RegisterUserRequest{
			Name:     "Impostor",
			Email:    "taken@example.com",
			Password: "password123",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Email already registered")
	})

	s.Run("Error case: wrong password is unauthorized", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "clerk@example.com", "member")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "clerk@example.com", Password: "wrong-password"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("Auth test: me requires a token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *AuthSuite) TestRoleEnforcement() {
	s.Run("Error case: member cannot delete a genre", func() {
		t := s.T()

		genreID := dbtest.CreateTestGenre(t, s.DB, "Horror")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "member@example.com", "member")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/genres/"+genreID.String(), nil, token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("Normal case: admin deletes an unused genre", func() {
		t := s.T()

		genreID := dbtest.CreateTestGenre(t, s.DB, "Horror")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", "admin")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/genres/"+genreID.String(), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	})

	s.Run("Error case: genre referenced by a movie cannot be deleted", func() {
		t := s.T()

		genreID := dbtest.CreateTestGenre(t, s.DB, "Action")
		dbtest.CreateTestMovie(t, s.DB, "The Terminator", genreID, 3, 250)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", "admin")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/genres/"+genreID.String(), nil, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}
