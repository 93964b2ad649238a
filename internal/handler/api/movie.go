package api

import (
	"errors"
	"net/http"

	reqdto "movie-rental-api/internal/handler/dto/request"
	resdto "movie-rental-api/internal/handler/dto/response"
	"movie-rental-api/internal/usecase/commands"
	"movie-rental-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MovieHandler struct {
	movieCommands commands.MovieCommands
	movieQueries  queries.MovieQueries
}

func NewMovieHandler(movieCommands commands.MovieCommands, movieQueries queries.MovieQueries) *MovieHandler {
	return &MovieHandler{
		movieCommands: movieCommands,
		movieQueries:  movieQueries,
	}
}

// @Summary List movies
// @Tags movies
// @Produce json
// @Success 200 {array} resdto.MovieResponse
// @Router /movies [get]
func (h *MovieHandler) ListMovies(c *gin.Context) {
	moviesRM, err := h.movieQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMovieViews(moviesRM))
}

// @Summary Get movie
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} resdto.MovieResponse
// @Failure 404 {object} map[string]string
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovie(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie ID format"})
		return
	}

	movieRM, err := h.movieQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrMovieNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromMovieView(movieRM))
}

// @Summary Create movie
// @Tags movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMovieRequest true "Movie request"
// @Success 201 {object} resdto.MovieResponse
// @Failure 400 {object} map[string]string
// @Router /movies [post]
func (h *MovieHandler) CreateMovie(c *gin.Context) {
	var req reqdto.CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	movieRM, err := h.movieCommands.Create(c.Request.Context(), req)
	if err != nil {
		h.handleMovieCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromMovieView(movieRM))
}

// @Summary Update movie
// @Tags movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Movie ID"
// @Param request body reqdto.UpdateMovieRequest true "Movie request"
// @Success 200 {object} resdto.MovieResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /movies/{id} [put]
func (h *MovieHandler) UpdateMovie(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie ID format"})
		return
	}

	var req reqdto.UpdateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	movieRM, err := h.movieCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleMovieCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMovieView(movieRM))
}

// @Summary Delete movie
// @Tags movies
// @Security BearerAuth
// @Param id path string true "Movie ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie ID format"})
		return
	}

	if err := h.movieCommands.Delete(c.Request.Context(), id); err != nil {
		h.handleMovieCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MovieHandler) handleMovieCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrMovieNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
	case errors.Is(err, commands.ErrInvalidGenre):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid genre"})
	case errors.Is(err, commands.ErrMovieValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie data"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
