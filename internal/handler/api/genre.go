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

type GenreHandler struct {
	genreCommands commands.GenreCommands
	genreQueries  queries.GenreQueries
}

func NewGenreHandler(genreCommands commands.GenreCommands, genreQueries queries.GenreQueries) *GenreHandler {
	return &GenreHandler{
		genreCommands: genreCommands,
		genreQueries:  genreQueries,
	}
}

// @Summary List genres
// @Tags genres
// @Produce json
// @Success 200 {array} resdto.GenreResponse
// @Router /genres [get]
func (h *GenreHandler) ListGenres(c *gin.Context) {
	genresRM, err := h.genreQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromGenreViews(genresRM))
}

// @Summary Get genre
// @Tags genres
// @Produce json
// @Param id path string true "Genre ID"
// @Success 200 {object} resdto.GenreResponse
// @Failure 404 {object} map[string]string
// @Router /genres/{id} [get]
func (h *GenreHandler) GetGenre(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid genre ID format"})
		return
	}

	genreRM, err := h.genreQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrGenreNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Genre not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromGenreView(genreRM))
}

// @Summary Create genre
// @Tags genres
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateGenreRequest true "Genre request"
// @Success 201 {object} resdto.GenreResponse
// @Failure 400 {object} map[string]string
// @Router /genres [post]
func (h *GenreHandler) CreateGenre(c *gin.Context) {
	var req reqdto.CreateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	genreRM, err := h.genreCommands.Create(c.Request.Context(), req)
	if err != nil {
		h.handleGenreCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromGenreView(genreRM))
}

// @Summary Update genre
// @Tags genres
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Genre ID"
// @Param request body reqdto.UpdateGenreRequest true "Genre request"
// @Success 200 {object} resdto.GenreResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /genres/{id} [put]
func (h *GenreHandler) UpdateGenre(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid genre ID format"})
		return
	}

	var req reqdto.UpdateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	genreRM, err := h.genreCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleGenreCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromGenreView(genreRM))
}

// @Summary Delete genre
// @Tags genres
// @Security BearerAuth
// @Param id path string true "Genre ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /genres/{id} [delete]
func (h *GenreHandler) DeleteGenre(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid genre ID format"})
		return
	}

	if err := h.genreCommands.Delete(c.Request.Context(), id); err != nil {
		h.handleGenreCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *GenreHandler) handleGenreCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrGenreNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Genre not found"})
	case errors.Is(err, commands.ErrGenreInUse):
		c.JSON(http.StatusConflict, gin.H{"error": "Genre is referenced by movies"})
	case errors.Is(err, commands.ErrGenreValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid genre data"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
