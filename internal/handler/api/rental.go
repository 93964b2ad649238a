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

type RentalHandler struct {
	rentalCommands commands.RentalCommands
	rentalQueries  queries.RentalQueries
}

func NewRentalHandler(rentalCommands commands.RentalCommands, rentalQueries queries.RentalQueries) *RentalHandler {
	return &RentalHandler{
		rentalCommands: rentalCommands,
		rentalQueries:  rentalQueries,
	}
}

// @Summary Check out a movie
// @Description Open a rental for a customer and take one unit of stock
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckOutRequest true "Checkout request"
// @Success 201 {object} resdto.RentalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rentals [post]
func (h *RentalHandler) CheckOut(c *gin.Context) {
	var req reqdto.CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rentalRM, err := h.rentalCommands.CheckOut(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCustomer):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid customer",
			})
		case errors.Is(err, commands.ErrInvalidMovie):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid movie",
			})
		case errors.Is(err, commands.ErrMovieOutOfStock):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Movie out of stock",
			})
		case errors.Is(err, commands.ErrRentalAlreadyOpen):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Customer already has this movie checked out",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRentalView(rentalRM))
}

// @Summary Return a movie
// @Description Close the active rental for the pair, charge the fee, restock
// @Tags returns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReturnRequest true "Return request"
// @Success 200 {object} resdto.RentalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /returns [post]
func (h *RentalHandler) ReturnRental(c *gin.Context) {
	var req reqdto.ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rentalRM, err := h.rentalCommands.Return(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRentalNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Rental not found",
			})
		case errors.Is(err, commands.ErrRentalAlreadyReturned):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Movie is already returned",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalView(rentalRM))
}

// @Summary List rentals
// @Description List all rentals, newest first
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RentalResponse
// @Failure 401 {object} map[string]string
// @Router /rentals [get]
func (h *RentalHandler) ListRentals(c *gin.Context) {
	rentalsRM, err := h.rentalQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalViews(rentalsRM))
}

// @Summary Get rental
// @Description Get rental by ID
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 200 {object} resdto.RentalResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rentals/{id} [get]
func (h *RentalHandler) GetRental(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rental ID format",
		})
		return
	}

	rentalRM, err := h.rentalQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRentalNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Rental not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalView(rentalRM))
}
