package pokemon

import (
	"net/http"
	"strconv"

	"github.com/1Deeeeyl/multiple-activities/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/pokemons", h.Browse)
	rg.GET("/pokemons/search", h.Search)
	rg.GET("/pokemons/:id/reviews", h.ListReviews)
	rg.POST("/pokemons/:id/reviews", h.CreateReview)
	rg.PUT("/pokemon-reviews/:id", h.UpdateReview)
	rg.DELETE("/pokemon-reviews/:id", h.DeleteReview)
}

func (h *Handler) Browse(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Page must be a number")
			return
		}
		page = parsed
	}

	result, err := h.svc.Browse(c.Request.Context(), page)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) Search(c *gin.Context) {
	result, err := h.svc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) ListReviews(c *gin.Context) {
	pokemonID, ok := h.pokemonID(c)
	if !ok {
		return
	}

	reviews, err := h.svc.ListReviews(c.Request.Context(), pokemonID, ReviewSort(c.Query("sort")))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, reviews)
}

func (h *Handler) CreateReview(c *gin.Context) {
	pokemonID, ok := h.pokemonID(c)
	if !ok {
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	rv, err := h.svc.CreateReview(c.Request.Context(), c.GetString("user_id"), pokemonID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, rv)
}

func (h *Handler) UpdateReview(c *gin.Context) {
	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	rv, err := h.svc.UpdateReview(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, rv)
}

func (h *Handler) DeleteReview(c *gin.Context) {
	if err := h.svc.DeleteReview(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Review deleted")
}

func (h *Handler) pokemonID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Pokemon id must be a number")
		return 0, false
	}
	return id, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrInvalidPage:
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Page must be a positive number")
	case ErrEmptyReview:
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Review text cannot be empty")
	case ErrReviewNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
	case ErrAlreadyReviewed:
		response.Error(c, http.StatusConflict, "ALREADY_EXISTS", "You have already reviewed this pokemon")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}
