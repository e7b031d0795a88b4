package food

import (
	"net/http"

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
	rg.GET("/foods", h.List)
	rg.GET("/foods/:id", h.Get)
	rg.POST("/foods", h.Create)
	rg.DELETE("/foods/:id", h.Delete)

	rg.GET("/foods/:id/reviews", h.ListReviews)
	rg.POST("/foods/:id/reviews", h.CreateReview)
	rg.PUT("/food-reviews/:id", h.UpdateReview)
	rg.DELETE("/food-reviews/:id", h.DeleteReview)
}

func (h *Handler) List(c *gin.Context) {
	foods, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}

	response.Success(c, http.StatusOK, foods)
}

func (h *Handler) Get(c *gin.Context) {
	f, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, f)
}

// Create accepts multipart/form-data: a "food_name" field plus the image
// under "file".
func (h *Handler) Create(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Image file is required")
		return
	}
	foodName := c.PostForm("food_name")

	f, err := h.svc.Create(c.Request.Context(), c.GetString("user_id"), foodName, fileHeader)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, f)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Food deleted")
}

func (h *Handler) ListReviews(c *gin.Context) {
	sortBy := ReviewSort(c.DefaultQuery("sort", string(SortByDate)))

	reviews, err := h.svc.ListReviews(c.Request.Context(), c.Param("id"), sortBy)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, reviews)
}

func (h *Handler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	rv, err := h.svc.CreateReview(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
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

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrEmptyName, ErrEmptyFile, ErrInvalidMimeType, ErrEmptyReview:
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
	case ErrImageTooLarge:
		response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Food not found")
	case ErrReviewNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
	case ErrAlreadyReviewed:
		response.Error(c, http.StatusConflict, "CONFLICT", "Only one review per user per food")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}
