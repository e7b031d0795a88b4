package markdown

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
	rg.GET("/markdowns", h.List)
	rg.POST("/markdowns", h.Create)
	rg.PUT("/markdowns/:id", h.Update)
	rg.DELETE("/markdowns/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	notes, err := h.svc.List(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}

	response.Success(c, http.StatusOK, notes)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateMarkdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	m, err := h.svc.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, m)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateMarkdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	m, err := h.svc.Update(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, m)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Markdown deleted")
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrEmptyTitle, ErrEmptyBody:
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Markdown not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}
