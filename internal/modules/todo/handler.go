package todo

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
	rg.GET("/todos", h.List)
	rg.POST("/todos", h.Create)
	rg.PUT("/todos/:id", h.Update)
	rg.PATCH("/todos/:id/toggle", h.Toggle)
	rg.DELETE("/todos/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	todos, err := h.svc.List(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}

	response.Success(c, http.StatusOK, todos)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	t, err := h.svc.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, t)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	t, err := h.svc.Update(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, t)
}

func (h *Handler) Toggle(c *gin.Context) {
	t, err := h.svc.Toggle(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, t)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Todo deleted")
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrEmptyTask:
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Task text cannot be empty")
	case ErrInvalidPriority:
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Priority must be LOW, MEDIUM or HIGH")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Todo not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}
