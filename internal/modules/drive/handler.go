package drive

import (
	"errors"
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
	rg.GET("/drive/files", h.List)
	rg.POST("/drive/files", h.Upload)
	rg.DELETE("/drive/files/:name", h.Delete)
	rg.PATCH("/drive/files/:name/rename", h.Rename)
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("user_id")

	if q := c.Query("search"); q != "" {
		files, err := h.svc.Search(c.Request.Context(), userID, q)
		if err != nil {
			h.writeError(c, err)
			return
		}
		response.Success(c, http.StatusOK, files)
		return
	}

	files, err := h.svc.List(c.Request.Context(), userID, SortOption(c.Query("sort")))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, files)
}

func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Missing file")
		return
	}

	files, err := h.svc.Upload(c.Request.Context(), c.GetString("user_id"), fileHeader)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, files)
}

func (h *Handler) Delete(c *gin.Context) {
	files, err := h.svc.Delete(c.Request.Context(), c.GetString("user_id"), c.Param("name"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, files)
}

func (h *Handler) Rename(c *gin.Context) {
	var req RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	result, err := h.svc.Rename(c.Request.Context(), c.GetString("user_id"), c.Param("name"), req.NewName)
	if err != nil {
		if errors.Is(err, ErrRenameOrphan) {
			// Both copies exist; tell the caller which steps completed so
			// the old file can be cleaned up by hand.
			response.ErrorWithDetails(c, http.StatusInternalServerError, "RENAME_INCOMPLETE",
				"File was copied to the new name but the original could not be deleted", result)
			return
		}
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmptyName):
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "File name cannot be empty")
	case errors.Is(err, ErrFileTooLarge):
		response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "File exceeds the maximum allowed size")
	case errors.Is(err, ErrFileNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "File not found")
	case errors.Is(err, ErrFileExists):
		response.Error(c, http.StatusConflict, "ALREADY_EXISTS", "A file with that name already exists")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}
