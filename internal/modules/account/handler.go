package account

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
	rg.DELETE("/users/:id", h.DeleteAccount)
}

func (h *Handler) DeleteAccount(c *gin.Context) {
	report, err := h.svc.DeleteAccount(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only delete your own account")
		case errors.Is(err, ErrUserGone):
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Account no longer exists")
		case errors.Is(err, ErrCleanupIncomplete):
			response.ErrorWithDetails(c, http.StatusInternalServerError, "CLEANUP_INCOMPLETE",
				"Account deletion did not finish; see steps for what was removed", report)
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		}
		return
	}

	response.Success(c, http.StatusOK, report)
}
