package handlers

import (
	"net/http"

	"github.com/hafiz-aliAwj/portfolio/internal/middleware"
	"github.com/m1z23r/drift/pkg/drift"
)

type UserHandler struct {
	userService UserServiceInterface
}

func NewUserHandler(userService UserServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetMe returns the account behind the current session. The row is re-read
// so a deleted account or changed role shows up before the token expires.
func (h *UserHandler) GetMe(c *drift.Context) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		respondError(c, err, "User not found", "get current user")
		return
	}

	_ = c.JSON(http.StatusOK, map[string]any{"user": userResponse(user)})
}
