package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/hafiz-aliAwj/portfolio/internal/config"
	"github.com/hafiz-aliAwj/portfolio/internal/metrics"
	"github.com/hafiz-aliAwj/portfolio/internal/middleware"
	"github.com/hafiz-aliAwj/portfolio/internal/models"
	"github.com/hafiz-aliAwj/portfolio/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type AuthHandler struct {
	cfg          *config.Config
	userService  UserServiceInterface
	tokenService TokenServiceInterface
	jwtService   JWTServiceInterface
	metrics      metrics.Recorder
}

func NewAuthHandler(
	cfg *config.Config,
	userService UserServiceInterface,
	tokenService TokenServiceInterface,
	jwtService JWTServiceInterface,
	recorder metrics.Recorder,
) *AuthHandler {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &AuthHandler{
		cfg:          cfg,
		userService:  userService,
		tokenService: tokenService,
		jwtService:   jwtService,
		metrics:      recorder,
	}
}

func (h *AuthHandler) Register(c *drift.Context) {
	var req dto.RegisterRequest
	if err := c.BindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "User not found", "register user")
		return
	}

	slog.Info("user registered", slog.String("username", user.Username), slog.String("role", user.Role))
	_ = c.JSON(http.StatusCreated, dto.AuthResponse{
		Message: "User created successfully",
		User:    userResponse(user),
	})
}

func (h *AuthHandler) Login(c *drift.Context) {
	var req dto.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(c, http.StatusBadRequest, "Missing username or password")
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.metrics.RecordLogin(false)
		respondError(c, err, "User not found", "authenticate user")
		return
	}

	token, _, err := h.jwtService.Issue(user)
	if err != nil {
		respondError(c, err, "User not found", "issue session token")
		return
	}

	h.metrics.RecordLogin(true)
	http.SetCookie(c.Response, h.sessionCookie(token, int(h.jwtService.Expiry()/time.Second)))
	_ = c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "Login successful",
		User:    userResponse(user),
	})
}

// Logout revokes the presented session, if any, and always clears the cookie.
func (h *AuthHandler) Logout(c *drift.Context) {
	if claims, ok := middleware.CurrentUser(c); ok && claims.ID != "" && claims.ExpiresAt != nil {
		if err := h.tokenService.Revoke(c.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
			respondError(c, err, "Session not found", "revoke session")
			return
		}
	}

	http.SetCookie(c.Response, h.sessionCookie("", -1))
	_ = c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logout successful"})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteStrictMode,
	}
}

func userResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
	}
}

