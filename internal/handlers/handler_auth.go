package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Murlidhar08/settlr-sub001/internal/core/ports/services"
	"github.com/Murlidhar08/settlr-sub001/internal/dto"
	"github.com/Murlidhar08/settlr-sub001/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	identityService portssvc.IdentitySvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(identityService portssvc.IdentitySvcFacade) *AuthHandler {
	return &AuthHandler{identityService: identityService}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(r *gin.Engine, identityService portssvc.IdentitySvcFacade, extra ...gin.HandlerFunc) {
	h := NewAuthHandler(identityService)

	auth := r.Group("/auth", extra...)
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/google/exchange-code", h.ExchangeCodeGoogle)
	}
}

func toLoginResponse(s *portssvc.Session) dto.LoginResponse {
	return dto.LoginResponse{Token: s.Token, UserID: s.User.UserID, BusinessID: s.BusinessID}
}

// Register godoc
// @Summary Register new user
// @Description Creates a password user with a first business and returns a token bound to it.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Conflict (e.g., email exists)"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request body")
		return
	}

	session, err := h.identityService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to register user")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User registered", slog.String("user_id", session.User.UserID))
	c.JSON(http.StatusCreated, toLoginResponse(session))
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT token bound to the active business.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request body")
		return
	}

	session, err := h.identityService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}
	c.JSON(http.StatusOK, toLoginResponse(session))
}

// ExchangeCodeGoogle godoc
// @Summary Exchange Google auth code for app token
// @Description Exchanges the authorization code obtained by the frontend for an application JWT, creating the user on first sign-in.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.GoogleExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Google sign-in not configured"
// @Router /auth/google/exchange-code [post]
func (h *AuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	var req dto.GoogleExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request body")
		return
	}

	session, err := h.identityService.ExchangeGoogleCode(c.Request.Context(), req.Code)
	if err != nil {
		respondError(c, err, "Failed to sign in with Google")
		return
	}
	c.JSON(http.StatusOK, toLoginResponse(session))
}
