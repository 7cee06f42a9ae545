package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/hesabdar/internal/core/ports/services"
	"github.com/SscSPs/hesabdar/internal/dto"
	"github.com/SscSPs/hesabdar/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles operator authentication requests.
type authHandler struct {
	authService portssvc.AuthSvc
}

func newAuthHandler(as portssvc.AuthSvc) *authHandler {
	return &authHandler{authService: as}
}

// RegisterAuthRoutes sets up the public login routes. loginLimit guards the login endpoint.
func RegisterAuthRoutes(r *gin.Engine, authService portssvc.AuthSvc, loginLimit gin.HandlerFunc) {
	h := newAuthHandler(authService)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", loginLimit, h.login)
		auth.GET("/check", h.check)
	}
}

// RegisterProtectedAuthRoutes sets up auth routes that need a valid token.
func RegisterProtectedAuthRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvc) {
	h := newAuthHandler(authService)
	rg.POST("/auth/change-password", h.changePassword)
}

// login godoc
// @Summary Operator login
// @Description Authenticates the operator and returns a JWT. On first login the default password is accepted and stored.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse "Too many login attempts"
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	token, expiresIn, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresIn: int64(expiresIn.Seconds())})
}

// check godoc
// @Summary Credential status
// @Description Reports whether a password has been stored for the operator
// @Tags auth
// @Produce json
// @Success 200 {object} dto.AuthCheckResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/check [get]
func (h *authHandler) check(c *gin.Context) {
	set, err := h.authService.HasCredential(c.Request.Context(), "")
	if err != nil {
		respondError(c, err, "Failed to check credentials")
		return
	}
	c.JSON(http.StatusOK, dto.AuthCheckResponse{PasswordSet: set})
}

// changePassword godoc
// @Summary Change the operator password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/change-password [post]
func (h *authHandler) changePassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	operator, ok := middleware.GetOperatorFromContext(c)
	if !ok {
		logger.Error("Operator not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), operator, req.OldPassword, req.NewPassword); err != nil {
		respondError(c, err, "Failed to change password")
		return
	}

	logger.Info("Password changed", slog.String("operator", operator))
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "رمز عبور با موفقیت تغییر کرد"})
}
