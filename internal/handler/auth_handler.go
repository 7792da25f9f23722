package handler

import (
	"net/http"

	"gramvista/internal/middleware"
	"gramvista/internal/model"
	"gramvista/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
	log     zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{service: s, log: log}
}

// Email format is checked by the service after normalization.
type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	Token    string `json:"token"`
	Redirect string `json:"redirect"`
	VendorID string `json:"vendorId,omitempty"`
}

func (h *AuthHandler) signup(c *gin.Context, role model.Role) {
	var req credentialsRequest
	if !bindJSON(c, &req) {
		return
	}

	var (
		res *service.AuthResult
		err error
	)
	if role == model.RoleVendor {
		res, err = h.service.RegisterVendor(c.Request.Context(), req.Email, req.Password)
	} else {
		res, err = h.service.RegisterUser(c.Request.Context(), req.Email, req.Password)
	}
	if err != nil {
		respondError(c, h.log, err, "Failed to register")
		return
	}

	c.JSON(http.StatusCreated, authResponse{Token: res.Token, Redirect: res.Redirect, VendorID: res.VendorID})
}

func (h *AuthHandler) login(c *gin.Context, role model.Role) {
	var req credentialsRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.service.Login(c.Request.Context(), req.Email, req.Password, role)
	if err != nil {
		respondError(c, h.log, err, "Failed to login")
		return
	}

	c.JSON(http.StatusOK, authResponse{Token: res.Token, Redirect: res.Redirect, VendorID: res.VendorID})
}

func (h *AuthHandler) UserSignup(c *gin.Context)   { h.signup(c, model.RoleUser) }
func (h *AuthHandler) VendorSignup(c *gin.Context) { h.signup(c, model.RoleVendor) }
func (h *AuthHandler) UserLogin(c *gin.Context)    { h.login(c, model.RoleUser) }
func (h *AuthHandler) VendorLogin(c *gin.Context)  { h.login(c, model.RoleVendor) }

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}

	if err := h.service.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		respondError(c, h.log, err, "Failed to process password reset")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset link sent (placeholder)"})
}

// Me echoes the principal resolved from the bearer token.
func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := middleware.PrincipalFromContext(c.Request.Context())
	if !ok {
		respondError(c, h.log, service.ErrInvalidToken, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": p.PrincipalID(), "role": p.Role()})
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/user/signup", h.UserSignup)
		authGroup.POST("/user/login", h.UserLogin)
		authGroup.POST("/vendor/signup", h.VendorSignup)
		authGroup.POST("/vendor/login", h.VendorLogin)
		authGroup.POST("/forgot-password", h.ForgotPassword)
		authGroup.GET("/me", authMW, h.Me)
	}
}
