package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moscow89er/mesto-api/internal/domain"
	"github.com/moscow89er/mesto-api/internal/usecase"
)

type authUsecaser interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, string, error)
}

type AuthHandler struct {
	auth   authUsecaser
	logger *slog.Logger
}

func NewAuthHandler(auth authUsecaser, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger.With("component", "auth_handler")}
}

type signUpRequest struct {
	Name     string `json:"name"     binding:"omitempty,min=2,max=30"`
	About    string `json:"about"    binding:"omitempty,min=2,max=30"`
	Avatar   string `json:"avatar"   binding:"omitempty,photourl"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type signInRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /signup
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	user, err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		Name:     req.Name,
		About:    req.About,
		Avatar:   req.Avatar,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(user))
}

// POST /signin
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	token, userID, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "userId": userID})
}
