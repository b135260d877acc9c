package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moscow89er/mesto-api/internal/domain"
)

// userUsecaser is the subset of UserUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type userUsecaser interface {
	List(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, callerID, name, about string) (*domain.User, error)
	UpdateAvatar(ctx context.Context, callerID, avatar string) (*domain.User, error)
}

type UserHandler struct {
	users  userUsecaser
	logger *slog.Logger
}

func NewUserHandler(users userUsecaser, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger.With("component", "user_handler")}
}

type userResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	About  string `json:"about"`
	Avatar string `json:"avatar"`
	Email  string `json:"email"`
}

func newUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:     u.ID,
		Name:   u.Name,
		About:  u.About,
		Avatar: u.Avatar,
		Email:  u.Email,
	}
}

type userIDParam struct {
	UserID string `uri:"userId" binding:"required,len=24,hexadecimal"`
}

type updateProfileRequest struct {
	Name  string `json:"name"  binding:"required,min=2,max=30"`
	About string `json:"about" binding:"required,min=2,max=30"`
}

type updateAvatarRequest struct {
	Avatar string `json:"avatar" binding:"required,photourl"`
}

// GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u))
	}
	c.JSON(http.StatusOK, out)
}

// GET /users/me
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

// GET /users/:userId
func (h *UserHandler) GetByID(c *gin.Context) {
	var p userIDParam
	if err := c.ShouldBindUri(&p); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), p.UserID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

// PATCH /users/me
// The target id always comes from the verified token, never from the body.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), c.GetString("userID"), req.Name, req.About)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

// PATCH /users/me/avatar
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	var req updateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	user, err := h.users.UpdateAvatar(c.Request.Context(), c.GetString("userID"), req.Avatar)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}
