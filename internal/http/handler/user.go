package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snipbin/snipbin/internal/domain"
	"github.com/snipbin/snipbin/internal/service"
	"github.com/snipbin/snipbin/pkg/logger"
)

// UserService defines the user handler's dependency contract.
type UserService interface {
	Register(ctx context.Context, username, password string) (domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	GetUserByID(ctx context.Context, id string) (domain.User, []string, error)
	ListUsers(ctx context.Context, page, limit int) ([]domain.User, map[string][]string, error)
}

// UserHandler handles HTTP requests for users and login.
type UserHandler struct {
	svc UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func userResponse(u domain.User, snippetIDs []string) domain.UserResponseDTO {
	if snippetIDs == nil {
		snippetIDs = []string{}
	}
	return domain.UserResponseDTO{
		ID:        u.ID,
		Username:  u.Username,
		Snippets:  snippetIDs,
		CreatedAt: u.CreatedAt.UTC().Format(TimeFormat),
	}
}

// Register handles user registration.
func (h *UserHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()
	var req domain.RegisterUserRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error(ctx, "failed to bind JSON: %s", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "bad_request", "message": "invalid request", "details": err.Error()}})
		return
	}
	user, err := h.svc.Register(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": gin.H{"code": "conflict", "message": "username already taken"}})
			return
		}
		logger.Error(ctx, "failed to register user: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "internal_error", "message": "internal server error"}})
		return
	}
	c.JSON(http.StatusCreated, userResponse(user, nil))
}

// Login verifies credentials and returns an access token.
func (h *UserHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()
	var req domain.LoginRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "bad_request", "message": "invalid request", "details": err.Error()}})
		return
	}
	token, err := h.svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredential) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": "unauthorized", "message": "invalid username or password"}})
			return
		}
		logger.Error(ctx, "failed to log in: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "internal_error", "message": "internal server error"}})
		return
	}
	c.JSON(http.StatusOK, domain.LoginResponseDTO{Token: token})
}

// List handles listing all users with pagination.
func (h *UserHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	type queryParams struct {
		Page  int `form:"page,default=1" binding:"gte=1"`
		Limit int `form:"limit,default=20" binding:"gte=1,lte=100"`
	}
	var q queryParams
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "bad_request", "message": "invalid query parameters", "details": err.Error()}})
		return
	}
	users, owned, err := h.svc.ListUsers(ctx, q.Page, q.Limit)
	if err != nil {
		logger.Error(ctx, "failed to list users: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "internal_error", "message": "internal server error"}})
		return
	}
	items := make([]domain.UserResponseDTO, 0, len(users))
	for _, u := range users {
		items = append(items, userResponse(u, owned[u.ID]))
	}
	c.JSON(http.StatusOK, domain.ListUsersResponseDTO{Page: q.Page, Limit: q.Limit, Items: items})
}

// Get handles fetching a user by ID.
func (h *UserHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	user, snippetIDs, err := h.svc.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "not_found", "message": "not found"}})
			return
		}
		logger.Error(ctx, "failed to get user: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "internal_error", "message": "internal server error"}})
		return
	}
	c.JSON(http.StatusOK, userResponse(user, snippetIDs))
}
