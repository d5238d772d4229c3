package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snipbin/snipbin/internal/domain"
	"github.com/snipbin/snipbin/internal/repository"
	"github.com/snipbin/snipbin/internal/service"
	"github.com/snipbin/snipbin/pkg/ctxutil"
	"github.com/snipbin/snipbin/pkg/logger"
)

const (
	// TimeFormat is the standard format for time serialization.
	TimeFormat = "2006-01-02T15:04:05Z"
)

// SnippetService defines the handler's dependency contract.
type SnippetService interface {
	CreateSnippet(ctx context.Context, requester string, req domain.CreateSnippetRequestDTO) (domain.Snippet, error)
	ListSnippets(ctx context.Context, page, limit int, filter repository.SnippetFilter) ([]domain.Snippet, error)
	GetSnippetByID(ctx context.Context, id string) (domain.Snippet, service.SnippetMeta, error)
	UpdateSnippet(ctx context.Context, id, requester string, req domain.UpdateSnippetRequestDTO) (domain.Snippet, error)
	DeleteSnippet(ctx context.Context, id, requester string) error
}

// Handler handles HTTP requests for snippets.
type Handler struct {
	svc SnippetService
}

// NewHandler constructs a Handler with the given SnippetService.
func NewHandler(svc SnippetService) *Handler {
	return &Handler{svc: svc}
}

func snippetResponse(s domain.Snippet) domain.SnippetResponseDTO {
	return domain.SnippetResponseDTO{
		ID:        s.ID,
		Title:     s.Title,
		Code:      s.Code,
		Language:  s.Language,
		Style:     s.Style,
		Linenos:   s.Linenos,
		Owner:     s.Owner,
		CreatedAt: s.CreatedAt.UTC().Format(TimeFormat),
	}
}

// writeAuthError maps service authorization errors onto 401/403 responses.
// Returns false when err was not an authorization error.
func writeAuthError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": "unauthorized", "message": "authentication required"}})
		return true
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": gin.H{"code": "forbidden", "message": "you do not own this snippet"}})
		return true
	}
	return false
}

// Create handles the creation of a new snippet. The authenticated requester
// becomes the owner.
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	var req domain.CreateSnippetRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error(ctx, "failed to bind JSON: %s", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "bad_request", "message": "invalid request", "details": err.Error()}})
		return
	}

	snippet, err := h.svc.CreateSnippet(ctx, ctxutil.Identity(ctx), req)
	if err != nil {
		if writeAuthError(c, err) {
			return
		}
		logger.Error(ctx, "failed to create snippet: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "internal_error", "message": "internal server error"}})
		return
	}
	logger.With(ctx, map[string]any{"id": snippet.ID, "owner": snippet.Owner}).Info("snippet created")
	c.JSON(http.StatusCreated, snippetResponse(snippet))
}

// List handles listing all snippets with pagination and optional filters.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	type queryParams struct {
		Page     int    `form:"page,default=1" binding:"gte=1"`
		Limit    int    `form:"limit,default=20" binding:"gte=1,lte=100"`
		Language string `form:"language"`
		Owner    string `form:"owner"`
	}
	var q queryParams
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Error(ctx, "invalid query params: %s", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "bad_request", "message": "invalid query parameters", "details": err.Error()}})
		return
	}
	// Cap pagination defensively
	if q.Limit < 1 {
		q.Limit = service.ServiceDefaultLimit
	}
	if q.Limit > service.ServiceMaxLimit {
		q.Limit = service.ServiceMaxLimit
	}
	if q.Page < 1 {
		q.Page = service.ServiceDefaultPage
	}
	filter := repository.SnippetFilter{Language: q.Language, Owner: q.Owner}
	items, err := h.svc.ListSnippets(ctx, q.Page, q.Limit, filter)
	if err != nil {
		logger.Error(ctx, "failed to list snippets: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "internal_error", "message": "internal server error"}})
		return
	}
	logger.With(ctx, map[string]any{"count": len(items), "page": q.Page, "limit": q.Limit}).Debug("snippets listed")
	list := make([]domain.SnippetListItemDTO, 0, len(items))
	for _, s := range items {
		list = append(list, domain.SnippetListItemDTO{
			ID:        s.ID,
			Title:     s.Title,
			Language:  s.Language,
			Owner:     s.Owner,
			CreatedAt: s.CreatedAt.UTC().Format(TimeFormat),
		})
	}
	c.JSON(http.StatusOK, domain.ListSnippetsResponseDTO{
		Page:  q.Page,
		Limit: q.Limit,
		Items: list,
	})
}

// Get handles fetching a snippet by ID. Public.
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "bad_request", "message": "id is required"}})
		return
	}
	snippet, meta, err := h.svc.GetSnippetByID(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrSnippetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "not_found", "message": "not found"}})
			return
		}
		logger.Error(ctx, "failed to get snippet: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "internal_error", "message": "internal server error"}})
		return
	}
	logger.With(ctx, map[string]any{"id": id, "cache": string(meta.CacheStatus)}).Debug("snippet retrieved")
	c.Header("X-Cache", string(meta.CacheStatus))
	c.JSON(http.StatusOK, snippetResponse(snippet))
}

// Update handles replacing the content fields of a snippet. Owner only.
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	var req domain.UpdateSnippetRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error(ctx, "failed to bind JSON: %s", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "bad_request", "message": "invalid request", "details": err.Error()}})
		return
	}

	snippet, err := h.svc.UpdateSnippet(ctx, id, ctxutil.Identity(ctx), req)
	if err != nil {
		if writeAuthError(c, err) {
			return
		}
		if errors.Is(err, service.ErrSnippetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "not_found", "message": "not found"}})
			return
		}
		logger.Error(ctx, "failed to update snippet: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "internal_error", "message": "internal server error"}})
		return
	}
	logger.With(ctx, map[string]any{"id": snippet.ID}).Info("snippet updated")
	c.JSON(http.StatusOK, snippetResponse(snippet))
}

// Delete handles removing a snippet. Owner only.
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	if err := h.svc.DeleteSnippet(ctx, id, ctxutil.Identity(ctx)); err != nil {
		if writeAuthError(c, err) {
			return
		}
		if errors.Is(err, service.ErrSnippetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "not_found", "message": "not found"}})
			return
		}
		logger.Error(ctx, "failed to delete snippet: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "internal_error", "message": "internal server error"}})
		return
	}
	logger.With(ctx, map[string]any{"id": id}).Info("snippet deleted")
	c.Status(http.StatusNoContent)
}
