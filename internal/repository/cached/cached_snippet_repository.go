// Package cached provides a caching wrapper over a primary snippet repository using Redis.
package cached

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/snipbin/snipbin/internal/domain"
	"github.com/snipbin/snipbin/internal/repository"
)

// key helpers
func keySnippet(id string) string { return "snippet:" + id }
func keyList(page, limit int, f repository.SnippetFilter) string {
	k := fmt.Sprintf("snippets:p%d:l%d", page, limit)
	if f.Language != "" {
		k += ":lang:" + f.Language
	}
	if f.Owner != "" {
		k += ":own:" + f.Owner
	}
	return k
}

// SnippetRepository is a cache-aside repository combining Redis with a primary store.
type SnippetRepository struct {
	primary repository.SnippetRepository
	redis   *redis.Client
	ttl     time.Duration
}

// NewSnippetRepository creates a new cached repository.
func NewSnippetRepository(primary repository.SnippetRepository, redis *redis.Client, ttl time.Duration) *SnippetRepository {
	return &SnippetRepository{primary: primary, redis: redis, ttl: ttl}
}

// Insert writes through to primary and populates cache.
func (r *SnippetRepository) Insert(ctx context.Context, s domain.Snippet) error {
	if err := r.primary.Insert(ctx, s); err != nil {
		return err
	}
	r.cacheSnippet(ctx, s)
	// bust list caches best-effort
	_ = r.invalidateListKeys(ctx)
	return nil
}

// FindByID attempts Redis then falls back to primary.
func (r *SnippetRepository) FindByID(ctx context.Context, id string) (domain.Snippet, error) {
	val, err := r.redis.Get(ctx, keySnippet(id)).Result()
	if err == nil && val != "" {
		var s domain.Snippet
		if jsonErr := json.Unmarshal([]byte(val), &s); jsonErr == nil {
			return s, nil
		}
	}
	s, err := r.primary.FindByID(ctx, id)
	if err != nil {
		return domain.Snippet{}, err
	}
	r.cacheSnippet(ctx, s)
	return s, nil
}

// Update writes through to primary, refreshes the item cache, and busts lists.
func (r *SnippetRepository) Update(ctx context.Context, s domain.Snippet) error {
	if err := r.primary.Update(ctx, s); err != nil {
		return err
	}
	r.cacheSnippet(ctx, s)
	_ = r.invalidateListKeys(ctx)
	return nil
}

// Delete removes from primary and evicts the cached item and lists.
func (r *SnippetRepository) Delete(ctx context.Context, id string) error {
	if err := r.primary.Delete(ctx, id); err != nil {
		return err
	}
	_ = r.redis.Del(ctx, keySnippet(id)).Err()
	_ = r.invalidateListKeys(ctx)
	return nil
}

// List caches the page results keyed by page/limit/filter.
func (r *SnippetRepository) List(ctx context.Context, page, limit int, filter repository.SnippetFilter) ([]domain.Snippet, error) {
	k := keyList(page, limit, filter)
	if val, err := r.redis.Get(ctx, k).Result(); err == nil && val != "" {
		var items []domain.Snippet
		if jsonErr := json.Unmarshal([]byte(val), &items); jsonErr == nil {
			return items, nil
		}
	}
	items, err := r.primary.List(ctx, page, limit, filter)
	if err != nil {
		return nil, err
	}
	data, _ := json.Marshal(items)
	_ = r.redis.Set(ctx, k, data, r.ttl).Err()
	return items, nil
}

// IDsByOwner is a pass-through; user detail pages tolerate a primary read.
func (r *SnippetRepository) IDsByOwner(ctx context.Context, owner string) ([]string, error) {
	return r.primary.IDsByOwner(ctx, owner)
}

func (r *SnippetRepository) cacheSnippet(ctx context.Context, s domain.Snippet) {
	data, _ := json.Marshal(s)
	_ = r.redis.Set(ctx, keySnippet(s.ID), data, r.ttl).Err()
}

func (r *SnippetRepository) invalidateListKeys(ctx context.Context) error {
	// scan-and-delete keys with prefix snippets:
	var cursor uint64
	for {
		keys, next, err := r.redis.Scan(ctx, cursor, "snippets:*", 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			// filter only list keys
			listKeys := make([]string, 0, len(keys))
			for _, k := range keys {
				if strings.HasPrefix(k, "snippets:") && !strings.HasPrefix(k, "snippet:") {
					listKeys = append(listKeys, k)
				}
			}
			if len(listKeys) > 0 {
				_ = r.redis.Del(ctx, listKeys...).Err()
			}
		}
		if next == 0 {
			break
		}
		cursor = next
	}
	return nil
}

var _ repository.SnippetRepository = (*SnippetRepository)(nil)
