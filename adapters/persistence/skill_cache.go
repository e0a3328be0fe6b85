package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/walterBrayan/BackTalentHub/internal/domain/skill"
	"github.com/walterBrayan/BackTalentHub/pkg/logger"
)

const catalogCacheTTL = 10 * time.Minute

// cachedSkillCatalogRepo is a read-through cache in front of the catalog
// table. The catalog changes rarely and search queries repeat a lot while a
// user types, so stale entries within the TTL are acceptable. Redis being
// down only costs the cache; queries fall through to Postgres.
type cachedSkillCatalogRepo struct {
	inner  skill.CatalogRepository
	rdb    *redis.Client
	logger logger.Logger
}

func NewCachedSkillCatalogRepo(inner skill.CatalogRepository, rdb *redis.Client, log logger.Logger) skill.CatalogRepository {
	return &cachedSkillCatalogRepo{inner: inner, rdb: rdb, logger: log}
}

func catalogCacheKey(fragment string, t skill.Type, limit int) string {
	return fmt.Sprintf("skills:catalog:%s:%s:%d", t, fragment, limit)
}

func (r *cachedSkillCatalogRepo) Search(ctx context.Context, fragment string, t skill.Type, limit int) ([]skill.StandardSkill, error) {
	key := catalogCacheKey(fragment, t, limit)

	cached, err := r.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var skills []skill.StandardSkill
		if err := json.Unmarshal(cached, &skills); err == nil {
			return skills, nil
		}
		// Corrupt entry: drop it and fall through.
		r.rdb.Del(ctx, key)
	} else if err != redis.Nil {
		r.logger.Warn("skill catalog cache read failed", zap.Error(err))
	}

	skills, err := r.inner.Search(ctx, fragment, t, limit)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(skills); err == nil {
		if err := r.rdb.Set(ctx, key, payload, catalogCacheTTL).Err(); err != nil {
			r.logger.Warn("skill catalog cache write failed", zap.Error(err))
		}
	}
	return skills, nil
}
