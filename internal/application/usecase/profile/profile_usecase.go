package profile

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/laybeentan/portfolio-api/internal/application/service"
	"github.com/laybeentan/portfolio-api/internal/domain/profile"
	"github.com/laybeentan/portfolio-api/pkg/apperror"
	"github.com/laybeentan/portfolio-api/pkg/logger"
)

const (
	cacheKeyProfile = "portfolio:profile"
	profileCacheTTL = 5 * time.Minute
)

type ProfileUseCase struct {
	repo   profile.Repository
	cache  service.Cache
	logger logger.Logger
}

func NewProfileUseCase(repo profile.Repository, cache service.Cache, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{repo: repo, cache: cache, logger: log}
}

// GetProfile returns the singleton profile, reading through the cache. It is
// the only operation that surfaces ErrNotFound for a missing profile.
func (uc *ProfileUseCase) GetProfile(ctx context.Context) (*profile.Profile, error) {
	if cached, err := uc.cache.Get(ctx, cacheKeyProfile); err != nil {
		uc.logger.Warn("profile cache read failed", zap.Error(err))
	} else if cached != nil {
		var p profile.Profile
		if err := json.Unmarshal(cached, &p); err == nil {
			return &p, nil
		}
		uc.logger.Warn("profile cache entry corrupt, refetching")
	}

	p, err := uc.repo.GetSingleton(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NewNotFound("profile", "singleton")
	}

	if buf, err := json.Marshal(p); err == nil {
		if err := uc.cache.Set(ctx, cacheKeyProfile, buf, profileCacheTTL); err != nil {
			uc.logger.Warn("profile cache write failed", zap.Error(err))
		}
	}
	return p, nil
}
