package portfolio

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/laybeentan/portfolio-api/internal/domain/portfolio"
)

const (
	cacheKeyStatistics = "portfolio:statistics"
	statisticsCacheTTL = 5 * time.Minute

	fallbackYearsExperience = 31
	yearsAtNokia            = 15
	teamsManagedSize        = 25
	budgetManaged           = "$2.5M+"

	// projects_managed scales the stored project count for display instead of
	// reporting it literally. The formula predates this rewrite; keep it.
	projectsManagedPerEntry = 50
	projectsManagedFloor    = 100
)

// Statistics derives the career aggregate from the profile, the project
// count, and the distinct skill categories. Returns (nil, nil) when no
// profile exists.
func (uc *PortfolioUseCase) Statistics(ctx context.Context) (*portfolio.Statistics, error) {
	if cached, err := uc.cache.Get(ctx, cacheKeyStatistics); err != nil {
		uc.logger.Warn("statistics cache read failed", zap.Error(err))
	} else if cached != nil {
		var stats portfolio.Statistics
		if err := json.Unmarshal(cached, &stats); err == nil {
			return &stats, nil
		}
		uc.logger.Warn("statistics cache entry corrupt, recomputing")
	}

	p, err := uc.profiles.GetSingleton(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	projectCount, err := uc.projects.CountByProfile(ctx, p.ID.Hex())
	if err != nil {
		return nil, err
	}

	skills, err := uc.skills.ListByProfile(ctx, p.ID.Hex())
	if err != nil {
		return nil, err
	}
	categories := make(map[string]struct{})
	for _, s := range skills {
		categories[s.Category] = struct{}{}
	}

	years := p.YearsExperience
	if years == 0 {
		years = fallbackYearsExperience
	}

	managed := int(projectCount) * projectsManagedPerEntry
	if managed < projectsManagedFloor {
		managed = projectsManagedFloor
	}

	stats := &portfolio.Statistics{
		YearsExperience:  years,
		YearsAtNokia:     yearsAtNokia,
		ProjectsManaged:  managed,
		SecurityDomains:  len(categories),
		TeamsManagedSize: teamsManagedSize,
		BudgetManaged:    budgetManaged,
	}

	if buf, err := json.Marshal(stats); err == nil {
		if err := uc.cache.Set(ctx, cacheKeyStatistics, buf, statisticsCacheTTL); err != nil {
			uc.logger.Warn("statistics cache write failed", zap.Error(err))
		}
	}
	return stats, nil
}
