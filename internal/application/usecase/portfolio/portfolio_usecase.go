package portfolio

import (
	"context"

	"github.com/laybeentan/portfolio-api/internal/application/service"
	"github.com/laybeentan/portfolio-api/internal/domain/portfolio"
	"github.com/laybeentan/portfolio-api/internal/domain/profile"
	"github.com/laybeentan/portfolio-api/pkg/logger"
)

// PortfolioUseCase serves the read endpoints scoped to the singleton profile.
// When no profile exists every list resolves to an empty result, not an
// error; only the profile endpoint itself reports absence.
type PortfolioUseCase struct {
	profiles       profile.Repository
	experience     portfolio.ExperienceRepository
	skills         portfolio.SkillRepository
	projects       portfolio.ProjectRepository
	certifications portfolio.CertificationRepository
	education      portfolio.EducationRepository
	cache          service.Cache
	logger         logger.Logger
}

func NewPortfolioUseCase(
	profiles profile.Repository,
	experience portfolio.ExperienceRepository,
	skills portfolio.SkillRepository,
	projects portfolio.ProjectRepository,
	certifications portfolio.CertificationRepository,
	education portfolio.EducationRepository,
	cache service.Cache,
	log logger.Logger,
) *PortfolioUseCase {
	return &PortfolioUseCase{
		profiles:       profiles,
		experience:     experience,
		skills:         skills,
		projects:       projects,
		certifications: certifications,
		education:      education,
		cache:          cache,
		logger:         log,
	}
}

func (uc *PortfolioUseCase) ListExperience(ctx context.Context) ([]portfolio.Experience, error) {
	p, err := uc.profiles.GetSingleton(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return []portfolio.Experience{}, nil
	}
	return uc.experience.ListByProfile(ctx, p.ID.Hex())
}

func (uc *PortfolioUseCase) ListSkills(ctx context.Context) ([]portfolio.Skill, error) {
	p, err := uc.profiles.GetSingleton(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return []portfolio.Skill{}, nil
	}
	return uc.skills.ListByProfile(ctx, p.ID.Hex())
}

func (uc *PortfolioUseCase) ListProjects(ctx context.Context) ([]portfolio.Project, error) {
	p, err := uc.profiles.GetSingleton(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return []portfolio.Project{}, nil
	}
	return uc.projects.ListByProfile(ctx, p.ID.Hex())
}

func (uc *PortfolioUseCase) ListCertifications(ctx context.Context) ([]portfolio.Certification, error) {
	p, err := uc.profiles.GetSingleton(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return []portfolio.Certification{}, nil
	}
	return uc.certifications.ListByProfile(ctx, p.ID.Hex())
}

func (uc *PortfolioUseCase) ListEducation(ctx context.Context) ([]portfolio.Education, error) {
	p, err := uc.profiles.GetSingleton(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return []portfolio.Education{}, nil
	}
	return uc.education.ListByProfile(ctx, p.ID.Hex())
}
