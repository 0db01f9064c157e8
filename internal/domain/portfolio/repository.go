package portfolio

import "context"

// List methods take the owning profile id in its string (hex) form. A
// malformed id behaves like an id with no matching documents: empty result,
// no error. Results are ascending in the display order field.

type ExperienceRepository interface {
	Create(ctx context.Context, e *Experience) (*Experience, error)
	ListByProfile(ctx context.Context, profileID string) ([]Experience, error)
}

type SkillRepository interface {
	Create(ctx context.Context, s *Skill) (*Skill, error)
	ListByProfile(ctx context.Context, profileID string) ([]Skill, error)
}

type ProjectRepository interface {
	Create(ctx context.Context, p *Project) (*Project, error)
	ListByProfile(ctx context.Context, profileID string) ([]Project, error)
	CountByProfile(ctx context.Context, profileID string) (int64, error)
}

type CertificationRepository interface {
	Create(ctx context.Context, c *Certification) (*Certification, error)
	ListByProfile(ctx context.Context, profileID string) ([]Certification, error)
}

type EducationRepository interface {
	Create(ctx context.Context, e *Education) (*Education, error)
	ListByProfile(ctx context.Context, profileID string) ([]Education, error)
}
