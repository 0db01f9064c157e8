package http

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/laybeentan/portfolio-api/internal/domain/contact"
	"github.com/laybeentan/portfolio-api/internal/domain/portfolio"
	"github.com/laybeentan/portfolio-api/internal/domain/profile"
)

// Profile DTOs

type ProfileDTO struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Title           string    `json:"title"`
	Location        string    `json:"location"`
	Email           string    `json:"email"`
	LinkedIn        string    `json:"linkedin"`
	YearsExperience int       `json:"years_experience"`
	CurrentCompany  string    `json:"current_company"`
	Specialization  string    `json:"specialization"`
	Summary         string    `json:"summary"`
	KeyStrengths    []string  `json:"key_strengths"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	return ProfileDTO{
		ID:              p.ID.Hex(),
		Name:            p.Name,
		Title:           p.Title,
		Location:        p.Location,
		Email:           p.Email,
		LinkedIn:        p.LinkedIn,
		YearsExperience: p.YearsExperience,
		CurrentCompany:  p.CurrentCompany,
		Specialization:  p.Specialization,
		Summary:         p.Summary,
		KeyStrengths:    p.KeyStrengths,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// Experience DTOs

type ExperienceDTO struct {
	ID           string   `json:"id"`
	ProfileID    string   `json:"profile_id"`
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	StartDate    string   `json:"start_date"`
	EndDate      *string  `json:"end_date"`
	Duration     string   `json:"duration"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies"`
	Order        int      `json:"order"`
}

func ToExperienceDTOs(items []portfolio.Experience) []ExperienceDTO {
	dtos := make([]ExperienceDTO, len(items))
	for i, e := range items {
		dtos[i] = ExperienceDTO{
			ID:           e.ID.Hex(),
			ProfileID:    e.ProfileID.Hex(),
			Company:      e.Company,
			Role:         e.Role,
			StartDate:    e.StartDate,
			EndDate:      e.EndDate,
			Duration:     e.Duration,
			Location:     e.Location,
			Description:  e.Description,
			Achievements: e.Achievements,
			Technologies: e.Technologies,
			Order:        e.Order,
		}
	}
	return dtos
}

// Skill DTOs. Skills are stored flat and grouped by category here, in the
// projection layer.

type SkillEntryDTO struct {
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"`
}

type SkillGroupDTO struct {
	Category string          `json:"category"`
	Skills   []SkillEntryDTO `json:"skills"`
}

// SkillGroups marshals as a JSON object keyed by category, preserving
// first-seen category order. A plain map would lose it.
type SkillGroups struct {
	keys   []string
	groups map[string]*SkillGroupDTO
}

// GroupSkills folds an order-ascending flat skill list into category groups.
// Category order follows first appearance; intra-category order follows the
// input sequence.
func GroupSkills(skills []portfolio.Skill) *SkillGroups {
	sg := &SkillGroups{groups: make(map[string]*SkillGroupDTO)}
	for _, s := range skills {
		g, ok := sg.groups[s.Category]
		if !ok {
			g = &SkillGroupDTO{Category: s.Category, Skills: []SkillEntryDTO{}}
			sg.groups[s.Category] = g
			sg.keys = append(sg.keys, s.Category)
		}
		g.Skills = append(g.Skills, SkillEntryDTO{Name: s.Name, Proficiency: s.Proficiency})
	}
	return sg
}

func (sg *SkillGroups) Categories() []string {
	return sg.keys
}

func (sg *SkillGroups) Group(category string) (SkillGroupDTO, bool) {
	g, ok := sg.groups[category]
	if !ok {
		return SkillGroupDTO{}, false
	}
	return *g, true
}

func (sg *SkillGroups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range sg.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		group, err := json.Marshal(sg.groups[k])
		if err != nil {
			return nil, err
		}
		buf.Write(group)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Project DTOs

type ProjectDTO struct {
	ID           string         `json:"id"`
	ProfileID    string         `json:"profile_id"`
	Title        string         `json:"title"`
	Category     string         `json:"category"`
	Status       string         `json:"status"`
	StartDate    string         `json:"start_date"`
	EndDate      *string        `json:"end_date"`
	Description  string         `json:"description"`
	Challenges   []string       `json:"challenges"`
	Solutions    []string       `json:"solutions"`
	Impact       []string       `json:"impact"`
	Technologies []string       `json:"technologies"`
	Metrics      map[string]any `json:"metrics"`
	Order        int            `json:"order"`
}

func ToProjectDTOs(items []portfolio.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(items))
	for i, p := range items {
		dtos[i] = ProjectDTO{
			ID:           p.ID.Hex(),
			ProfileID:    p.ProfileID.Hex(),
			Title:        p.Title,
			Category:     p.Category,
			Status:       p.Status,
			StartDate:    p.StartDate,
			EndDate:      p.EndDate,
			Description:  p.Description,
			Challenges:   p.Challenges,
			Solutions:    p.Solutions,
			Impact:       p.Impact,
			Technologies: p.Technologies,
			Metrics:      p.Metrics,
			Order:        p.Order,
		}
	}
	return dtos
}

// Certification and education DTOs

type CertificationDTO struct {
	ID           string `json:"id"`
	ProfileID    string `json:"profile_id"`
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	DateObtained string `json:"date_obtained"`
	Status       string `json:"status"`
	Relevance    string `json:"relevance"`
	Order        int    `json:"order"`
}

func ToCertificationDTOs(items []portfolio.Certification) []CertificationDTO {
	dtos := make([]CertificationDTO, len(items))
	for i, c := range items {
		dtos[i] = CertificationDTO{
			ID:           c.ID.Hex(),
			ProfileID:    c.ProfileID.Hex(),
			Name:         c.Name,
			Issuer:       c.Issuer,
			DateObtained: c.DateObtained,
			Status:       c.Status,
			Relevance:    c.Relevance,
			Order:        c.Order,
		}
	}
	return dtos
}

type EducationDTO struct {
	ID          string `json:"id"`
	ProfileID   string `json:"profile_id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Location    string `json:"location"`
	Order       int    `json:"order"`
}

func ToEducationDTOs(items []portfolio.Education) []EducationDTO {
	dtos := make([]EducationDTO, len(items))
	for i, e := range items {
		dtos[i] = EducationDTO{
			ID:          e.ID.Hex(),
			ProfileID:   e.ProfileID.Hex(),
			Degree:      e.Degree,
			Institution: e.Institution,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Location:    e.Location,
			Order:       e.Order,
		}
	}
	return dtos
}

// Contact DTOs

type SubmitContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type ContactSubmissionDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
	Status      string    `json:"status"`
}

func ToContactSubmissionDTO(sub *contact.ContactSubmission) ContactSubmissionDTO {
	return ContactSubmissionDTO{
		ID:          sub.ID.Hex(),
		Name:        sub.Name,
		Email:       sub.Email,
		Subject:     sub.Subject,
		Message:     sub.Message,
		SubmittedAt: sub.SubmittedAt,
		Status:      sub.Status,
	}
}
