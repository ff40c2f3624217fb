// Package seed loads portfolio content from a YAML file and creates it
// through the content services, so records get sequences in file order.
package seed

import (
	"context"
	"fmt"
	"io"

	"github.com/hafiz-aliAwj/portfolio/internal/models"
	"github.com/hafiz-aliAwj/portfolio/pkg/dto"
	"gopkg.in/yaml.v3"
)

type File struct {
	Details     *Details     `yaml:"details"`
	Projects    []Project    `yaml:"projects"`
	Skills      []Skill      `yaml:"skills"`
	Experiences []Experience `yaml:"experiences"`
	Education   []Education  `yaml:"education"`
	SocialLinks []SocialLink `yaml:"social_links"`
}

type Details struct {
	Name     string            `yaml:"name"`
	Title    string            `yaml:"title"`
	Email    string            `yaml:"email"`
	Phone    string            `yaml:"phone"`
	Location string            `yaml:"location"`
	Bio      string            `yaml:"bio"`
	Social   map[string]string `yaml:"social"`
}

type Project struct {
	Title           string   `yaml:"title"`
	Description     string   `yaml:"description"`
	LongDescription string   `yaml:"long_description"`
	Images          []string `yaml:"images"`
	Technologies    []string `yaml:"technologies"`
	Keywords        []string `yaml:"keywords"`
	GithubURL       string   `yaml:"github_url"`
	LiveURL         string   `yaml:"live_url"`
	Features        []string `yaml:"features"`
	Client          string   `yaml:"client"`
	Duration        string   `yaml:"duration"`
	Role            string   `yaml:"role"`
}

type Skill struct {
	Name        string `yaml:"name"`
	Level       int    `yaml:"level"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
	Active      *bool  `yaml:"active"`
}

type Experience struct {
	Title       string   `yaml:"title"`
	Company     string   `yaml:"company"`
	Period      string   `yaml:"period"`
	Description string   `yaml:"description"`
	Skills      []string `yaml:"skills"`
}

type Education struct {
	Institution  string   `yaml:"institution"`
	Degree       string   `yaml:"degree"`
	Field        string   `yaml:"field"`
	Period       string   `yaml:"period"`
	Description  string   `yaml:"description"`
	Achievements []string `yaml:"achievements"`
}

type SocialLink struct {
	Platform string `yaml:"platform"`
	URL      string `yaml:"url"`
	Icon     string `yaml:"icon"`
	Active   *bool  `yaml:"active"`
}

// Parse decodes a seed file. Unknown keys are rejected so typos surface
// before anything is written.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return &f, nil
		}
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &f, nil
}

// Stores is the slice of the content services a seed run writes through.
type Stores struct {
	Details interface {
		Upsert(ctx context.Context, req dto.UpdateDetailsRequest) (*models.PersonalDetails, error)
	}
	Projects    creator[models.Project, dto.CreateProjectRequest]
	Skills      creator[models.Skill, dto.CreateSkillRequest]
	Experiences creator[models.Experience, dto.CreateExperienceRequest]
	Education   creator[models.Education, dto.CreateEducationRequest]
	SocialLinks creator[models.SocialLink, dto.CreateSocialLinkRequest]
}

type creator[T, C any] interface {
	Create(ctx context.Context, req C) (*T, error)
}

// Summary counts the records created per kind.
type Summary struct {
	Details     bool
	Projects    int
	Skills      int
	Experiences int
	Education   int
	SocialLinks int
}

// Apply creates everything in f. It stops at the first failure; records
// created before it are kept.
func Apply(ctx context.Context, stores Stores, f *File) (Summary, error) {
	var sum Summary

	if f.Details != nil {
		if _, err := stores.Details.Upsert(ctx, f.Details.request()); err != nil {
			return sum, fmt.Errorf("details: %w", err)
		}
		sum.Details = true
	}

	var err error
	if sum.Projects, err = createAll(ctx, "project", stores.Projects, f.Projects, Project.request); err != nil {
		return sum, err
	}
	if sum.Skills, err = createAll(ctx, "skill", stores.Skills, f.Skills, Skill.request); err != nil {
		return sum, err
	}
	if sum.Experiences, err = createAll(ctx, "experience", stores.Experiences, f.Experiences, Experience.request); err != nil {
		return sum, err
	}
	if sum.Education, err = createAll(ctx, "education", stores.Education, f.Education, Education.request); err != nil {
		return sum, err
	}
	if sum.SocialLinks, err = createAll(ctx, "social link", stores.SocialLinks, f.SocialLinks, SocialLink.request); err != nil {
		return sum, err
	}

	return sum, nil
}

func createAll[T, C, S any](ctx context.Context, kind string, store creator[T, C], items []S, toRequest func(S) C) (int, error) {
	for i, item := range items {
		if _, err := store.Create(ctx, toRequest(item)); err != nil {
			return i, fmt.Errorf("%s #%d: %w", kind, i+1, err)
		}
	}
	return len(items), nil
}

func (d Details) request() dto.UpdateDetailsRequest {
	return dto.UpdateDetailsRequest{
		Name:     d.Name,
		Title:    d.Title,
		Email:    d.Email,
		Phone:    d.Phone,
		Location: d.Location,
		Bio:      d.Bio,
		Social: models.SocialHandles{
			Github:    d.Social["github"],
			Linkedin:  d.Social["linkedin"],
			Twitter:   d.Social["twitter"],
			Instagram: d.Social["instagram"],
			Facebook:  d.Social["facebook"],
		},
	}
}

func (p Project) request() dto.CreateProjectRequest {
	return dto.CreateProjectRequest{
		Title:           p.Title,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		Images:          p.Images,
		Technologies:    p.Technologies,
		Keywords:        p.Keywords,
		GithubURL:       p.GithubURL,
		LiveURL:         p.LiveURL,
		Features:        p.Features,
		Client:          p.Client,
		Duration:        p.Duration,
		Role:            p.Role,
	}
}

func (s Skill) request() dto.CreateSkillRequest {
	return dto.CreateSkillRequest{
		Name:        s.Name,
		Level:       s.Level,
		Category:    s.Category,
		Description: s.Description,
		Image:       s.Image,
		Active:      s.Active,
	}
}

func (e Experience) request() dto.CreateExperienceRequest {
	return dto.CreateExperienceRequest{
		Title:       e.Title,
		Company:     e.Company,
		Period:      e.Period,
		Description: e.Description,
		Skills:      e.Skills,
	}
}

func (e Education) request() dto.CreateEducationRequest {
	return dto.CreateEducationRequest{
		Institution:  e.Institution,
		Degree:       e.Degree,
		Field:        e.Field,
		Period:       e.Period,
		Description:  e.Description,
		Achievements: e.Achievements,
	}
}

func (l SocialLink) request() dto.CreateSocialLinkRequest {
	return dto.CreateSocialLinkRequest{
		Platform: l.Platform,
		URL:      l.URL,
		Icon:     l.Icon,
		Active:   l.Active,
	}
}
