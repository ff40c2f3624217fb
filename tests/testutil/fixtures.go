package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/hafiz-aliAwj/portfolio/internal/database"
	"github.com/hafiz-aliAwj/portfolio/internal/models"
	"github.com/hafiz-aliAwj/portfolio/internal/services"
	"github.com/hafiz-aliAwj/portfolio/pkg/dto"
	"golang.org/x/crypto/bcrypt"
)

// TestPassword is the password of every fixture user
const TestPassword = "correct horse battery staple"

// Fixtures provides factory methods for creating test data
type Fixtures struct {
	db      *database.DB
	counter int
}

// NewFixtures creates a new fixtures factory
func NewFixtures(db *database.DB) *Fixtures {
	return &Fixtures{db: db}
}

// CreateUser creates a test user with default values
func (f *Fixtures) CreateUser(t *testing.T, opts ...UserOption) *models.User {
	t.Helper()
	f.counter++

	req := dto.RegisterRequest{
		Username: fmt.Sprintf("user%d", f.counter),
		Password: TestPassword,
		Name:     fmt.Sprintf("Test User %d", f.counter),
		Email:    fmt.Sprintf("user%d@example.com", f.counter),
	}
	role := models.RoleEditor

	for _, opt := range opts {
		opt(&req, &role)
	}

	svc := services.NewUserService(f.db).WithHashCost(bcrypt.MinCost)
	user, err := svc.Create(context.Background(), req, role)
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user
}

// UserOption configures a test user
type UserOption func(req *dto.RegisterRequest, role *string)

// WithUsername sets the user's username
func WithUsername(username string) UserOption {
	return func(req *dto.RegisterRequest, _ *string) {
		req.Username = username
	}
}

// AsAdmin gives the user the admin role
func AsAdmin() UserOption {
	return func(_ *dto.RegisterRequest, role *string) {
		*role = models.RoleAdmin
	}
}

// CreateSkill creates a skill through the service so it gets the next sequence
func (f *Fixtures) CreateSkill(t *testing.T, name string) *models.Skill {
	t.Helper()

	skill, err := services.NewSkillService(f.db).Create(context.Background(), dto.CreateSkillRequest{
		Name:     name,
		Level:    80,
		Category: "backend",
	})
	if err != nil {
		t.Fatalf("failed to create skill: %v", err)
	}

	return skill
}

// CreateProject creates a project with the given keywords
func (f *Fixtures) CreateProject(t *testing.T, title string, keywords ...string) *models.Project {
	t.Helper()

	project, err := services.NewProjectService(f.db).Create(context.Background(), dto.CreateProjectRequest{
		Title:        title,
		Description:  title + " description",
		Images:       []string{"/images/" + title + ".png"},
		Technologies: []string{"go"},
		Keywords:     keywords,
	})
	if err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	return project
}

// CreateSocialLink creates a social link for the platform
func (f *Fixtures) CreateSocialLink(t *testing.T, platform string) *models.SocialLink {
	t.Helper()

	link, err := services.NewSocialLinkService(f.db).Create(context.Background(), dto.CreateSocialLinkRequest{
		Platform: platform,
		URL:      "https://" + platform + ".example.com/me",
		Icon:     platform,
	})
	if err != nil {
		t.Fatalf("failed to create social link: %v", err)
	}

	return link
}
