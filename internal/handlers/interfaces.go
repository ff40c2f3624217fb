package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hafiz-aliAwj/portfolio/internal/models"
	"github.com/hafiz-aliAwj/portfolio/internal/services"
	"github.com/hafiz-aliAwj/portfolio/pkg/dto"
)

// EntityService is the store shared by every orderable kind. T is the record,
// C the create payload and U the partial update payload.
type EntityService[T, C, U any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, req C) (*T, error)
	Update(ctx context.Context, id uuid.UUID, req U) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, updates []services.SequenceUpdate) (*services.ReorderResult, error)
}

type (
	SkillServiceInterface      = EntityService[models.Skill, dto.CreateSkillRequest, dto.UpdateSkillRequest]
	ExperienceServiceInterface = EntityService[models.Experience, dto.CreateExperienceRequest, dto.UpdateExperienceRequest]
	EducationServiceInterface  = EntityService[models.Education, dto.CreateEducationRequest, dto.UpdateEducationRequest]
	SocialLinkServiceInterface = EntityService[models.SocialLink, dto.CreateSocialLinkRequest, dto.UpdateSocialLinkRequest]
)

// ProjectServiceInterface adds the project-only read views.
type ProjectServiceInterface interface {
	EntityService[models.Project, dto.CreateProjectRequest, dto.UpdateProjectRequest]
	Related(ctx context.Context, id uuid.UUID, limit int) ([]models.RelatedProject, error)
	Metadata(ctx context.Context, id uuid.UUID) (*models.ProjectMetadata, error)
}

// UserServiceInterface defines the methods used by handlers from UserService
type UserServiceInterface interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// TokenServiceInterface defines the methods used by handlers from TokenService
type TokenServiceInterface interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
}

// JWTServiceInterface defines the methods used by handlers from JWTService
type JWTServiceInterface interface {
	Issue(user *models.User) (string, time.Time, error)
	Expiry() time.Duration
}

type DetailsServiceInterface interface {
	Get(ctx context.Context) (*models.PersonalDetails, error)
	Upsert(ctx context.Context, req dto.UpdateDetailsRequest) (*models.PersonalDetails, error)
}

type ContactServiceInterface interface {
	Create(ctx context.Context, req dto.CreateContactRequest) (*models.ContactMessage, error)
	List(ctx context.Context, page services.PageRequest, status string) ([]models.ContactMessage, services.PageResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req dto.UpdateContactStatusRequest) (*models.ContactMessage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type VisitorServiceInterface interface {
	Record(ctx context.Context, visit services.Visit) (*models.VisitorLog, error)
	List(ctx context.Context, page services.PageRequest) ([]models.VisitorLog, services.PageResult, error)
}

type EmailServiceInterface interface {
	SendContactNotification(msg *models.ContactMessage) error
}

type Pinger interface {
	Ping(ctx context.Context) error
}
