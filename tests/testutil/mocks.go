package testutil

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hafiz-aliAwj/portfolio/internal/models"
	"github.com/hafiz-aliAwj/portfolio/internal/services"
	"github.com/hafiz-aliAwj/portfolio/pkg/dto"
	"github.com/stretchr/testify/mock"
)

// MockEntityService mocks any of the orderable content services
type MockEntityService[T, C, U any] struct {
	mock.Mock
}

func (m *MockEntityService[T, C, U]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockEntityService[T, C, U]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockEntityService[T, C, U]) Create(ctx context.Context, req C) (*T, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockEntityService[T, C, U]) Update(ctx context.Context, id uuid.UUID, req U) (*T, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockEntityService[T, C, U]) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEntityService[T, C, U]) Reorder(ctx context.Context, updates []services.SequenceUpdate) (*services.ReorderResult, error) {
	args := m.Called(ctx, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ReorderResult), args.Error(1)
}

type (
	MockSkillService      = MockEntityService[models.Skill, dto.CreateSkillRequest, dto.UpdateSkillRequest]
	MockExperienceService = MockEntityService[models.Experience, dto.CreateExperienceRequest, dto.UpdateExperienceRequest]
	MockEducationService  = MockEntityService[models.Education, dto.CreateEducationRequest, dto.UpdateEducationRequest]
	MockSocialLinkService = MockEntityService[models.SocialLink, dto.CreateSocialLinkRequest, dto.UpdateSocialLinkRequest]
)

// MockProjectService mocks the ProjectService
type MockProjectService struct {
	MockEntityService[models.Project, dto.CreateProjectRequest, dto.UpdateProjectRequest]
}

func (m *MockProjectService) Related(ctx context.Context, id uuid.UUID, limit int) ([]models.RelatedProject, error) {
	args := m.Called(ctx, id, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RelatedProject), args.Error(1)
}

func (m *MockProjectService) Metadata(ctx context.Context, id uuid.UUID) (*models.ProjectMetadata, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProjectMetadata), args.Error(1)
}

// MockUserService mocks the UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockTokenService mocks the TokenService
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	args := m.Called(ctx, tokenID, expiresAt)
	return args.Error(0)
}

func (m *MockTokenService) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

// MockJWTService mocks the JWTService
type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) Issue(user *models.User) (string, time.Time, error) {
	args := m.Called(user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockJWTService) Expiry() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}

// MockDetailsService mocks the DetailsService
type MockDetailsService struct {
	mock.Mock
}

func (m *MockDetailsService) Get(ctx context.Context) (*models.PersonalDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PersonalDetails), args.Error(1)
}

func (m *MockDetailsService) Upsert(ctx context.Context, req dto.UpdateDetailsRequest) (*models.PersonalDetails, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PersonalDetails), args.Error(1)
}

// MockContactService mocks the ContactService
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Create(ctx context.Context, req dto.CreateContactRequest) (*models.ContactMessage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactMessage), args.Error(1)
}

func (m *MockContactService) List(ctx context.Context, page services.PageRequest, status string) ([]models.ContactMessage, services.PageResult, error) {
	args := m.Called(ctx, page, status)
	if args.Get(0) == nil {
		return nil, args.Get(1).(services.PageResult), args.Error(2)
	}
	return args.Get(0).([]models.ContactMessage), args.Get(1).(services.PageResult), args.Error(2)
}

func (m *MockContactService) GetByID(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactMessage), args.Error(1)
}

func (m *MockContactService) UpdateStatus(ctx context.Context, id uuid.UUID, req dto.UpdateContactStatusRequest) (*models.ContactMessage, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactMessage), args.Error(1)
}

func (m *MockContactService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVisitorService mocks the VisitorService
type MockVisitorService struct {
	mock.Mock
}

func (m *MockVisitorService) Record(ctx context.Context, visit services.Visit) (*models.VisitorLog, error) {
	args := m.Called(ctx, visit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VisitorLog), args.Error(1)
}

func (m *MockVisitorService) List(ctx context.Context, page services.PageRequest) ([]models.VisitorLog, services.PageResult, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(services.PageResult), args.Error(2)
	}
	return args.Get(0).([]models.VisitorLog), args.Get(1).(services.PageResult), args.Error(2)
}

// MockEmailService mocks the EmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendContactNotification(msg *models.ContactMessage) error {
	args := m.Called(msg)
	return args.Error(0)
}

// MockPinger mocks the database health check
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
