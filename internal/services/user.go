package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hafiz-aliAwj/portfolio/internal/database"
	"github.com/hafiz-aliAwj/portfolio/internal/models"
	"github.com/hafiz-aliAwj/portfolio/pkg/dto"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

const userColumns = `id, username, name, email, password_hash, role, created_at, updated_at`

const uniqueViolation = "23505"

type UserService struct {
	db   *database.DB
	cost int
}

func NewUserService(db *database.DB) *UserService {
	return &UserService{db: db, cost: bcrypt.DefaultCost}
}

// WithHashCost sets the bcrypt cost used for new passwords.
func (s *UserService) WithHashCost(cost int) *UserService {
	s.cost = cost
	return s
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Register creates an account. The first account ever registered becomes
// the admin; later ones are editors.
func (s *UserService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	var count int
	if err := s.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	role := models.RoleEditor
	if count == 0 {
		role = models.RoleAdmin
	}

	return s.Create(ctx, req, role)
}

// Create stores a user with an explicit role.
func (s *UserService) Create(ctx context.Context, req dto.RegisterRequest, role string) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}
	if role != models.RoleAdmin && role != models.RoleEditor {
		return nil, validationError(fmt.Errorf("invalid role %q", role))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := scanUser(s.db.Pool.QueryRow(ctx, `
		INSERT INTO users (username, name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns,
		req.Username, req.Name, req.Email, string(hash), role,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Authenticate returns the user when the password matches. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, validationError(errors.New("username and password are required"))
	}

	user, err := s.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := scanUser(s.db.Pool.QueryRow(ctx, `
		SELECT `+userColumns+` FROM users WHERE id = $1
	`, id))
	if err != nil {
		return nil, wrapNotFound(err, "failed to get user")
	}
	return user, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := scanUser(s.db.Pool.QueryRow(ctx, `
		SELECT `+userColumns+` FROM users WHERE username = $1
	`, username))
	if err != nil {
		return nil, wrapNotFound(err, "failed to get user")
	}
	return user, nil
}

func (s *UserService) Promote(ctx context.Context, username string) error {
	tag, err := s.db.Pool.Exec(ctx, `
		UPDATE users SET role = $1, updated_at = NOW()
		WHERE username = $2
	`, models.RoleAdmin, username)
	if err != nil {
		return fmt.Errorf("failed to promote user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
