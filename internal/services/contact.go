package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hafiz-aliAwj/portfolio/internal/database"
	"github.com/hafiz-aliAwj/portfolio/internal/models"
	"github.com/hafiz-aliAwj/portfolio/pkg/dto"
	"github.com/jackc/pgx/v5"
)

const contactColumns = `id, name, email, message, contact_type, budget, timeline, project_type, status, created_at, updated_at`

type ContactService struct {
	db *database.DB
}

func NewContactService(db *database.DB) *ContactService {
	return &ContactService{db: db}
}

func scanContact(row pgx.Row) (*models.ContactMessage, error) {
	var m models.ContactMessage
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.ContactType,
		&m.Budget, &m.Timeline, &m.ProjectType, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *ContactService) Create(ctx context.Context, req dto.CreateContactRequest) (*models.ContactMessage, error) {
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	m, err := scanContact(s.db.Pool.QueryRow(ctx, `
		INSERT INTO contact_messages (name, email, message, contact_type, budget, timeline, project_type, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+contactColumns,
		req.Name, req.Email, req.Message, req.ContactType, req.Budget, req.Timeline, req.ProjectType, models.ContactStatusNew,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}
	return m, nil
}

// List returns one page of messages, newest first, optionally restricted to
// a single status.
func (s *ContactService) List(ctx context.Context, page PageRequest, status string) ([]models.ContactMessage, PageResult, error) {
	page = page.normalize()
	result := PageResult{PageRequest: page}

	if status != "" {
		if err := (dto.UpdateContactStatusRequest{Status: status}).Validate(); err != nil {
			return nil, result, validationError(err)
		}
	}

	if err := s.db.Pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM contact_messages WHERE ($1 = '' OR status = $1)
	`, status).Scan(&result.Total); err != nil {
		return nil, result, fmt.Errorf("failed to count contact messages: %w", err)
	}

	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+contactColumns+`
		FROM contact_messages
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, status, page.Limit, page.offset())
	if err != nil {
		return nil, result, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	messages := []models.ContactMessage{}
	for rows.Next() {
		m, err := scanContact(rows)
		if err != nil {
			return nil, result, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, *m)
	}
	return messages, result, rows.Err()
}

func (s *ContactService) GetByID(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error) {
	m, err := scanContact(s.db.Pool.QueryRow(ctx, `
		SELECT `+contactColumns+` FROM contact_messages WHERE id = $1
	`, id))
	if err != nil {
		return nil, wrapNotFound(err, "failed to get contact message")
	}
	return m, nil
}

func (s *ContactService) UpdateStatus(ctx context.Context, id uuid.UUID, req dto.UpdateContactStatusRequest) (*models.ContactMessage, error) {
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	m, err := scanContact(s.db.Pool.QueryRow(ctx, `
		UPDATE contact_messages
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+contactColumns,
		req.Status, id,
	))
	if err != nil {
		return nil, wrapNotFound(err, "failed to update contact message")
	}
	return m, nil
}

func (s *ContactService) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Pool.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact message: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
