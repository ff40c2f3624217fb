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

const educationColumns = `id, institution, degree, field, period, description, achievements, sequence, created_at, updated_at`

type EducationService struct {
	db  *database.DB
	seq sequencer
}

func NewEducationService(db *database.DB) *EducationService {
	return &EducationService{
		db:  db,
		seq: sequencer{db: db, table: "education", column: "sequence"},
	}
}

func scanEducation(row pgx.Row) (*models.Education, error) {
	var e models.Education
	err := row.Scan(
		&e.ID, &e.Institution, &e.Degree, &e.Field, &e.Period,
		&e.Description, &e.Achievements, &e.Sequence, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *EducationService) List(ctx context.Context) ([]models.Education, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+educationColumns+`
		FROM education
		ORDER BY sequence ASC, created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list education: %w", err)
	}
	defer rows.Close()

	entries := []models.Education{}
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan education: %w", err)
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

func (s *EducationService) GetByID(ctx context.Context, id uuid.UUID) (*models.Education, error) {
	e, err := scanEducation(s.db.Pool.QueryRow(ctx, `
		SELECT `+educationColumns+` FROM education WHERE id = $1
	`, id))
	if err != nil {
		return nil, wrapNotFound(err, "failed to get education")
	}
	return e, nil
}

func (s *EducationService) Create(ctx context.Context, req dto.CreateEducationRequest) (*models.Education, error) {
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	sequence, err := s.seq.next(ctx)
	if err != nil {
		return nil, err
	}

	e, err := scanEducation(s.db.Pool.QueryRow(ctx, `
		INSERT INTO education (institution, degree, field, period, description, achievements, sequence)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+educationColumns,
		req.Institution, req.Degree, req.Field, req.Period, req.Description, orEmpty(req.Achievements), sequence,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create education: %w", err)
	}
	return e, nil
}

func (s *EducationService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateEducationRequest) (*models.Education, error) {
	if req.IsEmpty() {
		return nil, validationError(ErrNoFieldsToUpdate)
	}
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	e, err := scanEducation(s.db.Pool.QueryRow(ctx, `
		UPDATE education
		SET institution = COALESCE($1, institution),
			degree = COALESCE($2, degree),
			field = COALESCE($3, field),
			period = COALESCE($4, period),
			description = COALESCE($5, description),
			achievements = COALESCE($6, achievements),
			sequence = COALESCE($7, sequence),
			updated_at = NOW()
		WHERE id = $8
		RETURNING `+educationColumns,
		req.Institution, req.Degree, req.Field, req.Period, req.Description, req.Achievements, req.Sequence, id,
	))
	if err != nil {
		return nil, wrapNotFound(err, "failed to update education")
	}
	return e, nil
}

func (s *EducationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.seq.delete(ctx, id)
}

func (s *EducationService) Reorder(ctx context.Context, updates []SequenceUpdate) (*ReorderResult, error) {
	return s.seq.reorder(ctx, updates)
}
