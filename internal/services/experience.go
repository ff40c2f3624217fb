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

const experienceColumns = `id, title, company, period, description, skills, sequence, created_at, updated_at`

type ExperienceService struct {
	db  *database.DB
	seq sequencer
}

func NewExperienceService(db *database.DB) *ExperienceService {
	return &ExperienceService{
		db:  db,
		seq: sequencer{db: db, table: "experiences", column: "sequence"},
	}
}

func scanExperience(row pgx.Row) (*models.Experience, error) {
	var e models.Experience
	err := row.Scan(
		&e.ID, &e.Title, &e.Company, &e.Period, &e.Description,
		&e.Skills, &e.Sequence, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *ExperienceService) List(ctx context.Context) ([]models.Experience, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+experienceColumns+`
		FROM experiences
		ORDER BY sequence ASC, created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	defer rows.Close()

	experiences := []models.Experience{}
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		experiences = append(experiences, *e)
	}
	return experiences, rows.Err()
}

func (s *ExperienceService) GetByID(ctx context.Context, id uuid.UUID) (*models.Experience, error) {
	e, err := scanExperience(s.db.Pool.QueryRow(ctx, `
		SELECT `+experienceColumns+` FROM experiences WHERE id = $1
	`, id))
	if err != nil {
		return nil, wrapNotFound(err, "failed to get experience")
	}
	return e, nil
}

func (s *ExperienceService) Create(ctx context.Context, req dto.CreateExperienceRequest) (*models.Experience, error) {
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	sequence, err := s.seq.next(ctx)
	if err != nil {
		return nil, err
	}

	e, err := scanExperience(s.db.Pool.QueryRow(ctx, `
		INSERT INTO experiences (title, company, period, description, skills, sequence)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+experienceColumns,
		req.Title, req.Company, req.Period, req.Description, orEmpty(req.Skills), sequence,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create experience: %w", err)
	}
	return e, nil
}

func (s *ExperienceService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateExperienceRequest) (*models.Experience, error) {
	if req.IsEmpty() {
		return nil, validationError(ErrNoFieldsToUpdate)
	}
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	e, err := scanExperience(s.db.Pool.QueryRow(ctx, `
		UPDATE experiences
		SET title = COALESCE($1, title),
			company = COALESCE($2, company),
			period = COALESCE($3, period),
			description = COALESCE($4, description),
			skills = COALESCE($5, skills),
			sequence = COALESCE($6, sequence),
			updated_at = NOW()
		WHERE id = $7
		RETURNING `+experienceColumns,
		req.Title, req.Company, req.Period, req.Description, req.Skills, req.Sequence, id,
	))
	if err != nil {
		return nil, wrapNotFound(err, "failed to update experience")
	}
	return e, nil
}

func (s *ExperienceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.seq.delete(ctx, id)
}

func (s *ExperienceService) Reorder(ctx context.Context, updates []SequenceUpdate) (*ReorderResult, error) {
	return s.seq.reorder(ctx, updates)
}
