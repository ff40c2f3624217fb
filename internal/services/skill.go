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

const skillColumns = `id, name, level, category, description, image, active, sequence, created_at, updated_at`

type SkillService struct {
	db  *database.DB
	seq sequencer
}

func NewSkillService(db *database.DB) *SkillService {
	return &SkillService{
		db:  db,
		seq: sequencer{db: db, table: "skills", column: "sequence"},
	}
}

func scanSkill(row pgx.Row) (*models.Skill, error) {
	var s models.Skill
	err := row.Scan(
		&s.ID, &s.Name, &s.Level, &s.Category, &s.Description,
		&s.Image, &s.Active, &s.Sequence, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *SkillService) List(ctx context.Context) ([]models.Skill, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+skillColumns+`
		FROM skills
		ORDER BY sequence ASC, created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	skills := []models.Skill{}
	for rows.Next() {
		skill, err := scanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, *skill)
	}
	return skills, rows.Err()
}

func (s *SkillService) GetByID(ctx context.Context, id uuid.UUID) (*models.Skill, error) {
	skill, err := scanSkill(s.db.Pool.QueryRow(ctx, `
		SELECT `+skillColumns+` FROM skills WHERE id = $1
	`, id))
	if err != nil {
		return nil, wrapNotFound(err, "failed to get skill")
	}
	return skill, nil
}

func (s *SkillService) Create(ctx context.Context, req dto.CreateSkillRequest) (*models.Skill, error) {
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	sequence, err := s.seq.next(ctx)
	if err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	skill, err := scanSkill(s.db.Pool.QueryRow(ctx, `
		INSERT INTO skills (name, level, category, description, image, active, sequence)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+skillColumns,
		req.Name, req.Level, req.Category, req.Description, req.Image, active, sequence,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return skill, nil
}

func (s *SkillService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateSkillRequest) (*models.Skill, error) {
	if req.IsEmpty() {
		return nil, validationError(ErrNoFieldsToUpdate)
	}
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	skill, err := scanSkill(s.db.Pool.QueryRow(ctx, `
		UPDATE skills
		SET name = COALESCE($1, name),
			level = COALESCE($2, level),
			category = COALESCE($3, category),
			description = COALESCE($4, description),
			image = COALESCE($5, image),
			active = COALESCE($6, active),
			sequence = COALESCE($7, sequence),
			updated_at = NOW()
		WHERE id = $8
		RETURNING `+skillColumns,
		req.Name, req.Level, req.Category, req.Description, req.Image, req.Active, req.Sequence, id,
	))
	if err != nil {
		return nil, wrapNotFound(err, "failed to update skill")
	}
	return skill, nil
}

func (s *SkillService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.seq.delete(ctx, id)
}

func (s *SkillService) Reorder(ctx context.Context, updates []SequenceUpdate) (*ReorderResult, error) {
	return s.seq.reorder(ctx, updates)
}
