package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/hafiz-aliAwj/portfolio/internal/database"
	"github.com/hafiz-aliAwj/portfolio/internal/models"
	"github.com/hafiz-aliAwj/portfolio/pkg/dto"
	"github.com/jackc/pgx/v5"
)

const projectColumns = `id, title, description, long_description, images, technologies, keywords,
	github_url, live_url, features, client, duration, role, sequence, created_at, updated_at`

const DefaultRelatedLimit = 3

type ProjectService struct {
	db  *database.DB
	seq sequencer
}

func NewProjectService(db *database.DB) *ProjectService {
	return &ProjectService{
		db:  db,
		seq: sequencer{db: db, table: "projects", column: "sequence"},
	}
}

func scanProject(row pgx.Row) (*models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.LongDescription, &p.Images, &p.Technologies, &p.Keywords,
		&p.GithubURL, &p.LiveURL, &p.Features, &p.Client, &p.Duration, &p.Role,
		&p.Sequence, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+projectColumns+`
		FROM projects
		ORDER BY sequence ASC, created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

func (s *ProjectService) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	p, err := scanProject(s.db.Pool.QueryRow(ctx, `
		SELECT `+projectColumns+` FROM projects WHERE id = $1
	`, id))
	if err != nil {
		return nil, wrapNotFound(err, "failed to get project")
	}
	return p, nil
}

func (s *ProjectService) Create(ctx context.Context, req dto.CreateProjectRequest) (*models.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	sequence, err := s.seq.next(ctx)
	if err != nil {
		return nil, err
	}

	p, err := scanProject(s.db.Pool.QueryRow(ctx, `
		INSERT INTO projects (title, description, long_description, images, technologies, keywords,
			github_url, live_url, features, client, duration, role, sequence)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING `+projectColumns,
		req.Title, req.Description, req.LongDescription, req.Images, req.Technologies, orEmpty(req.Keywords),
		req.GithubURL, req.LiveURL, orEmpty(req.Features), req.Client, req.Duration, req.Role, sequence,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return p, nil
}

func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProjectRequest) (*models.Project, error) {
	if req.IsEmpty() {
		return nil, validationError(ErrNoFieldsToUpdate)
	}
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	p, err := scanProject(s.db.Pool.QueryRow(ctx, `
		UPDATE projects
		SET title = COALESCE($1, title),
			description = COALESCE($2, description),
			long_description = COALESCE($3, long_description),
			images = COALESCE($4, images),
			technologies = COALESCE($5, technologies),
			keywords = COALESCE($6, keywords),
			github_url = COALESCE($7, github_url),
			live_url = COALESCE($8, live_url),
			features = COALESCE($9, features),
			client = COALESCE($10, client),
			duration = COALESCE($11, duration),
			role = COALESCE($12, role),
			sequence = COALESCE($13, sequence),
			updated_at = NOW()
		WHERE id = $14
		RETURNING `+projectColumns,
		req.Title, req.Description, req.LongDescription, req.Images, req.Technologies, req.Keywords,
		req.GithubURL, req.LiveURL, req.Features, req.Client, req.Duration, req.Role, req.Sequence, id,
	))
	if err != nil {
		return nil, wrapNotFound(err, "failed to update project")
	}
	return p, nil
}

func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.seq.delete(ctx, id)
}

func (s *ProjectService) Reorder(ctx context.Context, updates []SequenceUpdate) (*ReorderResult, error) {
	return s.seq.reorder(ctx, updates)
}

// Related ranks every other project by how many of the given project's
// keywords it shares. Projects with equal scores keep display order.
func (s *ProjectService) Related(ctx context.Context, id uuid.UUID, limit int) ([]models.RelatedProject, error) {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+projectColumns+`
		FROM projects
		WHERE id <> $1
		ORDER BY sequence ASC, created_at ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list related projects: %w", err)
	}
	defer rows.Close()

	wanted := make(map[string]struct{}, len(current.Keywords))
	for _, k := range current.Keywords {
		wanted[k] = struct{}{}
	}

	related := []models.RelatedProject{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		related = append(related, models.RelatedProject{Project: *p, MatchScore: matchScore(p.Keywords, wanted)})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(related, func(i, j int) bool {
		return related[i].MatchScore > related[j].MatchScore
	})
	if len(related) > limit {
		related = related[:limit]
	}
	return related, nil
}

func (s *ProjectService) Metadata(ctx context.Context, id uuid.UUID) (*models.ProjectMetadata, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	meta := &models.ProjectMetadata{
		Title:       p.Title,
		Description: p.Description,
		Keywords:    strings.Join(p.Keywords, ", "),
	}
	if len(p.Images) > 0 {
		meta.Image = &p.Images[0]
	}
	return meta, nil
}

func matchScore(keywords []string, wanted map[string]struct{}) int {
	score := 0
	seen := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		if _, ok := wanted[k]; ok {
			score++
		}
	}
	return score
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
