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

const socialLinkColumns = `id, platform, url, icon, active, sort_order, created_at, updated_at`

type SocialLinkService struct {
	db  *database.DB
	seq sequencer
}

func NewSocialLinkService(db *database.DB) *SocialLinkService {
	return &SocialLinkService{
		db:  db,
		seq: sequencer{db: db, table: "social_links", column: "sort_order"},
	}
}

func scanSocialLink(row pgx.Row) (*models.SocialLink, error) {
	var l models.SocialLink
	err := row.Scan(&l.ID, &l.Platform, &l.URL, &l.Icon, &l.Active, &l.Order, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *SocialLinkService) List(ctx context.Context) ([]models.SocialLink, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+socialLinkColumns+`
		FROM social_links
		ORDER BY sort_order ASC, created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list social links: %w", err)
	}
	defer rows.Close()

	links := []models.SocialLink{}
	for rows.Next() {
		l, err := scanSocialLink(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan social link: %w", err)
		}
		links = append(links, *l)
	}
	return links, rows.Err()
}

func (s *SocialLinkService) GetByID(ctx context.Context, id uuid.UUID) (*models.SocialLink, error) {
	l, err := scanSocialLink(s.db.Pool.QueryRow(ctx, `
		SELECT `+socialLinkColumns+` FROM social_links WHERE id = $1
	`, id))
	if err != nil {
		return nil, wrapNotFound(err, "failed to get social link")
	}
	return l, nil
}

func (s *SocialLinkService) Create(ctx context.Context, req dto.CreateSocialLinkRequest) (*models.SocialLink, error) {
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	order, err := s.seq.next(ctx)
	if err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	l, err := scanSocialLink(s.db.Pool.QueryRow(ctx, `
		INSERT INTO social_links (platform, url, icon, active, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+socialLinkColumns,
		req.Platform, req.URL, req.Icon, active, order,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create social link: %w", err)
	}
	return l, nil
}

func (s *SocialLinkService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateSocialLinkRequest) (*models.SocialLink, error) {
	if req.IsEmpty() {
		return nil, validationError(ErrNoFieldsToUpdate)
	}
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	l, err := scanSocialLink(s.db.Pool.QueryRow(ctx, `
		UPDATE social_links
		SET platform = COALESCE($1, platform),
			url = COALESCE($2, url),
			icon = COALESCE($3, icon),
			active = COALESCE($4, active),
			sort_order = COALESCE($5, sort_order),
			updated_at = NOW()
		WHERE id = $6
		RETURNING `+socialLinkColumns,
		req.Platform, req.URL, req.Icon, req.Active, req.Order, id,
	))
	if err != nil {
		return nil, wrapNotFound(err, "failed to update social link")
	}
	return l, nil
}

func (s *SocialLinkService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.seq.delete(ctx, id)
}

func (s *SocialLinkService) Reorder(ctx context.Context, updates []SequenceUpdate) (*ReorderResult, error) {
	return s.seq.reorder(ctx, updates)
}
