package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hafiz-aliAwj/portfolio/internal/database"
	"github.com/hafiz-aliAwj/portfolio/internal/models"
	"github.com/hafiz-aliAwj/portfolio/pkg/dto"
	"github.com/jackc/pgx/v5"
)

const detailsColumns = `name, title, email, phone, location, bio, social, created_at, updated_at`

// DetailsService manages the single personal-details record.
type DetailsService struct {
	db *database.DB
}

func NewDetailsService(db *database.DB) *DetailsService {
	return &DetailsService{db: db}
}

func scanDetails(row pgx.Row) (*models.PersonalDetails, error) {
	var d models.PersonalDetails
	var social []byte
	err := row.Scan(&d.Name, &d.Title, &d.Email, &d.Phone, &d.Location, &d.Bio, &social, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(social) > 0 {
		if err := json.Unmarshal(social, &d.Social); err != nil {
			return nil, fmt.Errorf("failed to decode social handles: %w", err)
		}
	}
	return &d, nil
}

// Get returns ErrNotFound until the details have been saved once.
func (s *DetailsService) Get(ctx context.Context) (*models.PersonalDetails, error) {
	d, err := scanDetails(s.db.Pool.QueryRow(ctx, `
		SELECT `+detailsColumns+` FROM personal_details WHERE id = 1
	`))
	if err != nil {
		return nil, wrapNotFound(err, "failed to get personal details")
	}
	return d, nil
}

func (s *DetailsService) Upsert(ctx context.Context, req dto.UpdateDetailsRequest) (*models.PersonalDetails, error) {
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	social, err := json.Marshal(req.Social)
	if err != nil {
		return nil, fmt.Errorf("failed to encode social handles: %w", err)
	}

	d, err := scanDetails(s.db.Pool.QueryRow(ctx, `
		INSERT INTO personal_details (id, name, title, email, phone, location, bio, social)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
			title = EXCLUDED.title,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			location = EXCLUDED.location,
			bio = EXCLUDED.bio,
			social = EXCLUDED.social,
			updated_at = NOW()
		RETURNING `+detailsColumns,
		req.Name, req.Title, req.Email, req.Phone, req.Location, req.Bio, social,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to save personal details: %w", err)
	}
	return d, nil
}
