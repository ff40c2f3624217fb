package services

import (
	"context"
	"fmt"

	"github.com/hafiz-aliAwj/portfolio/internal/database"
	"github.com/hafiz-aliAwj/portfolio/internal/models"
	"github.com/jackc/pgx/v5"
)

const visitorColumns = `id, ip_address, user_agent, referrer, page, email, name, location, visit_date, created_at`

// Visit is what the HTTP layer knows about a single page view.
type Visit struct {
	IPAddress string
	UserAgent string
	Referrer  string
	Page      string
	Email     *string
	Name      *string
	Location  *string
}

type VisitorService struct {
	db *database.DB
}

func NewVisitorService(db *database.DB) *VisitorService {
	return &VisitorService{db: db}
}

func scanVisitorLog(row pgx.Row) (*models.VisitorLog, error) {
	var v models.VisitorLog
	err := row.Scan(&v.ID, &v.IPAddress, &v.UserAgent, &v.Referrer, &v.Page,
		&v.Email, &v.Name, &v.Location, &v.VisitDate, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *VisitorService) Record(ctx context.Context, visit Visit) (*models.VisitorLog, error) {
	if visit.IPAddress == "" {
		visit.IPAddress = "unknown"
	}
	if visit.UserAgent == "" {
		visit.UserAgent = "unknown"
	}
	if visit.Referrer == "" {
		visit.Referrer = "direct"
	}
	if visit.Page == "" {
		visit.Page = "/"
	}

	v, err := scanVisitorLog(s.db.Pool.QueryRow(ctx, `
		INSERT INTO visitor_logs (ip_address, user_agent, referrer, page, email, name, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+visitorColumns,
		visit.IPAddress, visit.UserAgent, visit.Referrer, visit.Page, visit.Email, visit.Name, visit.Location,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to record visit: %w", err)
	}
	return v, nil
}

// List returns one page of visits, most recent first.
func (s *VisitorService) List(ctx context.Context, page PageRequest) ([]models.VisitorLog, PageResult, error) {
	page = page.normalize()
	result := PageResult{PageRequest: page}

	if err := s.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM visitor_logs`).Scan(&result.Total); err != nil {
		return nil, result, fmt.Errorf("failed to count visitor logs: %w", err)
	}

	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+visitorColumns+`
		FROM visitor_logs
		ORDER BY visit_date DESC
		LIMIT $1 OFFSET $2
	`, page.Limit, page.offset())
	if err != nil {
		return nil, result, fmt.Errorf("failed to list visitor logs: %w", err)
	}
	defer rows.Close()

	logs := []models.VisitorLog{}
	for rows.Next() {
		v, err := scanVisitorLog(rows)
		if err != nil {
			return nil, result, fmt.Errorf("failed to scan visitor log: %w", err)
		}
		logs = append(logs, *v)
	}
	return logs, result, rows.Err()
}
