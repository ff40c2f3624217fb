package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hafiz-aliAwj/portfolio/internal/database"
	"github.com/hafiz-aliAwj/portfolio/pkg/dto"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var projectRowColumns = []string{
	"id", "title", "description", "long_description", "images", "technologies", "keywords",
	"github_url", "live_url", "features", "client", "duration", "role", "sequence", "created_at", "updated_at",
}

func setupProjectService(t *testing.T) (*ProjectService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	db := &database.DB{Pool: mock}
	return NewProjectService(db), mock
}

func projectRow(rows *pgxmock.Rows, id uuid.UUID, title string, keywords []string, images []string, sequence int) *pgxmock.Rows {
	now := time.Now()
	return rows.AddRow(id, title, "desc", "", images, []string{"Go"}, keywords,
		"", "", []string{}, "", "", "", sequence, now, now)
}

func TestProjectService_Create(t *testing.T) {
	svc, mock := setupProjectService(t)
	ctx := context.Background()
	id := uuid.New()
	req := dto.CreateProjectRequest{
		Title:        "Portfolio",
		Description:  "desc",
		Images:       []string{"/a.png"},
		Technologies: []string{"Go"},
	}

	mock.ExpectQuery(`SELECT COALESCE\(MAX\(sequence\), 0\) \+ 1 FROM projects`).
		WillReturnRows(pgxmock.NewRows([]string{"next"}).AddRow(2))
	mock.ExpectQuery(`INSERT INTO projects`).
		WithArgs("Portfolio", "desc", "", []string{"/a.png"}, []string{"Go"}, []string{},
			"", "", []string{}, "", "", "", 2).
		WillReturnRows(projectRow(pgxmock.NewRows(projectRowColumns), id, "Portfolio", []string{}, []string{"/a.png"}, 2))

	project, err := svc.Create(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, id, project.ID)
	assert.Equal(t, 2, project.Sequence)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectService_Create_RequiresImagesAndTechnologies(t *testing.T) {
	svc, _ := setupProjectService(t)

	_, err := svc.Create(context.Background(), dto.CreateProjectRequest{Title: "t", Description: "d", Technologies: []string{"Go"}})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "images is required")

	_, err = svc.Create(context.Background(), dto.CreateProjectRequest{Title: "t", Description: "d", Images: []string{"/a.png"}})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "technologies is required")
}

func TestProjectService_Related(t *testing.T) {
	svc, mock := setupProjectService(t)
	ctx := context.Background()
	current := uuid.New()
	none, one, two := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM projects WHERE id = \$1`).
		WithArgs(current).
		WillReturnRows(projectRow(pgxmock.NewRows(projectRowColumns), current, "Current", []string{"go", "api", "sql"}, []string{"/c.png"}, 1))

	rows := pgxmock.NewRows(projectRowColumns)
	projectRow(rows, none, "None", []string{"css"}, []string{}, 2)
	projectRow(rows, one, "One", []string{"go"}, []string{}, 3)
	projectRow(rows, two, "Two", []string{"api", "sql"}, []string{}, 4)
	mock.ExpectQuery(`SELECT .+ FROM projects\s+WHERE id <> \$1`).
		WithArgs(current).
		WillReturnRows(rows)

	related, err := svc.Related(ctx, current, 2)

	require.NoError(t, err)
	require.Len(t, related, 2)
	assert.Equal(t, two, related[0].ID)
	assert.Equal(t, 2, related[0].MatchScore)
	assert.Equal(t, one, related[1].ID)
	assert.Equal(t, 1, related[1].MatchScore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectService_Related_NotFound(t *testing.T) {
	svc, mock := setupProjectService(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM projects WHERE id = \$1`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	_, err := svc.Related(context.Background(), id, 3)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectService_Metadata(t *testing.T) {
	svc, mock := setupProjectService(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM projects WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(projectRow(pgxmock.NewRows(projectRowColumns), id, "Portfolio",
			[]string{"go", "api"}, []string{"/first.png", "/second.png"}, 1))

	meta, err := svc.Metadata(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "Portfolio", meta.Title)
	assert.Equal(t, "go, api", meta.Keywords)
	require.NotNil(t, meta.Image)
	assert.Equal(t, "/first.png", *meta.Image)
}

func TestProjectService_Metadata_NoImage(t *testing.T) {
	svc, mock := setupProjectService(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM projects WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(projectRow(pgxmock.NewRows(projectRowColumns), id, "Portfolio", []string{}, []string{}, 1))

	meta, err := svc.Metadata(context.Background(), id)

	require.NoError(t, err)
	assert.Nil(t, meta.Image)
	assert.Equal(t, "", meta.Keywords)
}

func TestMatchScore_IgnoresDuplicates(t *testing.T) {
	wanted := map[string]struct{}{"go": {}}

	assert.Equal(t, 1, matchScore([]string{"go", "go"}, wanted))
	assert.Equal(t, 0, matchScore(nil, wanted))
}

func TestProjectService_Update_RejectsBlankedFields(t *testing.T) {
	svc, mock := setupProjectService(t)
	blank := ""

	_, err := svc.Update(context.Background(), uuid.New(), dto.UpdateProjectRequest{Title: &blank})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Update(context.Background(), uuid.New(), dto.UpdateProjectRequest{Images: []string{}})
	assert.ErrorIs(t, err, ErrValidation)

	assert.NoError(t, mock.ExpectationsWereMet())
}
