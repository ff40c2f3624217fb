package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/hafiz-aliAwj/portfolio/internal/models"
	"github.com/hafiz-aliAwj/portfolio/internal/services"
	"github.com/hafiz-aliAwj/portfolio/tests/testutil"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupProjectTest(t *testing.T) (*testutil.MockProjectService, http.Handler) {
	t.Helper()
	mockService := new(testutil.MockProjectService)
	handler := NewProjectHandler(mockService, nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Get("/projects", handler.List)
	app.Get("/projects/:id", handler.Get)
	app.Get("/projects/:id/related", handler.Related)
	app.Get("/projects/:id/metadata", handler.Metadata)
	app.Put("/projects/:id", handler.Update)

	return mockService, app
}

func TestProjectHandler_Related_DefaultLimit(t *testing.T) {
	mockService, app := setupProjectTest(t)

	id := uuid.New()
	related := []models.RelatedProject{
		{Project: models.Project{ID: uuid.New(), Title: "Shop"}, MatchScore: 2},
	}
	mockService.On("Related", mock.Anything, id, services.DefaultRelatedLimit).Return(related, nil)

	rec := doJSON(t, app, http.MethodGet, "/projects/"+id.String()+"/related", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp map[string][]models.RelatedProject
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp["related_projects"], 1)
	assert.Equal(t, 2, resp["related_projects"][0].MatchScore)
	mockService.AssertExpectations(t)
}

func TestProjectHandler_Related_CustomLimit(t *testing.T) {
	mockService, app := setupProjectTest(t)

	id := uuid.New()
	mockService.On("Related", mock.Anything, id, 5).Return([]models.RelatedProject{}, nil)

	rec := doJSON(t, app, http.MethodGet, "/projects/"+id.String()+"/related?limit=5", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockService.AssertExpectations(t)
}

func TestProjectHandler_Related_NotFound(t *testing.T) {
	mockService, app := setupProjectTest(t)

	id := uuid.New()
	mockService.On("Related", mock.Anything, id, services.DefaultRelatedLimit).Return(nil, services.ErrNotFound)

	rec := doJSON(t, app, http.MethodGet, "/projects/"+id.String()+"/related", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Project not found")
}

func TestProjectHandler_Metadata(t *testing.T) {
	mockService, app := setupProjectTest(t)

	id := uuid.New()
	image := "/images/shop.png"
	meta := &models.ProjectMetadata{
		Title:       "Shop",
		Description: "An online shop",
		Keywords:    "go, postgres",
		Image:       &image,
	}
	mockService.On("Metadata", mock.Anything, id).Return(meta, nil)

	rec := doJSON(t, app, http.MethodGet, "/projects/"+id.String()+"/metadata", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]models.ProjectMetadata
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "go, postgres", resp["metadata"].Keywords)
	require.NotNil(t, resp["metadata"].Image)
	assert.Equal(t, image, *resp["metadata"].Image)
}

func TestProjectHandler_Metadata_InvalidID(t *testing.T) {
	_, app := setupProjectTest(t)

	rec := doJSON(t, app, http.MethodGet, "/projects/123/metadata", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid project ID")
}

func TestProjectHandler_Sequence(t *testing.T) {
	mockService, app := setupProjectTest(t)

	id := uuid.NewString()
	mockService.On("Reorder", mock.Anything, []services.SequenceUpdate{{ID: id, Sequence: 1}}).
		Return(&services.ReorderResult{Applied: 1}, nil)

	rec := doJSON(t, app, http.MethodPut, "/projects/sequence", map[string]interface{}{
		"sequences": []map[string]interface{}{{"id": id, "sequence": 1}},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Project sequences updated successfully")
}
