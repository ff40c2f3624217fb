package handlers

import (
	"net/http"

	"github.com/hafiz-aliAwj/portfolio/internal/metrics"
	"github.com/hafiz-aliAwj/portfolio/internal/models"
	"github.com/hafiz-aliAwj/portfolio/internal/services"
	"github.com/hafiz-aliAwj/portfolio/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

// ProjectHandler is the project entity handler plus the related-projects and
// page-metadata views.
type ProjectHandler struct {
	*EntityHandler[models.Project, dto.CreateProjectRequest, dto.UpdateProjectRequest]
	projects ProjectServiceInterface
}

func NewProjectHandler(service ProjectServiceInterface, recorder metrics.Recorder) *ProjectHandler {
	return &ProjectHandler{
		EntityHandler: NewEntityHandler[models.Project, dto.CreateProjectRequest, dto.UpdateProjectRequest](ProjectResource, service, recorder),
		projects:      service,
	}
}

func (h *ProjectHandler) Related(c *drift.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, h.invalidID())
		return
	}

	limit := queryInt(c, "limit", services.DefaultRelatedLimit)
	related, err := h.projects.Related(c.Request.Context(), id, limit)
	if err != nil {
		respondError(c, err, ProjectResource.NotFound, "list related projects")
		return
	}

	_ = c.JSON(http.StatusOK, map[string]any{"related_projects": related})
}

func (h *ProjectHandler) Metadata(c *drift.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, h.invalidID())
		return
	}

	meta, err := h.projects.Metadata(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, ProjectResource.NotFound, "get project metadata")
		return
	}

	_ = c.JSON(http.StatusOK, map[string]any{"metadata": meta})
}
