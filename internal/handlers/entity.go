package handlers

import (
	"net/http"
	"strings"

	"github.com/hafiz-aliAwj/portfolio/internal/metrics"
	"github.com/hafiz-aliAwj/portfolio/internal/models"
	"github.com/hafiz-aliAwj/portfolio/internal/services"
	"github.com/hafiz-aliAwj/portfolio/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

// sequencePath is the reserved id segment that addresses the bulk reorder
// endpoint, PUT /api/{kind}/sequence.
const sequencePath = "sequence"

// Resource names one orderable kind for routes, JSON keys and messages.
type Resource struct {
	Kind     string // metrics label and log field, e.g. "skill"
	Label    string // message subject, e.g. "Skill"
	NotFound string // e.g. "Skill not found"
	Singular string // JSON key for one record
	Plural   string // JSON key for the list
}

var (
	ProjectResource    = Resource{Kind: "project", Label: "Project", NotFound: "Project not found", Singular: "project", Plural: "projects"}
	SkillResource      = Resource{Kind: "skill", Label: "Skill", NotFound: "Skill not found", Singular: "skill", Plural: "skills"}
	ExperienceResource = Resource{Kind: "experience", Label: "Experience", NotFound: "Experience not found", Singular: "experience", Plural: "experiences"}
	EducationResource  = Resource{Kind: "education", Label: "Education entry", NotFound: "Education entry not found", Singular: "education", Plural: "education"}
	SocialLinkResource = Resource{Kind: "social_link", Label: "Social link", NotFound: "Social link not found", Singular: "socialLink", Plural: "socialLinks"}
)

// sequenceBinder reads a reorder request body. It writes the 400 itself and
// returns false when the body is unusable.
type sequenceBinder func(c *drift.Context) ([]services.SequenceUpdate, bool)

// EntityHandler serves the CRUD and reorder routes of one orderable kind.
type EntityHandler[T, C, U any] struct {
	resource     Resource
	service      EntityService[T, C, U]
	metrics      metrics.Recorder
	bindSequence sequenceBinder
}

func NewEntityHandler[T, C, U any](resource Resource, service EntityService[T, C, U], recorder metrics.Recorder) *EntityHandler[T, C, U] {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &EntityHandler[T, C, U]{
		resource:     resource,
		service:      service,
		metrics:      recorder,
		bindSequence: bindSequences,
	}
}

// NewSocialLinkHandler also accepts the positional {"sequence": [{id}]}
// reorder body.
func NewSocialLinkHandler(service SocialLinkServiceInterface, recorder metrics.Recorder) *EntityHandler[models.SocialLink, dto.CreateSocialLinkRequest, dto.UpdateSocialLinkRequest] {
	h := NewEntityHandler(SocialLinkResource, service, recorder)
	h.bindSequence = bindSocialLinkSequences
	return h
}

func (h *EntityHandler[T, C, U]) List(c *drift.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, h.resource.NotFound, "list "+h.resource.Kind)
		return
	}
	_ = c.JSON(http.StatusOK, map[string]any{h.resource.Plural: items})
}

func (h *EntityHandler[T, C, U]) Get(c *drift.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, h.invalidID())
		return
	}

	item, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, h.resource.NotFound, "get "+h.resource.Kind)
		return
	}
	_ = c.JSON(http.StatusOK, map[string]any{h.resource.Singular: item})
}

func (h *EntityHandler[T, C, U]) Create(c *drift.Context) {
	var req C
	if err := c.BindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, h.resource.NotFound, "create "+h.resource.Kind)
		return
	}

	h.metrics.RecordMutation(h.resource.Kind, "create")
	_ = c.JSON(http.StatusCreated, map[string]any{
		"message":            h.resource.Label + " created successfully",
		h.resource.Singular: item,
	})
}

// Update also owns PUT /{kind}/sequence so that the static segment never
// competes with the :id parameter in the router.
func (h *EntityHandler[T, C, U]) Update(c *drift.Context) {
	if c.Param("id") == sequencePath {
		h.UpdateSequence(c)
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, h.invalidID())
		return
	}

	var req U
	if err := c.BindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, h.resource.NotFound, "update "+h.resource.Kind)
		return
	}

	h.metrics.RecordMutation(h.resource.Kind, "update")
	_ = c.JSON(http.StatusOK, map[string]any{
		"message":            h.resource.Label + " updated successfully",
		h.resource.Singular: item,
	})
}

func (h *EntityHandler[T, C, U]) Delete(c *drift.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, h.invalidID())
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, h.resource.NotFound, "delete "+h.resource.Kind)
		return
	}

	h.metrics.RecordMutation(h.resource.Kind, "delete")
	_ = c.JSON(http.StatusOK, dto.MessageResponse{Message: h.resource.Label + " deleted successfully"})
}

func (h *EntityHandler[T, C, U]) UpdateSequence(c *drift.Context) {
	updates, ok := h.bindSequence(c)
	if !ok {
		return
	}

	result, err := h.service.Reorder(c.Request.Context(), updates)
	if err != nil {
		respondError(c, err, h.resource.NotFound, "reorder "+h.resource.Kind)
		return
	}

	h.metrics.RecordReorder(h.resource.Kind, result.Applied, result.Skipped)
	_ = c.JSON(http.StatusOK, dto.SequenceResponse{
		Message: h.resource.Label + " sequences updated successfully",
		Applied: result.Applied,
		Skipped: result.Skipped,
	})
}

func (h *EntityHandler[T, C, U]) invalidID() string {
	return "Invalid " + strings.ToLower(h.resource.Label) + " ID"
}

func bindSequences(c *drift.Context) ([]services.SequenceUpdate, bool) {
	var req dto.UpdateSequenceRequest
	if err := c.BindJSON(&req); err != nil || req.Sequences == nil {
		writeError(c, http.StatusBadRequest, msgInvalidSequence)
		return nil, false
	}
	return toSequenceUpdates(req.Sequences), true
}

// bindSocialLinkSequences prefers explicit sequences and falls back to the
// positional list, where element i gets order i+1.
func bindSocialLinkSequences(c *drift.Context) ([]services.SequenceUpdate, bool) {
	var req dto.UpdateSocialLinkSequenceRequest
	if err := c.BindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, msgInvalidSequence)
		return nil, false
	}

	switch {
	case req.Sequences != nil:
		return toSequenceUpdates(req.Sequences), true
	case req.Sequence != nil:
		ids := make([]string, len(req.Sequence))
		for i, item := range req.Sequence {
			ids[i] = item.ID
		}
		return services.PositionalUpdates(ids), true
	default:
		writeError(c, http.StatusBadRequest, msgInvalidSequence)
		return nil, false
	}
}

func toSequenceUpdates(items []dto.SequenceItem) []services.SequenceUpdate {
	updates := make([]services.SequenceUpdate, len(items))
	for i, item := range items {
		updates[i] = services.SequenceUpdate{ID: item.ID, Sequence: item.Sequence}
	}
	return updates
}
