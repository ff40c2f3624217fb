package handlers

import (
	"errors"
	"net/http"

	"github.com/hafiz-aliAwj/portfolio/internal/metrics"
	"github.com/hafiz-aliAwj/portfolio/internal/services"
	"github.com/hafiz-aliAwj/portfolio/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type DetailsHandler struct {
	service DetailsServiceInterface
	metrics metrics.Recorder
}

func NewDetailsHandler(service DetailsServiceInterface, recorder metrics.Recorder) *DetailsHandler {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &DetailsHandler{service: service, metrics: recorder}
}

// Get answers {"details": null} until the owner has saved their details.
func (h *DetailsHandler) Get(c *drift.Context) {
	details, err := h.service.Get(c.Request.Context())
	if errors.Is(err, services.ErrNotFound) {
		_ = c.JSON(http.StatusOK, map[string]any{"details": nil})
		return
	}
	if err != nil {
		respondError(c, err, "Personal details not found", "get personal details")
		return
	}

	_ = c.JSON(http.StatusOK, map[string]any{"details": details})
}

func (h *DetailsHandler) Update(c *drift.Context) {
	var req dto.UpdateDetailsRequest
	if err := c.BindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	details, err := h.service.Upsert(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Personal details not found", "update personal details")
		return
	}

	h.metrics.RecordMutation("details", "update")
	_ = c.JSON(http.StatusOK, map[string]any{
		"message": "Personal details updated successfully",
		"details": details,
	})
}
