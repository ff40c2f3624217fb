package handlers

import (
	"net/http"

	"github.com/hafiz-aliAwj/portfolio/internal/models"
	"github.com/hafiz-aliAwj/portfolio/internal/services"
	"github.com/hafiz-aliAwj/portfolio/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type VisitorHandler struct {
	service VisitorServiceInterface
}

func NewVisitorHandler(service VisitorServiceInterface) *VisitorHandler {
	return &VisitorHandler{service: service}
}

func (h *VisitorHandler) Record(c *drift.Context) {
	var req dto.CreateVisitorLogRequest
	if err := c.BindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	visit := visitFromRequest(c, req.Page, req.Email, req.Name)
	if req.Referrer != "" {
		visit.Referrer = req.Referrer
	}
	visit.Location = req.Location

	entry, err := h.service.Record(c.Request.Context(), visit)
	if err != nil {
		respondError(c, err, "Visitor log not found", "record visit")
		return
	}

	_ = c.JSON(http.StatusCreated, map[string]any{
		"message": "Visit logged successfully",
		"log":     entry,
	})
}

func (h *VisitorHandler) List(c *drift.Context) {
	page := services.PageRequest{
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", services.DefaultPageLimit),
	}

	logs, result, err := h.service.List(c.Request.Context(), page)
	if err != nil {
		respondError(c, err, "Visitor log not found", "list visitor logs")
		return
	}
	if logs == nil {
		logs = []models.VisitorLog{}
	}

	_ = c.JSON(http.StatusOK, dto.VisitorLogListResponse{
		Logs:       logs,
		Pagination: pagination(result),
	})
}
