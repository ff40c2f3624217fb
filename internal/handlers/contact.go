package handlers

import (
	"log/slog"
	"net/http"

	"github.com/hafiz-aliAwj/portfolio/internal/metrics"
	"github.com/hafiz-aliAwj/portfolio/internal/middleware"
	"github.com/hafiz-aliAwj/portfolio/internal/models"
	"github.com/hafiz-aliAwj/portfolio/internal/services"
	"github.com/hafiz-aliAwj/portfolio/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

const (
	contactNotFound = "Contact message not found"
	contactPage     = "/contact"
)

type ContactHandler struct {
	contacts ContactServiceInterface
	visitors VisitorServiceInterface
	email    EmailServiceInterface
	metrics  metrics.Recorder
}

func NewContactHandler(
	contacts ContactServiceInterface,
	visitors VisitorServiceInterface,
	email EmailServiceInterface,
	recorder metrics.Recorder,
) *ContactHandler {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &ContactHandler{
		contacts: contacts,
		visitors: visitors,
		email:    email,
		metrics:  recorder,
	}
}

// Submit stores a public contact message. The visit and the owner
// notification are best effort: their failures are logged, never returned.
func (h *ContactHandler) Submit(c *drift.Context) {
	var req dto.CreateContactRequest
	if err := c.BindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	ctx := c.Request.Context()
	msg, err := h.contacts.Create(ctx, req)
	if err != nil {
		respondError(c, err, contactNotFound, "create contact message")
		return
	}
	h.metrics.RecordContact(msg.ContactType)

	if _, err := h.visitors.Record(ctx, visitFromRequest(c, contactPage, &msg.Email, &msg.Name)); err != nil {
		slog.Error("failed to record contact visit",
			slog.String("contact_id", msg.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	if h.email != nil {
		if err := h.email.SendContactNotification(msg); err != nil {
			slog.Error("failed to send contact notification",
				slog.String("contact_id", msg.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	_ = c.JSON(http.StatusCreated, map[string]any{
		"message": "Message sent successfully",
		"contact": msg,
	})
}

func (h *ContactHandler) List(c *drift.Context) {
	page := services.PageRequest{
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", services.DefaultPageLimit),
	}

	contacts, result, err := h.contacts.List(c.Request.Context(), page, c.QueryParam("status"))
	if err != nil {
		respondError(c, err, contactNotFound, "list contact messages")
		return
	}
	if contacts == nil {
		contacts = []models.ContactMessage{}
	}

	_ = c.JSON(http.StatusOK, dto.ContactListResponse{
		Contacts:   contacts,
		Pagination: pagination(result),
	})
}

func (h *ContactHandler) Get(c *drift.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, "Invalid contact ID")
		return
	}

	msg, err := h.contacts.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, contactNotFound, "get contact message")
		return
	}

	_ = c.JSON(http.StatusOK, map[string]any{"contact": msg})
}

func (h *ContactHandler) UpdateStatus(c *drift.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, "Invalid contact ID")
		return
	}

	var req dto.UpdateContactStatusRequest
	if err := c.BindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	msg, err := h.contacts.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, contactNotFound, "update contact status")
		return
	}

	h.metrics.RecordMutation("contact", "update")
	_ = c.JSON(http.StatusOK, map[string]any{
		"message": "Contact status updated successfully",
		"contact": msg,
	})
}

func (h *ContactHandler) Delete(c *drift.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, "Invalid contact ID")
		return
	}

	if err := h.contacts.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, contactNotFound, "delete contact message")
		return
	}

	h.metrics.RecordMutation("contact", "delete")
	_ = c.JSON(http.StatusOK, dto.MessageResponse{Message: "Contact message deleted successfully"})
}

func visitFromRequest(c *drift.Context, page string, email, name *string) services.Visit {
	return services.Visit{
		IPAddress: middleware.ClientIP(c),
		UserAgent: c.GetHeader("User-Agent"),
		Referrer:  c.GetHeader("Referer"),
		Page:      page,
		Email:     email,
		Name:      name,
	}
}
