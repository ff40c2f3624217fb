package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/netip"
	"strings"
	"testing"

	"github.com/hafiz-aliAwj/portfolio/internal/middleware"
	"github.com/hafiz-aliAwj/portfolio/internal/models"
	"github.com/hafiz-aliAwj/portfolio/internal/services"
	"github.com/hafiz-aliAwj/portfolio/tests/testutil"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupVisitorTest(t *testing.T) (*testutil.MockVisitorService, http.Handler) {
	t.Helper()
	mockService := new(testutil.MockVisitorService)
	handler := NewVisitorHandler(mockService)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.RealIP([]netip.Prefix{
		netip.MustParsePrefix("192.0.2.0/24"),
		netip.MustParsePrefix("10.0.0.0/8"),
	}))
	app.Post("/visitor-log", handler.Record)
	app.Get("/visitor-log", handler.List)

	return mockService, app
}

func TestVisitorHandler_Record(t *testing.T) {
	mockService, app := setupVisitorTest(t)

	mockService.On("Record", mock.Anything, mock.MatchedBy(func(v services.Visit) bool {
		return v.Page == "/projects" &&
			v.IPAddress == "203.0.113.7" &&
			v.UserAgent == "test-agent" &&
			v.Referrer == "https://google.com"
	})).Return(&models.VisitorLog{Page: "/projects"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/visitor-log",
		strings.NewReader(`{"page":"/projects","referrer":"https://google.com"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	mockService.AssertExpectations(t)
}

func TestVisitorHandler_List(t *testing.T) {
	mockService, app := setupVisitorTest(t)

	page := services.PageRequest{Page: 1, Limit: 20}
	mockService.On("List", mock.Anything, page).
		Return([]models.VisitorLog{{Page: "/"}}, services.PageResult{PageRequest: page, Total: 1}, nil)

	rec := doJSON(t, app, http.MethodGet, "/visitor-log?limit=20", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pages":1`)
}
