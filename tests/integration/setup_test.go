package integration

import (
	"os"
	"testing"

	"github.com/hafiz-aliAwj/portfolio/internal/config"
	"github.com/hafiz-aliAwj/portfolio/internal/server"
	"github.com/hafiz-aliAwj/portfolio/internal/services"
	"github.com/hafiz-aliAwj/portfolio/tests/testutil"
	"github.com/prometheus/client_golang/prometheus"
)

// TestMain runs before all tests in this package
func TestMain(m *testing.M) {
	code := m.Run()
	os.Exit(code)
}

// setupTest creates a migrated test database
func setupTest(t *testing.T) *testutil.TestDB {
	t.Helper()
	return testutil.SetupTestDB(t)
}

// setupServer serves the full route table against tdb
func setupServer(t *testing.T, tdb *testutil.TestDB) *testutil.HTTPTestClient {
	t.Helper()

	cfg := &config.Config{
		Env:                "test",
		JWTSecret:          testutil.TestJWTSecret,
		SessionTTL:         services.DefaultSessionExpiry,
		CORSOrigins:        []string{"*"},
		RateLimitPerMinute: 1000,
	}

	srv := server.New(cfg, tdb.DB, prometheus.NewRegistry())
	t.Cleanup(srv.Close)

	return testutil.NewHTTPTestClient(t, srv.Handler())
}
