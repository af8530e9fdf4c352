package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onlinz/returns/internal/config"
	"github.com/onlinz/returns/internal/database"
	"github.com/onlinz/returns/internal/metrics"
	pricingDomain "github.com/onlinz/returns/internal/pricing/domain"
	pricingService "github.com/onlinz/returns/internal/pricing/service"
	returnsHTTP "github.com/onlinz/returns/internal/returns/http"
	"github.com/onlinz/returns/internal/returns/repository"
	returnsUseCase "github.com/onlinz/returns/internal/returns/usecase"
	"github.com/onlinz/returns/internal/validation"
)

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		ServerHost:       "localhost",
		ServerPort:       0,
		MetricsNamespace: "test_app",
	}
}

// createTestServer builds a fully routed server backed by a receipts file in a
// temporary directory.
func createTestServer(t *testing.T, cfg *config.Config, provider *metrics.Provider) (*Server, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "receipts.json")
	repo := repository.NewFileReceiptRepository(path)
	uc := returnsUseCase.NewReceiptUseCase(
		database.NewNopTxManager(),
		repo,
		validation.NewFieldValidator(nil),
		pricingService.NewEngine(pricingDomain.DefaultTariffTable()),
		"NZ",
	)

	logger := discardLogger()
	server := NewServer(cfg.ServerHost, cfg.ServerPort, logger)
	server.AddReadinessCheck("receipt_store", repo.Ping)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	server.SetupRouter(ctx, cfg, returnsHTTP.NewReceiptHandler(uc, logger), provider)

	return server, path
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(w, req)
	return w
}

func TestHealthHandler(t *testing.T) {
	server := NewServer("localhost", 8080, discardLogger())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	server.healthHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response["status"])
}

func TestReadinessHandler(t *testing.T) {
	ready := func(context.Context) error { return nil }
	broken := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name           string
		checks         map[string]ReadinessCheck
		wantStatusCode int
		wantStatus     string
		wantComponents map[string]interface{}
	}{
		{
			name:           "no checks",
			wantStatusCode: http.StatusOK,
			wantStatus:     "ready",
			wantComponents: map[string]interface{}{},
		},
		{
			name:           "all healthy",
			checks:         map[string]ReadinessCheck{"database": ready},
			wantStatusCode: http.StatusOK,
			wantStatus:     "ready",
			wantComponents: map[string]interface{}{"database": "ok"},
		},
		{
			name:           "one failing",
			checks:         map[string]ReadinessCheck{"database": broken, "receipt_store": ready},
			wantStatusCode: http.StatusServiceUnavailable,
			wantStatus:     "not_ready",
			wantComponents: map[string]interface{}{"database": "error", "receipt_store": "ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := NewServer("localhost", 8080, discardLogger())
			for name, check := range tt.checks {
				server.AddReadinessCheck(name, check)
			}

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

			server.readinessHandler(c)

			assert.Equal(t, tt.wantStatusCode, w.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.wantStatus, response["status"])
			assert.Equal(t, tt.wantComponents, response["components"])
		})
	}
}

func TestCustomLoggerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(CustomLoggerMiddleware(logger))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusTeapot, gin.H{"message": "test"})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test?x=1", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "/test?x=1", entry["path"])
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])
}

func TestRouter_RecoversFromPanic(t *testing.T) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CustomLoggerMiddleware(discardLogger()))
	router.GET("/panic", func(c *gin.Context) {
		panic("test panic")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRouter_Endpoints(t *testing.T) {
	server, path := createTestServer(t, testConfig(), nil)
	handler := server.GetHandler()

	t.Run("Health", func(t *testing.T) {
		w := doJSON(t, handler, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Ready", func(t *testing.T) {
		w := doJSON(t, handler, http.MethodGet, "/ready", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("RequestIDHeader", func(t *testing.T) {
		w := doJSON(t, handler, http.MethodGet, "/v1/zones", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		parsed, err := uuid.Parse(w.Header().Get("X-Request-Id"))
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, parsed)
	})

	t.Run("CreateAndListReceipt", func(t *testing.T) {
		body := map[string]any{
			"customer": map[string]any{
				"first_name": "aroha",
				"last_name":  "ngata",
				"email":      "aroha@example.com",
				"telephone":  "021234567",
				"address":    "12 queen street, auckland 1010",
				"island":     "Stewart Island",
			},
			"box": map[string]any{"height": 50, "width": 50, "depth": 50},
		}

		w := doJSON(t, handler, http.MethodPost, "/v1/receipts", body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"Cost of returning product": 30`)

		w = doJSON(t, handler, http.MethodGet, "/v1/receipts", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var list struct {
			Total int `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		assert.Equal(t, 1, list.Total)
	})

	t.Run("NotFound", func(t *testing.T) {
		w := doJSON(t, handler, http.MethodGet, "/nonexistent", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("NoMetricsEndpoint", func(t *testing.T) {
		w := doJSON(t, handler, http.MethodGet, "/metrics", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRouter_RateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitEnabled = true
	cfg.RateLimitRequestsPerSec = 0.001
	cfg.RateLimitBurst = 2

	server, _ := createTestServer(t, cfg, nil)
	handler := server.GetHandler()

	for i := 0; i < 2; i++ {
		w := doJSON(t, handler, http.MethodGet, "/v1/zones", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, handler, http.MethodGet, "/v1/zones", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	// health checks sit outside the rate limited group
	w = doJSON(t, handler, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_RecordsHTTPMetrics(t *testing.T) {
	provider, err := metrics.NewProvider("test_app")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	server, _ := createTestServer(t, testConfig(), provider)

	w := doJSON(t, server.GetHandler(), http.MethodGet, "/v1/zones", nil)
	require.Equal(t, http.StatusOK, w.Code)

	scrape := httptest.NewRecorder()
	provider.Handler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, scrape.Body.String(), "test_app_http_requests_total")
	assert.Contains(t, scrape.Body.String(), `path="/v1/zones"`)
}

func TestServer_StartWithoutRouter(t *testing.T) {
	server := NewServer("localhost", 0, discardLogger())
	assert.Error(t, server.Start(context.Background()))
}

func TestServer_ShutdownGracefully(t *testing.T) {
	server, _ := createTestServer(t, testConfig(), nil)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start(context.Background())
	}()

	time.Sleep(100 * time.Millisecond)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, server.Shutdown(shutdownCtx))

	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestMetricsServer_Endpoints(t *testing.T) {
	provider, err := metrics.NewProvider("test_app")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	metricsServer := NewMetricsServer("localhost", 8081, discardLogger(), provider)
	require.NotNil(t, metricsServer)

	w := httptest.NewRecorder()
	metricsServer.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}
