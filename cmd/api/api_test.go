package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/koolabhinay07/Lollyzz/internal/availability"
	"github.com/koolabhinay07/Lollyzz/internal/catalog"
	"github.com/koolabhinay07/Lollyzz/internal/qr"
	"github.com/koolabhinay07/Lollyzz/internal/ratelimiter"
	"github.com/koolabhinay07/Lollyzz/internal/service"
	"github.com/koolabhinay07/Lollyzz/internal/session"
	filestore "github.com/koolabhinay07/Lollyzz/internal/store/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *application {
	t.Helper()

	dir := t.TempDir()
	storage, err := filestore.New(filestore.Config{Dir: dir})
	require.NoError(t, err)

	ctx := context.Background()
	logger := zap.NewNop().Sugar()

	menuCatalog := catalog.Default()
	availabilityStore := availability.NewStore(ctx, storage, logger)
	sessions := session.NewManager(ctx, storage, logger)

	return &application{
		config: config{
			addr: ":0",
			rateLimiter: ratelimiter.Config{
				RequestsPerTimeFrame: 100,
				TimeFrame:            time.Second,
				Enabled:              false,
			},
		},
		logger:      logger,
		rateLimiter: ratelimiter.NewFixedWindowLimiter(100, time.Second),
		storage:     storage,
		sessions:    sessions,
		menuService: service.NewMenuService(menuCatalog, availabilityStore, logger),
		availabilityService: service.NewAvailabilityService(
			menuCatalog,
			availabilityStore,
			filestore.NewAvailabilityAuditRepository(dir),
			nil,
			logger,
		),
		qrExporter: qr.NewExporter("https://example.com/menu", "Lollyzz", "lollyzz"),
	}
}

func doJSON(t *testing.T, mux http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func decodeData(t *testing.T, rr *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func TestAvailabilityEndpointsRequireOwnerSession(t *testing.T) {
	app := newTestApp(t)
	mux := app.mount()

	rr := doJSON(t, mux, http.MethodPatch, "/api/v1/items/main-paneer-punjabi/availability",
		map[string]any{"available": false})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = doJSON(t, mux, http.MethodPost, "/api/v1/availability/reset", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestOwnerLoginFlow(t *testing.T) {
	app := newTestApp(t)
	mux := app.mount()

	// malformed number
	rr := doJSON(t, mux, http.MethodPost, "/api/v1/owner/login", map[string]any{"mobile": "12345"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// well-formed but not allow-listed
	rr = doJSON(t, mux, http.MethodPost, "/api/v1/owner/login", map[string]any{"mobile": "9999999999"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// allow-listed, 91-prefixed form
	rr = doJSON(t, mux, http.MethodPost, "/api/v1/owner/login", map[string]any{"mobile": "+919110162059"})
	require.Equal(t, http.StatusOK, rr.Code)

	var sessionResp OwnerSessionResponse
	decodeData(t, rr, &sessionResp)
	assert.True(t, sessionResp.Active)
	assert.Equal(t, "9110162059", sessionResp.Mobile)

	// gate is now open
	rr = doJSON(t, mux, http.MethodPatch, "/api/v1/items/main-paneer-punjabi/availability",
		map[string]any{"available": false, "reason": "out of paneer"})
	assert.Equal(t, http.StatusOK, rr.Code)

	// logout closes it again
	rr = doJSON(t, mux, http.MethodPost, "/api/v1/owner/logout", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, mux, http.MethodPost, "/api/v1/availability/reset", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetMenu_FiltersAndHidesUnavailable(t *testing.T) {
	app := newTestApp(t)
	mux := app.mount()

	rr := doJSON(t, mux, http.MethodGet, "/api/v1/menu?q=paneer&diet=veg", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var view service.MenuView
	decodeData(t, rr, &view)

	var names []string
	for _, section := range view.Sections {
		for _, item := range section.Items {
			names = append(names, item.Name)
			assert.True(t, item.Veg)
		}
	}
	assert.Contains(t, names, "Paneer Punjabi")
	assert.Contains(t, names, "Paneer Pakora")
	assert.NotContains(t, names, "Chicken Kurkure Momos")

	// owner marks the item unavailable; customers stop seeing it
	rr = doJSON(t, mux, http.MethodPost, "/api/v1/owner/login", map[string]any{"mobile": "9110162059"})
	require.Equal(t, http.StatusOK, rr.Code)
	rr = doJSON(t, mux, http.MethodPatch, "/api/v1/items/main-paneer-punjabi/availability",
		map[string]any{"available": false})
	require.Equal(t, http.StatusOK, rr.Code)
	rr = doJSON(t, mux, http.MethodPost, "/api/v1/owner/logout", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, mux, http.MethodGet, "/api/v1/menu?q=paneer&diet=veg", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	decodeData(t, rr, &view)
	names = names[:0]
	for _, section := range view.Sections {
		for _, item := range section.Items {
			names = append(names, item.Name)
		}
	}
	assert.NotContains(t, names, "Paneer Punjabi")
	assert.Contains(t, names, "Paneer Pakora")
}

func TestGetMenu_InvalidDiet(t *testing.T) {
	app := newTestApp(t)
	mux := app.mount()

	rr := doJSON(t, mux, http.MethodGet, "/api/v1/menu?diet=vegan", nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestQRExport(t *testing.T) {
	app := newTestApp(t)
	mux := app.mount()

	rr := doJSON(t, mux, http.MethodGet, "/api/v1/qr.png", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "lollyzz-menu-qr.png")

	rr = doJSON(t, mux, http.MethodGet, "/api/v1/qr.svg", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/svg+xml", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "lollyzz-menu-qr.svg")
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(t)
	mux := app.mount()

	rr := doJSON(t, mux, http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "ok", health.Services["storage"])
	assert.Equal(t, "disabled", health.Services["queue"])
}
