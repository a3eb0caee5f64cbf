package handler_test

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/HungEzz/surfsui/internal/api/handler"
	"github.com/HungEzz/surfsui/internal/api/handler/router"
	"github.com/HungEzz/surfsui/internal/domain"
	"github.com/HungEzz/surfsui/internal/usecases/ranking/mocks"
	"github.com/HungEzz/surfsui/pkg/apiErrors"
	"github.com/HungEzz/surfsui/pkg/log"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

func init() {
	log.SetupTestLogger()
}

type successEnvelope struct {
	Success   bool                 `json:"success"`
	Data      []domain.DAppRanking `json:"data"`
	Total     *int                 `json:"total"`
	Timestamp string               `json:"timestamp"`
}

type errorEnvelope struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Timestamp string `json:"timestamp"`
}

func newTestRouter(service *mocks.MockRankingService) http.Handler {
	return router.New(
		router.WithRoutes(handler.ServiceInfo()...),
		router.WithRoutes(handler.DApps(service)...),
		router.WithNotFound(handler.NotFoundHandler()),
	)
}

func sampleRankings() []domain.DAppRanking {
	return []domain.DAppRanking{
		{Rank: 1, PackageID: "0xabc", DAppName: "Cetus AMM", DAU1H: 500, DAppType: "DEX", LastUpdate: "2025-06-01T10:00:00Z"},
		{Rank: 2, PackageID: "0xdef", DAppName: "FanTV AI", DAU1H: 300, DAppType: "AI", LastUpdate: "2025-06-01T10:00:00Z"},
	}
}

func doRequest(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeSuccess(t *testing.T, rec *httptest.ResponseRecorder) successEnvelope {
	t.Helper()

	var env successEnvelope
	require.NoError(t, jsonAPI.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()

	var env errorEnvelope
	require.NoError(t, jsonAPI.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestGetAllRankings(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockRankingService(ctrl)

	rankings := sampleRankings()
	service.EXPECT().AllRankings(gomock.Any()).Return(rankings, len(rankings), nil)

	rec := doRequest(t, newTestRouter(service), http.MethodGet, "/api/dapps/rankings")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	env := decodeSuccess(t, rec)
	assert.True(t, env.Success)
	require.NotNil(t, env.Total)
	assert.Equal(t, 2, *env.Total)
	assert.Len(t, env.Data, 2)
	assert.Equal(t, "Cetus AMM", env.Data[0].DAppName)
	assert.NotEmpty(t, env.Timestamp)
}

func TestGetTopDAppsDefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockRankingService(ctrl)

	rankings := sampleRankings()
	service.EXPECT().TopDApps(gomock.Any(), 10).Return(rankings, len(rankings), nil)

	rec := doRequest(t, newTestRouter(service), http.MethodGet, "/api/dapps/top")

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeSuccess(t, rec)
	assert.True(t, env.Success)
	assert.Len(t, env.Data, 2)
}

func TestGetTopDAppsExplicitLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockRankingService(ctrl)

	rankings := sampleRankings()[:1]
	service.EXPECT().TopDApps(gomock.Any(), 1).Return(rankings, 1, nil)

	rec := doRequest(t, newTestRouter(service), http.MethodGet, "/api/dapps/top/1")

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeSuccess(t, rec)
	require.NotNil(t, env.Total)
	assert.Equal(t, 1, *env.Total)
}

func TestGetTopDAppsNonNumericLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockRankingService(ctrl)

	rec := doRequest(t, newTestRouter(service), http.MethodGet, "/api/dapps/top/abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeError(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, apiErrors.CodeInvalidLimit, env.Error.Code)
	assert.Contains(t, env.Error.Message, "abc")
}

func TestGetTopDAppsOutOfRangeLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockRankingService(ctrl)

	service.EXPECT().
		TopDApps(gomock.Any(), 51).
		Return(nil, 0, apiErrors.Validation(apiErrors.CodeInvalidLimit, "limit must be between 1 and 50"))

	rec := doRequest(t, newTestRouter(service), http.MethodGet, "/api/dapps/top/51")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeError(t, rec)
	assert.Equal(t, apiErrors.CodeInvalidLimit, env.Error.Code)
}

func TestGetDAppsByCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockRankingService(ctrl)

	rankings := sampleRankings()[:1]
	service.EXPECT().
		DAppsByCategory(gomock.Any(), domain.CategoryDEX).
		Return(rankings, 1, nil)

	rec := doRequest(t, newTestRouter(service), http.MethodGet, "/api/dapps/by-category/DEX")

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeSuccess(t, rec)
	assert.Equal(t, "DEX", env.Data[0].DAppType)
}

func TestGetDAppsByCategoryInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockRankingService(ctrl)

	rec := doRequest(t, newTestRouter(service), http.MethodGet, "/api/dapps/by-category/Foo")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeError(t, rec)
	assert.Equal(t, apiErrors.CodeInvalidCategory, env.Error.Code)
	assert.Contains(t, env.Error.Message, "DEX")
}

func TestGetDAppsByCategoryNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockRankingService(ctrl)

	service.EXPECT().
		DAppsByCategory(gomock.Any(), domain.CategoryNFT).
		Return(nil, 0, apiErrors.NotFound(apiErrors.CodeCategoryNotFound, "Category 'NFT' not found"))

	rec := doRequest(t, newTestRouter(service), http.MethodGet, "/api/dapps/by-category/NFT")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeError(t, rec)
	assert.Equal(t, apiErrors.CodeCategoryNotFound, env.Error.Code)
}

func TestGetStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockRankingService(ctrl)

	stats := &domain.DAppStats{
		TotalDApps:         12,
		TotalActiveUsers1H: 4500,
		TopDApp:            domain.TopDApp{Name: "Cetus AMM", DAU1H: 500, Type: "DEX"},
		Categories:         map[string]int{"DEX": 5, "AI": 7},
		LastUpdated:        "2025-06-01T10:00:00Z",
	}
	service.EXPECT().Stats(gomock.Any()).Return(stats, nil)

	rec := doRequest(t, newTestRouter(service), http.MethodGet, "/api/dapps/stats")

	assert.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Success bool            `json:"success"`
		Data    domain.DAppStats `json:"data"`
	}
	require.NoError(t, jsonAPI.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, 12, env.Data.TotalDApps)
	assert.Equal(t, "Cetus AMM", env.Data.TopDApp.Name)
}

func TestStoreErrorsBecome503(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockRankingService(ctrl)

	service.EXPECT().
		AllRankings(gomock.Any()).
		Return(nil, 0, apiErrors.Unavailable(errors.New("bad conn"), "Failed to fetch rankings"))

	rec := doRequest(t, newTestRouter(service), http.MethodGet, "/api/dapps/rankings")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	env := decodeError(t, rec)
	assert.Equal(t, apiErrors.CodeDatabaseError, env.Error.Code)
}

func TestUntypedErrorsDoNotLeak(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockRankingService(ctrl)

	service.EXPECT().
		AllRankings(gomock.Any()).
		Return(nil, 0, errors.New("pq: column does not exist"))

	rec := doRequest(t, newTestRouter(service), http.MethodGet, "/api/dapps/rankings")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeError(t, rec)
	assert.Equal(t, apiErrors.CodeInternalError, env.Error.Code)
	assert.NotContains(t, env.Error.Message, "pq:")
}

func TestUnmatchedRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockRankingService(ctrl)

	rec := doRequest(t, newTestRouter(service), http.MethodGet, "/api/nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeError(t, rec)
	assert.Equal(t, apiErrors.CodeNotFound, env.Error.Code)
	assert.Contains(t, env.Error.Message, "/api/nope")
}

func TestServiceInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockRankingService(ctrl)

	rec := doRequest(t, newTestRouter(service), http.MethodGet, "/api")

	assert.Equal(t, http.StatusOK, rec.Code)

	var info struct {
		Name      string            `json:"name"`
		Version   string            `json:"version"`
		Endpoints map[string]string `json:"endpoints"`
	}
	require.NoError(t, jsonAPI.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "SurfSui DApp Rankings API", info.Name)
	assert.Contains(t, info.Endpoints, "stats")
}

type stubConn struct {
	pingErr error
}

func (c stubConn) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (c stubConn) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (c stubConn) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (c stubConn) Close() error               { return nil }
func (c stubConn) Ping(context.Context) error { return c.pingErr }
func (c stubConn) Stats() sql.DBStats         { return sql.DBStats{} }

func TestHealthcheckHealthy(t *testing.T) {
	h := handler.HealthcheckHandler(stubConn{}, time.Second)

	rec := doRequest(t, h, http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)

	var health domain.HealthStatus
	require.NoError(t, jsonAPI.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, domain.HealthStatusHealthy, health.Status)
	assert.Equal(t, domain.DatabaseConnected, health.Database)
	assert.NotEmpty(t, health.Timestamp)
}

func TestHealthcheckUnhealthy(t *testing.T) {
	h := handler.HealthcheckHandler(stubConn{pingErr: errors.New("refused")}, time.Second)

	rec := doRequest(t, h, http.MethodGet, "/health")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var health domain.HealthStatus
	require.NoError(t, jsonAPI.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, domain.HealthStatusUnhealthy, health.Status)
	assert.Equal(t, domain.DatabaseDisconnected, health.Database)
}
