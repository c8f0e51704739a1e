package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/grievance-portal/grievance-api/internal/repository"
	"github.com/grievance-portal/grievance-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogHandler_NotFound_AlwaysNoContent(t *testing.T) {
	handler := NewLogHandler(testLogger)

	for _, body := range []string{`{"path":"/missing"}`, `{}`, `not json`, ``} {
		c, w := newTestContext(http.MethodPost, "/api/log/not-found", []byte(body), nil)
		handler.NotFound(c)
		c.Writer.WriteHeaderNow()

		assert.Equal(t, http.StatusNoContent, w.Code, body)
		assert.Empty(t, w.Body.String())
	}
}

func TestStatsHandler_GetPublicStats(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewComplaintRepository(db)
	handler := NewStatsHandler(services.NewDashboardService(repo, testLogger))

	c, w := newTestContext(http.MethodGet, "/api/stats", nil, nil)
	handler.GetPublicStats(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"number":"0+","label":"Complaints Resolved","iconName":"TrendingUp"},
		{"number":"24/7","label":"Portal Availability","iconName":"Clock"},
		{"number":"99.9%","label":"System Uptime","iconName":"Zap"},
		{"number":"100%","label":"Transparency","iconName":"Eye"}
	]`, w.Body.String())
}

func TestHealthHandler(t *testing.T) {
	healthy := NewHealthHandler(func(context.Context) error { return nil }, testLogger)
	c, w := newTestContext(http.MethodGet, "/health", nil, nil)
	healthy.Health(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	down := NewHealthHandler(func(context.Context) error { return errors.New("dial tcp: connection refused") }, testLogger)
	c, w = newTestContext(http.MethodGet, "/health", nil, nil)
	down.Health(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestRespondError_InternalIsGeneric(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "/", nil, nil)

	respondError(c, errors.New("Error 1146: Table 'grievance.complaints' doesn't exist"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":"INTERNAL_ERROR","message":"Internal server error"}`, w.Body.String())
}

func TestHandlers_PassRequestContextToServices(t *testing.T) {
	db := setupTestDB(t)
	handler := NewComplaintHandler(services.NewComplaintService(repository.NewComplaintRepository(db), testLogger))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, w := newTestContext(http.MethodGet, "/api/complaints/GRP-ANY-0", nil, nil,
		gin.Param{Key: "complaintId", Value: "GRP-ANY-0"})
	c.Request = c.Request.WithContext(ctx)
	handler.GetComplaint(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestBindJSON_RejectsUnknownFields(t *testing.T) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}

	c, _ := newTestContext(http.MethodPut, "/", []byte(`{"status":"resolved","priority":"low"}`), nil)
	assert.Error(t, bindJSON(c, &req))

	c, _ = newTestContext(http.MethodPut, "/", []byte(`{"status":"resolved"}`), nil)
	require.NoError(t, bindJSON(c, &req))
	assert.Equal(t, "resolved", req.Status)
}
