package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/alpstech-academy-api/internal/models"
	"github.com/noah-isme/alpstech-academy-api/internal/repository"
	"github.com/noah-isme/alpstech-academy-api/internal/seed"
	"github.com/noah-isme/alpstech-academy-api/internal/service"
	"github.com/noah-isme/alpstech-academy-api/pkg/config"
	"github.com/noah-isme/alpstech-academy-api/pkg/export"
	"github.com/noah-isme/alpstech-academy-api/pkg/kvstore"
)

func buildTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	store := kvstore.NewFallback(kvstore.NewMemory())
	scheme := service.PlaintextCredentials{}
	accounts := repository.NewAccountRepository(store, seed.Accounts(), nil)
	require.NoError(t, accounts.Load(ctx))

	metrics := service.NewMetricsService()
	notifier := service.NewLogNotifier(nil)
	sessions := service.NewSessionService(accounts, repository.NewSessionRepository(store, nil), scheme, nil, notifier, metrics, nil, service.SessionConfig{})
	data := service.SeedDatasets()
	enrollment := service.NewEnrollmentService(sessions, accounts, data.Courses, notifier, metrics, nil)
	catalogSvc := service.NewCatalogService(data, sessions, enrollment, nil, nil)
	sessions.Observe(catalogSvc.ResetOverlay)
	exports := service.NewExportService(catalogSvc, export.NewExporter(), nil)

	cfg := &config.Config{APIPrefix: "/api/v1", Metrics: config.MetricsConfig{Enabled: true}}
	return NewRouter(RouterDeps{
		Config:   cfg,
		Metrics:  metrics,
		Sessions: sessions,
		Storage:  store,
		Auth:     NewAuthHandler(sessions),
		Courses:  NewCourseHandler(catalogSvc, enrollment, sessions),
		Me:       NewMeHandler(catalogSvc, exports),
		Admin:    NewAdminHandler(catalogSvc, exports),
		System:   NewMetricsHandler(metrics, store),
	})
}

func perform(t *testing.T, r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if payload != nil {
		req = jsonRequest(t, method, path, payload)
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouterStudentJourney(t *testing.T) {
	r := buildTestRouter(t)

	w := perform(t, r, http.MethodGet, "/api/v1/courses", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var courses []models.Course
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &courses))
	assert.Len(t, courses, 6)

	w = perform(t, r, http.MethodPost, "/api/v1/courses/3/enroll", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = perform(t, r, http.MethodGet, "/api/v1/me/dashboard", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = perform(t, r, http.MethodPost, "/api/v1/auth/login", models.LoginRequest{Email: "student@example.com", Password: "password123"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, noticeMessages(decodeEnvelope(t, w)), "Welcome back, Student User!")

	w = perform(t, r, http.MethodPost, "/api/v1/courses/3/enroll", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"courseId":"3","enrolled":true}`, string(decodeEnvelope(t, w).Data))

	w = perform(t, r, http.MethodPost, "/api/v1/courses/6/enroll", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = perform(t, r, http.MethodGet, "/api/v1/me/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dash models.StudentDashboard
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &dash))
	assert.Len(t, dash.EnrolledCourses, 4)
	assert.Equal(t, 3, dash.Statistics.Count)

	w = perform(t, r, http.MethodGet, "/api/v1/me/results?grade=A", nil)
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	stats := env.Meta["statistics"].(map[string]interface{})
	assert.EqualValues(t, 1, stats["count"])
	assert.Equal(t, "A", stats["topGrade"])

	w = perform(t, r, http.MethodGet, "/api/v1/me/results/export?format=csv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "my-results.csv")
	assert.Contains(t, w.Body.String(), "Cybersecurity Fundamentals")

	w = perform(t, r, http.MethodGet, "/api/v1/me/results/export?format=xls", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(t, r, http.MethodGet, "/api/v1/admin/dashboard", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouterAdminEditsResetOnLogout(t *testing.T) {
	r := buildTestRouter(t)

	w := perform(t, r, http.MethodPost, "/api/v1/auth/login", models.LoginRequest{Email: "admin@example.com", Password: "admin123"})
	require.Equal(t, http.StatusOK, w.Code)

	w = perform(t, r, http.MethodPost, "/api/v1/admin/courses", models.Course{
		Title:            "Cloud Foundations",
		Description:      "Intro to cloud platforms",
		Instructor:       "Sam Lee",
		Duration:         "6 weeks",
		Level:            models.LevelBeginner,
		Price:            49,
		EnrollmentStatus: models.EnrollmentOpen,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Course
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &created))
	assert.Equal(t, "7", created.ID)

	w = perform(t, r, http.MethodPatch, "/api/v1/admin/courses/7/status", models.CourseStatusRequest{EnrollmentStatus: models.EnrollmentClosed})
	require.Equal(t, http.StatusOK, w.Code)

	w = perform(t, r, http.MethodDelete, "/api/v1/admin/results/1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	w = perform(t, r, http.MethodDelete, "/api/v1/admin/results/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = perform(t, r, http.MethodGet, "/api/v1/admin/dashboard", nil)
	var dash models.AdminDashboard
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &dash))
	assert.Equal(t, 7, dash.TotalCourses)
	assert.Equal(t, 2, dash.TotalResults)

	w = perform(t, r, http.MethodGet, "/api/v1/admin/results/export?format=pdf", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))

	perform(t, r, http.MethodPost, "/api/v1/auth/logout", nil)
	perform(t, r, http.MethodPost, "/api/v1/auth/login", models.LoginRequest{Email: "admin@example.com", Password: "admin123"})

	w = perform(t, r, http.MethodGet, "/api/v1/admin/dashboard", nil)
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &dash))
	assert.Equal(t, 6, dash.TotalCourses)
	assert.Equal(t, 3, dash.TotalResults)
}

func TestRouterHealthReportsStorage(t *testing.T) {
	r := buildTestRouter(t)

	w := perform(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &payload))
	assert.Equal(t, "persistent", payload["storage"])

	w = perform(t, r, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "academy_session_active")
}
