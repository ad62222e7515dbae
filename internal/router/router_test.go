package router

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Jayantx07/Education-Point/internal/handler"
	"github.com/Jayantx07/Education-Point/internal/models"
	"github.com/Jayantx07/Education-Point/internal/service"
	appErrors "github.com/Jayantx07/Education-Point/pkg/errors"
	"github.com/Jayantx07/Education-Point/pkg/middleware/ratelimit"
)

type tokenAuth struct{}

func (tokenAuth) Authenticate(_ context.Context, token string) (*models.User, error) {
	switch token {
	case "admin-token":
		return &models.User{ID: "admin", IsAdmin: true}, nil
	case "user-token":
		return &models.User{ID: "user"}, nil
	}
	return nil, appErrors.Clone(appErrors.ErrUnauthorized, "not authorized, token failed")
}

type courseStub struct{}

func (courseStub) List(context.Context, models.CourseFilter) ([]models.Course, error) {
	return []models.Course{}, nil
}
func (courseStub) ListPopular(context.Context) ([]models.Course, error) { return []models.Course{}, nil }
func (courseStub) Get(_ context.Context, id string) (*models.Course, error) {
	return &models.Course{ID: id}, nil
}
func (courseStub) Create(context.Context, models.CreateCourseRequest) (*models.Course, error) {
	return &models.Course{}, nil
}
func (courseStub) Update(_ context.Context, id string, _ models.UpdateCourseRequest) (*models.Course, error) {
	return &models.Course{ID: id}, nil
}
func (courseStub) Delete(context.Context, string) error { return nil }

type testimonialStub struct{}

func (testimonialStub) List(context.Context, bool) ([]models.Testimonial, error) {
	return []models.Testimonial{}, nil
}
func (testimonialStub) Get(_ context.Context, id string) (*models.Testimonial, error) {
	return &models.Testimonial{ID: id}, nil
}
func (testimonialStub) Create(context.Context, models.CreateTestimonialRequest) (*models.Testimonial, error) {
	return &models.Testimonial{}, nil
}
func (testimonialStub) Update(_ context.Context, id string, _ models.UpdateTestimonialRequest) (*models.Testimonial, error) {
	return &models.Testimonial{ID: id}, nil
}
func (testimonialStub) Delete(context.Context, string) error { return nil }

type contactStub struct{}

func (contactStub) Submit(context.Context, models.SubmitContactRequest) (*models.Contact, error) {
	return &models.Contact{ID: "c1", Status: models.ContactStatusUnread}, nil
}
func (contactStub) List(context.Context, models.ContactFilter) ([]models.Contact, error) {
	return []models.Contact{}, nil
}
func (contactStub) Get(_ context.Context, id string) (*models.Contact, error) {
	return &models.Contact{ID: id}, nil
}
func (contactStub) UpdateStatus(_ context.Context, id string, _ models.UpdateContactStatusRequest) (*models.Contact, error) {
	return &models.Contact{ID: id}, nil
}
func (contactStub) Delete(context.Context, string) error { return nil }
func (contactStub) Export(context.Context, string) (*models.ExportFile, error) {
	return &models.ExportFile{Filename: "contacts.csv", ContentType: "text/csv", Data: []byte("a\n")}, nil
}

type authStub struct{}

func (authStub) Register(context.Context, models.RegisterRequest) (*models.AuthResponse, error) {
	return &models.AuthResponse{}, nil
}
func (authStub) Login(context.Context, models.LoginRequest) (*models.AuthResponse, error) {
	return &models.AuthResponse{}, nil
}

type userStub struct{}

func (userStub) Profile(_ context.Context, id string) (*models.User, error) {
	return &models.User{ID: id}, nil
}
func (userStub) UpdateProfile(context.Context, string, models.UpdateProfileRequest) (*models.AuthResponse, error) {
	return &models.AuthResponse{}, nil
}
func (userStub) DeleteProfile(context.Context, string) error { return nil }
func (userStub) List(context.Context) ([]models.User, error) { return []models.User{}, nil }
func (userStub) Get(_ context.Context, id string) (*models.User, error) {
	return &models.User{ID: id}, nil
}
func (userStub) Update(_ context.Context, id string, _ models.AdminUpdateUserRequest) (*models.User, error) {
	return &models.User{ID: id}, nil
}
func (userStub) Delete(context.Context, string) error { return nil }

type overviewStub struct{}

func (overviewStub) Overview(context.Context) (*models.Overview, error) { return &models.Overview{}, nil }

func newTestEngine(limiter *ratelimit.Limiter, trustedProxies ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	metrics := service.NewMetricsService()
	return New(Deps{
		Handlers: Handlers{
			Course:      handler.NewCourseHandler(courseStub{}),
			Testimonial: handler.NewTestimonialHandler(testimonialStub{}),
			Contact:     handler.NewContactHandler(contactStub{}),
			Auth:        handler.NewAuthHandler(authStub{}),
			User:        handler.NewUserHandler(userStub{}),
			Overview:    handler.NewOverviewHandler(overviewStub{}),
			Upload:      handler.NewUploadHandler(nil, 1024),
			Health:      handler.NewHealthHandler(service.NewHealthService(nil, time.Now())),
			Metrics:     handler.NewMetricsHandler(metrics),
		},
		Authenticator:  tokenAuth{},
		Limiter:        limiter,
		MetricsService: metrics,
		APIPrefix:      "/api",
		TrustedProxies: trustedProxies,
	})
}

func serve(r *gin.Engine, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	r := newTestEngine(nil)

	cases := []struct {
		method string
		target string
	}{
		{http.MethodDelete, "/api/courses/abc"},
		{http.MethodDelete, "/api/testimonials/abc"},
		{http.MethodGet, "/api/contact"},
		{http.MethodGet, "/api/contact/export"},
		{http.MethodGet, "/api/users"},
		{http.MethodDelete, "/api/users/abc"},
		{http.MethodGet, "/api/admin/overview"},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			assert.Equal(t, http.StatusUnauthorized, serve(r, tc.method, tc.target, "", "").Code)
			assert.Equal(t, http.StatusUnauthorized, serve(r, tc.method, tc.target, "bogus", "").Code)
			assert.Equal(t, http.StatusForbidden, serve(r, tc.method, tc.target, "user-token", "").Code)
			assert.Equal(t, http.StatusOK, serve(r, tc.method, tc.target, "admin-token", "").Code)
		})
	}
}

func TestPublicRoutes(t *testing.T) {
	r := newTestEngine(nil)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/courses", "", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/courses/popular", "", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/courses/abc", "", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/testimonials", "", "").Code)

	root := serve(r, http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, root.Code)
	assert.Equal(t, "Education Point API is running...", root.Body.String())

	assert.Equal(t, http.StatusServiceUnavailable, serve(r, http.MethodGet, "/health", "", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/metrics", "", "").Code)
}

func TestProfileRequiresToken(t *testing.T) {
	r := newTestEngine(nil)

	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/api/users/profile", "", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/users/profile", "user-token", "").Code)
}

func TestContactSubmitIsRateLimited(t *testing.T) {
	r := newTestEngine(ratelimit.New(0.001, 1))
	body := `{"name":"Asha","email":"asha@example.com","subject":"Admission","message":"Hello"}`

	assert.Equal(t, http.StatusCreated, serve(r, http.MethodPost, "/api/contact", "", body).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodPost, "/api/contact", "", body).Code)
}

func TestUnknownRouteReturnsEnvelope(t *testing.T) {
	r := newTestEngine(nil)

	rec := serve(r, http.MethodGet, "/api/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not found - /api/nope")
}

func loginFrom(r *gin.Engine, remoteAddr, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader(`{"email":"asha@example.com","password":"secret1"}`))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = remoteAddr
	req.Header.Set("X-Forwarded-For", forwardedFor)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec.Code
}

func TestLoginLimitIgnoresSpoofedForwardedFor(t *testing.T) {
	r := newTestEngine(ratelimit.New(0.001, 1))

	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		codes = append(codes, loginFrom(r, "203.0.113.7:4100", fmt.Sprintf("10.0.0.%d", i)))
	}

	assert.Equal(t, []int{200, 429, 429, 429, 429}, codes)
}

func TestLoginLimitUsesForwardedForBehindTrustedProxy(t *testing.T) {
	r := newTestEngine(ratelimit.New(0.001, 1), "203.0.113.7")

	assert.Equal(t, http.StatusOK, loginFrom(r, "203.0.113.7:4100", "10.0.0.1"))
	assert.Equal(t, http.StatusOK, loginFrom(r, "203.0.113.7:4100", "10.0.0.2"))
	assert.Equal(t, http.StatusTooManyRequests, loginFrom(r, "203.0.113.7:4100", "10.0.0.1"))
}
