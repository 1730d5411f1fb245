package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"leavedesk/internal/config"
	"leavedesk/internal/models"
	"leavedesk/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// newRequestTestApp wires a Fiber app with the vacation routes and a fixed
// principal, bypassing JWT auth.
func newRequestTestApp(principal *models.User, vacationRepo *MockVacationRepository, resolver *MockHierarchyResolver) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("principal", principal)
		c.Locals("userID", principal.ID)
		return c.Next()
	})

	s := &Server{
		config:          &config.Config{JWTSecret: "test_secret"},
		vacationRepo:    vacationRepo,
		resolver:        resolver,
		vacationService: service.NewVacationService(vacationRepo, resolver),
	}
	app.Post("/requests", s.SubmitRequest)
	app.Get("/requests/mine", s.GetMyRequests)
	app.Get("/requests/pending", s.GetPendingRequests)
	app.Put("/requests/:id/approve", s.ApproveRequest)
	app.Put("/requests/:id/reject", s.RejectRequest)
	return app
}

func TestSubmitRequest(t *testing.T) {
	employee := &models.User{ID: 7, Role: models.RoleEmployee}

	t.Run("Success", func(t *testing.T) {
		vacationRepo := new(MockVacationRepository)
		vacationRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *models.VacationRequest) bool {
			return r.RequesterID == 7 && r.Status == models.RequestStatusPending
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.VacationRequest).ID = 42
		}).Return(nil)
		vacationRepo.On("GetByID", mock.Anything, uint(42)).Return(&models.VacationRequest{
			ID: 42, RequesterID: 7, Status: models.RequestStatusPending,
		}, nil)

		app := newRequestTestApp(employee, vacationRepo, new(MockHierarchyResolver))
		resp, err := app.Test(jsonRequest(http.MethodPost, "/requests", map[string]any{
			"start_date": "2026-10-01",
			"end_date":   "2026-10-08",
			"reason":     "autumn break",
		}))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body models.VacationRequest
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, models.RequestStatusPending, body.Status)

		vacationRepo.AssertExpectations(t)
	})

	t.Run("Equal Dates Rejected", func(t *testing.T) {
		app := newRequestTestApp(employee, new(MockVacationRepository), new(MockHierarchyResolver))
		resp, err := app.Test(jsonRequest(http.MethodPost, "/requests", map[string]any{
			"start_date": "2026-10-01",
			"end_date":   "2026-10-01",
		}))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body models.ErrorResponse
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, models.CodeInvalidRange, body.Code)
	})

	t.Run("Missing End Date", func(t *testing.T) {
		app := newRequestTestApp(employee, new(MockVacationRepository), new(MockHierarchyResolver))
		resp, err := app.Test(jsonRequest(http.MethodPost, "/requests", map[string]any{
			"start_date": "2026-10-01",
		}))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body models.ErrorResponse
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, models.CodeMissingField, body.Code)
	})

	t.Run("Unparseable Date", func(t *testing.T) {
		app := newRequestTestApp(employee, new(MockVacationRepository), new(MockHierarchyResolver))
		resp, err := app.Test(jsonRequest(http.MethodPost, "/requests", map[string]any{
			"start_date": "next tuesday",
			"end_date":   "2026-10-08",
		}))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetMyRequests(t *testing.T) {
	employee := &models.User{ID: 7, Role: models.RoleEmployee}
	vacationRepo := new(MockVacationRepository)
	vacationRepo.On("ListByRequester", mock.Anything, uint(7)).Return([]models.VacationRequest{
		{ID: 2, RequesterID: 7, Status: models.RequestStatusPending},
		{ID: 1, RequesterID: 7, Status: models.RequestStatusApproved},
	}, nil)

	app := newRequestTestApp(employee, vacationRepo, new(MockHierarchyResolver))
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/requests/mine", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body []models.VacationRequest
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body, 2)

	vacationRepo.AssertExpectations(t)
}

func TestGetPendingRequests(t *testing.T) {
	t.Run("Employee Forbidden", func(t *testing.T) {
		employee := &models.User{ID: 7, Role: models.RoleEmployee}
		app := newRequestTestApp(employee, new(MockVacationRepository), new(MockHierarchyResolver))
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/requests/pending", nil))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Supervisor Without Reports Gets Empty List", func(t *testing.T) {
		supervisor := &models.User{ID: 5, Role: models.RoleSupervisor}
		resolver := new(MockHierarchyResolver)
		resolver.On("Subordinates", mock.Anything, uint(5)).Return([]models.User{}, nil)

		app := newRequestTestApp(supervisor, new(MockVacationRepository), resolver)
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/requests/pending", nil))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body []models.VacationRequest
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Empty(t, body)

		resolver.AssertExpectations(t)
	})

	t.Run("Admin Sees Everything", func(t *testing.T) {
		admin := &models.User{ID: 9, Role: models.RoleAdmin}
		vacationRepo := new(MockVacationRepository)
		vacationRepo.On("ListPendingAll", mock.Anything).Return([]models.VacationRequest{
			{ID: 1, RequesterID: 100}, {ID: 2, RequesterID: 200},
		}, nil)

		app := newRequestTestApp(admin, vacationRepo, new(MockHierarchyResolver))
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/requests/pending", nil))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body []models.VacationRequest
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Len(t, body, 2)

		vacationRepo.AssertExpectations(t)
	})
}

func TestApproveRequest(t *testing.T) {
	supervisor := &models.User{ID: 5, Role: models.RoleSupervisor}

	t.Run("Success", func(t *testing.T) {
		vacationRepo := new(MockVacationRepository)
		pending := &models.VacationRequest{ID: 42, RequesterID: 100, Status: models.RequestStatusPending}
		vacationRepo.On("GetByID", mock.Anything, uint(42)).Return(pending, nil).Once()
		vacationRepo.On("Decide", mock.Anything, uint(42), models.RequestStatusApproved,
			uint(5), (*string)(nil), mock.AnythingOfType("time.Time")).Return(true, nil)
		vacationRepo.On("GetByID", mock.Anything, uint(42)).Return(&models.VacationRequest{
			ID: 42, RequesterID: 100, Status: models.RequestStatusApproved,
		}, nil).Once()

		resolver := new(MockHierarchyResolver)
		resolver.On("IsDirectSupervisor", mock.Anything, uint(5), uint(100)).Return(true, nil)

		app := newRequestTestApp(supervisor, vacationRepo, resolver)
		resp, err := app.Test(httptest.NewRequest(http.MethodPut, "/requests/42/approve", nil))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body models.VacationRequest
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, models.RequestStatusApproved, body.Status)

		vacationRepo.AssertExpectations(t)
		resolver.AssertExpectations(t)
	})

	t.Run("Already Decided", func(t *testing.T) {
		vacationRepo := new(MockVacationRepository)
		vacationRepo.On("GetByID", mock.Anything, uint(42)).Return(&models.VacationRequest{
			ID: 42, RequesterID: 100, Status: models.RequestStatusRejected,
		}, nil)

		app := newRequestTestApp(supervisor, vacationRepo, new(MockHierarchyResolver))
		resp, err := app.Test(httptest.NewRequest(http.MethodPut, "/requests/42/approve", nil))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body models.ErrorResponse
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, models.CodeAlreadyDecided, body.Code)
		assert.Contains(t, body.Error, "rejected")
	})

	t.Run("Foreign Report Forbidden", func(t *testing.T) {
		vacationRepo := new(MockVacationRepository)
		vacationRepo.On("GetByID", mock.Anything, uint(42)).Return(&models.VacationRequest{
			ID: 42, RequesterID: 100, Status: models.RequestStatusPending,
		}, nil)
		resolver := new(MockHierarchyResolver)
		resolver.On("IsDirectSupervisor", mock.Anything, uint(5), uint(100)).Return(false, nil)

		app := newRequestTestApp(supervisor, vacationRepo, resolver)
		resp, err := app.Test(httptest.NewRequest(http.MethodPut, "/requests/42/approve", nil))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Unknown Request", func(t *testing.T) {
		vacationRepo := new(MockVacationRepository)
		vacationRepo.On("GetByID", mock.Anything, uint(404)).
			Return(nil, models.NewNotFoundError("vacation request", 404))

		app := newRequestTestApp(supervisor, vacationRepo, new(MockHierarchyResolver))
		resp, err := app.Test(httptest.NewRequest(http.MethodPut, "/requests/404/approve", nil))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Non Numeric ID", func(t *testing.T) {
		app := newRequestTestApp(supervisor, new(MockVacationRepository), new(MockHierarchyResolver))
		resp, err := app.Test(httptest.NewRequest(http.MethodPut, "/requests/abc/approve", nil))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestRejectRequest(t *testing.T) {
	admin := &models.User{ID: 9, Role: models.RoleAdmin}

	t.Run("Requires Comments", func(t *testing.T) {
		vacationRepo := new(MockVacationRepository)
		vacationRepo.On("GetByID", mock.Anything, uint(42)).Return(&models.VacationRequest{
			ID: 42, RequesterID: 100, Status: models.RequestStatusPending,
		}, nil)

		app := newRequestTestApp(admin, vacationRepo, new(MockHierarchyResolver))
		resp, err := app.Test(jsonRequest(http.MethodPut, "/requests/42/reject", map[string]any{
			"comments": "   ",
		}))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body models.ErrorResponse
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, models.CodeCommentRequired, body.Code)
	})

	t.Run("Success With Comments", func(t *testing.T) {
		comments := "coverage gap"
		vacationRepo := new(MockVacationRepository)
		vacationRepo.On("GetByID", mock.Anything, uint(42)).Return(&models.VacationRequest{
			ID: 42, RequesterID: 100, Status: models.RequestStatusPending,
		}, nil).Once()
		vacationRepo.On("Decide", mock.Anything, uint(42), models.RequestStatusRejected,
			uint(9), &comments, mock.AnythingOfType("time.Time")).Return(true, nil)
		vacationRepo.On("GetByID", mock.Anything, uint(42)).Return(&models.VacationRequest{
			ID: 42, RequesterID: 100, Status: models.RequestStatusRejected,
			DecisionComments: &comments,
		}, nil).Once()

		app := newRequestTestApp(admin, vacationRepo, new(MockHierarchyResolver))
		resp, err := app.Test(jsonRequest(http.MethodPut, "/requests/42/reject", map[string]any{
			"comments": "coverage gap",
		}))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body models.VacationRequest
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, models.RequestStatusRejected, body.Status)

		vacationRepo.AssertExpectations(t)
	})

	t.Run("Lost Race Reports Winner", func(t *testing.T) {
		vacationRepo := new(MockVacationRepository)
		vacationRepo.On("GetByID", mock.Anything, uint(42)).Return(&models.VacationRequest{
			ID: 42, RequesterID: 100, Status: models.RequestStatusPending,
		}, nil).Once()
		vacationRepo.On("Decide", mock.Anything, uint(42), models.RequestStatusRejected,
			uint(9), mock.Anything, mock.AnythingOfType("time.Time")).Return(false, nil)
		vacationRepo.On("GetByID", mock.Anything, uint(42)).Return(&models.VacationRequest{
			ID: 42, RequesterID: 100, Status: models.RequestStatusApproved,
		}, nil).Once()

		app := newRequestTestApp(admin, vacationRepo, new(MockHierarchyResolver))
		resp, err := app.Test(jsonRequest(http.MethodPut, "/requests/42/reject", map[string]any{
			"comments": "too many approvals already",
		}))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body models.ErrorResponse
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, models.CodeAlreadyDecided, body.Code)
		assert.Contains(t, body.Error, "approved")
	})
}
