package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"leavedesk/internal/config"
	"leavedesk/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetLocations(t *testing.T) {
	locationRepo := new(MockLocationRepository)
	locationRepo.On("List", mock.Anything).Return([]models.Location{
		{ID: 1, Name: "Headquarters"},
		{ID: 2, Name: "North Branch"},
	}, nil)

	app := fiber.New()
	s := &Server{config: &config.Config{}, locationRepo: locationRepo}
	app.Get("/locations", s.GetLocations)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/locations", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body []models.Location
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body, 2)

	locationRepo.AssertExpectations(t)
}

func TestGetLocationNotFound(t *testing.T) {
	locationRepo := new(MockLocationRepository)
	locationRepo.On("GetByID", mock.Anything, uint(9)).
		Return(nil, models.NewNotFoundError("Location", 9))

	app := fiber.New()
	s := &Server{config: &config.Config{}, locationRepo: locationRepo}
	app.Get("/locations/:id", s.GetLocation)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/locations/9", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateLocation(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		locationRepo := new(MockLocationRepository)
		locationRepo.On("Create", mock.Anything, mock.MatchedBy(func(l *models.Location) bool {
			return l.Name == "East Annex"
		})).Return(nil)

		app := fiber.New()
		s := &Server{config: &config.Config{}, locationRepo: locationRepo}
		app.Post("/locations", s.CreateLocation)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/locations", map[string]any{
			"name":    "  East Annex ",
			"address": "12 East Rd",
		}))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		locationRepo.AssertExpectations(t)
	})

	t.Run("Missing Name", func(t *testing.T) {
		app := fiber.New()
		s := &Server{config: &config.Config{}, locationRepo: new(MockLocationRepository)}
		app.Post("/locations", s.CreateLocation)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/locations", map[string]any{
			"address": "12 East Rd",
		}))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetMyTeam(t *testing.T) {
	resolver := new(MockHierarchyResolver)
	resolver.On("Subordinates", mock.Anything, uint(5)).Return([]models.User{
		{ID: 100, FirstName: "Emp", LastName: "Alpha"},
	}, nil)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("principal", &models.User{ID: 5, Role: models.RoleSupervisor})
		return c.Next()
	})
	s := &Server{config: &config.Config{}, resolver: resolver}
	app.Get("/users/team", s.GetMyTeam)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/team", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body []models.User
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body, 1)

	resolver.AssertExpectations(t)
}
