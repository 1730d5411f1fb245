package server

import (
	"strings"

	"leavedesk/internal/middleware"
	"leavedesk/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateLocationRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// GetLocations lists all office locations
// @Summary List locations
// @Tags locations
// @Produce json
// @Success 200 {array} models.Location
// @Security BearerAuth
// @Router /locations [get]
func (s *Server) GetLocations(c *fiber.Ctx) error {
	locations, err := s.locationRepo.List(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(locations)
}

// GetLocation fetches a single location
// @Summary Get a location
// @Tags locations
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} models.Location
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /locations/{id} [get]
func (s *Server) GetLocation(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	location, err := s.locationRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(location)
}

// CreateLocation creates a new office location. Admin only.
// @Summary Create a location
// @Tags locations
// @Accept json
// @Produce json
// @Param request body CreateLocationRequest true "Location payload"
// @Success 201 {object} models.Location
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /locations [post]
func (s *Server) CreateLocation(c *fiber.Ctx) error {
	var req CreateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewMissingFieldError("name"))
	}

	location := &models.Location{
		Name:    req.Name,
		Address: strings.TrimSpace(req.Address),
	}
	if err := s.locationRepo.Create(c.UserContext(), location); err != nil {
		return respondServiceError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "location created",
		"location_id", location.ID, "name", location.Name)

	return c.Status(fiber.StatusCreated).JSON(location)
}
