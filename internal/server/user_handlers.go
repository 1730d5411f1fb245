package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetMyProfile returns the authenticated user's profile
// @Summary Get my profile
// @Tags users
// @Produce json
// @Success 200 {object} models.User
// @Security BearerAuth
// @Router /users/me [get]
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	principal, err := principalFromCtx(c)
	if err != nil {
		return nil
	}
	return c.JSON(principal)
}

// GetMyTeam lists the caller's direct reports
// @Summary List my direct reports
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 403 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /users/team [get]
func (s *Server) GetMyTeam(c *fiber.Ctx) error {
	principal, err := principalFromCtx(c)
	if err != nil {
		return nil
	}
	team, err := s.resolver.Subordinates(c.UserContext(), principal.ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(team)
}
