package server

import (
	"time"

	"leavedesk/internal/middleware"
	"leavedesk/internal/models"
	"leavedesk/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SubmitVacationRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

type DecisionRequest struct {
	Comments string `json:"comments"`
}

// parseDate accepts dates as plain days or full RFC 3339 timestamps.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// SubmitRequest handles submission of a new vacation request
// @Summary Submit a vacation request
// @Description Create a pending vacation request for the authenticated user
// @Tags requests
// @Accept json
// @Produce json
// @Param request body SubmitVacationRequest true "Request payload"
// @Success 201 {object} models.VacationRequest
// @Failure 400 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /requests [post]
func (s *Server) SubmitRequest(c *fiber.Ctx) error {
	principal, err := principalFromCtx(c)
	if err != nil {
		return nil
	}
	if err := service.Authorize(principal.Role, service.OpSubmit); err != nil {
		return respondServiceError(c, err)
	}

	var req SubmitVacationRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.StartDate == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewMissingFieldError("start_date"))
	}
	if req.EndDate == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewMissingFieldError("end_date"))
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("start_date must be YYYY-MM-DD or RFC 3339"))
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("end_date must be YYYY-MM-DD or RFC 3339"))
	}

	request, err := s.vacationService.Submit(c.UserContext(), principal.ID, start, end, req.Reason)
	if err != nil {
		return respondServiceError(c, err)
	}

	middleware.RequestsSubmitted.Inc()
	middleware.Logger.InfoContext(c.UserContext(), "vacation request submitted",
		"request_id", request.ID,
		"start", request.StartDate.Format("2006-01-02"),
		"end", request.EndDate.Format("2006-01-02"))

	return c.Status(fiber.StatusCreated).JSON(request)
}

// GetMyRequests lists the authenticated user's own requests
// @Summary List my vacation requests
// @Description All requests of the authenticated user, newest first
// @Tags requests
// @Produce json
// @Success 200 {array} models.VacationRequest
// @Security BearerAuth
// @Router /requests/mine [get]
func (s *Server) GetMyRequests(c *fiber.Ctx) error {
	principal, err := principalFromCtx(c)
	if err != nil {
		return nil
	}
	if err := service.Authorize(principal.Role, service.OpListOwn); err != nil {
		return respondServiceError(c, err)
	}

	requests, err := s.vacationService.ListOwn(c.UserContext(), principal.ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(requests)
}

// GetPendingRequests lists pending requests the caller may decide
// @Summary List actionable pending requests
// @Description Pending requests scoped to the caller's reports (supervisor) or all (admin), oldest first
// @Tags requests
// @Produce json
// @Success 200 {array} models.VacationRequest
// @Failure 403 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /requests/pending [get]
func (s *Server) GetPendingRequests(c *fiber.Ctx) error {
	principal, err := principalFromCtx(c)
	if err != nil {
		return nil
	}
	if err := service.Authorize(principal.Role, service.OpListActionable); err != nil {
		return respondServiceError(c, err)
	}

	requests, err := s.vacationService.ListActionable(c.UserContext(), principal)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(requests)
}

// ApproveRequest approves a pending vacation request
// @Summary Approve a request
// @Description Transition a pending request to approved, with optional comments
// @Tags requests
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param request body DecisionRequest false "Decision payload"
// @Success 200 {object} models.VacationRequest
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /requests/{id}/approve [put]
func (s *Server) ApproveRequest(c *fiber.Ctx) error {
	return s.decide(c, models.RequestStatusApproved)
}

// RejectRequest rejects a pending vacation request
// @Summary Reject a request
// @Description Transition a pending request to rejected; comments are mandatory
// @Tags requests
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param request body DecisionRequest true "Decision payload"
// @Success 200 {object} models.VacationRequest
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /requests/{id}/reject [put]
func (s *Server) RejectRequest(c *fiber.Ctx) error {
	return s.decide(c, models.RequestStatusRejected)
}

func (s *Server) decide(c *fiber.Ctx, outcome models.RequestStatus) error {
	principal, err := principalFromCtx(c)
	if err != nil {
		return nil
	}
	if err := service.Authorize(principal.Role, service.OpDecide); err != nil {
		return respondServiceError(c, err)
	}

	requestID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	// Body is optional on approve, so a parse failure only matters when
	// a body was actually sent.
	var req DecisionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid request body"))
		}
	}

	request, err := s.vacationService.Decide(c.UserContext(), requestID, principal, outcome, req.Comments)
	if err != nil {
		return respondServiceError(c, err)
	}

	middleware.RequestsDecided.WithLabelValues(string(outcome), string(principal.Role)).Inc()
	middleware.Logger.InfoContext(c.UserContext(), "vacation request decided",
		"request_id", request.ID, "outcome", string(outcome))

	return c.JSON(request)
}
