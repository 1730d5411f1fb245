package service

import (
	"context"
	"strings"
	"time"

	"leavedesk/internal/models"
	"leavedesk/internal/repository"
)

// VacationService is the lifecycle engine for vacation requests. All
// mutations of a request go through Submit and Decide; requests are
// never edited or deleted here.
type VacationService struct {
	vacationRepo repository.VacationRepository
	resolver     HierarchyResolver
	now          func() time.Time
}

// NewVacationService returns a new VacationService.
func NewVacationService(vacationRepo repository.VacationRepository, resolver HierarchyResolver) *VacationService {
	return &VacationService{
		vacationRepo: vacationRepo,
		resolver:     resolver,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Submit creates a pending request for the requester. Dates must form a
// strictly positive range. Overlap with the requester's other requests
// is intentionally not checked; multiple pending requests may coexist.
func (s *VacationService) Submit(ctx context.Context, requesterID uint, start, end time.Time, reason string) (*models.VacationRequest, error) {
	if requesterID == 0 {
		return nil, models.NewMissingFieldError("requester")
	}
	if start.IsZero() {
		return nil, models.NewMissingFieldError("start_date")
	}
	if end.IsZero() {
		return nil, models.NewMissingFieldError("end_date")
	}
	if !start.Before(end) {
		return nil, models.NewInvalidRangeError("end date must be after start date")
	}

	request := &models.VacationRequest{
		RequesterID: requesterID,
		StartDate:   start,
		EndDate:     end,
		Reason:      strings.TrimSpace(reason),
		Status:      models.RequestStatusPending,
		RequestedAt: s.now(),
	}
	if err := s.vacationRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	return s.vacationRepo.GetByID(ctx, request.ID)
}

// ListOwn returns every request of the requester, newest first,
// regardless of status.
func (s *VacationService) ListOwn(ctx context.Context, requesterID uint) ([]models.VacationRequest, error) {
	if requesterID == 0 {
		return nil, models.NewMissingFieldError("requester")
	}
	return s.vacationRepo.ListByRequester(ctx, requesterID)
}

// ListActionable returns the pending requests the actor may decide,
// oldest first. Supervisors see their direct reports' requests; admins
// see every pending request. A supervisor with no reports gets an empty
// list, not an error.
func (s *VacationService) ListActionable(ctx context.Context, actor *models.User) ([]models.VacationRequest, error) {
	switch actor.Role {
	case models.RoleAdmin:
		return s.vacationRepo.ListPendingAll(ctx)
	case models.RoleSupervisor:
		subordinates, err := s.resolver.Subordinates(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		if len(subordinates) == 0 {
			return []models.VacationRequest{}, nil
		}
		ids := make([]uint, 0, len(subordinates))
		for _, sub := range subordinates {
			ids = append(ids, sub.ID)
		}
		return s.vacationRepo.ListPending(ctx, ids)
	case models.RoleEmployee:
		return nil, models.NewForbiddenError("supervisor or admin role required")
	default:
		return nil, models.NewForbiddenError("unknown role " + string(actor.Role))
	}
}

// Decide applies the single terminal transition to a pending request.
// The checks run in a fixed order: existence, already-decided,
// authorization, comment requirement. An unauthorized actor therefore
// receives a forbidden error even when their comments would also be
// invalid.
func (s *VacationService) Decide(ctx context.Context, requestID uint, actor *models.User, outcome models.RequestStatus, comments string) (*models.VacationRequest, error) {
	if outcome != models.RequestStatusApproved && outcome != models.RequestStatusRejected {
		return nil, models.NewValidationError("outcome must be approved or rejected")
	}

	request, err := s.vacationRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.Status != models.RequestStatusPending {
		return nil, models.NewAlreadyDecidedError(request.Status)
	}

	switch actor.Role {
	case models.RoleAdmin:
		// Admins may decide any pending request.
	case models.RoleSupervisor:
		direct, err := s.resolver.IsDirectSupervisor(ctx, actor.ID, request.RequesterID)
		if err != nil {
			return nil, err
		}
		if !direct {
			return nil, models.NewForbiddenError("you are not the direct supervisor of this employee")
		}
	case models.RoleEmployee:
		return nil, models.NewForbiddenError("supervisor or admin role required")
	default:
		return nil, models.NewForbiddenError("unknown role " + string(actor.Role))
	}

	trimmed := strings.TrimSpace(comments)
	if outcome == models.RequestStatusRejected && trimmed == "" {
		return nil, models.NewCommentRequiredError()
	}

	var commentsPtr *string
	if trimmed != "" {
		commentsPtr = &trimmed
	}

	// Conditional update guarded on pending status so concurrent
	// decisions cannot both succeed.
	transitioned, err := s.vacationRepo.Decide(ctx, requestID, outcome, actor.ID, commentsPtr, s.now())
	if err != nil {
		return nil, err
	}
	if !transitioned {
		// Lost the race: another decision landed between our read and
		// the update. Report the status that actually stuck.
		current, err := s.vacationRepo.GetByID(ctx, requestID)
		if err != nil {
			return nil, err
		}
		return nil, models.NewAlreadyDecidedError(current.Status)
	}

	return s.vacationRepo.GetByID(ctx, requestID)
}
