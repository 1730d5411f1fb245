// Package service contains the business logic for the vacation request
// workflow: the hierarchy resolver, the access policy and the request
// lifecycle engine.
package service

import (
	"context"

	"leavedesk/internal/cache"
	"leavedesk/internal/models"
	"leavedesk/internal/repository"
)

// HierarchyResolver answers supervision questions against the identity
// directory. Only direct reports count; supervision is never transitive.
// Implementations perform no mutation and propagate data-source errors
// unchanged.
type HierarchyResolver interface {
	// Subordinates returns the direct reports of the given supervisor.
	// An employee or a supervisor with no reports yields an empty slice.
	Subordinates(ctx context.Context, supervisorID uint) ([]models.User, error)

	// IsDirectSupervisor reports whether employee's supervisor_id equals
	// supervisorID.
	IsDirectSupervisor(ctx context.Context, supervisorID, employeeID uint) (bool, error)
}

type repoHierarchyResolver struct {
	userRepo repository.UserRepository
}

// NewHierarchyResolver returns a resolver backed by the user repository.
func NewHierarchyResolver(userRepo repository.UserRepository) HierarchyResolver {
	return &repoHierarchyResolver{userRepo: userRepo}
}

func (r *repoHierarchyResolver) Subordinates(ctx context.Context, supervisorID uint) ([]models.User, error) {
	return r.userRepo.Subordinates(ctx, supervisorID)
}

func (r *repoHierarchyResolver) IsDirectSupervisor(ctx context.Context, supervisorID, employeeID uint) (bool, error) {
	employee, err := r.userRepo.GetByID(ctx, employeeID)
	if err != nil {
		return false, err
	}
	return employee.SupervisorID != nil && *employee.SupervisorID == supervisorID, nil
}

type cachedHierarchyResolver struct {
	inner HierarchyResolver
}

// NewCachedHierarchyResolver wraps a resolver with a short-TTL Redis
// cache for the subordinate set. Supervision checks stay live: the user
// read behind them is already cache-aside in the repository.
func NewCachedHierarchyResolver(inner HierarchyResolver) HierarchyResolver {
	return &cachedHierarchyResolver{inner: inner}
}

func (r *cachedHierarchyResolver) Subordinates(ctx context.Context, supervisorID uint) ([]models.User, error) {
	var users []models.User
	err := cache.Aside(ctx, cache.SubordinatesKey(supervisorID), &users, cache.SubordinatesTTL, func() error {
		inner, err := r.inner.Subordinates(ctx, supervisorID)
		if err != nil {
			return err
		}
		users = inner
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *cachedHierarchyResolver) IsDirectSupervisor(ctx context.Context, supervisorID, employeeID uint) (bool, error) {
	return r.inner.IsDirectSupervisor(ctx, supervisorID, employeeID)
}
