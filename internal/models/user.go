// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Role is the closed set of roles a user can hold. Authorization is
// dispatched on this type with exhaustive switches so that adding a
// role forces every policy site to be revisited.
type Role string

const (
	// RoleEmployee can submit and view their own vacation requests.
	RoleEmployee Role = "employee"
	// RoleSupervisor can additionally review requests of direct reports.
	RoleSupervisor Role = "supervisor"
	// RoleAdmin can review any request system-wide.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleSupervisor, RoleAdmin:
		return true
	}
	return false
}

// User represents an employee, supervisor or admin account.
// SupervisorID is a nullable self-reference: employees may report to
// nobody, admins always do.
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	FirstName    string         `gorm:"size:80;not null" json:"first_name"`
	LastName     string         `gorm:"size:80;not null" json:"last_name"`
	Email        string         `gorm:"size:255;unique;not null" json:"email"`
	Password     string         `gorm:"not null" json:"-"`
	Role         Role           `gorm:"type:varchar(20);not null;index" json:"role"`
	EmployeeCode string         `gorm:"size:32" json:"employee_code,omitempty"`
	LocationID   *uint          `gorm:"index" json:"location_id"`
	SupervisorID *uint          `gorm:"index" json:"supervisor_id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Location   *Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	Supervisor *User     `gorm:"foreignKey:SupervisorID" json:"supervisor,omitempty"`
}

// FullName returns the display name used in request payloads.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// RequiresLocation reports whether the user's role must carry a location.
// Admins operate system-wide and are exempt.
func (u *User) RequiresLocation() bool {
	return u.Role == RoleEmployee || u.Role == RoleSupervisor
}
