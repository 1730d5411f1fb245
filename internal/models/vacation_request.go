package models

import "time"

// RequestStatus defines lifecycle states for vacation requests.
type RequestStatus string

const (
	// RequestStatusPending indicates the request is awaiting review.
	RequestStatusPending RequestStatus = "pending"
	// RequestStatusApproved indicates the request was accepted. Terminal.
	RequestStatusApproved RequestStatus = "approved"
	// RequestStatusRejected indicates the request was denied. Terminal.
	RequestStatusRejected RequestStatus = "rejected"
	// RequestStatusCancelled is declared for a future withdraw operation.
	// No current operation transitions into it.
	RequestStatusCancelled RequestStatus = "cancelled"
)

// Terminal reports whether no further transition is permitted from s.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected
}

// VacationRequest is a leave request owned by its requester. It is
// created pending and transitions exactly once to approved or rejected;
// the action fields are written together with the status change.
type VacationRequest struct {
	ID               uint          `gorm:"primaryKey" json:"id"`
	RequesterID      uint          `gorm:"not null;index" json:"requester_id"`
	StartDate        time.Time     `gorm:"not null;index:idx_vacation_range" json:"start_date"`
	EndDate          time.Time     `gorm:"not null;index:idx_vacation_range" json:"end_date"`
	Reason           string        `gorm:"type:text" json:"reason,omitempty"`
	Status           RequestStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	RequestedAt      time.Time     `gorm:"not null;index" json:"requested_at"`
	ActionedByID     *uint         `gorm:"index" json:"actioned_by_id"`
	ActionedAt       *time.Time    `json:"actioned_at"`
	DecisionComments *string       `gorm:"type:text" json:"decision_comments"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`

	Requester  *User `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	ActionedBy *User `gorm:"foreignKey:ActionedByID" json:"actioned_by,omitempty"`
}

// TableName specifies the table name for GORM
func (VacationRequest) TableName() string {
	return "vacation_requests"
}
