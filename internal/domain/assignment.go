package domain

import "time"

const (
	AssignmentActive    = "Active"
	AssignmentCompleted = "Completed"
	AssignmentPlanned   = "Planned"
)

// MemberAssignment is a time-bounded association between a Member and a
// Client. At most one Active assignment per member at any time; the
// assignment usecase enforces it, storage does not.
type MemberAssignment struct {
	ID        string    `json:"id"`
	MemberID  string    `json:"memberId"`
	ClientID  string    `json:"clientId"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate,omitempty"`
	Role      string    `json:"role,omitempty"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ValidAssignmentStatus(s string) bool {
	switch s {
	case AssignmentActive, AssignmentCompleted, AssignmentPlanned:
		return true
	}
	return false
}
