package usecase

import (
	"context"
	"strings"
	"time"

	"skills-radar/internal/domain"
	"skills-radar/internal/repository"

	"github.com/google/uuid"
)

type CreateAssignmentInput struct {
	MemberID  string
	ClientID  string
	StartDate string
	EndDate   string
	Role      string
	Status    string
	Notes     string
}

type AssignmentUsecase interface {
	ListAssignments(ctx context.Context) ([]domain.MemberAssignment, error)
	ListByMember(ctx context.Context, memberID string) ([]domain.MemberAssignment, error)
	ListByClient(ctx context.Context, clientID string) ([]domain.MemberAssignment, error)
	CreateAssignment(ctx context.Context, in CreateAssignmentInput) (domain.MemberAssignment, error)
	UpdateAssignment(ctx context.Context, id string, patch map[string]any) error
	CompleteAssignment(ctx context.Context, id, endDate string) error
	DeleteAssignment(ctx context.Context, id string) error
}

// Assignments owns the single-active-assignment invariant: at most one
// Active assignment per member. Activating a new one demotes the previous
// active to Completed with endDate equal to the new start date, and the
// change is mirrored into the member's profile history and the member's
// currentAssignedClient / availabilityStatus fields.
type Assignments struct {
	assignments repository.MemberAssignmentRepository
	members     repository.MemberRepository
	profiles    repository.MemberProfileRepository
	clients     repository.ClientRepository
	snapshot    ContextInvalidator

	now func() time.Time
}

func NewAssignmentUsecase(
	assignments repository.MemberAssignmentRepository,
	members repository.MemberRepository,
	profiles repository.MemberProfileRepository,
	clients repository.ClientRepository,
	snapshot ContextInvalidator,
) *Assignments {
	return &Assignments{
		assignments: assignments,
		members:     members,
		profiles:    profiles,
		clients:     clients,
		snapshot:    snapshot,
		now:         time.Now,
	}
}

func (u *Assignments) ListAssignments(ctx context.Context) ([]domain.MemberAssignment, error) {
	items, err := u.assignments.GetAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Assignments) ListByMember(ctx context.Context, memberID string) ([]domain.MemberAssignment, error) {
	items, err := u.assignments.GetByMemberID(ctx, memberID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Assignments) ListByClient(ctx context.Context, clientID string) ([]domain.MemberAssignment, error) {
	items, err := u.assignments.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Assignments) CreateAssignment(ctx context.Context, in CreateAssignmentInput) (domain.MemberAssignment, error) {
	if in.MemberID == "" || in.ClientID == "" || strings.TrimSpace(in.StartDate) == "" {
		return domain.MemberAssignment{}, ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = domain.AssignmentActive
	}
	if !domain.ValidAssignmentStatus(status) {
		return domain.MemberAssignment{}, ErrInvalidInput
	}

	if _, ok, err := u.members.GetByID(ctx, in.MemberID); err != nil {
		return domain.MemberAssignment{}, ErrInternal
	} else if !ok {
		return domain.MemberAssignment{}, ErrMemberNotFound
	}
	client, ok, err := u.clients.GetByID(ctx, in.ClientID)
	if err != nil {
		return domain.MemberAssignment{}, ErrInternal
	}
	if !ok {
		return domain.MemberAssignment{}, ErrClientNotFound
	}

	now := u.now().UTC()
	a := domain.MemberAssignment{
		ID:        uuid.NewString(),
		MemberID:  in.MemberID,
		ClientID:  in.ClientID,
		StartDate: strings.TrimSpace(in.StartDate),
		EndDate:   strings.TrimSpace(in.EndDate),
		Role:      strings.TrimSpace(in.Role),
		Status:    status,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if status == domain.AssignmentActive {
		if err := u.demoteActive(ctx, a.MemberID, a.StartDate); err != nil {
			return domain.MemberAssignment{}, err
		}
	}

	if err := u.assignments.Add(ctx, a); err != nil {
		return domain.MemberAssignment{}, ErrInternal
	}

	if status == domain.AssignmentActive {
		if err := u.mirrorActivation(ctx, a, client.Name); err != nil {
			return domain.MemberAssignment{}, err
		}
	}
	invalidateContext(ctx, u.snapshot)
	return a, nil
}

func (u *Assignments) UpdateAssignment(ctx context.Context, id string, patch map[string]any) error {
	if id == "" || len(patch) == 0 {
		return ErrInvalidInput
	}
	a, ok, err := u.assignments.GetByID(ctx, id)
	if err != nil {
		return ErrInternal
	}
	if !ok {
		return ErrAssignmentNotFound
	}

	if s, hasStatus := patch["status"].(string); hasStatus {
		if !domain.ValidAssignmentStatus(s) {
			return ErrInvalidInput
		}
		// Activating an existing assignment follows the same demotion path
		// as creating a new active one.
		if s == domain.AssignmentActive && a.Status != domain.AssignmentActive {
			start := a.StartDate
			if v, ok := patch["startDate"].(string); ok && v != "" {
				start = v
			}
			if err := u.demoteActive(ctx, a.MemberID, start); err != nil {
				return err
			}
			patch["updatedAt"] = u.now().UTC().Format(time.RFC3339Nano)
			if err := u.assignments.Update(ctx, id, patch); err != nil {
				return ErrInternal
			}
			updated, _, err := u.assignments.GetByID(ctx, id)
			if err != nil {
				return ErrInternal
			}
			client, _, err := u.clients.GetByID(ctx, updated.ClientID)
			if err != nil {
				return ErrInternal
			}
			if err := u.mirrorActivation(ctx, updated, client.Name); err != nil {
				return err
			}
			invalidateContext(ctx, u.snapshot)
			return nil
		}
	}

	patch["updatedAt"] = u.now().UTC().Format(time.RFC3339Nano)
	if err := u.assignments.Update(ctx, id, patch); err != nil {
		return ErrInternal
	}
	invalidateContext(ctx, u.snapshot)
	return nil
}

// CompleteAssignment closes an assignment. When it was the member's active
// one, the member becomes Available with no current client.
func (u *Assignments) CompleteAssignment(ctx context.Context, id, endDate string) error {
	a, ok, err := u.assignments.GetByID(ctx, id)
	if err != nil {
		return ErrInternal
	}
	if !ok {
		return ErrAssignmentNotFound
	}

	wasActive := a.Status == domain.AssignmentActive
	patch := map[string]any{
		"status":    domain.AssignmentCompleted,
		"endDate":   endDate,
		"updatedAt": u.now().UTC().Format(time.RFC3339Nano),
	}
	if err := u.assignments.Update(ctx, id, patch); err != nil {
		return ErrInternal
	}

	client, _, err := u.clients.GetByID(ctx, a.ClientID)
	if err != nil {
		return ErrInternal
	}
	if err := u.closeHistoryEntry(ctx, a.MemberID, client.Name, endDate); err != nil {
		return err
	}

	if wasActive {
		err := u.members.Update(ctx, a.MemberID, map[string]any{
			"currentAssignedClient": "",
			"availabilityStatus":    domain.AvailabilityAvailable,
		})
		if err != nil {
			return ErrInternal
		}
	}
	invalidateContext(ctx, u.snapshot)
	return nil
}

func (u *Assignments) DeleteAssignment(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	if err := u.assignments.Delete(ctx, id); err != nil {
		return ErrInternal
	}
	invalidateContext(ctx, u.snapshot)
	return nil
}

// demoteActive transitions any Active assignment of the member to Completed
// with endDate set to the incoming start date, and closes the matching
// profile history entries.
func (u *Assignments) demoteActive(ctx context.Context, memberID, newStartDate string) error {
	existing, err := u.assignments.GetByMemberID(ctx, memberID)
	if err != nil {
		return ErrInternal
	}
	for _, prev := range existing {
		if prev.Status != domain.AssignmentActive {
			continue
		}
		patch := map[string]any{
			"status":    domain.AssignmentCompleted,
			"endDate":   newStartDate,
			"updatedAt": u.now().UTC().Format(time.RFC3339Nano),
		}
		if err := u.assignments.Update(ctx, prev.ID, patch); err != nil {
			return ErrInternal
		}
		client, _, err := u.clients.GetByID(ctx, prev.ClientID)
		if err != nil {
			return ErrInternal
		}
		if err := u.closeHistoryEntry(ctx, memberID, client.Name, newStartDate); err != nil {
			return err
		}
	}
	return nil
}

// mirrorActivation records the new active assignment in the profile history
// and on the member row itself.
func (u *Assignments) mirrorActivation(ctx context.Context, a domain.MemberAssignment, clientName string) error {
	p, ok, err := u.profiles.GetByMemberID(ctx, a.MemberID)
	if err != nil {
		return ErrInternal
	}
	if ok {
		entry := domain.ProfileAssignment{
			ClientName: clientName,
			Role:       a.Role,
			StartDate:  a.StartDate,
			IsCurrent:  true,
		}
		assignments := append(p.Assignments, entry)
		if err := u.profiles.Update(ctx, p.ID, map[string]any{"assignments": assignments}); err != nil {
			return ErrInternal
		}
	}

	err = u.members.Update(ctx, a.MemberID, map[string]any{
		"currentAssignedClient": clientName,
		"availabilityStatus":    domain.AvailabilityAssigned,
	})
	if err != nil {
		return ErrInternal
	}
	return nil
}

// closeHistoryEntry marks the member's current history entries for the given
// client as finished.
func (u *Assignments) closeHistoryEntry(ctx context.Context, memberID, clientName, endDate string) error {
	p, ok, err := u.profiles.GetByMemberID(ctx, memberID)
	if err != nil {
		return ErrInternal
	}
	if !ok {
		return nil
	}

	changed := false
	for i, entry := range p.Assignments {
		if entry.IsCurrent && entry.ClientName == clientName {
			p.Assignments[i].IsCurrent = false
			p.Assignments[i].EndDate = endDate
			changed = true
		}
	}
	if !changed {
		return nil
	}
	if err := u.profiles.Update(ctx, p.ID, map[string]any{"assignments": p.Assignments}); err != nil {
		return ErrInternal
	}
	return nil
}
