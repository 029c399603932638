package pipeline

import (
	"context"
	"fmt"
	"strings"

	"skills-radar/internal/domain"
	"skills-radar/internal/repository"
	"skills-radar/internal/usecase"

	"github.com/google/uuid"
)

// Column headers of the structured member import file; the downloadable
// template matches these exactly.
const (
	ColEmail        = "Corporate Email"
	ColFullName     = "Full Name"
	ColHireDate     = "Hire Date"
	ColCategory     = "Category"
	ColLocation     = "Location"
	ColAvailability = "Availability Status"
	ColCurrent      = "Current Client"
	ColPhotoURL     = "Photo URL"
)

type MemberImportResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// MemberImporter runs the all-or-nothing structured member import: every
// row is validated first and a single violation aborts the whole batch with
// the full error list; a clean batch upserts by corporate email.
type MemberImporter struct {
	members  repository.MemberRepository
	profiles repository.MemberProfileRepository
}

func NewMemberImporter(members repository.MemberRepository, profiles repository.MemberProfileRepository) *MemberImporter {
	return &MemberImporter{members: members, profiles: profiles}
}

func (imp *MemberImporter) Run(ctx context.Context, rows []Row) (MemberImportResult, []string, error) {
	errs := validateMemberRows(rows)
	if len(errs) > 0 {
		return MemberImportResult{}, errs, nil
	}

	var res MemberImportResult
	for _, row := range rows {
		email := row.Get(ColEmail)

		existing, found, err := imp.members.GetByEmail(ctx, email)
		if err != nil {
			return res, nil, err
		}

		if found {
			patch := map[string]any{
				"fullName": row.Get(ColFullName),
				"hireDate": row.Get(ColHireDate),
				"category": row.Get(ColCategory),
			}
			if v := row.Get(ColLocation); v != "" {
				patch["location"] = v
			}
			if v := row.Get(ColAvailability); v != "" {
				patch["availabilityStatus"] = v
			}
			if v := row.Get(ColCurrent); v != "" {
				patch["currentAssignedClient"] = v
			}
			if v := row.Get(ColPhotoURL); v != "" {
				patch["photoUrl"] = v
			}
			if err := imp.members.Update(ctx, existing.ID, patch); err != nil {
				return res, nil, err
			}
			res.Updated++
			continue
		}

		availability := row.Get(ColAvailability)
		if availability == "" {
			availability = domain.AvailabilityAvailable
		}
		m := domain.Member{
			ID:                    uuid.NewString(),
			CorporateEmail:        strings.ToLower(email),
			FullName:              row.Get(ColFullName),
			HireDate:              row.Get(ColHireDate),
			Category:              row.Get(ColCategory),
			Location:              row.Get(ColLocation),
			AvailabilityStatus:    availability,
			CurrentAssignedClient: row.Get(ColCurrent),
			PhotoURL:              row.Get(ColPhotoURL),
		}
		if err := imp.members.Add(ctx, m); err != nil {
			return res, nil, err
		}
		if err := imp.profiles.Add(ctx, usecase.EmptyProfileFor(m.ID)); err != nil {
			return res, nil, err
		}
		res.Created++
	}
	return res, nil, nil
}

func validateMemberRows(rows []Row) []string {
	errs := make([]string, 0)
	for i, row := range rows {
		n := i + 2 // 1-based plus the header row, matching what the operator sees in the file
		if row.Get(ColEmail) == "" {
			errs = append(errs, fmt.Sprintf("row %d: missing %s", n, ColEmail))
		}
		if row.Get(ColFullName) == "" {
			errs = append(errs, fmt.Sprintf("row %d: missing %s", n, ColFullName))
		}
		if row.Get(ColHireDate) == "" {
			errs = append(errs, fmt.Sprintf("row %d: missing %s", n, ColHireDate))
		}
		cat := row.Get(ColCategory)
		if cat == "" {
			errs = append(errs, fmt.Sprintf("row %d: missing %s", n, ColCategory))
		} else if !domain.ValidCategory(cat) {
			errs = append(errs, fmt.Sprintf("row %d: invalid %s %q", n, ColCategory, cat))
		}
		if av := row.Get(ColAvailability); av != "" && !domain.ValidAvailability(av) {
			errs = append(errs, fmt.Sprintf("row %d: invalid %s %q", n, ColAvailability, av))
		}
	}
	return errs
}
