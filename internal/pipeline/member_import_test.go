package pipeline

import (
	"context"
	"testing"

	"skills-radar/internal/domain"
	"skills-radar/internal/repository"
	"skills-radar/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemberImportFixture() (*MemberImporter, repository.MemberRepository, repository.MemberProfileRepository) {
	s := store.NewMemory()
	members := repository.NewStoreMemberRepository(s)
	profiles := repository.NewStoreMemberProfileRepository(s)
	return NewMemberImporter(members, profiles), members, profiles
}

func validMemberRow(email, name string) Row {
	return Row{
		ColEmail:    email,
		ColFullName: name,
		ColHireDate: "2024-02-01",
		ColCategory: domain.CategoryBuilder,
	}
}

func TestMemberImporter_SingleBadRowAbortsWholeBatch(t *testing.T) {
	imp, members, _ := newMemberImportFixture()
	ctx := context.Background()

	rows := []Row{
		validMemberRow("a@example.com", "A"),
		{ColEmail: "b@example.com", ColHireDate: "2024-02-01", ColCategory: "Builder"}, // no name
		validMemberRow("c@example.com", "C"),
	}

	res, errs, err := imp.Run(ctx, rows)
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "row 3: missing Full Name", errs[0])
	assert.Equal(t, 0, res.Created)

	all, err := members.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "a failed validation must not write any row")
}

func TestMemberImporter_ReportsAllViolations(t *testing.T) {
	imp, _, _ := newMemberImportFixture()

	rows := []Row{
		{ColEmail: "", ColFullName: "", ColHireDate: "", ColCategory: ""},
		{ColEmail: "x@example.com", ColFullName: "X", ColHireDate: "2024-01-01", ColCategory: "Guru"},
		{ColEmail: "y@example.com", ColFullName: "Y", ColHireDate: "2024-01-01", ColCategory: domain.CategorySolver, ColAvailability: "Busy"},
	}

	_, errs, err := imp.Run(context.Background(), rows)
	require.NoError(t, err)
	assert.Len(t, errs, 6)
	assert.Contains(t, errs, "row 2: missing Corporate Email")
	assert.Contains(t, errs, `row 3: invalid Category "Guru"`)
	assert.Contains(t, errs, `row 4: invalid Availability Status "Busy"`)
}

func TestMemberImporter_UpsertsByEmail(t *testing.T) {
	imp, members, profiles := newMemberImportFixture()
	ctx := context.Background()

	existing := domain.Member{
		ID:                 "m1",
		CorporateEmail:     "a@example.com",
		FullName:           "Old Name",
		HireDate:           "2020-01-01",
		Category:           domain.CategoryStarter,
		Location:           "Lisbon",
		AvailabilityStatus: domain.AvailabilityAvailable,
	}
	require.NoError(t, members.Add(ctx, existing))

	rows := []Row{
		validMemberRow("A@Example.com", "New Name"),
		validMemberRow("fresh@example.com", "Fresh Hire"),
	}

	res, errs, err := imp.Run(ctx, rows)
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 1, res.Updated)

	updated, _, err := members.GetByID(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.FullName)
	assert.Equal(t, "Lisbon", updated.Location, "absent optional columns keep existing values")

	fresh, ok, err := members.GetByEmail(ctx, "fresh@example.com")
	require.NoError(t, err)
	require.True(t, ok)
	_, ok, err = profiles.GetByMemberID(ctx, fresh.ID)
	require.NoError(t, err)
	assert.True(t, ok, "created members get a profile")
}
