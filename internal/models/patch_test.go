package models

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestEntryFields_Entry(t *testing.T) {
	notes := "first"
	f := EntryFields{Type: TypeRepair, Date: "2025-03-01", Description: "Alternator", Notes: &notes}
	ts := time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("X", 3600))

	e := f.Entry("abc", ts)
	require.Equal(t, "abc", e.ID)
	require.Equal(t, time.UTC, e.Timestamp.Location())
	require.True(t, ts.Equal(e.Timestamp))
	require.Equal(t, "first", *e.Notes)

	notes = "changed"
	require.Equal(t, "first", *e.Notes)
}

func TestEntryPatch_Apply(t *testing.T) {
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	orig := MaintenanceEntry{
		ID:          "keep-me",
		Timestamp:   ts,
		Type:        TypeOilChange,
		Date:        "2025-01-01",
		Description: "Oil",
		Notes:       Ptr("old notes"),
		Mileage:     Ptr("1000"),
		Cost:        Ptr("30"),
	}

	typ := TypeRepair
	patch := EntryPatch{
		Type:    &typ,
		Notes:   Clear[string](),
		Cost:    Overwrite("45.5"),
		NextDue: Overwrite("2025-06-01"),
	}
	got := patch.Apply(orig)

	want := orig
	want.Type = TypeRepair
	want.Notes = nil
	want.Cost = Ptr("45.5")
	want.NextDue = Ptr("2025-06-01")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Apply mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t, "old notes", *orig.Notes, "original must not be mutated")
	require.Equal(t, "30", *orig.Cost)
}

func TestEntryPatch_Empty(t *testing.T) {
	require.True(t, EntryPatch{}.Empty())
	require.True(t, EntryPatch{Notes: Keep[string]()}.Empty())
	require.False(t, EntryPatch{Mileage: Clear[string]()}.Empty())
	d := "x"
	require.False(t, EntryPatch{Description: &d}.Empty())
}
