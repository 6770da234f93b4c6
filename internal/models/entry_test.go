package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaintenanceEntry_JSONShape(t *testing.T) {
	e := MaintenanceEntry{
		ID:          "id-1",
		Timestamp:   time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Type:        TypeOilChange,
		Date:        "2025-01-02",
		Description: "Synthetic 5W-30",
		Mileage:     Ptr("42000"),
		Cost:        Ptr("49.90"),
	}

	b, err := json.Marshal(e)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "id-1", m["id"])
	assert.Equal(t, "2025-01-02T03:04:05Z", m["timestamp"])
	assert.Equal(t, "oil-change", m["type"])
	assert.Equal(t, "42000", m["mileage"])
	assert.Contains(t, m, "notes")
	assert.Nil(t, m["notes"])
	assert.Contains(t, m, "nextDue")
	assert.Nil(t, m["nextDue"])

	var back MaintenanceEntry
	require.NoError(t, json.Unmarshal(b, &back))
	require.Equal(t, e, back)
}

func TestMaintenanceEntry_Matches(t *testing.T) {
	e := MaintenanceEntry{Type: TypeBrakeService, Description: "Front PADS", Notes: Ptr("Squeaky rotor")}

	assert.True(t, e.Matches("pads"))
	assert.True(t, e.Matches("ROTOR"))
	assert.True(t, e.Matches("brake"))
	assert.True(t, e.Matches(""))
	assert.False(t, e.Matches("oil"))

	noNotes := MaintenanceEntry{Type: TypeOther, Description: "wash"}
	assert.False(t, noNotes.Matches("rotor"))
}

func TestMaintenanceEntry_DueAt(t *testing.T) {
	got, ok := MaintenanceEntry{NextDue: Ptr("2025-07-02")}.DueAt()
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC), got)

	_, ok = MaintenanceEntry{}.DueAt()
	assert.False(t, ok)
	_, ok = MaintenanceEntry{NextDue: Ptr("")}.DueAt()
	assert.False(t, ok)
	_, ok = MaintenanceEntry{NextDue: Ptr("next spring")}.DueAt()
	assert.False(t, ok)
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDay("2024-02-29T10:30:00.000Z")
	require.NoError(t, err)
	assert.Equal(t, 10, d.Hour())

	_, err = ParseDay("29/02/2024")
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestFormatDay(t *testing.T) {
	assert.Equal(t, "Mar 5, 2024", FormatDay("2024-03-05"))
	assert.Equal(t, "Dec 31, 2023", FormatDay("2023-12-31"))
	assert.Equal(t, "Invalid Date", FormatDay("garbage"))
}

func TestMaintenanceType_Lookups(t *testing.T) {
	cases := []struct {
		typ  MaintenanceType
		icon string
		name string
	}{
		{TypeOilChange, "fas fa-oil-can", "Oil Change"},
		{TypeTireRotation, "fas fa-sync-alt", "Tire Rotation"},
		{TypeBrakeService, "fas fa-hand-paper", "Brake Service"},
		{TypeInspection, "fas fa-search", "Inspection"},
		{TypeRepair, "fas fa-wrench", "Repair"},
		{TypeOther, "fas fa-tools", "Other"},
		{"detailing", "fas fa-tools", "Other"},
	}
	for _, tc := range cases {
		t.Run(string(tc.typ), func(t *testing.T) {
			assert.Equal(t, tc.icon, tc.typ.Icon())
			assert.Equal(t, tc.name, tc.typ.DisplayName())
		})
	}
	assert.False(t, MaintenanceType("detailing").Valid())
	assert.Len(t, MaintenanceTypes(), 6)
}

func TestParseMaintenanceType(t *testing.T) {
	got, err := ParseMaintenanceType("oil-change")
	require.NoError(t, err)
	assert.Equal(t, TypeOilChange, got)

	got, err = ParseMaintenanceType(" tire rotation ")
	require.NoError(t, err)
	assert.Equal(t, TypeTireRotation, got)

	_, err = ParseMaintenanceType("paint")
	require.ErrorIs(t, err, ErrUnknownType)
}

func TestThemeAndLanguage(t *testing.T) {
	for _, s := range []string{"light", "dark", "system"} {
		_, err := ParseTheme(s)
		require.NoError(t, err)
	}
	_, err := ParseTheme("blue")
	require.ErrorIs(t, err, ErrInvalidTheme)

	for _, s := range []string{"en", "ar", "system"} {
		_, err := ParseLanguage(s)
		require.NoError(t, err)
	}
	_, err = ParseLanguage("fr")
	require.ErrorIs(t, err, ErrInvalidLanguage)

	p := DefaultProfile()
	assert.Equal(t, "My Car", p.CarName)
	assert.Equal(t, ThemeSystem, p.Theme)
	assert.Equal(t, LanguageSystem, p.Language)
	assert.True(t, p.FirstRun)
}
