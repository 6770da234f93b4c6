package models

import (
	"errors"
	"strings"
)

// MaintenanceType classifies an entry.
type MaintenanceType string

const (
	TypeOilChange    MaintenanceType = "oil-change"
	TypeTireRotation MaintenanceType = "tire-rotation"
	TypeBrakeService MaintenanceType = "brake-service"
	TypeInspection   MaintenanceType = "inspection"
	TypeRepair       MaintenanceType = "repair"
	TypeOther        MaintenanceType = "other"
)

var ErrUnknownType = errors.New("unknown maintenance type")

var allTypes = []MaintenanceType{
	TypeOilChange,
	TypeTireRotation,
	TypeBrakeService,
	TypeInspection,
	TypeRepair,
	TypeOther,
}

var typeIcons = map[MaintenanceType]string{
	TypeOilChange:    "fas fa-oil-can",
	TypeTireRotation: "fas fa-sync-alt",
	TypeBrakeService: "fas fa-hand-paper",
	TypeInspection:   "fas fa-search",
	TypeRepair:       "fas fa-wrench",
	TypeOther:        "fas fa-tools",
}

var typeNames = map[MaintenanceType]string{
	TypeOilChange:    "Oil Change",
	TypeTireRotation: "Tire Rotation",
	TypeBrakeService: "Brake Service",
	TypeInspection:   "Inspection",
	TypeRepair:       "Repair",
	TypeOther:        "Other",
}

// MaintenanceTypes lists the known types in menu order.
func MaintenanceTypes() []MaintenanceType {
	out := make([]MaintenanceType, len(allTypes))
	copy(out, allTypes)
	return out
}

// Valid reports whether t is one of the known types.
func (t MaintenanceType) Valid() bool {
	_, ok := typeNames[t]
	return ok
}

// Icon returns the icon class for t; unknown types share the "other" icon.
func (t MaintenanceType) Icon() string {
	if icon, ok := typeIcons[t]; ok {
		return icon
	}
	return typeIcons[TypeOther]
}

// DisplayName returns the human-readable name for t.
func (t MaintenanceType) DisplayName() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return typeNames[TypeOther]
}

// ParseMaintenanceType accepts a type key ("oil-change") or its display name
// ("Oil Change"), case-insensitively.
func ParseMaintenanceType(s string) (MaintenanceType, error) {
	s = strings.TrimSpace(s)
	for _, t := range allTypes {
		if strings.EqualFold(s, string(t)) || strings.EqualFold(s, typeNames[t]) {
			return t, nil
		}
	}
	return "", ErrUnknownType
}
