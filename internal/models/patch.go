package models

import "time"

// Optional carries a nullable field through a partial update.
// Set=false keeps the stored value; Set=true with a nil Value clears it.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Keep leaves the field untouched.
func Keep[T any]() Optional[T] { return Optional[T]{} }

// Clear sets the field to null.
func Clear[T any]() Optional[T] { return Optional[T]{Set: true} }

// Overwrite replaces the field with v.
func Overwrite[T any](v T) Optional[T] { return Optional[T]{Set: true, Value: &v} }

func (o Optional[T]) apply(dst **T) {
	if !o.Set {
		return
	}
	if o.Value == nil {
		*dst = nil
		return
	}
	v := *o.Value
	*dst = &v
}

// EntryFields is the caller-supplied part of a new entry. The store assigns
// the id and the creation timestamp.
type EntryFields struct {
	Type        MaintenanceType
	Date        string
	Description string
	Notes       *string
	Mileage     *string
	Cost        *string
	NextDue     *string
}

// Entry builds the stored record for f.
func (f EntryFields) Entry(id string, ts time.Time) MaintenanceEntry {
	return MaintenanceEntry{
		ID:          id,
		Timestamp:   ts.UTC(),
		Type:        f.Type,
		Date:        f.Date,
		Description: f.Description,
		Notes:       clonePtr(f.Notes),
		Mileage:     clonePtr(f.Mileage),
		Cost:        clonePtr(f.Cost),
		NextDue:     clonePtr(f.NextDue),
	}
}

// EntryPatch is a partial update. Identity and creation time are not part of
// it, so a merge can never change them.
type EntryPatch struct {
	Type        *MaintenanceType
	Date        *string
	Description *string
	Notes       Optional[string]
	Mileage     Optional[string]
	Cost        Optional[string]
	NextDue     Optional[string]
}

// Empty reports whether the patch changes nothing.
func (p EntryPatch) Empty() bool {
	return p.Type == nil && p.Date == nil && p.Description == nil &&
		!p.Notes.Set && !p.Mileage.Set && !p.Cost.Set && !p.NextDue.Set
}

// Apply returns e with the patch merged in.
func (p EntryPatch) Apply(e MaintenanceEntry) MaintenanceEntry {
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	p.Notes.apply(&e.Notes)
	p.Mileage.apply(&e.Mileage)
	p.Cost.apply(&e.Cost)
	p.NextDue.apply(&e.NextDue)
	return e
}

func clonePtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
