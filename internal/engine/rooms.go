// Package engine implements the fee computation and category-compliance
// rules for homestay registration applications: the room configuration
// model with its capacity clamps, tariff-band category validation, the
// discount pipeline of the registration fee, and the per-step gate of the
// application wizard. Everything here is pure and synchronous; callers may
// re-run any computation on every change event.
package engine

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/himtourism/homestay-portal/internal/models"
)

// Policy ceilings on a homestay's size. A single room may not sleep more
// than MaxBedsPerRoom guests.
const (
	MaxRoomsAllowed = 6
	MaxBedsAllowed  = 12
	MaxBedsPerRoom  = 6
)

// DefaultBedsFor returns the seed bed count for a newly added room type
func DefaultBedsFor(t models.RoomType) int {
	switch t {
	case models.RoomTypeDouble:
		return 2
	case models.RoomTypeSuite:
		return 4
	default:
		return 1
	}
}

// RoomRowPatch carries the fields of an UpdateRow edit. Nil fields are
// left unchanged.
type RoomRowPatch struct {
	Quantity    *int             `json:"quantity,omitempty"`
	BedsPerRoom *int             `json:"bedsPerRoom,omitempty"`
	NightlyRate *decimal.Decimal `json:"nightlyRate,omitempty"`
	AreaSqM     *decimal.Decimal `json:"areaSqM,omitempty"`
}

// RoomConfiguration maintains the set of room-type rows of a draft
// application and keeps the global capacity invariants satisfied after
// every mutation. Invalid edits are clamped into range, never rejected:
// the configuration is always representable.
type RoomConfiguration struct {
	rows []models.RoomRow
}

// NewRoomConfiguration returns a configuration seeded with one empty
// single-room row.
func NewRoomConfiguration() *RoomConfiguration {
	c := &RoomConfiguration{}
	c.ResetAll()
	return c
}

// RestoreRoomConfiguration rebuilds a configuration from persisted rows,
// re-clamping them so a draft saved under older policy limits still loads.
func RestoreRoomConfiguration(rows []models.RoomRow) *RoomConfiguration {
	c := &RoomConfiguration{rows: make([]models.RoomRow, len(rows))}
	copy(c.rows, rows)
	for i := range c.rows {
		if c.rows[i].ID == "" {
			c.rows[i].ID = uuid.NewString()
		}
	}
	c.clampAll()
	return c
}

// Rows returns a copy of the current row set
func (c *RoomConfiguration) Rows() []models.RoomRow {
	out := make([]models.RoomRow, len(c.rows))
	copy(out, c.rows)
	return out
}

// TotalRooms sums quantities across all rows
func (c *RoomConfiguration) TotalRooms() int { return models.TotalRooms(c.rows) }

// TotalBeds sums quantity*bedsPerRoom across all rows
func (c *RoomConfiguration) TotalBeds() int { return models.TotalBeds(c.rows) }

// HighestNightlyRate returns the highest rate among rows with rooms
func (c *RoomConfiguration) HighestNightlyRate() decimal.Decimal {
	return models.HighestNightlyRate(c.rows)
}

// AddRow appends a row for the given room type with the type's default bed
// count and no rate. It is a no-op when a row for the type already exists,
// when the type is unknown, or when all three types are present.
func (c *RoomConfiguration) AddRow(t models.RoomType) bool {
	if !models.IsValidRoomType(t) {
		return false
	}
	if len(c.rows) >= len(models.AllRoomTypes) {
		return false
	}
	for _, r := range c.rows {
		if r.RoomType == t {
			return false
		}
	}
	c.rows = append(c.rows, models.RoomRow{
		ID:          uuid.NewString(),
		RoomType:    t,
		Quantity:    0,
		BedsPerRoom: DefaultBedsFor(t),
		NightlyRate: decimal.Zero,
	})
	c.clampAll()
	return true
}

// UpdateRow applies the patch to the identified row, then re-clamps every
// row against the global capacity limits. Returns false when the row does
// not exist.
func (c *RoomConfiguration) UpdateRow(rowID string, patch RoomRowPatch) bool {
	idx := -1
	for i, r := range c.rows {
		if r.ID == rowID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	row := &c.rows[idx]
	if patch.Quantity != nil {
		row.Quantity = *patch.Quantity
	}
	if patch.BedsPerRoom != nil {
		row.BedsPerRoom = *patch.BedsPerRoom
	}
	if patch.NightlyRate != nil {
		if patch.NightlyRate.IsNegative() {
			row.NightlyRate = decimal.Zero
		} else {
			row.NightlyRate = *patch.NightlyRate
		}
	}
	if patch.AreaSqM != nil {
		if patch.AreaSqM.IsNegative() {
			row.AreaSqM = decimal.Zero
		} else {
			row.AreaSqM = *patch.AreaSqM
		}
	}
	c.clampAll()
	return true
}

// RemoveRow deletes the identified row. An empty row set is permitted.
func (c *RoomConfiguration) RemoveRow(rowID string) bool {
	for i, r := range c.rows {
		if r.ID == rowID {
			c.rows = append(c.rows[:i], c.rows[i+1:]...)
			c.clampAll()
			return true
		}
	}
	return false
}

// ResetAll clears the configuration back to a single empty single-room row
func (c *RoomConfiguration) ResetAll() {
	c.rows = []models.RoomRow{{
		ID:          uuid.NewString(),
		RoomType:    models.RoomTypeSingle,
		Quantity:    0,
		BedsPerRoom: DefaultBedsFor(models.RoomTypeSingle),
		NightlyRate: decimal.Zero,
	}}
}

// clampAll re-derives every row's quantity and bedsPerRoom from one
// consistent snapshot of the row set. Each row's available capacity is
// computed from the snapshot's other rows, so the result does not depend
// on iteration order; clamped values are committed only after all rows
// have been derived.
func (c *RoomConfiguration) clampAll() {
	snapshot := make([]models.RoomRow, len(c.rows))
	copy(snapshot, c.rows)

	for i := range c.rows {
		roomsElsewhere := 0
		bedsElsewhere := 0
		for j, s := range snapshot {
			if j == i {
				continue
			}
			roomsElsewhere += s.Quantity
			bedsElsewhere += s.Quantity * s.BedsPerRoom
		}

		roomsAvailable := MaxRoomsAllowed - roomsElsewhere
		if roomsAvailable < 0 {
			roomsAvailable = 0
		}
		bedsAvailable := MaxBedsAllowed - bedsElsewhere
		if bedsAvailable < 0 {
			bedsAvailable = 0
		}

		row := &c.rows[i]
		quantity := clampInt(snapshot[i].Quantity, 0, roomsAvailable)
		if quantity > bedsAvailable {
			quantity = bedsAvailable
		}

		beds := snapshot[i].BedsPerRoom
		if quantity <= 0 || bedsAvailable <= 0 {
			beds = clampInt(beds, 1, MaxBedsPerRoom)
		} else {
			maxBeds := bedsAvailable / quantity
			if maxBeds > MaxBedsPerRoom {
				maxBeds = MaxBedsPerRoom
			}
			if maxBeds < 1 {
				maxBeds = 1
			}
			beds = clampInt(beds, 1, maxBeds)
		}

		row.Quantity = quantity
		row.BedsPerRoom = beds
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
