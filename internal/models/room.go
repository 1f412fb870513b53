package models

import (
	"github.com/shopspring/decimal"
)

// RoomType identifies one of the three configurable room types
type RoomType string

const (
	RoomTypeSingle RoomType = "single"
	RoomTypeDouble RoomType = "double"
	RoomTypeSuite  RoomType = "suite"
)

// AllRoomTypes lists the room types in display order
var AllRoomTypes = []RoomType{RoomTypeSingle, RoomTypeDouble, RoomTypeSuite}

// IsValidRoomType reports whether t is a known room type
func IsValidRoomType(t RoomType) bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite:
		return true
	}
	return false
}

// RoomRow represents one room-type line of a homestay's room configuration.
// At most one row exists per room type.
type RoomRow struct {
	ID          string          `bson:"id" json:"id"`
	RoomType    RoomType        `bson:"roomType" json:"roomType"`
	Quantity    int             `bson:"quantity" json:"quantity"`
	BedsPerRoom int             `bson:"bedsPerRoom" json:"bedsPerRoom"`
	NightlyRate decimal.Decimal `bson:"nightlyRate" json:"nightlyRate"`
	AreaSqM     decimal.Decimal `bson:"areaSqM,omitempty" json:"areaSqM,omitempty"`
}

// Beds returns the number of beds this row contributes
func (r RoomRow) Beds() int {
	return r.Quantity * r.BedsPerRoom
}

// TotalRooms sums quantities across rows
func TotalRooms(rows []RoomRow) int {
	total := 0
	for _, r := range rows {
		total += r.Quantity
	}
	return total
}

// TotalBeds sums quantity*bedsPerRoom across rows
func TotalBeds(rows []RoomRow) int {
	total := 0
	for _, r := range rows {
		total += r.Beds()
	}
	return total
}

// HighestNightlyRate returns the highest declared nightly rate among rows
// with at least one room. Zero when no row qualifies.
func HighestNightlyRate(rows []RoomRow) decimal.Decimal {
	highest := decimal.Zero
	for _, r := range rows {
		if r.Quantity > 0 && r.NightlyRate.GreaterThan(highest) {
			highest = r.NightlyRate
		}
	}
	return highest
}
