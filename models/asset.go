package models

import (
	"time"

	"github.com/google/uuid"
)

type AssetStatus string

const (
	AssetAvailable   AssetStatus = "available"
	AssetInUse       AssetStatus = "in_use"
	AssetMaintenance AssetStatus = "maintenance"
	AssetLost        AssetStatus = "lost"
	AssetRetired     AssetStatus = "retired"
)

// Asset is the persisted row joined with the holder's display name.
// EmployeeName comes from the left join on employees and is flattened into
// the row for display; AssignedTo stays the raw reference.
//
// AssignedTo is non-nil only while the asset is in_use, but that pairing is
// an intended invariant, not an enforced one: mark-in-use does not pick a
// holder yet, so in_use rows with a nil holder are possible.
type Asset struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	AssetTag     string      `json:"asset_tag" db:"asset_tag"`
	Name         string      `json:"name" db:"name"`
	Category     *string     `json:"category" db:"category"`
	SerialNumber *string     `json:"serial_number" db:"serial_number"`
	Status       AssetStatus `json:"status" db:"status"`
	Location     *string     `json:"location" db:"location"`
	AssignedTo   *uuid.UUID  `json:"assigned_to" db:"assigned_to"`
	AssignedAt   *time.Time  `json:"assigned_at" db:"assigned_at"`
	LastCheckout *time.Time  `json:"last_checkout" db:"last_checkout"`
	LastCheckin  *time.Time  `json:"last_checkin" db:"last_checkin"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	EmployeeName *string     `json:"employee_name" db:"employee_name"`
}

// AssetStats is the store-side aggregate for the dashboard cards. Total
// always equals the sum of the five per-status counts.
type AssetStats struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	InUse       int `json:"in_use"`
	Maintenance int `json:"maintenance"`
	Lost        int `json:"lost"`
	Retired     int `json:"retired"`
}
