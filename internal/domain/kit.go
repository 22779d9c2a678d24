package domain

import "time"

// KitTier holds the configured capacity and base efficiency shared by every
// repair kit of that tier.
type KitTier struct {
	Name       string  `json:"name" validate:"required"`
	Capacity   float64 `json:"capacity" validate:"gt=0"`
	Efficiency float64 `json:"efficiency" validate:"gte=0,lte=1"`
}

// RepairKit is a persisted repair kit instance. Storage is the encoded
// ledger: material shorthand key to stored amount.
type RepairKit struct {
	ID        string             `json:"kit_id" db:"kit_id"`
	Tier      string             `json:"tier" db:"tier"`
	Storage   map[string]float64 `json:"storage" db:"storage"`
	CreatedAt time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" db:"updated_at"`
}
