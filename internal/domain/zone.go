package domain

import "time"

// DeliveryZone is an admin-authored delivery area keyed by zip codes.
// A zip code should belong to at most one active zone; when zones overlap,
// resolution takes the first match in list order.
type DeliveryZone struct {
	ID                 string
	Name               string
	ZipCodes           []string
	Fee                int
	MinimumOrderAmount int
	EstimatedTime      string
	Active             bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Covers reports whether zip is in the zone's zip code set. Exact string
// match only; the UI digit-filters input before it reaches this layer.
func (z DeliveryZone) Covers(zip string) bool {
	for _, code := range z.ZipCodes {
		if code == zip {
			return true
		}
	}
	return false
}

type PickupLocation struct {
	ID            string
	Name          string
	Address       string
	Hours         string
	EstimatedTime string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
