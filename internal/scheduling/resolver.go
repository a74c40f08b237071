package scheduling

import "tavola/internal/domain"

// ResolveZone returns the first zone whose zip code set contains zip, or
// nil when none matches. Overlapping zones are not rejected; first match
// in list order wins.
func ResolveZone(zip string, zones []domain.DeliveryZone) *domain.DeliveryZone {
	for i := range zones {
		if zones[i].Covers(zip) {
			return &zones[i]
		}
	}
	return nil
}

// DeliveryFee returns the zone's flat fee. The zone's minimum order amount
// is not checked here; callers compare it separately and surface it to the
// storefront for display only.
func DeliveryFee(subtotal int, zone domain.DeliveryZone) int {
	return zone.Fee
}
