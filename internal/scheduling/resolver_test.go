package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tavola/internal/domain"
)

func TestResolveZone_Match(t *testing.T) {
	zones := []domain.DeliveryZone{
		{ID: "z1", ZipCodes: []string{"10001"}, Fee: 499, MinimumOrderAmount: 2000},
	}

	zone := ResolveZone("10001", zones)

	require.NotNil(t, zone)
	assert.Equal(t, "z1", zone.ID)
}

func TestResolveZone_NoMatch(t *testing.T) {
	zones := []domain.DeliveryZone{
		{ID: "z1", ZipCodes: []string{"10001"}, Fee: 499, MinimumOrderAmount: 2000},
	}

	assert.Nil(t, ResolveZone("99999", zones))
	assert.Nil(t, ResolveZone("10001", nil))
}

func TestResolveZone_FirstMatchWinsOnOverlap(t *testing.T) {
	zones := []domain.DeliveryZone{
		{ID: "z1", ZipCodes: []string{"10001", "10002"}, Fee: 499},
		{ID: "z2", ZipCodes: []string{"10002", "10003"}, Fee: 799},
	}

	zone := ResolveZone("10002", zones)

	require.NotNil(t, zone)
	assert.Equal(t, "z1", zone.ID)
}

func TestResolveZone_ExactStringMatchOnly(t *testing.T) {
	zones := []domain.DeliveryZone{
		{ID: "z1", ZipCodes: []string{"10001"}},
	}

	assert.Nil(t, ResolveZone("1001", zones))
	assert.Nil(t, ResolveZone(" 10001", zones))
	assert.Nil(t, ResolveZone("100010", zones))
}

func TestDeliveryFee_FlatRegardlessOfSubtotal(t *testing.T) {
	zone := domain.DeliveryZone{ID: "z1", Fee: 499, MinimumOrderAmount: 2000}

	// below, at, and above the minimum order amount all quote the same fee
	assert.Equal(t, 499, DeliveryFee(0, zone))
	assert.Equal(t, 499, DeliveryFee(1999, zone))
	assert.Equal(t, 499, DeliveryFee(2000, zone))
	assert.Equal(t, 499, DeliveryFee(100000, zone))
}
