package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierBoundaries(t *testing.T) {
	// Exact boundary values: 50% is already the middle tier and 80% is
	// already the top tier.
	assert.Equal(t, TierLow, TierFor(0))
	assert.Equal(t, TierLow, TierFor(49.99))
	assert.Equal(t, TierMid, TierFor(50))
	assert.Equal(t, TierMid, TierFor(79.99))
	assert.Equal(t, TierHigh, TierFor(80))
	assert.Equal(t, TierHigh, TierFor(100))
}

func TestNewProgress(t *testing.T) {
	p := NewProgress(5, 10)
	assert.Equal(t, 5, p.Index)
	assert.Equal(t, 10, p.Total)
	assert.InDelta(t, 50.0, p.Percent, 0.001)
	assert.Equal(t, TierMid, p.Tier)

	p = NewProgress(8, 10)
	assert.Equal(t, TierHigh, p.Tier)

	p = NewProgress(4, 10)
	assert.Equal(t, TierLow, p.Tier)

	// Empty scans must not divide by zero.
	p = NewProgress(0, 0)
	assert.Equal(t, 0.0, p.Percent)
}

func TestTierString(t *testing.T) {
	assert.Equal(t, "red", TierLow.String())
	assert.Equal(t, "yellow", TierMid.String())
	assert.Equal(t, "green", TierHigh.String())
}

func TestCheckStateString(t *testing.T) {
	assert.Equal(t, "unchecked", Unchecked.String())
	assert.Equal(t, "checked", Checked.String())
	assert.Equal(t, "partial", PartiallyChecked.String())
}

func TestFileRecordBasename(t *testing.T) {
	r := FileRecord{Path: "/data/parcels/parcels.shp", Name: "parcels.shp"}
	assert.Equal(t, "parcels.shp", r.Basename())
}
