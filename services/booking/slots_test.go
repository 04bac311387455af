package booking

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotCatalog(t *testing.T) {
	slots := SlotCatalog()
	assert.Len(t, slots, 8)
	assert.True(t, sort.StringsAreSorted(slots), "catalog must be ascending")
	assert.NotContains(t, slots, "13:00", "lunch hour is not bookable")

	// Callers must not be able to mutate the catalog.
	slots[0] = "00:00"
	assert.Equal(t, "09:00", SlotCatalog()[0])
}

func TestAvailableSlotsFiltersTaken(t *testing.T) {
	taken := map[string]bool{"10:00": true, "15:00": true}
	slots := availableSlots(taken)

	assert.Len(t, slots, 6)
	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "15:00")
	assert.True(t, sort.StringsAreSorted(slots))
	for _, s := range slots {
		assert.Contains(t, SlotCatalog(), s)
	}
}

func TestAvailableSlotsFullDay(t *testing.T) {
	taken := map[string]bool{}
	for _, s := range SlotCatalog() {
		taken[s] = true
	}
	assert.Empty(t, availableSlots(taken))
}
