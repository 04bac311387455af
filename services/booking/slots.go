package booking

// slotCatalog is the fixed set of bookable start times, ascending. There is no
// 13:00 slot, the hour is kept free for lunch.
var slotCatalog = []string{
	"09:00", "10:00", "11:00", "12:00",
	"14:00", "15:00", "16:00", "17:00",
}

// SlotCatalog returns a copy of the daily start-time catalog.
func SlotCatalog() []string {
	out := make([]string, len(slotCatalog))
	copy(out, slotCatalog)
	return out
}

// availableSlots filters the catalog against the start times already taken,
// preserving catalog order.
func availableSlots(taken map[string]bool) []string {
	slots := make([]string, 0, len(slotCatalog))
	for _, s := range slotCatalog {
		if !taken[s] {
			slots = append(slots, s)
		}
	}
	return slots
}
