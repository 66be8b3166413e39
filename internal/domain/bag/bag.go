package bag

import (
	"glisten-lounge/internal/domain/catalog"
)

// Item is the snapshot a visitor drops into their bag: the catalog fields
// frozen at add-time, with the price already resolved through any promotion.
// JSON field names match the persisted record layout.
type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Category string `json:"category"`
	Duration string `json:"duration"`
	Image    string `json:"image"`
}

// SnapshotItem freezes a catalog item into a bag line. The duration slot
// doubles as the size label for products.
func SnapshotItem(it *catalog.Item) Item {
	duration := it.Duration
	if it.Kind == catalog.KindProduct {
		duration = it.Size
	}
	return Item{
		ID:       it.ID.String(),
		Name:     it.Name,
		Price:    catalog.EffectivePrice(it),
		Category: it.Category,
		Duration: duration,
		Image:    it.Image,
	}
}

// Items is the ordered bag contents. Order is insertion order; identity is
// the item ID, at most one line per ID.
type Items []Item

func (items Items) Contains(id string) bool {
	for _, it := range items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// Add appends the snapshot unless its ID is empty or already present.
// The returned bool reports whether the collection changed.
func (items Items) Add(it Item) (Items, bool) {
	if it.ID == "" || items.Contains(it.ID) {
		return items, false
	}
	return append(items, it), true
}

// Remove drops the line with the given ID; absent IDs are a no-op.
func (items Items) Remove(id string) (Items, bool) {
	for i, it := range items {
		if it.ID == id {
			out := make(Items, 0, len(items)-1)
			out = append(out, items[:i]...)
			out = append(out, items[i+1:]...)
			return out, true
		}
	}
	return items, false
}

// Total sums the parsed line prices. Lines whose price does not parse
// contribute nothing; the bag never refuses a checkout over a bad string.
func (items Items) Total() float64 {
	var total float64
	for _, it := range items {
		if v, ok := catalog.ParsePrice(it.Price); ok {
			total += v
		}
	}
	return total
}
