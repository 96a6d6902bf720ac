package sync

// Plan is the three-way diff between the incoming feed and the stored catalog.
// The three sets are disjoint by barcode.
type Plan struct {
	ToCreate  []FeedRecord
	ToUpdate  []FeedRecord
	ToDelete  []string // barcodes present in the store but absent from the feed
	Malformed int      // feed records rejected for missing a barcode
}

// IsEmpty reports whether applying the plan would change nothing.
func (p Plan) IsEmpty() bool {
	return len(p.ToCreate) == 0 && len(p.ToUpdate) == 0 && len(p.ToDelete) == 0
}

// BuildPlan partitions the feed against the set of stored barcodes.
// When a barcode repeats within one feed, the last occurrence in feed order
// wins. Records without a barcode are counted, not fatal.
func BuildPlan(feed []FeedRecord, storedBarcodes []string) Plan {
	var plan Plan

	byBarcode := make(map[string]FeedRecord, len(feed))
	order := make([]string, 0, len(feed))
	for _, rec := range feed {
		if rec.Barcode == "" {
			plan.Malformed++
			continue
		}
		if _, seen := byBarcode[rec.Barcode]; !seen {
			order = append(order, rec.Barcode)
		}
		byBarcode[rec.Barcode] = rec
	}

	stored := make(map[string]struct{}, len(storedBarcodes))
	for _, b := range storedBarcodes {
		stored[b] = struct{}{}
	}

	for _, barcode := range order {
		rec := byBarcode[barcode]
		if _, exists := stored[barcode]; exists {
			plan.ToUpdate = append(plan.ToUpdate, rec)
		} else {
			plan.ToCreate = append(plan.ToCreate, rec)
		}
	}

	for _, barcode := range storedBarcodes {
		if _, keep := byBarcode[barcode]; !keep {
			plan.ToDelete = append(plan.ToDelete, barcode)
		}
	}

	return plan
}
