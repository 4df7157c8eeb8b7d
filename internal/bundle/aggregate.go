package bundle

import "github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/models"

// Aggregate groups flat bundle rows by class_bundle_id into display bundles.
// Groups keep the order in which their id first appears, the first row of a
// group supplies the header fields and AllProducts keeps source order.
func Aggregate(rows []models.BundleRow) []models.AggregatedBundle {
	var out []models.AggregatedBundle
	at := make(map[int]int)

	for _, r := range rows {
		i, ok := at[r.ClassBundleID]
		if !ok {
			i = len(out)
			at[r.ClassBundleID] = i
			out = append(out, models.AggregatedBundle{BundleRow: r})
		}
		b := &out[i]
		b.AllProducts = append(b.AllProducts, r)
		b.TotalBundlePrice += r.TotalPrice.Float64()
		b.TotalItemsCount++
	}

	if out == nil {
		return []models.AggregatedBundle{}
	}
	return out
}

// Find returns the aggregated bundle with the given id.
func Find(bundles []models.AggregatedBundle, bundleID int) (models.AggregatedBundle, bool) {
	for _, b := range bundles {
		if b.ClassBundleID == bundleID {
			return b, true
		}
	}
	return models.AggregatedBundle{}, false
}

// Associations extracts the stored product associations of a bundle.
func Associations(b models.AggregatedBundle) []models.BundleProductRow {
	assocs := make([]models.BundleProductRow, 0, len(b.AllProducts))
	for _, r := range b.AllProducts {
		assocs = append(assocs, r.Association())
	}
	return assocs
}
