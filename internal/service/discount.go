package service

import (
	"sort"

	"github.com/andreeabea/FoodDeliveryAppServer/models"
)

// SelectDiscount picks the applicable tier of a restaurant's discount
// ladder: the tier with the largest minimum item count not exceeding
// itemCount. Returns false when the ladder is empty or itemCount is below
// the smallest threshold. Ties on the threshold resolve to the tier with
// the higher id.
func SelectDiscount(discounts []models.Discount, itemCount int) (models.Discount, bool) {
	if len(discounts) == 0 {
		return models.Discount{}, false
	}

	sorted := make([]models.Discount, len(discounts))
	copy(sorted, discounts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].MinItemCount != sorted[j].MinItemCount {
			return sorted[i].MinItemCount < sorted[j].MinItemCount
		}
		return sorted[i].ID < sorted[j].ID
	})

	if itemCount < sorted[0].MinItemCount {
		return models.Discount{}, false
	}

	applicable := sorted[0]
	for _, discount := range sorted[1:] {
		if discount.MinItemCount > itemCount {
			break
		}
		applicable = discount
	}
	return applicable, true
}
