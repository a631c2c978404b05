package analytics

import "habitdash/internal/models"

// PartitionBadges filters badges to category ("all" keeps every badge) and
// splits them into earned and not-yet-earned, preserving order.
func PartitionBadges(badges []models.Badge, category string) (earned, locked []models.Badge) {
	earned = make([]models.Badge, 0)
	locked = make([]models.Badge, 0)
	for _, b := range badges {
		if category != "" && category != models.BadgeCategoryAll && b.Category != category {
			continue
		}
		if b.Earned {
			earned = append(earned, b)
		} else {
			locked = append(locked, b)
		}
	}
	return earned, locked
}
