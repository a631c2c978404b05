package analytics

import "habitdash/internal/models"

type tier struct {
	name  string
	color string
}

var tiers = [...]tier{
	{"BRONZE", "#cd7f32"},
	{"SILVER", "#c0c0c0"},
	{"GOLD", "#ffd700"},
	{"DIAMOND", "#4f8ff7"},
	{"PLATINUM", "#9333ea"},
}

var numerals = [...]string{"III", "II", "I"}

// tierThresholds[i] is the minimum point total for tiers[i/3] numerals[i%3].
var tierThresholds = [...]int{
	0, 100, 250,
	500, 900, 1400,
	2000, 2700, 3500,
	4400, 5400, 6500,
	7700, 9000, 10400,
}

// RankForPoints classifies a point total. Totals below zero clamp to
// BRONZE III and totals past the table stay at PLATINUM I.
func RankForPoints(points int) models.Rank {
	idx := 0
	for i, threshold := range tierThresholds {
		if points >= threshold {
			idx = i
		}
	}
	t := tiers[idx/len(numerals)]
	return models.Rank{
		Tier:    t.name,
		Numeral: numerals[idx%len(numerals)],
		Color:   t.color,
		Points:  points,
		Ordinal: idx,
	}
}
