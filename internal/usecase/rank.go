package usecase

import "sort"

// Rated is implemented by catalog records carrying a review aggregate.
// Records without reviews report (0, 0).
type Rated interface {
	Rating() (average float64, count int)
}

// Badge marks how strongly an item should be promoted in chat replies.
type Badge int

const (
	BadgeNone Badge = iota
	BadgeGoodRating
	BadgeHighlyRecommended
)

// RankedView is an ordered, optionally truncated view over catalog items.
// Omitted records how many items were cut by the limit.
type RankedView[T Rated] struct {
	Items   []T
	Omitted int
}

// Rank orders items by (average rating, rating count) descending. The sort
// is stable: equal keys keep their upstream order. A limit <= 0 disables
// truncation. The input slice is never mutated.
func Rank[T Rated](items []T, limit int) RankedView[T] {
	ranked := make([]T, len(items))
	copy(ranked, items)

	sort.SliceStable(ranked, func(i, j int) bool {
		avgI, countI := ranked[i].Rating()
		avgJ, countJ := ranked[j].Rating()
		if avgI != avgJ {
			return avgI > avgJ
		}
		return countI > countJ
	})

	view := RankedView[T]{Items: ranked}
	if limit > 0 && len(ranked) > limit {
		view.Omitted = len(ranked) - limit
		view.Items = ranked[:limit]
	}
	return view
}

// ItemBadge classifies an item by its review aggregate.
func ItemBadge(item Rated) Badge {
	avg, count := item.Rating()
	switch {
	case avg >= 4.5 && count >= 3:
		return BadgeHighlyRecommended
	case avg >= 4.0 && count >= 1:
		return BadgeGoodRating
	default:
		return BadgeNone
	}
}
