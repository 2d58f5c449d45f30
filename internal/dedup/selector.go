package dedup

import "sort"

// GroupReport is caller-facing metadata about one resolved duplicate group.
type GroupReport struct {
	Members     []string
	Winner      string
	WinnerScore float64
	Size        int
	Discarded   []string
}

// Selection is the outcome of reducing duplicate groups to their sharpest
// member. Keep lists every retained batch index in original batch order.
type Selection struct {
	Keep      []int
	Winners   []int
	Ungrouped []int
	Reports   []GroupReport
}

// SelectBest picks the sharpest member of every group and passes all
// ungrouped indices through unchanged. On an exact score tie the earliest
// member in group order wins, keeping the result deterministic.
func SelectBest(records []*Record, groups []*Group) *Selection {
	sel := &Selection{}
	grouped := make(map[int]bool)

	for _, g := range groups {
		best := g.Indices[0]
		for _, idx := range g.Indices[1:] {
			if records[idx].Sharpness > records[best].Sharpness {
				best = idx
			}
		}

		report := GroupReport{
			Winner:      records[best].Name,
			WinnerScore: records[best].Sharpness,
			Size:        len(g.Indices),
		}
		for _, idx := range g.Indices {
			grouped[idx] = true
			report.Members = append(report.Members, records[idx].Name)
			if idx != best {
				report.Discarded = append(report.Discarded, records[idx].Name)
			}
		}

		sel.Winners = append(sel.Winners, best)
		sel.Reports = append(sel.Reports, report)
	}

	for i := range records {
		if !grouped[i] {
			sel.Ungrouped = append(sel.Ungrouped, i)
		}
	}

	sel.Keep = make([]int, 0, len(sel.Winners)+len(sel.Ungrouped))
	sel.Keep = append(sel.Keep, sel.Winners...)
	sel.Keep = append(sel.Keep, sel.Ungrouped...)
	sort.Ints(sel.Keep)

	return sel
}
