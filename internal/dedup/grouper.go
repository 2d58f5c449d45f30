package dedup

import "image"

// Record holds everything the pipeline computed for one input image.
// Records are created once per scan and never mutated afterwards.
type Record struct {
	Name      string
	Image     image.Image
	Hash      *Fingerprint
	Sharpness float64
}

// Group is a set of batch indices presumed to be duplicates of each
// other. Groups always have at least two members; an index belongs to at
// most one group.
type Group struct {
	Indices []int
}

// GroupDuplicates partitions a batch into duplicate groups in two phases:
// exact-fingerprint bucketing, then a single-link threshold merge over the
// remaining singleton fingerprints. Iteration follows batch insertion
// order throughout, so membership and member order are reproducible for a
// given input order. Records without a fingerprint never group.
func GroupDuplicates(records []*Record, threshold float64) []*Group {
	// Phase 1: bucket by exact fingerprint, keys in first-seen order.
	keys := make([]string, 0, len(records))
	buckets := make(map[string][]int, len(records))
	for i, rec := range records {
		if rec.Hash == nil {
			continue
		}
		key := rec.Hash.String()
		if _, seen := buckets[key]; !seen {
			keys = append(keys, key)
		}
		buckets[key] = append(buckets[key], i)
	}

	var groups []*Group
	var singles []int
	for _, key := range keys {
		indices := buckets[key]
		if len(indices) >= 2 {
			groups = append(groups, &Group{Indices: indices})
		} else {
			singles = append(singles, indices[0])
		}
	}

	// Phase 2: single-link merge. A candidate joins the group as soon as
	// it is similar to any member already pulled in, so chains of
	// pairwise-similar images collapse into one group.
	merged := make(map[int]bool, len(singles))
	for i, seed := range singles {
		if merged[seed] {
			continue
		}
		members := []int{seed}
		for _, candidate := range singles[i+1:] {
			if merged[candidate] {
				continue
			}
			for _, member := range members {
				if Similarity(records[member].Hash, records[candidate].Hash) >= threshold {
					members = append(members, candidate)
					merged[candidate] = true
					break
				}
			}
		}
		if len(members) >= 2 {
			merged[seed] = true
			groups = append(groups, &Group{Indices: members})
		}
	}

	return groups
}
