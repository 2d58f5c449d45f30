package pdf

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePageRanges parses a 1-based page expression like "1-3,7,10-12" into
// 0-based page indices. Duplicates are removed while keeping the order of
// first mention. maxPages bounds the valid range. A blank expression yields
// nil, which downstream consumers read as "all pages".
func ParsePageRanges(expr string, maxPages int) ([]int, error) {
	var indices []int
	seen := make(map[int]bool)

	add := func(page int) error {
		if page < 1 || page > maxPages {
			return fmt.Errorf("page %d out of range 1-%d", page, maxPages)
		}
		if !seen[page] {
			seen[page] = true
			indices = append(indices, page-1)
		}
		return nil
	}

	for _, token := range strings.Split(expr, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if first, rest, isRange := strings.Cut(token, "-"); isRange {
			start, err := strconv.Atoi(strings.TrimSpace(first))
			if err != nil {
				return nil, fmt.Errorf("invalid page range %q", token)
			}
			end, err := strconv.Atoi(strings.TrimSpace(rest))
			if err != nil {
				return nil, fmt.Errorf("invalid page range %q", token)
			}
			if start > end {
				return nil, fmt.Errorf("invalid page range %q: start after end", token)
			}
			for page := start; page <= end; page++ {
				if err := add(page); err != nil {
					return nil, err
				}
			}
			continue
		}

		page, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("invalid page number %q", token)
		}
		if err := add(page); err != nil {
			return nil, err
		}
	}

	return indices, nil
}

// PageSelection converts 0-based page indices into the 1-based selection
// strings the pdfcpu API expects. A nil input selects all pages.
func PageSelection(pages []int) []string {
	if pages == nil {
		return nil
	}
	sel := make([]string, 0, len(pages))
	for _, p := range pages {
		sel = append(sel, strconv.Itoa(p+1))
	}
	return sel
}
