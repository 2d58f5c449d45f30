package dedup_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rmartins/doctools/internal/dedup"
)

var _ = Describe("GroupDuplicates", func() {
	record := func(name string, words []uint64) *dedup.Record {
		return &dedup.Record{
			Name: name,
			Hash: dedup.NewFingerprintFromWords(words, 64),
		}
	}

	// Reference Hamming distances for the fabricated fingerprints:
	// {0} vs {0xFF} is 8 bits apart (similarity 0.875),
	// {0xFF} vs {0xFFFF} is 8 bits apart (similarity 0.875),
	// {0} vs {0xFFFF} is 16 bits apart (similarity 0.75).

	It("groups records with identical fingerprints without any threshold comparison", func() {
		records := []*dedup.Record{
			record("a", []uint64{0xAAAA}),
			record("b", []uint64{0x5555}),
			record("c", []uint64{0xAAAA}),
		}

		groups := dedup.GroupDuplicates(records, 1.0)

		Expect(groups).To(HaveLen(1))
		Expect(groups[0].Indices).To(Equal([]int{0, 2}))
	})

	It("returns no groups when every fingerprint is far apart", func() {
		records := []*dedup.Record{
			record("a", []uint64{0}),
			record("b", []uint64{0xFFFFFFFF}),
			record("c", []uint64{0xFFFFFFFF00000000}),
		}

		Expect(dedup.GroupDuplicates(records, 0.85)).To(BeEmpty())
	})

	It("merges near-duplicates at or above the threshold", func() {
		// {0} and {0xFF} sit exactly at similarity 0.875.
		records := []*dedup.Record{
			record("a", []uint64{0}),
			record("b", []uint64{0xFF}),
		}

		groups := dedup.GroupDuplicates(records, 0.875)
		Expect(groups).To(HaveLen(1))
		Expect(groups[0].Indices).To(Equal([]int{0, 1}))
	})

	It("excludes pairs just below the threshold", func() {
		records := []*dedup.Record{
			record("a", []uint64{0}),
			record("b", []uint64{0xFF}),
		}

		Expect(dedup.GroupDuplicates(records, 0.9)).To(BeEmpty())
	})

	It("chains transitively similar records into one group", func() {
		// a~b and b~c are 0.875, a~c only 0.75; b bridges the group.
		records := []*dedup.Record{
			record("a", []uint64{0}),
			record("b", []uint64{0xFF}),
			record("c", []uint64{0xFFFF}),
		}

		groups := dedup.GroupDuplicates(records, 0.85)
		Expect(groups).To(HaveLen(1))
		Expect(groups[0].Indices).To(Equal([]int{0, 1, 2}))
	})

	It("keeps separate clusters apart", func() {
		records := []*dedup.Record{
			record("a1", []uint64{0}),
			record("b1", []uint64{0xFFFFFFFFFFFFFFFF}),
			record("a2", []uint64{0xFF}),
			record("b2", []uint64{0xFFFFFFFFFFFFFF00}),
		}

		groups := dedup.GroupDuplicates(records, 0.85)
		Expect(groups).To(HaveLen(2))
		Expect(groups[0].Indices).To(Equal([]int{0, 2}))
		Expect(groups[1].Indices).To(Equal([]int{1, 3}))
	})

	It("does not fold singletons into exact-match buckets", func() {
		// a-near is within threshold of the {0} bucket, but the merge
		// phase only considers leftover singletons.
		records := []*dedup.Record{
			record("a", []uint64{0}),
			record("a-copy", []uint64{0}),
			record("a-near", []uint64{0xFF}),
		}

		groups := dedup.GroupDuplicates(records, 0.85)
		Expect(groups).To(HaveLen(1))
		Expect(groups[0].Indices).To(Equal([]int{0, 1}))
	})

	It("never places a record in more than one group", func() {
		records := []*dedup.Record{
			record("a", []uint64{0}),
			record("b", []uint64{0xFF}),
			record("c", []uint64{0xFF}),
			record("d", []uint64{0xFFFF}),
			record("e", []uint64{0xFFFFFFFFFFFFFFFF}),
		}

		groups := dedup.GroupDuplicates(records, 0.85)

		seen := map[int]bool{}
		for _, g := range groups {
			Expect(len(g.Indices)).To(BeNumerically(">=", 2))
			for _, idx := range g.Indices {
				Expect(seen[idx]).To(BeFalse(), "index %d appears twice", idx)
				seen[idx] = true
			}
		}
	})

	It("only groups exact matches when the threshold is 1.0", func() {
		records := []*dedup.Record{
			record("a", []uint64{0}),
			record("b", []uint64{0}),
			record("c", []uint64{1}),
		}

		groups := dedup.GroupDuplicates(records, 1.0)
		Expect(groups).To(HaveLen(1))
		Expect(groups[0].Indices).To(Equal([]int{0, 1}))
	})

	It("never groups records without a fingerprint", func() {
		records := []*dedup.Record{
			{Name: "broken-1"},
			{Name: "broken-2"},
			record("a", []uint64{0}),
			record("b", []uint64{0}),
		}

		groups := dedup.GroupDuplicates(records, 0.85)
		Expect(groups).To(HaveLen(1))
		Expect(groups[0].Indices).To(Equal([]int{2, 3}))
	})

	It("handles empty and single-record batches", func() {
		Expect(dedup.GroupDuplicates(nil, 0.85)).To(BeEmpty())
		Expect(dedup.GroupDuplicates([]*dedup.Record{record("only", []uint64{0})}, 0.85)).To(BeEmpty())
	})

	It("orders groups by first appearance in the batch", func() {
		records := []*dedup.Record{
			record("x1", []uint64{0xFFFFFFFFFFFFFFFF}),
			record("y1", []uint64{0}),
			record("x2", []uint64{0xFFFFFFFFFFFFFFFF}),
			record("y2", []uint64{0}),
		}

		groups := dedup.GroupDuplicates(records, 1.0)
		Expect(groups).To(HaveLen(2))
		Expect(groups[0].Indices).To(Equal([]int{0, 2}))
		Expect(groups[1].Indices).To(Equal([]int{1, 3}))
	})
})
