package colour

import "sort"

// SimilarityThreshold is the minimum Euclidean RGB distance between any two
// palette entries. A fixed constant, not adaptive to image diversity.
const SimilarityThreshold = 20.0

// Palette is an ordered sequence of colours, ordered by descending dominance
// (originating cluster membership count) and filtered so no two entries sit
// within SimilarityThreshold of each other.
type Palette struct {
	Colours []RGB
}

// ExtractPalette builds a Palette from cluster (centroid, count) pairs.
//
// Clusters are stably sorted by descending count, then accepted greedily:
// a centroid joins the palette only when its distance to every already
// accepted entry is at least SimilarityThreshold. The walk stops once k
// entries are accepted or the candidates are exhausted. The dedup is greedy
// and order-dependent, not globally optimal.
func ExtractPalette(clusters []Cluster, k int) *Palette {
	sorted := make([]Cluster, len(clusters))
	copy(sorted, clusters)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})

	colours := make([]RGB, 0, k)
	for _, c := range sorted {
		if len(colours) >= k {
			break
		}
		if tooSimilar(c.Centroid, colours) {
			continue
		}
		colours = append(colours, c.Centroid)
	}

	return &Palette{Colours: colours}
}

// tooSimilar reports whether the candidate sits within SimilarityThreshold
// of any accepted colour.
func tooSimilar(candidate RGB, accepted []RGB) bool {
	for _, a := range accepted {
		if Distance(candidate, a) < SimilarityThreshold {
			return true
		}
	}
	return false
}

// NewPalette creates a Palette with the given colours, in order.
func NewPalette(colours []RGB) *Palette {
	return &Palette{Colours: colours}
}

// Len returns the number of colours in the palette. Safe on a nil palette.
func (p *Palette) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Colours)
}

// ToHex converts the palette colours to lowercase hex strings.
func (p *Palette) ToHex() []string {
	hexColours := make([]string, len(p.Colours))
	for i, c := range p.Colours {
		hexColours[i] = c.Hex()
	}
	return hexColours
}
