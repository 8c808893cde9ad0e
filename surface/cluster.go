package surface

import (
	"github.com/PavelStishenko/termpaint/cwidth"
	"github.com/PavelStishenko/termpaint/utf8x"
)

const (
	zeroWidthJoiner = 0x200D
	vs16            = 0xFE0F
)

// isVariationSelector reports whether r is one of the two variation
// selector ranges used to pick an emoji/text presentation (the common
// VS1-VS16 block, and the supplementary VS17-VS256 block).
func isVariationSelector(r rune) bool {
	return (r >= 0xFE00 && r <= 0xFE0F) || (r >= 0xE0100 && r <= 0xE01EF)
}

// IsClusterContinuation reports whether code point r, appearing
// immediately after a base code point, continues the same grapheme
// cluster rather than starting a new one. This is spec's simplified
// clustering rule, not full Unicode UAX #29 segmentation: a code point
// continues a cluster exactly when it is zero-width under table, a
// zero-width joiner, or a variation selector.
func IsClusterContinuation(r rune, table *cwidth.Table) bool {
	if r == zeroWidthJoiner || isVariationSelector(r) {
		return true
	}
	return table.Width(r) == 0
}

// SegmentClusters splits s into grapheme clusters using
// IsClusterContinuation: a boundary is placed before every code point
// that is not a continuation of the previous one, so the first code
// point of s always starts a cluster even if it is itself zero-width.
// A code point immediately following a zero-width joiner always
// continues the cluster regardless of its own width, since the ZWJ's
// entire purpose is to glue two otherwise-independent base characters
// (e.g. the members of a "family" emoji sequence) into one cluster.
func SegmentClusters(s string, table *cwidth.Table) []string {
	var clusters []string
	var cur []byte
	first := true
	afterZWJ := false

	for _, r := range s {
		if !first && !afterZWJ && !IsClusterContinuation(r, table) {
			clusters = append(clusters, string(cur))
			cur = cur[:0]
		}
		first = false
		afterZWJ = r == zeroWidthJoiner
		cur = utf8x.Encode(cur, r)
	}
	if len(cur) > 0 {
		clusters = append(clusters, string(cur))
	}
	return clusters
}

// ClusterWidth measures the total on-screen column width of a
// pre-segmented cluster: the width of its leading base code point,
// since every continuation code point is by definition zero-width or a
// presentation selector that does not add columns on its own. A
// trailing VS16 emoji-presentation selector does not widen the cluster.
// A cluster led by a zero-width code point reports 0; Write places it
// as a one-column cell.
func ClusterWidth(cluster string, table *cwidth.Table) int {
	for _, r := range cluster {
		return table.Width(r)
	}
	return 0
}
