package surface

import (
	"reflect"
	"testing"

	"github.com/PavelStishenko/termpaint/cwidth"
)

func TestSegmentClustersBasic(t *testing.T) {
	got := SegmentClusters("ab", cwidth.Default)
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SegmentClusters(ab) = %v, want %v", got, want)
	}
}

func TestSegmentClustersCombiningMark(t *testing.T) {
	// "e" + combining acute accent (U+0301) forms one cluster.
	got := SegmentClusters("éx", cwidth.Default)
	want := []string{"é", "x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SegmentClusters(e+combining) = %v, want %v", got, want)
	}
}

func TestSegmentClustersZWJSequence(t *testing.T) {
	// family emoji built from ZWJ-joined base emoji stays one cluster.
	s := "\U0001F468‍\U0001F469‍\U0001F467"
	got := SegmentClusters(s, cwidth.Default)
	if len(got) != 1 {
		t.Errorf("SegmentClusters(zwj family) = %v, want single cluster", got)
	}
}

func TestSegmentClustersLeadingZeroWidthStartsCluster(t *testing.T) {
	got := SegmentClusters("́a", cwidth.Default)
	if len(got) != 2 {
		t.Errorf("SegmentClusters(leading combiner) = %v, want 2 clusters (boundary before every base, first still placed)", got)
	}
}
