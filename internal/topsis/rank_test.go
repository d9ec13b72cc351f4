package topsis

import (
	"reflect"
	"testing"
)

func TestRankDescending(t *testing.T) {
	cases := []struct {
		name   string
		scores []float64
		policy TiePolicy
		want   []int
	}{
		{
			name:   "distinct scores dense",
			scores: []float64{0.2, 0.9, 0.5},
			policy: TieDense,
			want:   []int{3, 1, 2},
		},
		{
			name:   "distinct scores ordinal",
			scores: []float64{0.2, 0.9, 0.5},
			policy: TieOrdinal,
			want:   []int{3, 1, 2},
		},
		{
			name:   "tied top dense shares rank one",
			scores: []float64{0.9, 0.9, 0.1},
			policy: TieDense,
			want:   []int{1, 1, 2},
		},
		{
			name:   "tied top ordinal keeps row order",
			scores: []float64{0.9, 0.9, 0.1},
			policy: TieOrdinal,
			want:   []int{1, 2, 3},
		},
		{
			name:   "all tied dense",
			scores: []float64{0.5, 0.5, 0.5},
			policy: TieDense,
			want:   []int{1, 1, 1},
		},
		{
			name:   "all tied ordinal",
			scores: []float64{0.5, 0.5, 0.5},
			policy: TieOrdinal,
			want:   []int{1, 2, 3},
		},
		{
			name:   "single row",
			scores: []float64{0.5},
			policy: TieDense,
			want:   []int{1},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := rankDescending(tc.scores, tc.policy)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("rankDescending(%v, %v) = %v, want %v", tc.scores, tc.policy, got, tc.want)
			}
		})
	}
}
