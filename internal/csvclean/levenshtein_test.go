package csvclean

import "testing"

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		name string
		s1   string
		s2   string
		want int
	}{
		{
			name: "identical",
			s1:   "banana",
			s2:   "banana",
			want: 0,
		},
		{
			name: "empty left",
			s1:   "",
			s2:   "abc",
			want: 3,
		},
		{
			name: "empty right",
			s1:   "abc",
			s2:   "",
			want: 3,
		},
		{
			name: "single substitution",
			s1:   "kitten",
			s2:   "mitten",
			want: 1,
		},
		{
			name: "classic",
			s1:   "kitten",
			s2:   "sitting",
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := levenshteinDistance(tt.s1, tt.s2)
			if got != tt.want {
				t.Errorf("levenshteinDistance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSimilarityRatio(t *testing.T) {
	tests := []struct {
		name string
		s1   string
		s2   string
		want float64
	}{
		{
			name: "identical",
			s1:   "chocolate",
			s2:   "chocolate",
			want: 1.0,
		},
		{
			name: "both empty",
			s1:   "",
			s2:   "",
			want: 1.0,
		},
		{
			name: "disjoint",
			s1:   "ab",
			s2:   "xy",
			want: 0.0,
		},
		{
			name: "near miss",
			s1:   "chocolate",
			s2:   "chocolata",
			want: 1.0 - 1.0/9.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := similarityRatio(tt.s1, tt.s2)
			if got != tt.want {
				t.Errorf("similarityRatio() = %v, want %v", got, tt.want)
			}
		})
	}
}
