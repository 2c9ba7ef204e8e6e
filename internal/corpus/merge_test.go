package corpus

import (
	"reflect"
	"testing"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name      string
		sequences [][]string
		want      []string
	}{
		{
			name:      "no sequences",
			sequences: nil,
			want:      nil,
		},
		{
			name:      "single sequence no duplicates",
			sequences: [][]string{{"a", "b", "c"}},
			want:      []string{"a", "b", "c"},
		},
		{
			name:      "duplicates within one sequence",
			sequences: [][]string{{"a", "b", "a", "c", "b"}},
			want:      []string{"a", "b", "c"},
		},
		{
			name:      "duplicates across sequences",
			sequences: [][]string{{"a", "b"}, {"b", "c"}, {"a", "d"}},
			want:      []string{"a", "b", "c", "d"},
		},
		{
			name:      "first occurrence determines position",
			sequences: [][]string{{"late", "early"}, {"early", "late"}},
			want:      []string{"late", "early"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.sequences...)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Merge() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestMergeIdempotent(t *testing.T) {
	sequences := [][]string{{"x", "y", "x"}, {"z", "y"}}

	first := Merge(sequences...)
	second := Merge(sequences...)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Merge() not idempotent: %#v vs %#v", first, second)
	}
}

func TestMergeNoDuplicateOutput(t *testing.T) {
	got := Merge([]string{"a", "b", "a"}, []string{"b", "c", "a"})

	seen := make(map[string]bool)
	for _, text := range got {
		if seen[text] {
			t.Errorf("duplicate %q in merged output", text)
		}
		seen[text] = true
	}
}
