package analysis

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nguyentantai21042004/speech-digest/internal/tokenizer"
)

func TestWordCounts(t *testing.T) {
	tok, err := tokenizer.NewEnglish()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		text string
		want map[string]int
	}{
		{
			name: "case folded and punctuation dropped",
			text: "Cats are great. Cats, dogs!",
			want: map[string]int{"cats": 2, "are": 1, "great": 1, "dogs": 1},
		},
		{
			name: "empty",
			text: "  ",
			want: map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WordCounts(tok, tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("WordCounts() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTop(t *testing.T) {
	counts := map[string]int{"cats": 2, "are": 1, "great": 1, "dogs": 3}

	got := Top(counts, 1)
	want := []WordCount{{"dogs", 3}, {"cats", 2}, {"are", 1}, {"great", 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Top(1) mismatch (-want +got):\n%s", diff)
	}

	got = Top(counts, 2)
	want = []WordCount{{"dogs", 3}, {"cats", 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Top(2) mismatch (-want +got):\n%s", diff)
	}

	if got := Top(counts, 10); len(got) != 0 {
		t.Errorf("Top(10) = %v, want empty", got)
	}
}

func TestMaxCount(t *testing.T) {
	if got := MaxCount(map[string]int{"a": 1, "b": 4}); got != 4 {
		t.Errorf("MaxCount() = %d, want 4", got)
	}
	if got := MaxCount(nil); got != 0 {
		t.Errorf("MaxCount(nil) = %d, want 0", got)
	}
}
