package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "to get to the other side", "to get to the other side", 1},
		{"case and outer whitespace", "  To Get To The Other Side ", "to get to the other side", 1},
		{"inner whitespace ignored", "french", "fr ench", 1},
		{"both empty", "", "", 1},
		{"one empty", "", "abc", 0},
		{"single char", "a", "ab", 0},
		{"no overlap", "abc", "xyz", 0},
		{"night nacht", "night", "nacht", 0.25},
		{"healed sealed", "healed", "sealed", 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(tt.a, tt.b), 1e-9)
		})
	}
}

func TestScore_Symmetric(t *testing.T) {
	a := "because it was two tired"
	b := "it was too tired"
	assert.InDelta(t, Score(a, b), Score(b, a), 1e-9)
}

func TestScore_RepeatedBigramsCountedOnce(t *testing.T) {
	// "aaaa" has three "aa" bigrams, "aa" has one: 2*1 / (4+2-2)
	assert.InDelta(t, 0.5, Score("aaaa", "aa"), 1e-9)
}

func TestScore_ThresholdExamples(t *testing.T) {
	answer := "Because he was outstanding in his field"

	assert.GreaterOrEqual(t, Score("because he was outstanding in his field", answer), 0.99)
	assert.GreaterOrEqual(t, Score("he was outstanding in his field", answer), 0.55)
	assert.Less(t, Score("he liked tractors", answer), 0.55)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "> hello world", Normalize("  > Hello World\n"))
	// composed and decomposed forms compare equal
	assert.Equal(t, Normalize("café"), Normalize("café"))
}
