package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MishkaBot_Go/internal/domain"
)

const scarecrowAnswer = "Because he was outstanding in his field"

func msg(author, content string) domain.ChatMessage {
	return domain.ChatMessage{AuthorID: author, Content: content}
}

func TestGuessTracker_Threshold(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wins    bool
	}{
		{"exact", scarecrowAnswer, true},
		{"case and spacing", "  because HE was outstanding in his field ", true},
		{"close", "because he was outstanding in the field", true},
		{"unrelated", "no idea", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGuessTracker(scarecrowAnswer)
			assert.Equal(t, tt.wins, g.observe(msg("u1", tt.content)))
		})
	}
}

func TestGuessTracker_IgnoresBots(t *testing.T) {
	g := newGuessTracker(scarecrowAnswer)
	bot := domain.ChatMessage{AuthorID: "bot", IsBot: true, Content: "> " + scarecrowAnswer}

	assert.False(t, g.observe(bot))
	assert.Empty(t, g.candidates)
}

func TestGuessTracker_EmptyAnswerNeverQualifies(t *testing.T) {
	g := newGuessTracker("   ")
	assert.False(t, g.observe(msg("u1", "")))
	assert.False(t, g.observe(msg("u1", "anything")))
}

func TestGuessTracker_Candidates(t *testing.T) {
	g := newGuessTracker(scarecrowAnswer)

	g.observe(msg("u1", ">  crows hate him "))
	g.observe(msg("u1", "> Crows hate him"))   // duplicate from the same author
	g.observe(msg("u2", "> crows hate him"))   // same text, other author
	g.observe(msg("u3", ">"))                  // nothing after the marker
	g.observe(msg("u4", "not marked"))         // plain guess
	g.observe(msg("u5", "  > leading spaces")) // marker after trimming

	out := g.outcome(CollectResult[domain.ChatMessage]{TimedOut: true})
	require.Len(t, out.Candidates, 3)
	assert.Equal(t, domain.Candidate{AuthorID: "u1", Text: "crows hate him", Label: "A"}, out.Candidates[0])
	assert.Equal(t, domain.Candidate{AuthorID: "u2", Text: "crows hate him", Label: "B"}, out.Candidates[1])
	assert.Equal(t, domain.Candidate{AuthorID: "u5", Text: "leading spaces", Label: "C"}, out.Candidates[2])
	assert.False(t, out.HasWinner())
}

func TestGuessTracker_CandidateCap(t *testing.T) {
	g := newGuessTracker(scarecrowAnswer)
	for i := 0; i < MaxCandidates+5; i++ {
		g.observe(msg(fmt.Sprintf("u%d", i), fmt.Sprintf("> answer %d", i)))
	}

	out := g.outcome(CollectResult[domain.ChatMessage]{TimedOut: true})
	require.Len(t, out.Candidates, MaxCandidates)
	assert.Equal(t, "A", out.Candidates[0].Label)
	assert.Equal(t, "Z", out.Candidates[MaxCandidates-1].Label)
	assert.Equal(t, "u25", out.Candidates[MaxCandidates-1].AuthorID)
}

func TestGuessTracker_MarkedWinningGuessIsAlsoCandidate(t *testing.T) {
	g := newGuessTracker(scarecrowAnswer)
	winning := msg("u1", "> "+scarecrowAnswer)

	require.True(t, g.observe(winning))
	out := g.outcome(CollectResult[domain.ChatMessage]{Matched: []domain.ChatMessage{winning}})
	assert.Equal(t, "u1", out.WinnerID)
	assert.True(t, out.HasWinner())
	// the marker is scored with the rest of the message
	assert.False(t, out.Exact())
	assert.Greater(t, out.Score, WinThreshold)
	assert.Len(t, out.Candidates, 1)
}

func TestGuessOutcome_Exact(t *testing.T) {
	assert.True(t, guessOutcome{WinnerID: "u1", Score: 0.995}.Exact())
	assert.False(t, guessOutcome{WinnerID: "u1", Score: 0.7}.Exact())
	assert.False(t, guessOutcome{Score: 1}.Exact(), "no winner, no exact match")
}
