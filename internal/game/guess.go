package game

import (
	"strings"

	"github.com/osse101/MishkaBot_Go/internal/domain"
	"github.com/osse101/MishkaBot_Go/internal/similarity"
)

// guessTracker scores guesses against the answer and gathers vote candidates
type guessTracker struct {
	answer     string
	candidates []domain.Candidate
	seen       map[string]struct{}

	// score of the most recent observed message
	lastScore float64
}

func newGuessTracker(answer string) *guessTracker {
	return &guessTracker{
		answer: similarity.Normalize(answer),
		seen:   make(map[string]struct{}),
	}
}

// observe records msg and reports whether it wins the round.
// Bot messages are ignored entirely.
func (g *guessTracker) observe(msg domain.ChatMessage) bool {
	if msg.IsBot {
		return false
	}

	content := strings.TrimSpace(msg.Content)
	if strings.HasPrefix(content, CandidateMarker) {
		g.addCandidate(msg.AuthorID, strings.TrimSpace(strings.TrimPrefix(content, CandidateMarker)))
	}

	if g.answer == "" {
		g.lastScore = 0
		return false
	}
	g.lastScore = similarity.Score(similarity.Normalize(content), g.answer)
	return g.lastScore >= WinThreshold
}

func (g *guessTracker) addCandidate(authorID, text string) {
	if text == "" || len(g.candidates) >= MaxCandidates {
		return
	}
	key := authorID + "\x00" + similarity.Normalize(text)
	if _, dup := g.seen[key]; dup {
		return
	}
	g.seen[key] = struct{}{}
	g.candidates = append(g.candidates, domain.Candidate{AuthorID: authorID, Text: text})
}

// guessOutcome is the result of the guess phase
type guessOutcome struct {
	WinnerID   string
	Score      float64
	Candidates []domain.Candidate
}

func (o guessOutcome) HasWinner() bool {
	return o.WinnerID != ""
}

func (o guessOutcome) Exact() bool {
	return o.HasWinner() && o.Score >= ExactThreshold
}

func (g *guessTracker) outcome(result CollectResult[domain.ChatMessage]) guessOutcome {
	out := guessOutcome{Candidates: assignLabels(g.candidates)}
	if msg, ok := result.First(); ok {
		out.WinnerID = msg.AuthorID
		out.Score = g.lastScore
	}
	return out
}
