package game

import (
	"github.com/osse101/MishkaBot_Go/internal/domain"
)

const labelAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Label returns the option label for the i-th candidate (0 -> "A")
func Label(i int) string {
	if i < 0 || i >= len(labelAlphabet) {
		return ""
	}
	return labelAlphabet[i : i+1]
}

// assignLabels labels candidates A, B, C... in order, dropping any past Z
func assignLabels(candidates []domain.Candidate) []domain.Candidate {
	if len(candidates) > MaxCandidates {
		candidates = candidates[:MaxCandidates]
	}
	out := make([]domain.Candidate, len(candidates))
	for i, c := range candidates {
		c.Label = Label(i)
		out[i] = c
	}
	return out
}

func candidateLabels(candidates []domain.Candidate) []string {
	labels := make([]string, len(candidates))
	for i, c := range candidates {
		labels[i] = c.Label
	}
	return labels
}

// Tally counts distinct reactors per label, in label order
func Tally(labels []string, reactions Reactions) []domain.VoteTally {
	tallies := make([]domain.VoteTally, len(labels))
	for i, label := range labels {
		tallies[i] = domain.VoteTally{Label: label, Count: len(reactions[label])}
	}
	return tallies
}

// WinningLabels returns every label sharing the top count, or nothing when nobody voted
func WinningLabels(tallies []domain.VoteTally) []string {
	maxCount := 0
	for _, t := range tallies {
		maxCount = max(maxCount, t.Count)
	}
	if maxCount == 0 {
		return nil
	}

	var winners []string
	for _, t := range tallies {
		if t.Count == maxCount {
			winners = append(winners, t.Label)
		}
	}
	return winners
}

// funniestEntries maps the winning labels back to their candidates
func funniestEntries(candidates []domain.Candidate, tallies []domain.VoteTally) []domain.FunnyEntry {
	counts := make(map[string]int, len(tallies))
	for _, t := range tallies {
		counts[t.Label] = t.Count
	}
	byLabel := make(map[string]domain.Candidate, len(candidates))
	for _, c := range candidates {
		byLabel[c.Label] = c
	}

	var entries []domain.FunnyEntry
	for _, label := range WinningLabels(tallies) {
		c, ok := byLabel[label]
		if !ok {
			continue
		}
		entries = append(entries, domain.FunnyEntry{AuthorID: c.AuthorID, Text: c.Text, VoteCount: counts[label]})
	}
	return entries
}

// branch is what happens after the guess phase
type branch int

const (
	branchNoWinner branch = iota
	branchWinnerOnly
	branchVote
)

// decideBranch applies the post-guess policy. Without voteWithoutWinner a
// round with no provisional winner never goes to a vote.
func decideBranch(hasWinner bool, candidates int, voteWithoutWinner bool) branch {
	enough := candidates >= MinVoteCandidates
	switch {
	case hasWinner && enough:
		return branchVote
	case hasWinner:
		return branchWinnerOnly
	case enough && voteWithoutWinner:
		return branchVote
	default:
		return branchNoWinner
	}
}
