package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MishkaBot_Go/internal/domain"
)

func TestRenderAnnouncement(t *testing.T) {
	tests := []struct {
		name        string
		announce    domain.Announcement
		title       string
		contains    []string
		notContains []string
		footer      string
	}{
		{
			name: "Prompt",
			announce: domain.Announcement{
				Kind: domain.AnnouncementPrompt, JokeNumber: 7, Prompt: "Why did the chicken cross the road?", GuessSeconds: 60,
			},
			title:    "What's the punch line for this joke (#7)?",
			contains: []string{"**Why did the chicken cross the road?**", "`> To get to the other side`"},
			footer:   "You have 1 minute to share your answers",
		},
		{
			name:        "Reveal Exact",
			announce:    domain.Announcement{Kind: domain.AnnouncementReveal, WinnerID: "42", Exact: true, Answer: "to get to the other side"},
			contains:    []string{"<@42>", "bang on"},
			notContains: []string{"to get to the other side"},
		},
		{
			name:     "Reveal Close",
			announce: domain.Announcement{Kind: domain.AnnouncementReveal, WinnerID: "42", Answer: "to get to the other side"},
			contains: []string{"<@42>", "close enough", "*to get to the other side*"},
		},
		{
			name:     "Reveal Nobody",
			announce: domain.Announcement{Kind: domain.AnnouncementReveal, Answer: "to get to the other side"},
			contains: []string{"Nobody guessed it", "**to get to the other side**"},
		},
		{
			name: "Vote",
			announce: domain.Announcement{
				Kind:        domain.AnnouncementVote,
				Prompt:      "Setup",
				VoteSeconds: 15,
				Candidates: []domain.Candidate{
					{AuthorID: "1", Text: "first", Label: "A"},
					{AuthorID: "2", Text: "second", Label: "B"},
				},
			},
			title:    TitleVote,
			contains: []string{"**Setup**", `:regional_indicator_a: - "first"`, `:regional_indicator_b: - "second"`},
			footer:   "You have 15 seconds to vote.",
		},
		{
			name: "Winners With Smartest",
			announce: domain.Announcement{
				Kind:     domain.AnnouncementWinners,
				WinnerID: "42",
				Funniest: []domain.FunnyEntry{{AuthorID: "7", Text: "lol", VoteCount: 3}, {AuthorID: "8", Text: "ha", VoteCount: 3}},
			},
			title:    TitleWinners,
			contains: []string{"**Smartest:**", "<@42>", "**Funniest:**", "- <@7>", "- <@8>"},
		},
		{
			name: "Winners Funniest Only",
			announce: domain.Announcement{
				Kind:     domain.AnnouncementWinners,
				Funniest: []domain.FunnyEntry{{AuthorID: "7", Text: "lol", VoteCount: 1}},
			},
			title:       TitleWinners,
			contains:    []string{"**Funniest:**", "- <@7>"},
			notContains: []string{"Smartest"},
		},
		{
			name:     "Winner Without Vote",
			announce: domain.Announcement{Kind: domain.AnnouncementWinnerNoVote, WinnerID: "42", NotEnough: true},
			contains: []string{"no voting this round"},
		},
		{
			name:     "No Winner Not Enough Punchlines",
			announce: domain.Announcement{Kind: domain.AnnouncementNoWinner, NotEnough: true},
			contains: []string{"didn't see enough punchlines"},
		},
		{
			name:     "No Winner After Vote",
			announce: domain.Announcement{Kind: domain.AnnouncementNoWinner, AfterVote: true},
			contains: []string{"all of your answers sucked"},
		},
		{
			name:     "No Winner Vote Skipped",
			announce: domain.Announcement{Kind: domain.AnnouncementNoWinner},
			contains: []string{"Nobody got it"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := renderAnnouncement(tt.announce)
			require.NoError(t, err)
			require.Len(t, msg.Embeds, 1)

			embed := msg.Embeds[0]
			assert.Equal(t, tt.title, embed.Title)
			for _, s := range tt.contains {
				assert.Contains(t, embed.Description, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, embed.Description, s)
			}
			if tt.footer != "" {
				require.NotNil(t, embed.Footer)
				assert.Equal(t, tt.footer, embed.Footer.Text)
			}
		})
	}
}

func TestRenderAnnouncement_RoundFailedMentionsStarter(t *testing.T) {
	msg, err := renderAnnouncement(domain.Announcement{Kind: domain.AnnouncementRoundFailed, JokeNumber: 3, MentionUser: "42"})
	require.NoError(t, err)

	assert.Empty(t, msg.Embeds)
	assert.Contains(t, msg.Content, "<@42>")
	assert.Contains(t, msg.Content, "joke #3")
	require.NotNil(t, msg.AllowedMentions)
	assert.Equal(t, []string{"42"}, msg.AllowedMentions.Users)
}

func TestRenderAnnouncement_UnknownKind(t *testing.T) {
	_, err := renderAnnouncement(domain.Announcement{Kind: "mystery"})
	assert.ErrorContains(t, err, ErrContextUnknownAnnounce)
}

func TestOptionEmoji(t *testing.T) {
	emoji, err := optionEmoji("A")
	require.NoError(t, err)
	assert.Equal(t, "🇦", emoji)

	emoji, err = optionEmoji("Z")
	require.NoError(t, err)
	assert.Equal(t, "🇿", emoji)

	for _, bad := range []string{"", "a", "AB", "1"} {
		_, err := optionEmoji(bad)
		assert.Error(t, err, "label %q", bad)
	}
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "1 minute", formatSeconds(60))
	assert.Equal(t, "2 minutes", formatSeconds(120))
	assert.Equal(t, "15 seconds", formatSeconds(15))
	assert.Equal(t, "90 seconds", formatSeconds(90))
	assert.Equal(t, "1 second", formatSeconds(1))
}
