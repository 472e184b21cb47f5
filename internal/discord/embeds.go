package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MishkaBot_Go/internal/domain"
)

// createEmbed creates a standard embed. An empty footerText defaults to FooterMishka.
func createEmbed(title, description string, color int, footerText string) *discordgo.MessageEmbed {
	if footerText == "" {
		footerText = FooterMishka
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: footerText,
		},
	}
}

// renderAnnouncement turns a round announcement into a Discord message
func renderAnnouncement(a domain.Announcement) (*discordgo.MessageSend, error) {
	var embed *discordgo.MessageEmbed
	msg := &discordgo.MessageSend{}

	switch a.Kind {
	case domain.AnnouncementPrompt:
		embed = createEmbed(
			fmt.Sprintf(TitlePrompt, a.JokeNumber),
			fmt.Sprintf("**%s**\n\n%s", a.Prompt, TextPromptTip),
			ColorPrompt,
			fmt.Sprintf(FooterPrompt, formatSeconds(a.GuessSeconds)),
		)
	case domain.AnnouncementReveal:
		embed = renderReveal(a)
	case domain.AnnouncementVote:
		embed = createEmbed(
			TitleVote,
			fmt.Sprintf("**%s**\n\n%s", a.Prompt, voteLines(a.Candidates)),
			ColorVote,
			fmt.Sprintf(FooterVote, formatSeconds(a.VoteSeconds)),
		)
	case domain.AnnouncementWinners:
		embed = createEmbed(TitleWinners, winnersText(a), ColorSuccess, "")
	case domain.AnnouncementWinnerNoVote:
		embed = createEmbed("", TextNotEnoughWinner, ColorError, "")
	case domain.AnnouncementNoWinner:
		embed = createEmbed("", noWinnerText(a), ColorError, "")
	case domain.AnnouncementRoundFailed:
		msg.Content = fmt.Sprintf(TextRoundFailed, a.MentionUser, a.JokeNumber)
		msg.AllowedMentions = &discordgo.MessageAllowedMentions{Users: []string{a.MentionUser}}
		return msg, nil
	default:
		return nil, fmt.Errorf("%s: %q", ErrContextUnknownAnnounce, a.Kind)
	}

	msg.Embeds = []*discordgo.MessageEmbed{embed}
	return msg, nil
}

func renderReveal(a domain.Announcement) *discordgo.MessageEmbed {
	switch {
	case a.WinnerID != "" && a.Exact:
		return createEmbed("", fmt.Sprintf(TextRevealExact, a.WinnerID), ColorSuccess, "")
	case a.WinnerID != "":
		return createEmbed("", fmt.Sprintf(TextRevealClose, a.WinnerID, a.Answer), ColorSuccess, "")
	default:
		return createEmbed("", fmt.Sprintf(TextRevealNobody, a.Answer), ColorError, "")
	}
}

func voteLines(candidates []domain.Candidate) string {
	lines := make([]string, 0, len(candidates))
	for _, c := range candidates {
		lines = append(lines, fmt.Sprintf(TextVoteOption, strings.ToLower(c.Label), c.Text))
	}
	return strings.Join(lines, "\n\n")
}

func winnersText(a domain.Announcement) string {
	var parts []string
	if a.WinnerID != "" {
		parts = append(parts, fmt.Sprintf(TextSmartest, a.WinnerID))
	}
	if len(a.Funniest) > 0 {
		parts = append(parts, TextFunniest)
		for _, e := range a.Funniest {
			parts = append(parts, fmt.Sprintf(TextFunniestEntry, e.AuthorID))
		}
	}
	return strings.Join(parts, "\n")
}

func noWinnerText(a domain.Announcement) string {
	switch {
	case a.AfterVote:
		return TextAllSucked
	case a.NotEnough:
		return TextNotEnoughNoWinner
	default:
		return TextNoVoteNoWinner
	}
}

// formatSeconds renders a phase budget the way players read it ("1 minute", "15 seconds")
func formatSeconds(seconds int) string {
	switch {
	case seconds == 1:
		return "1 second"
	case seconds == 60:
		return "1 minute"
	case seconds > 60 && seconds%60 == 0:
		return fmt.Sprintf("%d minutes", seconds/60)
	default:
		return fmt.Sprintf("%d seconds", seconds)
	}
}

// optionEmoji returns the regional indicator emoji for a label ("A" -> 🇦)
func optionEmoji(label string) (string, error) {
	if len(label) != 1 || label[0] < 'A' || label[0] > 'Z' {
		return "", fmt.Errorf("%s: %q", ErrContextUnknownLabel, label)
	}
	return string(rune(regionalIndicatorA + int(label[0]-'A'))), nil
}
