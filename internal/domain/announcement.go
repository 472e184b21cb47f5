package domain

// AnnouncementKind tells the chat adapter how to render an announcement
type AnnouncementKind string

const (
	AnnouncementPrompt       AnnouncementKind = "prompt"
	AnnouncementReveal       AnnouncementKind = "reveal"
	AnnouncementVote         AnnouncementKind = "vote"
	AnnouncementWinners      AnnouncementKind = "winners"
	AnnouncementNoWinner     AnnouncementKind = "no_winner"
	AnnouncementWinnerNoVote AnnouncementKind = "winner_no_vote"
	AnnouncementRoundFailed  AnnouncementKind = "round_failed"
)

// Announcement is a platform-neutral outbound game message.
// Only the fields relevant to Kind are populated.
type Announcement struct {
	Kind       AnnouncementKind
	JokeNumber int
	Prompt     string
	Answer     string

	// Reveal / outcome
	WinnerID    string
	Exact       bool
	NotEnough   bool // fewer than two punchlines were marked for voting
	AfterVote   bool
	Candidates  []Candidate
	Funniest    []FunnyEntry
	MentionUser string

	// Footer hints (seconds) shown with prompts
	GuessSeconds int
	VoteSeconds  int
}
