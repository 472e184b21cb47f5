package discord

// Friendly message constants for Discord responses
const (
	// Rounds
	MsgRoundActive  = "⏳ Please wait until the game is over, before starting a new one!"
	MsgNoJokes      = "😶 Oops, I couldn't find any jokes. Try adding one with `/joke-add`"
	MsgRoundStarted = "🎤 Joke #%d coming up!"
	MsgRoundsEnded  = "All active joke games have been ended. (%d cleared)"
	MsgShuttingDown = "💤 I'm restarting, try again in a moment."

	// Guild
	MsgGuildDisabled = "🔕 The joke game is disabled in this server."
	MsgNotAdmin      = "🔒 Only joke admins can do that."
	MsgNotOwner      = "🔒 Only the bot owner can do that."
	MsgBotEnabled    = "Bot enabled."
	MsgBotDisabled   = "Bot disabled."
	MsgAdminAdded    = "<@%s> was added as an admin."
	MsgAdminRemoved  = "<@%s> was removed from admins."

	// Jokes
	MsgJokeAdded     = "Joke (#%d) successfully added!"
	MsgJokeDeleted   = "Joke was successfully deleted"
	MsgJokeNotFound  = "❓ Joke not found with that id"
	MsgJokeExists    = "📚 That joke is already in the catalogue."
	MsgJokesImported = "Jokes imported. %d new, %d already known."
	MsgInvalidInput  = "✏️ That doesn't look right. Check the joke text and category."

	MsgGenericError = "❌ Something went wrong."
	MsgPong         = "Pong! 🏓"
)

// Round announcement texts
const (
	TitlePrompt   = "What's the punch line for this joke (#%d)?"
	TextPromptTip = "*Reply with your best guesses! Make sure to add `> ` to the start of your answer if you want others to be able to vote on it. For example:*\n\n`> To get to the other side`"
	FooterPrompt  = "You have %s to share your answers"

	TextRevealExact   = "🎉 <@%s>, you got it bang on! Awesome job 🎉"
	TextRevealClose   = "🎉 <@%s>, you got it right (well close enough) - Good job! The answer I had was:\n\n\"*%s*\""
	TextRevealNobody  = "😬 Nobody guessed it. I sure hope you made up for it with some hilarious punchlines of your own! The answer I was looking for was:\n\n**%s**"
	TitleVote         = "Time to vote for your favourite answers!"
	FooterVote        = "You have %s to vote."
	TextVoteOption    = ":regional_indicator_%s: - \"%s\""
	TitleWinners      = "And the winners are..."
	TextSmartest      = "**Smartest:**\n- <@%s>\n"
	TextFunniest      = "**Funniest:**"
	TextFunniestEntry = "- <@%s>"

	TextNotEnoughNoWinner = "*Hmm I didn't see enough punchlines from you to vote. Don't forget to add `> ` at the start of your message if you want people to vote on it.*"
	TextNotEnoughWinner   = "*There's no voting this round as I couldn't see enough punchlines.\nDon't forget to add `> ` at the start of your message if you want people to vote on it.*"
	TextNoVoteNoWinner    = "*Nobody got it, so there's no vote this round. Better luck with the next one!*"
	TextAllSucked         = "Wow, okay so all of your answers sucked AND nobody got the right answer. Talk about a bad day in the office..."
	TextRoundFailed       = "<@%s>, something went wrong with joke #%d. An admin can clear it with `/joke-clear`."
)
