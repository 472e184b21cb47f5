package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MishkaBot_Go/internal/domain"
	"github.com/osse101/MishkaBot_Go/internal/joke"
)

var (
	guildOnly     = new(bool)
	minJokeNumber = 1.0
)

// JokeCommand returns the /joke command, which starts a round in the current channel
func JokeCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:         CommandJoke,
		Description:  "Start a joke round: guess the punchline!",
		DMPermission: guildOnly,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionCategory,
				Description: "Only pick jokes from this category",
				Required:    false,
				MaxLength:   32,
			},
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) error {
		return handleEmbedResponse(s, i, func() (string, error) {
			category := ""
			if opt, ok := getOptions(i)[OptionCategory]; ok {
				category = opt.StringValue()
			}
			scope := domain.Scope{GuildID: i.GuildID, ChannelID: i.ChannelID}
			session, err := svc.Rounds.StartRound(ctx, scope, getInteractionUser(i).ID, category)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf(MsgRoundStarted, session.JokeNumber), nil
		}, ResponseConfig{Color: ColorPrompt})
	}

	return cmd, handler
}

// JokeAddCommand returns the admin command adding a joke to the guild's catalogue
func JokeAddCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:         CommandJokeAdd,
		Description:  "[ADMIN] Add a joke",
		DMPermission: guildOnly,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionSetup,
				Description: "The setup, shown to players",
				Required:    true,
				MaxLength:   1000,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionPunchline,
				Description: "The punchline players have to guess",
				Required:    true,
				MaxLength:   1000,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionCategory,
				Description: "Category name, e.g. pun",
				Required:    true,
				MaxLength:   32,
			},
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) error {
		return handleEmbedResponse(s, i, func() (string, error) {
			if err := requireGuild(ctx, svc, i, true); err != nil {
				return "", err
			}
			opts := getOptions(i)
			input := joke.AddJokeInput{
				GuildID: i.GuildID,
				AddedBy: getInteractionUser(i).ID,
			}
			if o, ok := opts[OptionSetup]; ok {
				input.Setup = o.StringValue()
			}
			if o, ok := opts[OptionPunchline]; ok {
				input.Punchline = o.StringValue()
			}
			if o, ok := opts[OptionCategory]; ok {
				input.Category = o.StringValue()
			}
			added, err := svc.Jokes.AddJoke(ctx, input)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf(MsgJokeAdded, added.Number), nil
		}, ResponseConfig{Color: ColorSuccess, Footer: FooterMishkaAdmin, Ephemeral: true})
	}

	return cmd, handler
}

// JokeDeleteCommand returns the admin command deleting a joke by number
func JokeDeleteCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:         CommandJokeDelete,
		Description:  "[ADMIN] Delete a joke by its number",
		DMPermission: guildOnly,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptionNumber,
				Description: "Joke number, e.g. 3",
				Required:    true,
				MinValue:    &minJokeNumber,
			},
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) error {
		return handleEmbedResponse(s, i, func() (string, error) {
			if err := requireGuild(ctx, svc, i, true); err != nil {
				return "", err
			}
			o, ok := getOptions(i)[OptionNumber]
			if !ok {
				return "", fmt.Errorf("%w: missing joke number", domain.ErrInvalidInput)
			}
			if err := svc.Jokes.DeleteJoke(ctx, i.GuildID, int(o.IntValue())); err != nil {
				return "", err
			}
			return MsgJokeDeleted, nil
		}, ResponseConfig{Color: ColorSuccess, Footer: FooterMishkaAdmin, Ephemeral: true})
	}

	return cmd, handler
}

// JokeClearCommand returns the admin command force-ending the guild's active rounds
func JokeClearCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:         CommandJokeClear,
		Description:  "[ADMIN] End every active joke round in this server",
		DMPermission: guildOnly,
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) error {
		return handleEmbedResponse(s, i, func() (string, error) {
			if err := requireGuild(ctx, svc, i, true); err != nil {
				return "", err
			}
			ended, err := svc.Rounds.ForceEndAll(ctx, i.GuildID, ForceEndSourceDiscord)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf(MsgRoundsEnded, ended), nil
		}, ResponseConfig{Color: ColorSuccess, Footer: FooterMishkaAdmin})
	}

	return cmd, handler
}

// JokeImportCommand returns the admin command importing a batch of jokes from JokeAPI
func JokeImportCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:         CommandJokeImport,
		Description:  "[ADMIN] Import a batch of two-part jokes from jokeapi.dev",
		DMPermission: guildOnly,
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) error {
		return handleEmbedResponse(s, i, func() (string, error) {
			if err := requireGuild(ctx, svc, i, true); err != nil {
				return "", err
			}
			result, err := svc.Jokes.ImportFromAPI(ctx, i.GuildID, getInteractionUser(i).ID)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf(MsgJokesImported, result.Imported, result.Skipped), nil
		}, ResponseConfig{Color: ColorSuccess, Footer: FooterMishkaAdmin, Ephemeral: true})
	}

	return cmd, handler
}
