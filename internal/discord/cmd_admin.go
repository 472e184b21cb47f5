package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MishkaBot_Go/internal/domain"
)

// JokeEnableCommand switches the game on for the guild
func JokeEnableCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return toggleCommand(CommandJokeEnable, "[ADMIN] Enable the joke game in this server", true, MsgBotEnabled)
}

// JokeDisableCommand switches the game off for the guild
func JokeDisableCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return toggleCommand(CommandJokeDisable, "[ADMIN] Disable the joke game in this server", false, MsgBotDisabled)
}

func toggleCommand(name, description string, enabled bool, done string) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:         name,
		Description:  description,
		DMPermission: guildOnly,
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) error {
		return handleEmbedResponse(s, i, func() (string, error) {
			if err := svc.Guilds.SetEnabled(ctx, i.GuildID, getInteractionUser(i).ID, enabled); err != nil {
				return "", err
			}
			return done, nil
		}, ResponseConfig{Color: ColorInfo, Footer: FooterMishkaAdmin})
	}

	return cmd, handler
}

// JokeAdminAddCommand lets the bot owner grant joke admin rights
func JokeAdminAddCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return adminCommand(CommandJokeAdminAdd, "[OWNER] Make a user a joke admin", MsgAdminAdded,
		func(ctx context.Context, svc *Services, guildID, actorID, userID string) error {
			return svc.Guilds.AddAdmin(ctx, guildID, actorID, userID)
		})
}

// JokeAdminRemoveCommand lets the bot owner revoke joke admin rights
func JokeAdminRemoveCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return adminCommand(CommandJokeAdminRemove, "[OWNER] Remove a user from the joke admins", MsgAdminRemoved,
		func(ctx context.Context, svc *Services, guildID, actorID, userID string) error {
			return svc.Guilds.RemoveAdmin(ctx, guildID, actorID, userID)
		})
}

type adminAction func(ctx context.Context, svc *Services, guildID, actorID, userID string) error

func adminCommand(name, description, done string, action adminAction) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:         name,
		Description:  description,
		DMPermission: guildOnly,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        OptionUser,
				Description: "The user",
				Required:    true,
			},
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) error {
		return handleEmbedResponse(s, i, func() (string, error) {
			if err := requireGuild(ctx, svc, i, false); err != nil {
				return "", err
			}
			o, ok := getOptions(i)[OptionUser]
			if !ok {
				return "", fmt.Errorf("%w: missing user", domain.ErrInvalidInput)
			}
			target := o.UserValue(nil)
			if err := action(ctx, svc, i.GuildID, getInteractionUser(i).ID, target.ID); err != nil {
				return "", err
			}
			return fmt.Sprintf(done, target.ID), nil
		}, ResponseConfig{Color: ColorInfo, Footer: FooterMishkaAdmin, Ephemeral: true})
	}

	return cmd, handler
}
