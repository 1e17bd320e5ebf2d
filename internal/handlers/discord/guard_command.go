package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/dxtdz/sicbot/internal/services/guard"
)

func (b *Bot) handleGuard(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	ctx := context.Background()

	if len(args) == 0 {
		b.reply(s, m, renderGuardHelp(b.prefix()))
		return
	}

	switch args[0] {
	case "on", "off":
		out, err := b.guardService.SetEnabled(ctx, &guard.SetEnabledInput{
			CallerID: m.Author.ID,
			Enabled:  args[0] == "on",
		})
		if err != nil {
			b.reply(s, m, renderError(err))
			return
		}
		state := "disabled"
		if out.Enabled {
			state = "enabled"
		}
		b.reply(s, m, "🛡️ Link guard "+state+".")

	case "list":
		out, err := b.guardService.Status(ctx, &guard.StatusInput{})
		if err != nil {
			b.reply(s, m, renderError(err))
			return
		}
		b.reply(s, m, renderGuardStatus(out.Config))

	case "add":
		if len(args) != 2 {
			b.reply(s, m, renderGuardHelp(b.prefix()))
			return
		}
		out, err := b.guardService.AllowDomain(ctx, &guard.AllowDomainInput{
			CallerID: m.Author.ID,
			Domain:   args[1],
		})
		if err != nil {
			b.reply(s, m, renderError(err))
			return
		}
		if out.Added {
			b.reply(s, m, fmt.Sprintf("🛡️ Allowed domain %s.", out.Domain))
		} else {
			b.reply(s, m, fmt.Sprintf("🛡️ Domain %s was already allowed.", out.Domain))
		}

	case "remove":
		if len(args) != 2 {
			b.reply(s, m, renderGuardHelp(b.prefix()))
			return
		}
		out, err := b.guardService.DisallowDomain(ctx, &guard.DisallowDomainInput{
			CallerID: m.Author.ID,
			Domain:   args[1],
		})
		if err != nil {
			b.reply(s, m, renderError(err))
			return
		}
		if out.Removed {
			b.reply(s, m, fmt.Sprintf("🛡️ Removed domain %s.", out.Domain))
		} else {
			b.reply(s, m, fmt.Sprintf("🛡️ Domain %s was not on the list.", out.Domain))
		}

	case "useradd":
		if len(args) != 2 {
			b.reply(s, m, renderGuardHelp(b.prefix()))
			return
		}
		userID := args[1]
		if id, ok := parseMention(userID); ok {
			userID = id
		}
		out, err := b.guardService.AllowUser(ctx, &guard.AllowUserInput{
			CallerID: m.Author.ID,
			UserID:   userID,
		})
		if err != nil {
			b.reply(s, m, renderError(err))
			return
		}
		if out.Added {
			b.reply(s, m, fmt.Sprintf("🛡️ <@%s> is now exempt from the link guard.", out.UserID))
		} else {
			b.reply(s, m, fmt.Sprintf("🛡️ <@%s> was already exempt.", out.UserID))
		}

	case "userremove":
		if len(args) != 2 {
			b.reply(s, m, renderGuardHelp(b.prefix()))
			return
		}
		userID := args[1]
		if id, ok := parseMention(userID); ok {
			userID = id
		}
		out, err := b.guardService.DisallowUser(ctx, &guard.DisallowUserInput{
			CallerID: m.Author.ID,
			UserID:   userID,
		})
		if err != nil {
			b.reply(s, m, renderError(err))
			return
		}
		if out.Removed {
			b.reply(s, m, fmt.Sprintf("🛡️ <@%s> is no longer exempt.", out.UserID))
		} else {
			b.reply(s, m, fmt.Sprintf("🛡️ <@%s> was not exempt.", out.UserID))
		}

	default:
		b.reply(s, m, renderGuardHelp(b.prefix()))
	}
}
