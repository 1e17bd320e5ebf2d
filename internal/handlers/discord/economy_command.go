package discord

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/dxtdz/sicbot/internal/moneyfmt"
	"github.com/dxtdz/sicbot/internal/services/economy"
)

// rollDelay is the suspense pause between the rolling placeholder and the
// settled result. The bet itself is already settled before the placeholder
// goes out.
const rollDelay = 2 * time.Second

// displayName prefers the guild nickname over the account name
func displayName(m *discordgo.MessageCreate) string {
	if m.Member != nil && m.Member.Nick != "" {
		return m.Member.Nick
	}
	if m.Author.GlobalName != "" {
		return m.Author.GlobalName
	}
	return m.Author.Username
}

func (b *Bot) handlePlay(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	ctx := context.Background()
	prefix := b.prefix()

	if len(args) == 0 {
		profile, err := b.economyService.GetProfile(ctx, &economy.GetProfileInput{
			PlayerID:    m.Author.ID,
			DisplayName: displayName(m),
			Handle:      m.Author.Username,
		})
		if err != nil {
			b.reply(s, m, renderError(err))
			return
		}
		b.reply(s, m, renderProfile(m.Author.Mention(), profile.Player, prefix))
		return
	}

	if len(args) != 2 {
		b.reply(s, m, fmt.Sprintf("Usage: `%splay <tai|xiu|bao> <stake>`", prefix))
		return
	}

	choice, ok := economy.ParseChoice(args[0])
	if !ok {
		b.reply(s, m, renderError(economy.ErrInvalidChoice))
		return
	}

	stake, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		b.reply(s, m, renderError(economy.ErrInvalidAmount))
		return
	}

	out, err := b.economyService.PlaceBet(ctx, &economy.PlaceBetInput{
		PlayerID:    m.Author.ID,
		DisplayName: displayName(m),
		Handle:      m.Author.Username,
		Choice:      choice,
		Stake:       stake,
	})
	if err != nil {
		b.reply(s, m, renderError(err))
		return
	}

	result := renderBetResult(m.Author.Mention(), out)

	rolling, err := s.ChannelMessageSend(m.ChannelID, "🎲 Rolling the dice...")
	if err != nil {
		logrus.WithError(err).Error("failed to send rolling message")
		b.reply(s, m, result)
		return
	}

	time.Sleep(rollDelay)

	if _, err := s.ChannelMessageEdit(m.ChannelID, rolling.ID, result); err != nil {
		logrus.WithError(err).Error("failed to edit rolling message")
		b.reply(s, m, result)
	}
}

func (b *Bot) handleBank(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	ctx := context.Background()

	if len(args) == 0 {
		profile, err := b.economyService.GetProfile(ctx, &economy.GetProfileInput{
			PlayerID:    m.Author.ID,
			DisplayName: displayName(m),
			Handle:      m.Author.Username,
		})
		if err != nil {
			b.reply(s, m, renderError(err))
			return
		}
		b.reply(s, m, renderBalances(m.Author.Mention(), profile.Player.Cash, profile.Player.BankBalance))
		return
	}

	if len(args) != 2 {
		b.reply(s, m, fmt.Sprintf("Usage: `%sbank <deposit|withdraw> <amount>`", b.prefix()))
		return
	}

	amount, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		b.reply(s, m, renderError(economy.ErrInvalidAmount))
		return
	}

	switch args[0] {
	case "deposit", "nop":
		out, err := b.economyService.Deposit(ctx, &economy.DepositInput{
			PlayerID:    m.Author.ID,
			DisplayName: displayName(m),
			Handle:      m.Author.Username,
			Amount:      amount,
		})
		if err != nil {
			b.reply(s, m, renderError(err))
			return
		}
		b.reply(s, m, fmt.Sprintf("🏦 Deposited %s. Cash %s, bank %s.",
			moneyfmt.Format(out.Amount), moneyfmt.Format(out.Cash), moneyfmt.Format(out.BankBalance)))

	case "withdraw", "rut", "rút":
		out, err := b.economyService.Withdraw(ctx, &economy.WithdrawInput{
			PlayerID:    m.Author.ID,
			DisplayName: displayName(m),
			Handle:      m.Author.Username,
			Amount:      amount,
		})
		if err != nil {
			b.reply(s, m, renderError(err))
			return
		}
		b.reply(s, m, fmt.Sprintf("🏦 Withdrew %s. Cash %s, bank %s.",
			moneyfmt.Format(out.Amount), moneyfmt.Format(out.Cash), moneyfmt.Format(out.BankBalance)))

	default:
		b.reply(s, m, fmt.Sprintf("Usage: `%sbank <deposit|withdraw> <amount>`", b.prefix()))
	}
}

func (b *Bot) handleRequest(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) != 1 {
		b.reply(s, m, fmt.Sprintf("Usage: `%srequest <amount>`", b.prefix()))
		return
	}

	amount, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		b.reply(s, m, renderError(economy.ErrInvalidAmount))
		return
	}

	out, err := b.economyService.RequestGrant(context.Background(), &economy.RequestGrantInput{
		PlayerID:    m.Author.ID,
		DisplayName: displayName(m),
		Handle:      m.Author.Username,
		Amount:      amount,
	})
	if err != nil {
		b.reply(s, m, renderError(err))
		return
	}

	b.reply(s, m, fmt.Sprintf("💰 Granted %s. Cash is now %s.",
		moneyfmt.Format(out.Amount), moneyfmt.Format(out.Cash)))
}

func (b *Bot) handleBalance(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) > 0 {
		b.reply(s, m, "Looking up another player's balance isn't available yet.")
		return
	}

	profile, err := b.economyService.GetProfile(context.Background(), &economy.GetProfileInput{
		PlayerID:    m.Author.ID,
		DisplayName: displayName(m),
		Handle:      m.Author.Username,
	})
	if err != nil {
		b.reply(s, m, renderError(err))
		return
	}

	b.reply(s, m, renderBalances(m.Author.Mention(), profile.Player.Cash, profile.Player.BankBalance))
}

func (b *Bot) handleTop(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	out, err := b.economyService.Leaderboard(context.Background(), &economy.LeaderboardInput{})
	if err != nil {
		b.reply(s, m, renderError(err))
		return
	}
	b.reply(s, m, renderLeaderboard(out.Entries))
}

func (b *Bot) handleTransfer(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) != 2 {
		b.reply(s, m, fmt.Sprintf("Usage: `%stransfer @handle <amount>`", b.prefix()))
		return
	}

	amount, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		b.reply(s, m, renderError(economy.ErrInvalidAmount))
		return
	}

	out, err := b.economyService.PreviewTransfer(context.Background(), &economy.PreviewTransferInput{
		FromID:      m.Author.ID,
		DisplayName: displayName(m),
		Handle:      m.Author.Username,
		ToHandle:    args[0],
		Amount:      amount,
	})
	if err != nil {
		b.reply(s, m, renderError(err))
		return
	}

	b.reply(s, m, renderTransferPreview(out))
}

func (b *Bot) handleHistory(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	out, err := b.economyService.History(context.Background(), &economy.HistoryInput{
		PlayerID: m.Author.ID,
	})
	if err != nil {
		b.reply(s, m, renderError(err))
		return
	}
	b.reply(s, m, renderHistory(m.Author.ID, out.Transactions))
}

func (b *Bot) handleGrant(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) < 1 || len(args) > 2 {
		b.reply(s, m, fmt.Sprintf("Usage: `%sgrant [@handle|id] <amount>`", b.prefix()))
		return
	}

	target := ""
	amountToken := args[0]
	if len(args) == 2 {
		target = args[0]
		amountToken = args[1]
	}

	if id, ok := parseMention(target); ok {
		target = id
	} else if isHandleRef(target) {
		b.reply(s, m, "Resolving handles isn't available yet, use a user ID or mention.")
		return
	}

	amount, err := strconv.ParseInt(amountToken, 10, 64)
	if err != nil {
		b.reply(s, m, renderError(economy.ErrInvalidAmount))
		return
	}

	out, err := b.economyService.AdminGrant(context.Background(), &economy.AdminGrantInput{
		CallerID: m.Author.ID,
		TargetID: target,
		Amount:   amount,
	})
	if err != nil {
		b.reply(s, m, renderError(err))
		return
	}

	b.reply(s, m, fmt.Sprintf("💰 Granted %s to <@%s>. Their cash is now %s.",
		moneyfmt.Format(out.Amount), out.TargetID, moneyfmt.Format(out.Cash)))
}

func (b *Bot) handleReset(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) != 1 {
		b.reply(s, m, fmt.Sprintf("Usage: `%sreset <id>`", b.prefix()))
		return
	}

	target := args[0]
	if id, ok := parseMention(target); ok {
		target = id
	}

	out, err := b.economyService.AdminReset(context.Background(), &economy.AdminResetInput{
		CallerID: m.Author.ID,
		TargetID: target,
	})
	if err != nil {
		b.reply(s, m, renderError(err))
		return
	}

	b.reply(s, m, fmt.Sprintf("🔄 Reset <@%s> to %s cash.", out.TargetID, moneyfmt.Format(out.Cash)))
}

// prefix returns the configured command prefix
func (b *Bot) prefix() string {
	if b.config.CommandPrefix == "" {
		return "!"
	}
	return b.config.CommandPrefix
}
