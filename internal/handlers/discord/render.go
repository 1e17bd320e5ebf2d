package discord

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dxtdz/sicbot/internal/dice"
	"github.com/dxtdz/sicbot/internal/models"
	"github.com/dxtdz/sicbot/internal/moneyfmt"
	"github.com/dxtdz/sicbot/internal/services/economy"
	"github.com/dxtdz/sicbot/internal/services/guard"
)

var dieFaces = [...]string{"⚀", "⚁", "⚂", "⚃", "⚄", "⚅"}

// dieFace returns the unicode face for a die value
func dieFace(n int) string {
	if n < 1 || n > len(dieFaces) {
		return "?"
	}
	return dieFaces[n-1]
}

// renderDice shows all three faces with their values
func renderDice(out dice.Outcome) string {
	return fmt.Sprintf("%s %s %s (%d + %d + %d = %d)",
		dieFace(out.D1), dieFace(out.D2), dieFace(out.D3),
		out.D1, out.D2, out.D3, out.Sum)
}

// renderBetResult builds the settled-bet message edited over the rolling
// placeholder
func renderBetResult(mention string, out *economy.PlaceBetOutput) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("🎲 %s rolled %s — **%s**\n", mention, renderDice(out.Outcome), out.Outcome.Label))

	if out.Won {
		sb.WriteString(fmt.Sprintf("🎉 You won! Payout: %s (x%d)\n", moneyfmt.Format(out.Payout), out.Multiplier))
	} else {
		sb.WriteString(fmt.Sprintf("💸 You lost %s.\n", moneyfmt.Format(out.Stake)))
	}

	sb.WriteString(fmt.Sprintf("Cash: %s", moneyfmt.Format(out.Player.Cash)))
	return sb.String()
}

// renderProfile is the bare !play reply: current state plus usage
func renderProfile(mention string, player models.Player, prefix string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("🎲 %s — cash %s, bank %s\n", mention,
		moneyfmt.Format(player.Cash), moneyfmt.Format(player.BankBalance)))
	sb.WriteString(fmt.Sprintf("Record: %d wins / %d losses, wagered %s\n",
		player.Wins, player.Losses, moneyfmt.Format(player.TotalWagered)))
	sb.WriteString(fmt.Sprintf("Usage: `%splay <tai|xiu|bao> <stake>`", prefix))
	return sb.String()
}

// renderBalances is the bare !bank reply
func renderBalances(mention string, cash, bank int64) string {
	return fmt.Sprintf("🏦 %s — cash %s, bank %s, total %s",
		mention, moneyfmt.Format(cash), moneyfmt.Format(bank), moneyfmt.Format(cash+bank))
}

// renderLeaderboard numbers the entries, medals for the first three
func renderLeaderboard(entries []economy.LeaderboardEntry) string {
	if len(entries) == 0 {
		return "🏆 Nobody has played yet."
	}

	medals := []string{"🥇", "🥈", "🥉"}

	var sb strings.Builder
	sb.WriteString("🏆 **Leaderboard**\n")
	for i, e := range entries {
		rank := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			rank = medals[i]
		}

		name := e.DisplayName
		if name == "" {
			name = e.PlayerID
		}

		sb.WriteString(fmt.Sprintf("%s %s — %s\n", rank, name, moneyfmt.Format(e.Total)))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// renderHistory lists transactions most recent first
func renderHistory(playerID string, txns []models.Transaction) string {
	if len(txns) == 0 {
		return "📒 No transactions yet."
	}

	var sb strings.Builder
	sb.WriteString("📒 **Recent transactions**\n")
	for _, t := range txns {
		amount := moneyfmt.FormatSigned(t.Amount)
		if t.FromID == playerID {
			amount = moneyfmt.FormatSigned(-t.Amount)
		}

		line := fmt.Sprintf("%s — %s %s", t.CreatedAt.Format("02/01 15:04"), t.Kind, amount)
		if t.Tax > 0 {
			line += fmt.Sprintf(" (tax %s)", moneyfmt.Format(t.Tax))
		}
		sb.WriteString(line + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// renderTransferPreview shows the stubbed tax breakdown
func renderTransferPreview(out *economy.PreviewTransferOutput) string {
	return fmt.Sprintf("💸 Transfer to %s: amount %s, tax (5%%) %s, recipient gets %s.\n"+
		"Handle resolution is not available yet, no coins were moved.",
		out.ToHandle, moneyfmt.Format(out.Amount), moneyfmt.Format(out.Tax), moneyfmt.Format(out.Net))
}

// renderGuardStatus is the !guard list reply
func renderGuardStatus(cfg models.GuardConfig) string {
	state := "off"
	if cfg.Enabled {
		state = "on"
	}

	domains := "(none)"
	if len(cfg.AllowedDomains) > 0 {
		domains = strings.Join(cfg.AllowedDomains, ", ")
	}

	users := "(none)"
	if len(cfg.AllowedUsers) > 0 {
		users = strings.Join(cfg.AllowedUsers, ", ")
	}

	return fmt.Sprintf("🛡️ Guard is %s (action: %s)\nAllowed domains: %s\nAllowed users: %s",
		state, cfg.Action, domains, users)
}

// renderGuardWarning names the author and the blocked domains
func renderGuardWarning(authorID string, verdict *guard.InspectOutput) string {
	msg := verdict.WarnMessage
	if msg == "" {
		msg = "Links are not allowed in this channel!"
	}
	warning := fmt.Sprintf("<@%s> %s", authorID, msg)
	if len(verdict.Domains) > 0 {
		warning += fmt.Sprintf(" (%s)", strings.Join(verdict.Domains, ", "))
	}
	if verdict.Action == models.GuardActionMute {
		warning += " You have been muted."
	}
	return warning
}

// renderGuardHelp is the bare !guard reply
func renderGuardHelp(prefix string) string {
	return fmt.Sprintf("Usage: `%sguard on|off|list|add <domain>|remove <domain>|useradd <id>|userremove <id>`", prefix)
}

// renderError maps service errors to user-facing replies
func renderError(err error) string {
	var insufficient *economy.InsufficientFundsError
	if errors.As(err, &insufficient) {
		return fmt.Sprintf("❌ Not enough %s: you have %s and need %s more.",
			insufficient.Source,
			moneyfmt.Format(insufficient.Available),
			moneyfmt.Format(insufficient.Shortfall()))
	}

	var cooldown *economy.CooldownError
	if errors.As(err, &cooldown) {
		return fmt.Sprintf("⏳ Please wait %d more minute(s) before requesting again.",
			renderCooldownMinutes(cooldown.Remaining))
	}

	return "❌ " + err.Error()
}

// renderCooldownMinutes rounds the remaining wait up to whole minutes,
// never below one
func renderCooldownMinutes(remaining time.Duration) int {
	minutes := int(math.Ceil(remaining.Minutes()))
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
