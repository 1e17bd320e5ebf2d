package discord

import (
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// commandFunc handles one matched command; args are the whitespace-split
// tokens after the command word
type commandFunc func(s *discordgo.Session, m *discordgo.MessageCreate, args []string)

// command pairs a message pattern with its handler
type command struct {
	pattern *regexp.Regexp
	handle  commandFunc
}

// commandPattern anchors a command word behind the prefix and captures
// everything after it
func commandPattern(prefix, name string) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + name + `(?:\s+(.*))?$`)
}

// buildCommands assembles the dispatch table. Patterns are anchored, so
// tag and tagstop cannot shadow each other; order is still meaningful if
// two patterns overlap, first match wins.
func (b *Bot) buildCommands(prefix string) []command {
	return []command{
		{commandPattern(prefix, "play"), b.handlePlay},
		{commandPattern(prefix, "bank"), b.handleBank},
		{commandPattern(prefix, "request"), b.handleRequest},
		{commandPattern(prefix, "balance"), b.handleBalance},
		{commandPattern(prefix, "top"), b.handleTop},
		{commandPattern(prefix, "transfer"), b.handleTransfer},
		{commandPattern(prefix, "history"), b.handleHistory},
		{commandPattern(prefix, "grant"), b.handleGrant},
		{commandPattern(prefix, "reset"), b.handleReset},
		{commandPattern(prefix, "guard"), b.handleGuard},
		{commandPattern(prefix, "tagstop"), b.handleTagStop},
		{commandPattern(prefix, "tag"), b.handleTag},
		{commandPattern(prefix, "qr"), b.handleQR},
	}
}

// mentionPattern matches Discord user mentions like <@123> and <@!123>
var mentionPattern = regexp.MustCompile(`^<@!?(\d+)>$`)

// parseMention extracts the user ID from a mention token
func parseMention(token string) (string, bool) {
	match := mentionPattern.FindStringSubmatch(strings.TrimSpace(token))
	if match == nil {
		return "", false
	}
	return match[1], true
}

// isHandleRef reports whether the token addresses a user by handle or
// mention rather than by raw ID
func isHandleRef(token string) bool {
	if _, ok := parseMention(token); ok {
		return true
	}
	return strings.HasPrefix(token, "@")
}
