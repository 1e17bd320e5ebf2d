package discord

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/dxtdz/sicbot/internal/services/tagger"
)

// sampleTagContent seeds the content file when it does not exist yet
const sampleTagContent = "Dậy đi @user ơi!"

// loadTagContent reads the broadcast text, creating a sample file first if
// none exists
func (b *Bot) loadTagContent() (string, error) {
	path := b.config.TagContentFile

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
			return "", mkErr
		}
		if wrErr := os.WriteFile(path, []byte(sampleTagContent+"\n"), 0o644); wrErr != nil {
			return "", wrErr
		}
		logrus.WithField("path", path).Info("created sample tag content file")
		return sampleTagContent, nil
	}
	if err != nil {
		return "", err
	}

	content := strings.TrimSpace(string(data))
	if content == "" {
		content = sampleTagContent
	}
	return content, nil
}

func (b *Bot) handleTag(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if b.taggerService == nil {
		b.reply(s, m, "Tagging isn't available right now.")
		return
	}

	if len(args) == 0 {
		b.reply(s, m, fmt.Sprintf("Usage: `%stag <id> [id...]`", b.prefix()))
		return
	}

	targets := make([]string, 0, len(args))
	for _, arg := range args {
		if id, ok := parseMention(arg); ok {
			targets = append(targets, id)
			continue
		}
		targets = append(targets, arg)
	}

	content, err := b.loadTagContent()
	if err != nil {
		logrus.WithError(err).Error("failed to load tag content")
		b.reply(s, m, "❌ Could not read the tag content file.")
		return
	}

	out, err := b.taggerService.Start(context.Background(), &tagger.StartInput{
		ChannelID: m.ChannelID,
		CallerID:  m.Author.ID,
		TargetIDs: targets,
		Content:   content,
	})
	if err != nil {
		b.reply(s, m, renderError(err))
		return
	}

	b.reply(s, m, fmt.Sprintf("📣 Tagging %d user(s). Stop with `%stagstop`.", out.Targets, b.prefix()))
}

func (b *Bot) handleTagStop(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if b.taggerService == nil {
		b.reply(s, m, "Tagging isn't available right now.")
		return
	}

	out, err := b.taggerService.Stop(context.Background(), &tagger.StopInput{
		ChannelID: m.ChannelID,
		CallerID:  m.Author.ID,
	})
	if errors.Is(err, tagger.ErrNotRunning) {
		b.reply(s, m, "📣 No broadcast is running in this channel.")
		return
	}
	if err != nil {
		b.reply(s, m, renderError(err))
		return
	}

	b.reply(s, m, fmt.Sprintf("📣 Stopped after %d message(s) to %d user(s).", out.MessagesSent, out.Targets))
}
