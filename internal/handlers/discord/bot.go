package discord

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/dxtdz/sicbot/internal/common/uuid"
	"github.com/dxtdz/sicbot/internal/models"
	"github.com/dxtdz/sicbot/internal/services/economy"
	"github.com/dxtdz/sicbot/internal/services/guard"
	"github.com/dxtdz/sicbot/internal/services/qr"
	"github.com/dxtdz/sicbot/internal/services/tagger"
)

const (
	// warnTTL is how long guard warnings stay up before self-deleting
	warnTTL = 5 * time.Second

	// muteDuration is the timeout applied by the mute guard action
	muteDuration = 5 * time.Minute
)

// Bot represents the Discord bot instance
type Bot struct {
	session  *discordgo.Session
	commands []command
	config   *Config

	economyService economy.Service
	guardService   guard.Service
	taggerService  tagger.Service
	qrService      qr.Service
	uuider         uuid.UUID
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// CommandPrefix precedes every command
	CommandPrefix string

	// AdminID is the administrator's user ID
	AdminID string

	// TagContentFile holds the broadcast text for the tag command
	TagContentFile string

	// Service dependencies
	EconomyService economy.Service
	GuardService   guard.Service
	QRService      qr.Service
	UUIDer         uuid.UUID
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Token == "" {
		return nil, ErrMissingToken
	}

	if cfg.EconomyService == nil {
		return nil, ErrNilEconomyService
	}

	if cfg.GuardService == nil {
		return nil, ErrNilGuardService
	}

	if cfg.QRService == nil {
		return nil, ErrNilQRService
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	prefix := cfg.CommandPrefix
	if prefix == "" {
		prefix = "!"
	}

	uuider := cfg.UUIDer
	if uuider == nil {
		uuider = uuid.New()
	}

	bot := &Bot{
		session:        session,
		config:         cfg,
		economyService: cfg.EconomyService,
		guardService:   cfg.GuardService,
		qrService:      cfg.QRService,
		uuider:         uuider,
	}
	bot.commands = bot.buildCommands(prefix)

	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent
	session.AddHandler(bot.handleMessageCreate)

	return bot, nil
}

// SetTaggerService wires the tagger in after construction; the tagger
// publishes through the bot, so it is built second.
func (b *Bot) SetTaggerService(svc tagger.Service) {
	b.taggerService = svc
}

// Start opens the websocket connection to Discord
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	logrus.Info("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	return b.session.Close()
}

// Publish implements tagger.Publisher
func (b *Bot) Publish(channelID, content string) error {
	_, err := b.session.ChannelMessageSend(channelID, content)
	return err
}

// handleMessageCreate dispatches prefixed commands and runs every other
// message through the link guard
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	content := strings.TrimSpace(m.Content)

	for _, cmd := range b.commands {
		if match := cmd.pattern.FindStringSubmatch(content); match != nil {
			rest := ""
			if len(match) > 1 {
				rest = match[1]
			}
			cmd.handle(s, m, strings.Fields(rest))
			return
		}
	}

	b.enforceGuard(s, m)
}

// enforceGuard applies the link policy to a non-command message
func (b *Bot) enforceGuard(s *discordgo.Session, m *discordgo.MessageCreate) {
	verdict, err := b.guardService.Inspect(context.Background(), &guard.InspectInput{
		AuthorID: m.Author.ID,
		Content:  m.Content,
	})
	if err != nil {
		logrus.WithError(err).Error("guard inspection failed")
		return
	}

	if !verdict.Blocked {
		return
	}

	switch verdict.Action {
	case models.GuardActionDelete, models.GuardActionMute:
		if err := s.ChannelMessageDelete(m.ChannelID, m.ID); err != nil {
			logrus.WithError(err).Error("failed to delete blocked message")
		}
	}

	if verdict.Action == models.GuardActionMute && m.GuildID != "" {
		until := time.Now().Add(muteDuration)
		if err := s.GuildMemberTimeout(m.GuildID, m.Author.ID, &until); err != nil {
			logrus.WithError(err).Error("failed to time out member")
		}
	}

	if verdict.SendWarning {
		b.sendTransientWarning(s, m.ChannelID, renderGuardWarning(m.Author.ID, verdict))
	}
}

// sendTransientWarning posts a message that deletes itself shortly after
func (b *Bot) sendTransientWarning(s *discordgo.Session, channelID, content string) {
	msg, err := s.ChannelMessageSend(channelID, content)
	if err != nil {
		logrus.WithError(err).Error("failed to send guard warning")
		return
	}

	time.AfterFunc(warnTTL, func() {
		if err := s.ChannelMessageDelete(channelID, msg.ID); err != nil {
			logrus.WithError(err).Debug("failed to delete guard warning")
		}
	})
}

// reply sends a plain text message to the channel the command came from
func (b *Bot) reply(s *discordgo.Session, m *discordgo.MessageCreate, content string) {
	if _, err := s.ChannelMessageSend(m.ChannelID, content); err != nil {
		logrus.WithError(err).Error("failed to send reply")
	}
}
