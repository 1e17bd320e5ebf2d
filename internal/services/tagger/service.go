package tagger

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultInterval = 3 * time.Second

// run is a single channel's broadcast loop state
type run struct {
	targets []string
	content string
	sent    int
	stop    chan struct{}
	done    chan struct{}
}

// service implements the Service interface
type service struct {
	config    *Config
	publisher Publisher
	interval  time.Duration

	mu   sync.Mutex
	runs map[string]*run
}

// New creates a new tagger service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Publisher == nil {
		return nil, ErrNilPublisher
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}

	return &service{
		config:    cfg,
		publisher: cfg.Publisher,
		interval:  interval,
		runs:      make(map[string]*run),
	}, nil
}

func (s *service) isAdmin(callerID string) bool {
	return s.config.AdminID != "" && callerID == s.config.AdminID
}

// composeMessage fills @user placeholders with mentions and stamps the
// message counter. Placeholders are @user for the first target and
// @user2, @user3, ... for the rest; when the content has no placeholders
// the mentions are appended instead.
func composeMessage(content string, targets []string, n int) string {
	replaced := false
	msg := content

	// Replace higher indices first so @user does not eat @user12
	for i := len(targets) - 1; i >= 1; i-- {
		placeholder := fmt.Sprintf("@user%d", i+1)
		if strings.Contains(msg, placeholder) {
			msg = strings.ReplaceAll(msg, placeholder, mention(targets[i]))
			replaced = true
		}
	}

	if len(targets) > 0 && strings.Contains(msg, "@user") {
		msg = strings.ReplaceAll(msg, "@user", mention(targets[0]))
		replaced = true
	}

	if !replaced {
		mentions := make([]string, 0, len(targets))
		for _, id := range targets {
			mentions = append(mentions, mention(id))
		}
		msg = strings.TrimSpace(msg + " " + strings.Join(mentions, " "))
	}

	return fmt.Sprintf("%s #%d", msg, n)
}

func mention(userID string) string {
	return fmt.Sprintf("<@%s>", userID)
}

// Start begins a repeating broadcast in a channel, admin only
func (s *service) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	if !s.isAdmin(input.CallerID) {
		return nil, ErrNotAdmin
	}

	if len(input.TargetIDs) == 0 {
		return nil, ErrNoTargets
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.runs[input.ChannelID]; ok {
		return nil, ErrAlreadyRunning
	}

	r := &run{
		targets: append([]string{}, input.TargetIDs...),
		content: input.Content,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	s.runs[input.ChannelID] = r

	go s.loop(input.ChannelID, r)

	logrus.WithFields(logrus.Fields{
		"channel": input.ChannelID,
		"targets": len(r.targets),
	}).Info("started tag broadcast")

	return &StartOutput{Targets: len(r.targets)}, nil
}

// loop sends the first message immediately, then one per tick until stopped
func (s *service) loop(channelID string, r *run) {
	defer close(r.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.broadcast(channelID, r)

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			s.broadcast(channelID, r)
		}
	}
}

func (s *service) broadcast(channelID string, r *run) {
	s.mu.Lock()
	r.sent++
	msg := composeMessage(r.content, r.targets, r.sent)
	s.mu.Unlock()

	if err := s.publisher.Publish(channelID, msg); err != nil {
		logrus.WithError(err).WithField("channel", channelID).Error("failed to publish tag message")
	}
}

// Stop ends the channel's broadcast and reports its counters, admin only
func (s *service) Stop(ctx context.Context, input *StopInput) (*StopOutput, error) {
	if !s.isAdmin(input.CallerID) {
		return nil, ErrNotAdmin
	}

	s.mu.Lock()
	r, ok := s.runs[input.ChannelID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNotRunning
	}
	delete(s.runs, input.ChannelID)
	s.mu.Unlock()

	close(r.stop)
	<-r.done

	s.mu.Lock()
	out := &StopOutput{
		MessagesSent: r.sent,
		Targets:      len(r.targets),
	}
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"channel": input.ChannelID,
		"sent":    out.MessagesSent,
	}).Info("stopped tag broadcast")

	return out, nil
}

// StopAll ends every running broadcast, used on shutdown
func (s *service) StopAll() {
	s.mu.Lock()
	runs := s.runs
	s.runs = make(map[string]*run)
	s.mu.Unlock()

	for _, r := range runs {
		close(r.stop)
	}
	for _, r := range runs {
		<-r.done
	}
}
