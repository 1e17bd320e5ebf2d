package guard

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"github.com/dxtdz/sicbot/internal/models"
	guardRepo "github.com/dxtdz/sicbot/internal/repositories/guard"
	"github.com/sirupsen/logrus"
)

// urlPattern matches full URLs, www-prefixed hosts and bare domains with
// a path, the same shapes the bot has always blocked
var urlPattern = regexp.MustCompile(`(?i)(https?://[^\s]+|www\.[^\s]+|[a-z0-9-]+(?:\.[a-z0-9-]+)*\.[a-z]{2,}/[^\s]*)`)

// service implements the Service interface. The configuration is held in
// memory and written through to the repository on every change.
type service struct {
	config *Config
	repo   guardRepo.Repository

	mu  sync.Mutex
	cfg *models.GuardConfig
}

// New creates a new guard service and loads the configuration
func New(ctx context.Context, cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repo == nil {
		return nil, ErrNilRepository
	}

	loaded, err := cfg.Repo.Load(ctx, &guardRepo.LoadInput{})
	if err != nil {
		return nil, err
	}

	return &service{
		config: cfg,
		repo:   cfg.Repo,
		cfg:    loaded,
	}, nil
}

// persist writes the configuration through, logging failures; the
// in-memory configuration stays authoritative
func (s *service) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, &guardRepo.SaveInput{Config: s.cfg}); err != nil {
		logrus.WithError(err).Error("failed to persist guard config")
	}
}

func (s *service) isAdmin(callerID string) bool {
	return s.config.AdminID != "" && callerID == s.config.AdminID
}

// Status returns the current configuration
func (s *service) Status(ctx context.Context, input *StatusInput) (*StatusOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := *s.cfg
	snapshot.AllowedDomains = append([]string{}, s.cfg.AllowedDomains...)
	snapshot.AllowedUsers = append([]string{}, s.cfg.AllowedUsers...)

	return &StatusOutput{Config: snapshot}, nil
}

// SetEnabled toggles inspection, admin only
func (s *service) SetEnabled(ctx context.Context, input *SetEnabledInput) (*SetEnabledOutput, error) {
	if !s.isAdmin(input.CallerID) {
		return nil, ErrNotAdmin
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg.Enabled = input.Enabled
	s.persist(ctx)

	return &SetEnabledOutput{Enabled: s.cfg.Enabled}, nil
}

// normalizeDomain strips scheme prefixes and lowercases
func normalizeDomain(domain string) string {
	d := strings.ToLower(strings.TrimSpace(domain))
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "http://")
	return d
}

// AllowDomain whitelists a domain, admin only
func (s *service) AllowDomain(ctx context.Context, input *AllowDomainInput) (*AllowDomainOutput, error) {
	if !s.isAdmin(input.CallerID) {
		return nil, ErrNotAdmin
	}

	domain := normalizeDomain(input.Domain)
	if domain == "" {
		return nil, ErrEmptyDomain
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.cfg.AllowedDomains {
		if d == domain {
			return &AllowDomainOutput{Domain: domain, Added: false}, nil
		}
	}

	s.cfg.AllowedDomains = append(s.cfg.AllowedDomains, domain)
	s.persist(ctx)

	return &AllowDomainOutput{Domain: domain, Added: true}, nil
}

// DisallowDomain removes a domain from the whitelist, admin only
func (s *service) DisallowDomain(ctx context.Context, input *DisallowDomainInput) (*DisallowDomainOutput, error) {
	if !s.isAdmin(input.CallerID) {
		return nil, ErrNotAdmin
	}

	domain := normalizeDomain(input.Domain)
	if domain == "" {
		return nil, ErrEmptyDomain
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, d := range s.cfg.AllowedDomains {
		if d == domain {
			s.cfg.AllowedDomains = append(s.cfg.AllowedDomains[:i], s.cfg.AllowedDomains[i+1:]...)
			s.persist(ctx)
			return &DisallowDomainOutput{Domain: domain, Removed: true}, nil
		}
	}

	return &DisallowDomainOutput{Domain: domain, Removed: false}, nil
}

// AllowUser exempts a user from inspection, admin only
func (s *service) AllowUser(ctx context.Context, input *AllowUserInput) (*AllowUserOutput, error) {
	if !s.isAdmin(input.CallerID) {
		return nil, ErrNotAdmin
	}

	if input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.cfg.AllowedUsers {
		if id == input.UserID {
			return &AllowUserOutput{UserID: input.UserID, Added: false}, nil
		}
	}

	s.cfg.AllowedUsers = append(s.cfg.AllowedUsers, input.UserID)
	s.persist(ctx)

	return &AllowUserOutput{UserID: input.UserID, Added: true}, nil
}

// DisallowUser removes a user exemption, admin only
func (s *service) DisallowUser(ctx context.Context, input *DisallowUserInput) (*DisallowUserOutput, error) {
	if !s.isAdmin(input.CallerID) {
		return nil, ErrNotAdmin
	}

	if input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, id := range s.cfg.AllowedUsers {
		if id == input.UserID {
			s.cfg.AllowedUsers = append(s.cfg.AllowedUsers[:i], s.cfg.AllowedUsers[i+1:]...)
			s.persist(ctx)
			return &DisallowUserOutput{UserID: input.UserID, Removed: true}, nil
		}
	}

	return &DisallowUserOutput{UserID: input.UserID, Removed: false}, nil
}

// extractDomains pulls the host part out of every link in the text
func extractDomains(text string) []string {
	matches := urlPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	domains := make([]string, 0, len(matches))
	for _, m := range matches {
		domain := strings.ToLower(m)
		domain = strings.TrimPrefix(domain, "http://")
		domain = strings.TrimPrefix(domain, "https://")
		domain = strings.TrimPrefix(domain, "www.")

		if i := strings.IndexByte(domain, '/'); i > 0 {
			domain = domain[:i]
		}

		if domain != "" {
			domains = append(domains, domain)
		}
	}

	return domains
}

// Inspect checks a message against the link policy. Admin and whitelisted
// users pass, as does any message whose links all match allowed domains.
func (s *service) Inspect(ctx context.Context, input *InspectInput) (*InspectOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pass := &InspectOutput{Blocked: false}

	if !s.cfg.Enabled {
		return pass, nil
	}

	if strings.TrimSpace(input.Content) == "" {
		return pass, nil
	}

	if s.isAdmin(input.AuthorID) {
		return pass, nil
	}

	for _, id := range s.cfg.AllowedUsers {
		if id == input.AuthorID {
			return pass, nil
		}
	}

	domains := extractDomains(input.Content)
	if len(domains) == 0 {
		return pass, nil
	}

	// Substring match in either direction, so an allowance of "t.me"
	// covers "t.me/channel" and vice versa
	for _, domain := range domains {
		for _, allowed := range s.cfg.AllowedDomains {
			if strings.Contains(domain, allowed) || strings.Contains(allowed, domain) {
				return pass, nil
			}
		}
	}

	logrus.WithFields(logrus.Fields{
		"author":  input.AuthorID,
		"domains": domains,
	}).Info("blocked message with links")

	return &InspectOutput{
		Blocked:     true,
		Domains:     domains,
		Action:      s.cfg.Action,
		SendWarning: s.cfg.SendWarning,
		WarnMessage: s.cfg.WarnMessage,
	}, nil
}
