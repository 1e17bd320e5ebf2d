package qr

import (
	"context"
	"image/color"
	"strconv"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	defaultSize   = 500
	maxCaptionLen = 50
)

// service implements the Service interface
type service struct {
	size int
}

// New creates a new QR service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	size := cfg.Size
	if size <= 0 {
		size = defaultSize
	}

	return &service{size: size}, nil
}

// parseHexColor parses a #RRGGBB string
func parseHexColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[0] != '#' {
		return nil, ErrBadColor
	}

	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return nil, ErrBadColor
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

// normalizeContent prefixes bare domains with https:// so phone cameras
// open them as links
func normalizeContent(content string) string {
	c := strings.TrimSpace(content)
	lower := strings.ToLower(c)

	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return c
	}

	// A single token with a dot and no spaces looks like a domain
	if !strings.ContainsAny(c, " \t\n") && strings.Contains(c, ".") {
		return "https://" + c
	}

	return c
}

// caption truncates the content for display next to the image
func caption(content string) string {
	runes := []rune(content)
	if len(runes) <= maxCaptionLen {
		return content
	}
	return string(runes[:maxCaptionLen]) + "..."
}

// Generate encodes the content as a PNG QR code
func (s *service) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	content := normalizeContent(input.Content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	fg := color.Color(color.Black)
	if input.Foreground != "" {
		parsed, err := parseHexColor(input.Foreground)
		if err != nil {
			return nil, err
		}
		fg = parsed
	}

	bg := color.Color(color.White)
	if input.Background != "" {
		parsed, err := parseHexColor(input.Background)
		if err != nil {
			return nil, err
		}
		bg = parsed
	}

	code, err := qrcode.New(content, qrcode.Highest)
	if err != nil {
		return nil, err
	}
	code.ForegroundColor = fg
	code.BackgroundColor = bg

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, err
	}

	return &GenerateOutput{
		PNG:     png,
		Content: content,
		Caption: caption(content),
	}, nil
}
