package qr

import (
	"bytes"
	"context"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G'}

type QRServiceTestSuite struct {
	suite.Suite
	svc Service
	ctx context.Context
}

func (s *QRServiceTestSuite) SetupTest() {
	s.ctx = context.Background()

	svc, err := New(&Config{})
	s.Require().NoError(err)
	s.svc = svc
}

func TestQRServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QRServiceTestSuite))
}

func (s *QRServiceTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)
}

func (s *QRServiceTestSuite) TestGenerateProducesPNG() {
	out, err := s.svc.Generate(s.ctx, &GenerateInput{Content: "https://example.com"})
	s.Require().NoError(err)
	s.True(bytes.HasPrefix(out.PNG, pngHeader))
	s.Equal("https://example.com", out.Content)
}

func (s *QRServiceTestSuite) TestBareDomainGetsPrefixed() {
	out, err := s.svc.Generate(s.ctx, &GenerateInput{Content: "example.com/page"})
	s.Require().NoError(err)
	s.Equal("https://example.com/page", out.Content)
}

func (s *QRServiceTestSuite) TestPlainTextNotPrefixed() {
	out, err := s.svc.Generate(s.ctx, &GenerateInput{Content: "hello world"})
	s.Require().NoError(err)
	s.Equal("hello world", out.Content)
}

func (s *QRServiceTestSuite) TestEmptyContentRejected() {
	_, err := s.svc.Generate(s.ctx, &GenerateInput{Content: "   "})
	s.ErrorIs(err, ErrEmptyContent)
}

func (s *QRServiceTestSuite) TestCustomColors() {
	out, err := s.svc.Generate(s.ctx, &GenerateInput{
		Content:    "https://example.com",
		Foreground: "#112233",
		Background: "#ffffff",
	})
	s.Require().NoError(err)
	s.NotEmpty(out.PNG)
}

func (s *QRServiceTestSuite) TestBadColorRejected() {
	for _, bad := range []string{"112233", "#12345", "#gggggg", "red"} {
		_, err := s.svc.Generate(s.ctx, &GenerateInput{
			Content:    "https://example.com",
			Foreground: bad,
		})
		s.ErrorIs(err, ErrBadColor, "color %q", bad)
	}
}

func (s *QRServiceTestSuite) TestLongCaptionTruncated() {
	long := strings.Repeat("a", 80)
	out, err := s.svc.Generate(s.ctx, &GenerateInput{Content: long})
	s.Require().NoError(err)
	s.Equal(strings.Repeat("a", 50)+"...", out.Caption)
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#1a2B3c")
	if err != nil {
		t.Fatalf("parseHexColor() error = %v", err)
	}
	want := color.RGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0xff}
	if c != want {
		t.Errorf("parseHexColor() = %v, want %v", c, want)
	}
}
