package qr

// Config holds configuration for the QR service
type Config struct {
	// Size is the square image size in pixels, defaulting to 500
	Size int
}

// GenerateInput contains parameters for generating a QR code
type GenerateInput struct {
	// Content is the text to encode; bare domains get an https:// prefix
	Content string

	// Foreground is an optional #RRGGBB color, defaulting to black
	Foreground string

	// Background is an optional #RRGGBB color, defaulting to white
	Background string
}

// GenerateOutput contains the encoded image
type GenerateOutput struct {
	// PNG is the encoded image bytes
	PNG []byte

	// Content is what was actually encoded, after prefixing
	Content string

	// Caption is the content truncated for display
	Caption string
}
