package discord

import (
	"bytes"
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/dxtdz/sicbot/internal/services/qr"
)

func (b *Bot) handleQR(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		b.reply(s, m, fmt.Sprintf("Usage: `%sqr <content> [#RRGGBB] [#RRGGBB]`", b.prefix()))
		return
	}

	input := &qr.GenerateInput{Content: args[0]}
	if len(args) > 1 {
		input.Foreground = args[1]
	}
	if len(args) > 2 {
		input.Background = args[2]
	}

	out, err := b.qrService.Generate(context.Background(), input)
	if err != nil {
		b.reply(s, m, renderError(err))
		return
	}

	_, err = s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Content: "🔳 " + out.Caption,
		Files: []*discordgo.File{
			{
				Name:        b.uuider.NewUUID() + ".png",
				ContentType: "image/png",
				Reader:      bytes.NewReader(out.PNG),
			},
		},
	})
	if err != nil {
		logrus.WithError(err).Error("failed to send QR code")
		b.reply(s, m, "❌ Could not upload the QR code.")
	}
}
