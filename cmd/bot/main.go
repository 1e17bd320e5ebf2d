package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/dxtdz/sicbot/internal/common/clock"
	"github.com/dxtdz/sicbot/internal/config"
	"github.com/dxtdz/sicbot/internal/dice"
	"github.com/dxtdz/sicbot/internal/handlers/discord"
	guardRepo "github.com/dxtdz/sicbot/internal/repositories/guard"
	ledgerRepo "github.com/dxtdz/sicbot/internal/repositories/ledger"
	economyService "github.com/dxtdz/sicbot/internal/services/economy"
	guardService "github.com/dxtdz/sicbot/internal/services/guard"
	qrService "github.com/dxtdz/sicbot/internal/services/qr"
	taggerService "github.com/dxtdz/sicbot/internal/services/tagger"
)

func main() {
	// .env is optional, real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Debug("no .env file loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Build the ledger repository, redis when configured, file otherwise
	ledger, err := buildLedgerRepo(cfg)
	if err != nil {
		logrus.Fatalf("Failed to create ledger repository: %v", err)
	}

	guards, err := guardRepo.NewFile(&guardRepo.FileConfig{
		Path: cfg.GuardFile,
	})
	if err != nil {
		logrus.Fatalf("Failed to create guard repository: %v", err)
	}

	// Initialize dice roller
	diceRoller := dice.New(&dice.Config{})

	// Initialize services
	economySvc, err := economyService.New(ctx, &economyService.Config{
		AdminID:    cfg.AdminID,
		Repo:       ledger,
		DiceRoller: diceRoller,
		Clock:      &clock.DefaultClock{},
	})
	if err != nil {
		logrus.Fatalf("Failed to create economy service: %v", err)
	}

	guardSvc, err := guardService.New(ctx, &guardService.Config{
		AdminID: cfg.AdminID,
		Repo:    guards,
	})
	if err != nil {
		logrus.Fatalf("Failed to create guard service: %v", err)
	}

	qrSvc, err := qrService.New(&qrService.Config{})
	if err != nil {
		logrus.Fatalf("Failed to create qr service: %v", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:          cfg.DiscordToken,
		CommandPrefix:  cfg.CommandPrefix,
		AdminID:        cfg.AdminID,
		TagContentFile: cfg.TagContentFile,
		EconomyService: economySvc,
		GuardService:   guardSvc,
		QRService:      qrSvc,
	})
	if err != nil {
		logrus.Fatalf("Failed to create Discord bot: %v", err)
	}

	// The tagger publishes through the bot, so it is built second
	taggerSvc, err := taggerService.New(&taggerService.Config{
		AdminID:   cfg.AdminID,
		Publisher: bot,
	})
	if err != nil {
		logrus.Fatalf("Failed to create tagger service: %v", err)
	}
	bot.SetTaggerService(taggerSvc)

	// Start the bot and the periodic ledger flush
	if err := bot.Start(); err != nil {
		logrus.Fatalf("Failed to start Discord bot: %v", err)
	}
	economySvc.StartAutoSave(ctx)

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown: stop broadcasts, flush the ledger once, close the session
	taggerSvc.StopAll()
	cancel()

	flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer flushCancel()
	if err := economySvc.Flush(flushCtx); err != nil {
		logrus.WithError(err).Error("failed to flush ledger on shutdown")
	}

	if err := bot.Stop(); err != nil {
		logrus.WithError(err).Error("error stopping bot")
	}

	logrus.Info("Bot has been shut down")
}

// buildLedgerRepo selects the ledger backend from the environment. NewRedis
// verifies the connection itself.
func buildLedgerRepo(cfg *config.Config) (ledgerRepo.Repository, error) {
	if cfg.RedisAddr == "" {
		return ledgerRepo.NewFile(&ledgerRepo.FileConfig{
			Path: cfg.DataFile,
		})
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	return ledgerRepo.NewRedis(&ledgerRepo.RedisConfig{
		RedisClient: redisClient,
	})
}
