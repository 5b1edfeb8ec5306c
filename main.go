package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"moviebot/internal/biz"
	"moviebot/internal/bot"
	"moviebot/internal/conf"
	"moviebot/internal/data"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := conf.LoadFromEnv()
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	log.Printf("Opening database at %s", config.DBPath)
	repos, err := data.Open(config.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer repos.Close()

	ucs := biz.NewUsecases(repos)

	b, err := bot.New(config.BotToken, config.Debug, bot.Deps{
		UserUC:      ucs.User,
		WishlistUC:  ucs.Wishlist,
		SelectionUC: ucs.Selection,
		WatchUC:     ucs.Watch,
		HistoryUC:   ucs.History,
		StateRepo:   repos.State,
	})
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Shutting down...")
		cancel()
	}()

	log.Printf("Starting MovieBot as @%s", b.Self())
	if err := b.Run(ctx); err != nil && err != context.Canceled {
		log.Fatalf("Bot error: %v", err)
	}
	log.Println("Bot stopped.")
}
