package main

import (
	"log"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"

	"github.com/prottasha5/remindme-bot/internal/clock"
	"github.com/prottasha5/remindme-bot/internal/config"
	"github.com/prottasha5/remindme-bot/internal/handlers"
	"github.com/prottasha5/remindme-bot/internal/reminder"
	"github.com/prottasha5/remindme-bot/internal/scheduler"
	"github.com/prottasha5/remindme-bot/internal/storage"
)

func main() {
	_ = godotenv.Load() // BOT_TOKEN etc.

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("bad BOT_TZ %q: %v", cfg.Timezone, err)
	}
	clk := clock.NewReal(loc)

	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer db.Close()

	bot, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		log.Fatalf("bot init: %v", err)
	}
	log.Printf("authorized as @%s", bot.Self.UserName)

	h := handlers.New(bot, db, clk)

	sched, err := scheduler.Start(cfg, clk, reminder.NewTracker(db), h)
	if err != nil {
		log.Fatalf("scheduler: %v", err)
	}
	defer func() { _ = sched.Shutdown() }()

	updates, err := updatesChan(bot, cfg)
	if err != nil {
		log.Fatal(err)
	}

	for upd := range updates {
		h.HandleUpdate(upd)
	}
}

func updatesChan(bot *tgbotapi.BotAPI, cfg config.Config) (tgbotapi.UpdatesChannel, error) {
	if cfg.RunMode == "webhook" {
		wh, err := tgbotapi.NewWebhook(cfg.WebhookBase + "/" + cfg.WebhookPath)
		if err != nil {
			return nil, err
		}
		if _, err := bot.Request(wh); err != nil {
			return nil, err
		}

		updates := bot.ListenForWebhook("/" + cfg.WebhookPath)
		go func() {
			log.Printf("starting webhook on :%s path=/%s", cfg.Port, cfg.WebhookPath)
			if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
				log.Fatal(err)
			}
		}()
		return updates, nil
	}

	log.Println("starting polling...")
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	u.AllowedUpdates = []string{"message", "callback_query"}
	return bot.GetUpdatesChan(u), nil
}
