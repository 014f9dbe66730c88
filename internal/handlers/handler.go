// Package handlers maps inbound Telegram updates onto the task, note and
// check-in operations, and renders the two scheduled reminders.
package handlers

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/prottasha5/remindme-bot/internal/checkin"
	"github.com/prottasha5/remindme-bot/internal/clock"
	"github.com/prottasha5/remindme-bot/internal/storage"
)

type Handler struct {
	Bot    *tgbotapi.BotAPI
	DB     *storage.DB
	Clock  clock.Clock
	Engine *checkin.Engine
}

func New(bot *tgbotapi.BotAPI, db *storage.DB, clk clock.Clock) *Handler {
	return &Handler{
		Bot:    bot,
		DB:     db,
		Clock:  clk,
		Engine: checkin.New(db, clk),
	}
}

func (h *Handler) HandleUpdate(upd tgbotapi.Update) {
	switch {
	case upd.Message != nil:
		h.handleMessage(upd.Message)
	case upd.CallbackQuery != nil:
		h.HandleCallback(upd.CallbackQuery)
	}
}

func (h *Handler) handleMessage(msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	switch {
	case msg.IsCommand():
		h.HandleCommand(msg)
	case isNonText(msg):
		h.send(msg.Chat.ID, textOnlyNotice)
	default:
		// plain text gets the usage guide
		h.sendMarkdown(msg.Chat.ID, howItWorksMD)
	}
}

func isNonText(msg *tgbotapi.Message) bool {
	return msg.Photo != nil || msg.Video != nil || msg.Voice != nil ||
		msg.Audio != nil || msg.Document != nil || msg.Sticker != nil ||
		msg.Animation != nil || msg.VideoNote != nil ||
		msg.Contact != nil || msg.Location != nil
}

func (h *Handler) send(chatID int64, text string) {
	_, _ = h.Bot.Send(tgbotapi.NewMessage(chatID, text))
}

func (h *Handler) sendMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	_, _ = h.Bot.Send(msg)
}

func logErr(err error) {
	if err != nil {
		log.Println("handlers:", err)
	}
}
