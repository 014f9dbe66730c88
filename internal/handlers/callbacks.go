package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/prottasha5/remindme-bot/internal/checkin"
)

// HandleCallback processes a tap on one of the check-in buttons. The
// callback data is "t:<task_id>", "summary" or "finalize".
func (h *Handler) HandleCallback(cq *tgbotapi.CallbackQuery) {
	userID := cq.From.ID
	data := cq.Data

	switch {
	case strings.HasPrefix(data, "t:"):
		h.handleToggle(cq, userID, strings.TrimPrefix(data, "t:"))
	case data == "summary":
		h.handleSummary(cq, userID)
	case data == "finalize":
		h.handleFinalize(cq, userID)
	default:
		h.answer(cq.ID, "")
	}
}

func (h *Handler) handleToggle(cq *tgbotapi.CallbackQuery, userID int64, raw string) {
	taskID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.alert(cq.ID, "Not allowed.")
		return
	}

	snap, err := h.Engine.Toggle(userID, taskID)
	if err != nil {
		if errors.Is(err, checkin.ErrNotAllowed) {
			// same alert for foreign, stale and nonexistent ids
			h.alert(cq.ID, "Not allowed.")
			return
		}
		h.answer(cq.ID, "")
		logErr(err)
		return
	}

	h.answer(cq.ID, "")
	if cq.Message == nil {
		return
	}
	edit := tgbotapi.NewEditMessageTextAndMarkup(
		cq.Message.Chat.ID, cq.Message.MessageID,
		checkinText(snap), checkinKeyboard(snap.Tasks),
	)
	if _, err := h.Bot.Request(edit); err != nil {
		logErr(err)
	}
}

func (h *Handler) handleSummary(cq *tgbotapi.CallbackQuery, userID int64) {
	snap, err := h.Engine.Summary(userID)
	if err != nil {
		h.answer(cq.ID, "")
		logErr(err)
		return
	}
	// ephemeral toast, nothing persisted or edited
	h.answer(cq.ID, fmt.Sprintf("Done: %d/%d", snap.Done, snap.Total))
}

func (h *Handler) handleFinalize(cq *tgbotapi.CallbackQuery, userID int64) {
	h.answer(cq.ID, "")

	out, err := h.Engine.Finalize(userID)
	if err != nil {
		logErr(err)
		return
	}
	if cq.Message == nil {
		return
	}

	msg := fmt.Sprintf("✅ Final result for %s: %d/%d\n%s", out.Day, out.Done, out.Total, feedbackText(out.Tier))
	if out.Note != "" {
		msg += "\n\n📝 Your note: " + out.Note
	}
	h.send(cq.Message.Chat.ID, msg+"\n"+seeHelp)
}

func (h *Handler) answer(callbackID, text string) {
	_, _ = h.Bot.Request(tgbotapi.NewCallback(callbackID, text))
}

func (h *Handler) alert(callbackID, text string) {
	_, _ = h.Bot.Request(tgbotapi.NewCallbackWithAlert(callbackID, text))
}
