package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/prottasha5/remindme-bot/internal/storage"
)

func (h *Handler) HandleCommand(msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID
	args := strings.TrimSpace(msg.CommandArguments())

	switch msg.Command() {
	case "start":
		h.handleStart(userID, chatID)
	case "help":
		h.send(chatID, helpText)
	case "add":
		h.handleAdd(userID, chatID, args)
	case "today":
		h.handleToday(userID, chatID)
	case "del":
		h.handleDel(userID, chatID, args)
	case "reset":
		h.handleReset(userID, chatID)
	case "note":
		h.handleNote(userID, chatID, args)
	case "checkin":
		h.handleCheckin(userID, chatID)
	default:
		h.send(chatID, "I didn’t recognize that command.\n"+seeHelp)
	}
}

func (h *Handler) handleStart(userID, chatID int64) {
	if err := h.DB.UpsertUser(userID, chatID); err != nil {
		h.sendStoreError(chatID, err)
		return
	}
	h.sendMarkdown(chatID, howItWorksMD)
}

func (h *Handler) handleAdd(userID, chatID int64, text string) {
	if err := h.DB.UpsertUser(userID, chatID); err != nil {
		h.sendStoreError(chatID, err)
		return
	}

	day := h.Clock.Today()
	if err := h.DB.AddTask(userID, day, text); err != nil {
		if errors.Is(err, storage.ErrEmptyTask) {
			h.send(chatID, "Usage: /add <task>"+seeHelp)
			return
		}
		h.sendStoreError(chatID, err)
		return
	}
	h.send(chatID, fmt.Sprintf("✅ Added for today (%s): %s%s", day, strings.TrimSpace(text), seeHelp))
}

func (h *Handler) handleToday(userID, chatID int64) {
	day := h.Clock.Today()
	tasks, err := h.DB.ListTasks(userID, day)
	if err != nil {
		h.sendStoreError(chatID, err)
		return
	}

	if len(tasks) == 0 {
		h.send(chatID, fmt.Sprintf("Today (%s) you have no tasks. Use /add <task>.%s", day, seeHelp))
		return
	}

	out := fmt.Sprintf("🗓️ %s — Your Tasks\n%s", day, taskLines(tasks))
	note, err := h.DB.GetNote(userID, day)
	if err != nil {
		h.sendStoreError(chatID, err)
		return
	}
	if note != "" {
		out += "\n\n📝 Your note: " + note
	} else {
		out += "\n\nTip: add a note with /note <text>"
	}
	h.send(chatID, out+"\n"+seeHelp)
}

func (h *Handler) handleDel(userID, chatID int64, args string) {
	if err := h.DB.UpsertUser(userID, chatID); err != nil {
		h.sendStoreError(chatID, err)
		return
	}
	if args == "" {
		h.send(chatID, "Usage: /del <task_id> (see /today)"+seeHelp)
		return
	}

	taskID, err := strconv.ParseInt(args, 10, 64)
	if err != nil {
		h.send(chatID, "Usage: /del <task_id> (must be a number)"+seeHelp)
		return
	}

	day := h.Clock.Today()
	ok, err := h.DB.BelongsToUser(userID, taskID, day)
	if err != nil {
		h.sendStoreError(chatID, err)
		return
	}
	if !ok {
		h.send(chatID, "That task ID is not in today’s list. Use /today."+seeHelp)
		return
	}

	if err := h.DB.DeleteTask(taskID); err != nil {
		h.sendStoreError(chatID, err)
		return
	}
	h.send(chatID, fmt.Sprintf("🗑️ Deleted task %d.%s", taskID, seeHelp))
}

func (h *Handler) handleReset(userID, chatID int64) {
	if err := h.DB.UpsertUser(userID, chatID); err != nil {
		h.sendStoreError(chatID, err)
		return
	}

	day := h.Clock.Today()
	deleted, err := h.DB.DeleteAllForDay(userID, day)
	if err != nil {
		h.sendStoreError(chatID, err)
		return
	}
	if err := h.DB.DeleteNote(userID, day); err != nil {
		h.sendStoreError(chatID, err)
		return
	}
	h.send(chatID, fmt.Sprintf("🔄 Reset complete for %s. Deleted %d task(s).%s", day, deleted, seeHelp))
}

func (h *Handler) handleNote(userID, chatID int64, note string) {
	if err := h.DB.UpsertUser(userID, chatID); err != nil {
		h.sendStoreError(chatID, err)
		return
	}
	if note == "" {
		h.send(chatID, "Usage: /note <your short feedback>"+seeHelp)
		return
	}

	day := h.Clock.Today()
	if err := h.DB.SetNote(userID, day, note); err != nil {
		h.sendStoreError(chatID, err)
		return
	}
	h.send(chatID, fmt.Sprintf("📝 Saved note for %s.%s", day, seeHelp))
}

func (h *Handler) handleCheckin(userID, chatID int64) {
	if err := h.DB.UpsertUser(userID, chatID); err != nil {
		h.sendStoreError(chatID, err)
		return
	}
	if err := h.sendCheckin(userID, chatID, h.Clock.Today()); err != nil {
		h.sendStoreError(chatID, err)
	}
}

func (h *Handler) sendStoreError(chatID int64, err error) {
	// the store should never fail in normal operation; tell the user
	// something neutral and keep the detail in the log
	h.send(chatID, "Something went wrong, please try again."+seeHelp)
	logErr(err)
}
