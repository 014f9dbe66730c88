package handlers

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/prottasha5/remindme-bot/internal/checkin"
	"github.com/prottasha5/remindme-bot/internal/models"
)

// Notify implements scheduler.Notifier: it renders and delivers one of
// the two daily reminders. An error here means the user was not reached
// and must stay due.
func (h *Handler) Notify(kind models.ReminderKind, to models.DueUser, day string) error {
	switch kind {
	case models.KindEvening:
		return h.sendEveningReminder(to.UserID, to.ChatID, day)
	case models.KindCheckin:
		return h.sendCheckin(to.UserID, to.ChatID, day)
	}
	return fmt.Errorf("unknown reminder kind %q", kind)
}

func (h *Handler) sendEveningReminder(userID, chatID int64, day string) error {
	tasks, err := h.DB.ListTasks(userID, day)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		_, err = h.Bot.Send(tgbotapi.NewMessage(chatID, fmt.Sprintf(
			"⏰ 6:00 PM Reminder (%s)\nYou have not added any tasks today.\nUse /add <task> to add tasks.", day,
		)))
		return err
	}

	_, err = h.Bot.Send(tgbotapi.NewMessage(chatID, fmt.Sprintf(
		"⏰ 6:00 PM Reminder (%s)\nHere are your tasks:\n%s", day, taskLines(tasks),
	)))
	return err
}

func (h *Handler) sendCheckin(userID, chatID int64, day string) error {
	tasks, err := h.DB.ListTasks(userID, day)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		_, err = h.Bot.Send(tgbotapi.NewMessage(chatID, fmt.Sprintf(
			"🌙 11:50 PM Check-in (%s)\nNo tasks were set today.", day,
		)))
		return err
	}

	snap := &checkin.Snapshot{Day: day, Tasks: tasks, Total: len(tasks)}
	for _, t := range tasks {
		if t.Done {
			snap.Done++
		}
	}

	msg := tgbotapi.NewMessage(chatID, checkinText(snap))
	msg.ReplyMarkup = checkinKeyboard(tasks)
	_, err = h.Bot.Send(msg)
	return err
}
