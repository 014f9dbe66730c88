package handlers

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/prottasha5/remindme-bot/internal/checkin"
	"github.com/prottasha5/remindme-bot/internal/models"
)

const helpText = "✅ Commands:\n" +
	"• /add <task>   — Add a task for today\n" +
	"• /today        — View today’s tasks\n" +
	"• /checkin      — Start final check-in now\n" +
	"• /del <id>     — Delete a task by id\n" +
	"• /reset        — Delete all tasks for today\n" +
	"• /note <text>  — Save a short note (your own feedback)\n" +
	"• /help         — Show help\n"

const howItWorksMD = "✨ *Welcome to RemindMe Bot* 😊\n\n" +
	"I help you plan your day and do a quick nightly check-in.\n\n" +
	"🧩 *How to use:*\n" +
	"1) Add tasks:  `/add <task>`\n" +
	"2) View tasks: `/today`\n" +
	"3) Night check-in: `/checkin` (or wait for 11:50 PM)\n\n" +
	"⏰ *Daily reminders (Asia/Dhaka):*\n" +
	"• 6:00 PM — Task reminder\n" +
	"• 11:50 PM — Final check-in (tap buttons + Finalize)\n\n" +
	"🚀 *Quick start:*\n" +
	"• `/add Study 1 hour`\n" +
	"• `/add Gym`\n" +
	"• `/today`\n\n" +
	"Type */help* to see the full command list."

const textOnlyNotice = "⚠️ I’m a text-based bot.\n" +
	"I can’t read photos, videos, files, or voice notes.\n\n" +
	"Please use commands like:\n" +
	"• /add <task>\n" +
	"• /today\n" +
	"• /checkin\n" +
	"• /help"

const seeHelp = "\nType /help to see commands."

// taskLines renders one numbered line per task, checkbox first.
func taskLines(tasks []models.Task) string {
	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		box := "⬜"
		if t.Done {
			box = "✅"
		}
		lines = append(lines, fmt.Sprintf("%d. %s %s", t.ID, box, t.Text))
	}
	return strings.Join(lines, "\n")
}

func checkinText(snap *checkin.Snapshot) string {
	return fmt.Sprintf(
		"🌙 Final Check-in — %s\n✅ Done: %d/%d\n\nTap buttons to toggle Done/Not done, then press Finalize.",
		snap.Day, snap.Done, snap.Total,
	)
}

// checkinKeyboard has one toggle button per task plus the Finalize and
// Summary controls on the last row.
func checkinKeyboard(tasks []models.Task) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(tasks)+1)
	for _, t := range tasks {
		prefix := "⬜"
		if t.Done {
			prefix = "✅"
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				prefix+" "+clamp(t.Text, 32),
				fmt.Sprintf("t:%d", t.ID),
			),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("📌 Finalize", "finalize"),
		tgbotapi.NewInlineKeyboardButtonData("📋 Summary", "summary"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// clamp shortens button labels so long task texts stay tappable.
func clamp(s string, n int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func feedbackText(tier checkin.Tier) string {
	switch tier {
	case checkin.TierNoTasks:
		return "No tasks were set today. Tomorrow, start with 1–2 small tasks 😊"
	case checkin.TierComplete:
		return "🔥 Amazing! You completed everything. Keep it up ✅"
	case checkin.TierNearComplete:
		return "👏 Great job! You were very close — tomorrow you’ll crush it ✅"
	case checkin.TierPartial:
		return "👍 Good effort. Try smaller tasks to build momentum 😊"
	}
	return "💛 It’s okay. Tomorrow: start with one tiny task first, then build from there."
}
