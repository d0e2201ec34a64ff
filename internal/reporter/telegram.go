package reporter

import (
	"fmt"
	"strings"

	"go-devconnect-cli/internal/config"
	"go-devconnect-cli/internal/lifecycle"
	"go-devconnect-cli/internal/models"
	"go-devconnect-cli/internal/score"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//bot.Debug = true

	return &TelegramReporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

// SendProject announces a new open project matching the watcher keywords.
func (t *TelegramReporter) SendProject(p models.Project) error {
	text := fmt.Sprintf(
		"🆕 <b>%s</b>\n"+
			"🏢 %s\n"+
			"💰 $%.0f - $%.0f\n"+
			"🛠 %s\n"+
			"📊 %s complexity, %d applications",
		p.Title,
		p.Company,
		p.BudgetMin,
		p.BudgetMax,
		strings.Join(p.TechStack, ", "),
		p.Complexity,
		p.ApplicationsCount,
	)
	return t.SendMessage(text)
}

// SendChatMessage forwards a chat message from the other party.
func (t *TelegramReporter) SendChatMessage(a models.Assignment, m models.ChatMessage) error {
	icon := "💬"
	if m.MessageType == "system" {
		icon = "ℹ️"
	}
	text := fmt.Sprintf(
		"%s <b>%s</b> on <i>%s</i>:\n%s",
		icon,
		m.SenderName,
		a.ProjectTitle,
		m.Message,
	)
	return t.SendMessage(text)
}

// SendApplication notifies a company of a fresh application, with the
// match band when the matcher has scored it.
func (t *TelegramReporter) SendApplication(app models.Application) error {
	scoreLine := score.Badge(app.MatchScore)
	if app.MatchScore != nil {
		scoreLine = fmt.Sprintf("%s (%.0f%%)", scoreLine, *app.MatchScore)
	}
	text := fmt.Sprintf(
		"📨 <b>New application</b> for <i>%s</i>\n"+
			"👤 %s\n"+
			"💵 $%.0f/hr, %s\n"+
			"🤖 %s",
		app.ProjectTitle,
		app.DeveloperName,
		app.ProposedRate,
		app.EstimatedDuration,
		scoreLine,
	)
	return t.SendMessage(text)
}

// SendLifecycle announces an assignment reaching a new workflow state.
func (t *TelegramReporter) SendLifecycle(a models.Assignment) error {
	status := lifecycle.StatusOf(a)
	icon := "🔔"
	switch status {
	case lifecycle.StatusApproved:
		icon = "🎉"
	case lifecycle.StatusNeedsRevision:
		icon = "🔁"
	}
	text := fmt.Sprintf("%s <i>%s</i> is now <b>%s</b>", icon, a.ProjectTitle, status.Label())
	if status == lifecycle.StatusNeedsRevision && a.Submission != nil && a.Submission.CompanyFeedback != "" {
		text += fmt.Sprintf("\n📝 Feedback: %s", a.Submission.CompanyFeedback)
	}
	return t.SendMessage(text)
}

// SendDeadline warns when a deadline drops into the warning or overdue band.
func (t *TelegramReporter) SendDeadline(a models.Assignment, label string, days int) error {
	var remaining string
	switch lifecycle.BandFor(days) {
	case lifecycle.BandOverdue:
		remaining = "⛔ Overdue"
	case lifecycle.BandWarning:
		remaining = fmt.Sprintf("⚠️ %d days left", days)
	default:
		remaining = fmt.Sprintf("%d days left", days)
	}
	text := fmt.Sprintf("⏰ <b>%s deadline</b> on <i>%s</i>: %s", label, a.ProjectTitle, remaining)
	return t.SendMessage(text)
}

func (t *TelegramReporter) SendStatus(message string) error {
	return t.SendMessage("ℹ️ " + message)
}

func (t *TelegramReporter) SendError(errReq error) error {
	text := fmt.Sprintf("⚠️ <b>DevConnect Watcher Error</b>:\n%v", errReq)
	return t.SendMessage(text)
}
