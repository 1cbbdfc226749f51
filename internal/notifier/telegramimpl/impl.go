package telegramimpl

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"

	"github.com/Alexandru2223/postpilot/internal/domain"
	"github.com/Alexandru2223/postpilot/internal/notifier"
	"github.com/Alexandru2223/postpilot/pkg/config"
	"github.com/Alexandru2223/postpilot/pkg/formatter"
	"github.com/Alexandru2223/postpilot/pkg/logger"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type TelegramImpl struct {
	TgBot  *tgbotapi.BotAPI
	Logger logger.Logger
	Config *config.Config
}

// New creates the telegram notifier. Without a bot token it runs disabled:
// every notification is logged and dropped.
func New(opts Opts) (*TelegramImpl, error) {
	log := opts.Logger.WithComponent("Notifier")

	if opts.Config.Telegram.Token == "" {
		log.Info("Telegram token not configured, notifications disabled")
		return &TelegramImpl{Logger: log, Config: opts.Config}, nil
	}

	tgBot, err := tgbotapi.NewBotAPI(opts.Config.Telegram.Token)
	if err != nil {
		log.Error("Error creating bot", "Error", err)
		return nil, err
	}

	return &TelegramImpl{
		TgBot:  tgBot,
		Logger: log,
		Config: opts.Config,
	}, nil
}

var _ notifier.Client = (*TelegramImpl)(nil)

// PostPublished announces that a scheduled post went live.
func (tg *TelegramImpl) PostPublished(post domain.Post) {
	text := fmt.Sprintf(
		"*Postare publicată*\n\n*%s*\n%s %s la %s\n\n%s",
		formatter.EscapeMarkdownV2(post.Title),
		formatter.EscapeMarkdownV2(string(post.Platform)),
		formatter.EscapeMarkdownV2(post.Date),
		formatter.EscapeMarkdownV2(post.Time),
		formatter.EscapeMarkdownV2(post.Caption),
	)

	if tg.TgBot == nil {
		tg.Logger.Info("Notification skipped", "post_id", post.ID, "title", post.Title)
		return
	}

	msg := tgbotapi.NewMessage(tg.Config.Telegram.User, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	if _, err := tg.TgBot.Send(msg); err != nil {
		tg.Logger.Error("Error sending publish notification",
			"userID", tg.Config.Telegram.User,
			"post_id", post.ID,
			"error", err)
	}
}

// SendMessageToUser sends a plain status message to the configured user.
func (tg *TelegramImpl) SendMessageToUser(message string) {
	if tg.TgBot == nil {
		tg.Logger.Info("Notification skipped", "message", message)
		return
	}

	msg := tgbotapi.NewMessage(tg.Config.Telegram.User, message)
	if _, err := tg.TgBot.Send(msg); err != nil {
		tg.Logger.Error("Error sending message to user",
			"userID", tg.Config.Telegram.User,
			"error", err)
	}
}
