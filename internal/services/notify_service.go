package services

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"bankingsystem/internal/models"
)

// NotifyService posts transfer alerts to an operations Telegram chat.
// Nil receiver and empty configuration are both no-ops, so the service
// can run without a bot token.
type NotifyService struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewNotifyService(botToken string, chatID int64) *NotifyService {
	if botToken == "" || chatID == 0 {
		return nil
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		log.Printf("[tg][init] bot disabled: %v", err)
		return nil
	}
	return &NotifyService{bot: bot, chatID: chatID}
}

func (s *NotifyService) TransferExecuted(tx *models.Transaction) error {
	if s == nil || s.bot == nil {
		return nil
	}
	text := fmt.Sprintf(
		"Transfer #%d\n%s → %s\nAmount: %.2f\n%s",
		tx.ID, tx.FromCard, tx.ToCard, tx.Amount, tx.Description,
	)
	msg := tgbotapi.NewMessage(s.chatID, text)
	if _, err := s.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram sendMessage failed: %w", err)
	}
	return nil
}
