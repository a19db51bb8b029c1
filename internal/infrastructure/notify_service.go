// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package infrastructure

import (
	"fmt"
	"strconv"
	"time"

	. "github.com/GetSky/TwilightBTA/internal/application"
	"github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type telegramNotifyService struct {
	bot           *tgbotapi.BotAPI
	telegramChat  int64
	loc           *time.Location
	lastMessageID int
}

func NewTelegramNotifyService(bot *tgbotapi.BotAPI, receiverKey string, loc *time.Location) (NotifyService, error) {
	chat, err := strconv.ParseInt(receiverKey, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("TelegramNotifyService → parse chat id: %w", err)
	}

	return &telegramNotifyService{
		bot:          bot,
		telegramChat: chat,
		loc:          loc,
	}, nil
}

func (c *telegramNotifyService) SendWorkStarted(night Night) error {
	if err := c.send(formatNight(night, c.loc)); err != nil {
		return err
	}
	c.lastMessageID = 0
	return nil
}

// SendUpdate edits the last sky update of the session in place, or posts a
// new one if there is none yet.
func (c *telegramNotifyService) SendUpdate(sky Sky) error {
	text := formatSky(sky, c.loc)

	var cnf tgbotapi.Chattable
	if c.lastMessageID == 0 {
		cnf = tgbotapi.MessageConfig{
			BaseChat:  tgbotapi.BaseChat{ChatID: c.telegramChat},
			Text:      text,
			ParseMode: tgbotapi.ModeMarkdown,
		}
	} else {
		cnf = tgbotapi.EditMessageTextConfig{
			BaseEdit: tgbotapi.BaseEdit{
				ChatID:    c.telegramChat,
				MessageID: c.lastMessageID,
			},
			Text:      text,
			ParseMode: tgbotapi.ModeMarkdown,
		}
	}

	msg, err := c.bot.Send(cnf)
	if err != nil {
		return fmt.Errorf("TelegramNotifyService → %w", err)
	}
	c.lastMessageID = msg.MessageID
	return nil
}

func (c *telegramNotifyService) SendWorkEnded(summary DaySummary) error {
	if err := c.send(formatSummary(summary, c.loc)); err != nil {
		return err
	}
	c.lastMessageID = 0
	return nil
}

func (c *telegramNotifyService) send(text string) error {
	_, err := c.bot.Send(tgbotapi.MessageConfig{
		BaseChat: tgbotapi.BaseChat{
			ChatID: c.telegramChat,
		},
		Text:      text,
		ParseMode: tgbotapi.ModeMarkdown,
	})
	if err != nil {
		return fmt.Errorf("TelegramNotifyService → %w", err)
	}
	return nil
}
