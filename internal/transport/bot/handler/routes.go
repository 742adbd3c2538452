package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"phone-input/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	// Бот отладочный, наружу не светится: вся группа только для админа
	adminGroup := bh.Group(th.AnyMessage())
	adminGroup.Use(middleware.AdminOnly(adminID))

	// Команда /start
	adminGroup.HandleMessage(h.OnStart, th.CommandEqual("start"))

	// Команда /help
	adminGroup.HandleMessage(h.OnHelp, th.CommandEqual("help"))

	// Любой другой текст — сырой номер на нормализацию
	adminGroup.HandleMessage(h.OnText, th.AnyMessageWithText())
}
