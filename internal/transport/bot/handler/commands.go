package handler

import (
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"phone-input/internal/domain/service/phonefmt"
	"phone-input/internal/domain/value"
	"phone-input/internal/transport/bot/view"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

func (h *Handler) OnHelp(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.HelpMessage)
}

// OnText любой текст трактуем как сырой ввод номера: прогоняем через то же
// ядро, что и HTTP-обработчики, вставочный вариант (бот это всегда paste).
func (h *Handler) OnText(ctx *th.Context, msg telego.Message) error {
	next := phonefmt.OnPaste(msg.Text, "")
	if next.IsEmpty() {
		return h.sendHTML(ctx, msg.Chat.ID, view.NoDigitsMessage)
	}

	kindLabel := "🇷🇺 РФ"
	if next.Kind() == value.KindInternational {
		kindLabel = "🌍 международный"
	}

	text := fmt.Sprintf(`📞 <b>%s</b>

	Тип: %s
	Цифры: <code>%s</code>
	WhatsApp: %s
`,
		next.String(),
		kindLabel,
		next.Digits(),
		h.links.WhatsApp(next),
	)

	return h.sendHTML(ctx, msg.Chat.ID, text)
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: telego.ModeHTML,
	})
	return err
}
