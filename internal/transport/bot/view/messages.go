package view

const StartMessage = `👋 <b>Нормализатор номеров</b>

Пришлите номер телефона любым текстом — верну каноническую форму:
маску <code>+7(XXX)XXX-XX-XX</code> для номеров РФ либо <code>+</code> и до 15 цифр
для международных.

/help — подробности`

const HelpMessage = `ℹ️ <b>Как это работает</b>

• 10 цифр — считаю номером РФ без кода страны
• 11 цифр с ведущей 8 — восьмёрку меняю на 7
• ведущий <code>+</code> не из <code>+7</code> — международный номер
• всё, что не цифры, отбрасывается

Известное ограничение: иностранные номера, начинающиеся с 7 или 8,
распознаются как российские.`

const NoDigitsMessage = `🤷 В сообщении нет ни одной цифры.`
