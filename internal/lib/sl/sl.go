// Package sl содержит вспомогательные функции для работы с логгером slog.
package sl

import "log/slog"

// Err возвращает slog.Attr с ключом "error" и текстом ошибки.
// Для nil возвращается пустая строка, чтобы вызов в defer-ветках был безопасен.
//
// Пример:
//
//	log.Error("upstream request failed", sl.Err(err))
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// Discard возвращает логгер, который ничего не пишет. Используется в тестах
// и там, где логгер не был передан явно.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
