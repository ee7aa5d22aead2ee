package pages

import "log/slog"

// Notice — короткое уведомление о результате действия.
type Notice struct {
	Title       string
	Description string
	Destructive bool
}

// Notifier показывает уведомления пользователю.
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc адаптирует функцию к Notifier.
type NotifierFunc func(n Notice)

// Notify вызывает f(n).
func (f NotifierFunc) Notify(n Notice) { f(n) }

// LogNotifier пишет уведомления в лог.
type LogNotifier struct {
	Log *slog.Logger
}

func (l LogNotifier) Notify(n Notice) {
	if n.Destructive {
		l.Log.Warn(n.Title, slog.String("description", n.Description))
		return
	}
	l.Log.Info(n.Title, slog.String("description", n.Description))
}

func success(title string) Notice {
	return Notice{Title: title}
}

func failure(title string, err error) Notice {
	return Notice{Title: title, Description: err.Error(), Destructive: true}
}

type nopNotifier struct{}

func (nopNotifier) Notify(Notice) {}
