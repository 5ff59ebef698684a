package browser

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotRunning возвращается хелперами до запуска сессии.
	ErrNotRunning = errors.New("браузер не запущен")
	// ErrNoAlert возвращается HandleAlert, когда нативный alert не отображается.
	ErrNoAlert = errors.New("нет активного alert")
)

// LaunchError — драйвер не смог запустить браузер или применить конфигурацию.
type LaunchError struct {
	Err error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("ошибка запуска браузера: %v", e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// TimeoutError — элемент не стал видимым за отведенный таймаут.
type TimeoutError struct {
	Selector Selector
	Timeout  time.Duration
	Err      error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("элемент %q не появился за %v", e.Selector.Value, e.Timeout)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// NotFoundError — драйвер сообщил, что элемент (или опция) не существует.
type NotFoundError struct {
	Selector Selector
	Option   string
	Err      error
}

func (e *NotFoundError) Error() string {
	if e.Option != "" {
		return fmt.Sprintf("опция %q не найдена в элементе %q", e.Option, e.Selector.Value)
	}
	return fmt.Sprintf("элемент %q не найден", e.Selector.Value)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// ActionError — действие над найденным элементом не выполнилось
// (например, элемент не интерактивен).
type ActionError struct {
	Action   string
	Selector Selector
	Err      error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s для %q: %v", e.Action, e.Selector.Value, e.Err)
}

func (e *ActionError) Unwrap() error { return e.Err }

// WindowError — индекс окна вне диапазона открытых окон.
type WindowError struct {
	Index int
	Count int
}

func (e *WindowError) Error() string {
	return fmt.Sprintf("окно с индексом %d не существует, открыто окон: %d", e.Index, e.Count)
}
