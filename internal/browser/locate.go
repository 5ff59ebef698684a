package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// Locate ждет, пока элемент по селектору не станет видимым, либо истечет
// таймаут. Опрос выполняет сам драйвер, собственного polling здесь нет.
func (s *Session) Locate(ctx context.Context, sel Selector, timeout time.Duration) (*Element, error) {
	page := s.getPage()
	if page == nil {
		return nil, ErrNotRunning
	}

	if timeout == 0 {
		timeout = DefaultLocateTimeout
	}

	engine, err := sel.engine()
	if err != nil {
		return nil, fmt.Errorf("невалидный селектор: %w", err)
	}

	handle, err := page.WaitForSelector(engine, playwright.PageWaitForSelectorOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		if isTimeoutErr(err) {
			s.log.Error("Таймаут ожидания элемента",
				zap.String("selector", sel.Value),
				zap.Duration("timeout", timeout),
			)
			return nil, &TimeoutError{Selector: sel, Timeout: timeout, Err: err}
		}
		s.log.Error("Элемент не найден", zap.String("selector", sel.Value), zap.Error(err))
		return nil, &NotFoundError{Selector: sel, Err: err}
	}
	if handle == nil {
		return nil, &NotFoundError{Selector: sel}
	}

	return &Element{handle: handle, Selector: sel}, nil
}

// IsPresent сообщает, есть ли элемент на странице в момент вызова.
// Отсутствие элемента — не ошибка.
func (s *Session) IsPresent(ctx context.Context, sel Selector) bool {
	page := s.getPage()
	if page == nil {
		return false
	}

	engine, err := sel.engine()
	if err != nil {
		return false
	}

	handle, err := page.QuerySelector(engine)
	if err != nil {
		return false
	}
	return handle != nil
}

func isTimeoutErr(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "timeout") || strings.Contains(msg, "exceeded")
}
