package browser

import (
	"context"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// TypeText находит элемент, очищает его содержимое и вводит текст.
// Повторный вызов с другой строкой оставляет только последнюю.
func (s *Session) TypeText(ctx context.Context, sel Selector, text string) error {
	el, err := s.Locate(ctx, sel, s.cfg.Timeout)
	if err != nil {
		return err
	}

	if err := el.handle.Fill(text); err != nil {
		s.log.Error("Ошибка ввода текста", zap.String("selector", sel.Value), zap.Error(err))
		return &ActionError{Action: "ввод текста", Selector: sel, Err: err}
	}
	return nil
}

// SelectOption находит select и выбирает опцию с точно совпадающим
// отображаемым текстом.
func (s *Session) SelectOption(ctx context.Context, sel Selector, visibleText string) error {
	el, err := s.Locate(ctx, sel, s.cfg.Timeout)
	if err != nil {
		return err
	}

	selected, err := el.handle.SelectOption(playwright.SelectOptionValues{
		Labels: &[]string{visibleText},
	})
	if err != nil || len(selected) == 0 {
		s.log.Error("Опция не найдена",
			zap.String("selector", sel.Value),
			zap.String("option", visibleText),
			zap.Error(err),
		)
		return &NotFoundError{Selector: sel, Option: visibleText, Err: err}
	}
	return nil
}
