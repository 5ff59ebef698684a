package browser

import (
	"context"
	"fmt"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// ElementScreenshot находит элемент и сохраняет его рендер в файл.
// Ошибки снятия скриншота возвращаются вызывающему, как и у остальных
// хелперов.
func (s *Session) ElementScreenshot(ctx context.Context, sel Selector, path string) error {
	el, err := s.Locate(ctx, sel, s.cfg.Timeout)
	if err != nil {
		return err
	}

	_, err = el.handle.Screenshot(playwright.ElementHandleScreenshotOptions{
		Path: playwright.String(path),
	})
	if err != nil {
		s.log.Error("Ошибка скриншота элемента",
			zap.String("selector", sel.Value),
			zap.String("path", path),
			zap.Error(err),
		)
		return &ActionError{Action: "скриншот элемента", Selector: sel, Err: err}
	}

	s.log.Info("Скриншот элемента сохранен", zap.String("path", path))
	return nil
}

// FullPageScreenshot временно растягивает viewport до полной высоты и
// ширины страницы, делает снимок и возвращает исходный размер. Возврат
// размера выполняется в defer и происходит даже при ошибке снятия.
func (s *Session) FullPageScreenshot(ctx context.Context, path string) error {
	page := s.getPage()
	if page == nil {
		return ErrNotRunning
	}

	original := page.ViewportSize()

	result, err := page.Evaluate(`() => ({
		width: document.documentElement.scrollWidth,
		height: document.documentElement.scrollHeight
	})`)
	if err != nil {
		s.log.Error("Ошибка измерения страницы", zap.Error(err))
		return fmt.Errorf("ошибка измерения страницы: %w", err)
	}

	width, height, err := parsePageSize(result)
	if err != nil {
		return err
	}

	if err := page.SetViewportSize(width, height); err != nil {
		s.log.Error("Ошибка изменения viewport", zap.Error(err))
		return fmt.Errorf("ошибка изменения viewport: %w", err)
	}
	defer func() {
		if original == nil {
			return
		}
		if err := page.SetViewportSize(original.Width, original.Height); err != nil {
			s.log.Warn("Не удалось восстановить размер viewport", zap.Error(err))
		}
	}()

	_, err = page.Screenshot(playwright.PageScreenshotOptions{
		Path: playwright.String(path),
	})
	if err != nil {
		s.log.Error("Ошибка скриншота страницы", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("ошибка скриншота страницы: %w", err)
	}

	s.log.Info("Скриншот страницы сохранен", zap.String("path", path))
	return nil
}

func parsePageSize(result any) (int, int, error) {
	dims, ok := result.(map[string]any)
	if !ok {
		return 0, 0, fmt.Errorf("неожиданный формат размеров страницы: %T", result)
	}

	width := toInt(dims["width"])
	height := toInt(dims["height"])
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("невалидные размеры страницы: %dx%d", width, height)
	}
	return width, height, nil
}

func toInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}
