package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

func (s *Session) ScrollToBottom(ctx context.Context) error {
	page := s.getPage()
	if page == nil {
		return ErrNotRunning
	}

	_, err := page.Evaluate(`() => {
		window.scrollTo({
			top: document.body.scrollHeight,
			behavior: 'smooth'
		});
	}`)
	if err != nil {
		return fmt.Errorf("ошибка прокрутки вниз: %w", err)
	}

	time.Sleep(300 * time.Millisecond)
	return nil
}

func (s *Session) ScrollToElement(ctx context.Context, el *Element) error {
	page := s.getPage()
	if page == nil {
		return ErrNotRunning
	}
	if el == nil || el.handle == nil {
		return fmt.Errorf("элемент не задан")
	}

	err := el.handle.ScrollIntoViewIfNeeded(playwright.ElementHandleScrollIntoViewIfNeededOptions{
		Timeout: playwright.Float(5000),
	})
	if err != nil {
		// Fallback на scrollIntoView, если встроенный метод не сработал
		_, err = el.handle.Evaluate(`el => {
			el.scrollIntoView({
				behavior: 'auto',
				block: 'center',
				inline: 'center'
			});
		}`)
		if err != nil {
			return fmt.Errorf("ошибка прокрутки к элементу %q: %w", el.Selector.Value, err)
		}
		time.Sleep(200 * time.Millisecond)
	}

	return nil
}
