package browser

import (
	"go.uber.org/zap"
)

// SwitchToWindow делает активным окно с позицией index в порядке,
// который сообщает драйвер (обычно порядок создания).
func (s *Session) SwitchToWindow(index int) error {
	s.mu.RLock()
	browserContext := s.context
	s.mu.RUnlock()

	if browserContext == nil {
		return ErrNotRunning
	}

	pages := browserContext.Pages()
	if index < 0 || index >= len(pages) {
		s.log.Error("Окно не найдено", zap.Int("index", index), zap.Int("count", len(pages)))
		return &WindowError{Index: index, Count: len(pages)}
	}

	page := pages[index]
	if err := page.BringToFront(); err != nil {
		s.log.Error("Ошибка переключения окна", zap.Int("index", index), zap.Error(err))
		return err
	}

	s.attachPage(page)
	return nil
}

// HandleAlert возвращает текст отображаемого нативного alert и затем
// принимает либо отклоняет его.
func (s *Session) HandleAlert(accept bool) (string, error) {
	s.mu.Lock()
	dialog := s.dialog
	s.dialog = nil
	page := s.page
	s.mu.Unlock()

	if page == nil {
		return "", ErrNotRunning
	}
	if dialog == nil {
		s.log.Warn("HandleAlert вызван без активного alert")
		return "", ErrNoAlert
	}

	message := dialog.Message()

	var err error
	if accept {
		err = dialog.Accept()
	} else {
		err = dialog.Dismiss()
	}
	if err != nil {
		s.log.Error("Ошибка обработки alert", zap.Bool("accept", accept), zap.Error(err))
		return "", err
	}

	return message, nil
}
