package browser

import (
	"context"
	"os"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

func New(cfg Config, log *zap.Logger) *Session {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultLocateTimeout
	}

	return &Session{
		cfg:      cfg,
		log:      log,
		attached: make(map[playwright.Page]struct{}),
	}
}

// getPage безопасно возвращает текущую страницу с read lock
func (s *Session) getPage() playwright.Page {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.page
}

// attachPage делает страницу активной и подписывается на нативные
// диалоги. Диалог сохраняется до явного HandleAlert, драйвер сам его
// не закрывает.
func (s *Session) attachPage(page playwright.Page) {
	s.mu.Lock()
	_, seen := s.attached[page]
	s.attached[page] = struct{}{}
	s.page = page
	s.mu.Unlock()

	if !seen {
		page.OnDialog(func(dialog playwright.Dialog) {
			s.mu.Lock()
			s.dialog = dialog
			s.mu.Unlock()
		})
	}
}

func (s *Session) launchArgs() []string {
	return []string{
		"--no-sandbox",
		"--disable-dev-shm-usage",
		"--disable-gpu",
		"--disable-software-rasterizer",
	}
}

func (s *Session) Launch(ctx context.Context) error {
	if s.cfg.BrowsersPath != "" {
		os.Setenv("PLAYWRIGHT_BROWSERS_PATH", s.cfg.BrowsersPath)
	}

	pw, err := playwright.Run()
	if err != nil {
		s.log.Error("Ошибка запуска драйвера", zap.Error(err))
		return &LaunchError{Err: err}
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(s.cfg.Headless),
		Args:     s.launchArgs(),
	})
	if err != nil {
		pw.Stop()
		s.log.Error("Ошибка запуска браузера", zap.Error(err))
		return &LaunchError{Err: err}
	}

	browserContext, err := browser.NewContext(playwright.BrowserNewContextOptions{
		UserAgent: playwright.String(userAgent),
	})
	if err != nil {
		browser.Close()
		pw.Stop()
		s.log.Error("Ошибка создания контекста", zap.Error(err))
		return &LaunchError{Err: err}
	}

	page, err := browserContext.NewPage()
	if err != nil {
		browserContext.Close()
		browser.Close()
		pw.Stop()
		s.log.Error("Ошибка создания страницы", zap.Error(err))
		return &LaunchError{Err: err}
	}

	// Поля сессии заполняются только после полного успеха запуска,
	// чтобы Close после неудачного Launch не трогал мертвые дескрипторы
	s.pw = pw
	s.browser = browser
	s.context = browserContext

	page.SetDefaultTimeout(float64(s.cfg.Timeout.Milliseconds()))
	s.attachPage(page)

	s.log.Info("initialize driver success", zap.Bool("headless", s.cfg.Headless))
	return nil
}

func (s *Session) Navigate(ctx context.Context, url string) error {
	page := s.getPage()
	if page == nil {
		return ErrNotRunning
	}

	_, err := page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
	})
	if err != nil {
		s.log.Error("Ошибка навигации", zap.String("url", url), zap.Error(err))
		return err
	}
	return nil
}

func (s *Session) CurrentURL() (string, error) {
	page := s.getPage()
	if page == nil {
		return "", ErrNotRunning
	}
	return page.URL(), nil
}

// Close завершает сессию: контекст, браузер и runtime драйвера
// закрываются на всех путях выхода, первая ошибка запоминается.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error

	if s.context != nil {
		if err := s.context.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		s.context = nil
	}
	if s.browser != nil {
		if err := s.browser.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		s.browser = nil
	}
	if s.pw != nil {
		if err := s.pw.Stop(); err != nil && firstErr == nil {
			firstErr = err
		}
		s.pw = nil
	}

	s.page = nil
	s.dialog = nil
	return firstErr
}
