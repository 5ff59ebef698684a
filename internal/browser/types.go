package browser

import (
	"context"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// Фиксированный user-agent, с которым запускается каждая сессия.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/100.0.4896.127 Safari/537.36"

// DefaultLocateTimeout — таймаут ожидания элемента по умолчанию.
const DefaultLocateTimeout = 10 * time.Second

type Browser interface {
	Launch(ctx context.Context) error
	Navigate(ctx context.Context, url string) error
	Locate(ctx context.Context, sel Selector, timeout time.Duration) (*Element, error)
	TypeText(ctx context.Context, sel Selector, text string) error
	SelectOption(ctx context.Context, sel Selector, visibleText string) error
	HandleAlert(accept bool) (string, error)
	SwitchToWindow(index int) error
	ElementScreenshot(ctx context.Context, sel Selector, path string) error
	FullPageScreenshot(ctx context.Context, path string) error
	IsPresent(ctx context.Context, sel Selector) bool
	CurrentURL() (string, error)
	ScrollToBottom(ctx context.Context) error
	ScrollToElement(ctx context.Context, el *Element) error
	RunScript(ctx context.Context, script string, arg any) (any, error)
	Close() error
}

// Element — ссылка на один DOM-узел внутри сессии.
// Слабая ссылка: становится невалидной после навигации страницы,
// повторная проверка здесь не выполняется.
type Element struct {
	handle   playwright.ElementHandle
	Selector Selector
}

// Handle возвращает низкоуровневый дескриптор драйвера.
func (e *Element) Handle() playwright.ElementHandle {
	return e.handle
}

// Session владеет одним запущенным браузером: runtime драйвера,
// браузер, контекст и активная страница. Не предназначена для
// конкурентного использования несколькими вызывающими.
type Session struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	cfg     Config
	log     *zap.Logger

	mu       sync.RWMutex
	page     playwright.Page
	dialog   playwright.Dialog
	attached map[playwright.Page]struct{}
}

type Config struct {
	Headless     bool
	BrowsersPath string
	Timeout      time.Duration
}
