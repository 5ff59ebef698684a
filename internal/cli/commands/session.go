package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"browserkit/internal/browser"
	"browserkit/internal/cli/ui"
	"browserkit/internal/database"
	"browserkit/internal/logger"
)

// SessionHandler обрабатывает команды браузерной сессии и пишет каждое
// действие в журнал.
type SessionHandler struct {
	browser   browser.Browser
	repo      *database.JournalRepository
	log       *logger.Zap
	headless  bool
	sessionID uint
	running   bool
}

func NewSessionHandler(br browser.Browser, repo *database.JournalRepository, log *logger.Zap, headless bool) *SessionHandler {
	return &SessionHandler{
		browser:  br,
		repo:     repo,
		log:      log,
		headless: headless,
	}
}

// record сохраняет результат действия в журнал. Ошибка журнала не
// прерывает работу консоли.
func (h *SessionHandler) record(action, selector, detail, screenshot string, started time.Time, actionErr error) {
	if h.repo == nil || h.sessionID == 0 {
		return
	}

	rec := &database.ActionRecord{
		SessionID:      h.sessionID,
		Action:         action,
		Selector:       selector,
		Detail:         detail,
		Success:        actionErr == nil,
		ScreenshotPath: screenshot,
		DurationMs:     time.Since(started).Milliseconds(),
	}
	if actionErr != nil {
		rec.Error = actionErr.Error()
	}

	if err := h.repo.CreateAction(rec); err != nil {
		h.log.Warn("Не удалось записать действие в журнал", zap.Error(err))
	}
}

func (h *SessionHandler) Open(ctx context.Context, url string) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}

	if !h.running {
		if err := h.browser.Launch(ctx); err != nil {
			ui.PrintErr("Ошибка запуска браузера: %v", err)
			return
		}
		h.running = true

		if h.repo != nil {
			rec := &database.SessionRecord{Headless: h.headless, Status: "running"}
			if err := h.repo.CreateSession(rec); err != nil {
				h.log.Warn("Не удалось записать сессию в журнал", zap.Error(err))
			} else {
				h.sessionID = rec.ID
			}
		}
	}

	started := time.Now()
	err := h.browser.Navigate(ctx, url)
	h.record("navigate", "", url, "", started, err)
	if err != nil {
		ui.PrintErr("Ошибка навигации: %v", err)
		return
	}
	ui.PrintOK("Открыто: %s", url)
}

func (h *SessionHandler) Close() {
	if !h.running {
		ui.PrintErr("Сессия не запущена")
		return
	}

	status := "closed"
	if err := h.browser.Close(); err != nil {
		status = "failed"
		ui.PrintErr("Ошибка закрытия: %v", err)
	} else {
		ui.PrintOK("Сессия закрыта")
	}
	h.running = false

	if h.repo != nil && h.sessionID != 0 {
		if err := h.repo.CloseSession(h.sessionID, status); err != nil {
			h.log.Warn("Не удалось закрыть сессию в журнале", zap.Error(err))
		}
		h.sessionID = 0
	}
}

// Running сообщает, запущена ли сессия.
func (h *SessionHandler) Running() bool {
	return h.running
}

func (h *SessionHandler) parse(raw string) (browser.Selector, bool) {
	sel, err := browser.ParseSelector(raw)
	if err != nil {
		ui.PrintErr("Невалидный селектор: %v", err)
		return browser.Selector{}, false
	}
	return sel, true
}

func (h *SessionHandler) Type(ctx context.Context, rawSel, text string) {
	sel, ok := h.parse(rawSel)
	if !ok {
		return
	}

	started := time.Now()
	err := h.browser.TypeText(ctx, sel, text)
	h.record("type", sel.String(), text, "", started, err)
	if err != nil {
		ui.PrintErr("Ошибка ввода: %v", err)
		return
	}
	ui.PrintOK("Текст введен в %s", sel.String())
}

func (h *SessionHandler) Select(ctx context.Context, rawSel, visibleText string) {
	sel, ok := h.parse(rawSel)
	if !ok {
		return
	}

	started := time.Now()
	err := h.browser.SelectOption(ctx, sel, visibleText)
	h.record("select", sel.String(), visibleText, "", started, err)
	if err != nil {
		ui.PrintErr("Ошибка выбора опции: %v", err)
		return
	}
	ui.PrintOK("Выбрана опция %q", visibleText)
}

func (h *SessionHandler) Alert(accept bool) {
	started := time.Now()
	text, err := h.browser.HandleAlert(accept)
	detail := "dismiss"
	if accept {
		detail = "accept"
	}
	h.record("alert", "", detail, "", started, err)
	if err != nil {
		ui.PrintErr("Ошибка обработки alert: %v", err)
		return
	}
	ui.PrintOK("Alert обработан, текст: %q", text)
}

func (h *SessionHandler) Window(rawIndex string) {
	index, err := strconv.Atoi(strings.TrimSpace(rawIndex))
	if err != nil {
		ui.PrintErr("Индекс окна должен быть числом: %q", rawIndex)
		return
	}

	started := time.Now()
	err = h.browser.SwitchToWindow(index)
	h.record("window", "", fmt.Sprintf("index=%d", index), "", started, err)
	if err != nil {
		ui.PrintErr("Ошибка переключения окна: %v", err)
		return
	}
	ui.PrintOK("Активно окно %d", index)
}

func (h *SessionHandler) Shot(ctx context.Context, rawSel, path string) {
	sel, ok := h.parse(rawSel)
	if !ok {
		return
	}

	started := time.Now()
	err := h.browser.ElementScreenshot(ctx, sel, path)
	h.record("screenshot_element", sel.String(), "", path, started, err)
	if err != nil {
		ui.PrintErr("Ошибка скриншота: %v", err)
		return
	}
	ui.PrintOK("%s Скриншот элемента: %s", ui.IconCamera, path)
}

func (h *SessionHandler) ShotPage(ctx context.Context, path string) {
	started := time.Now()
	err := h.browser.FullPageScreenshot(ctx, path)
	h.record("screenshot_page", "", "", path, started, err)
	if err != nil {
		ui.PrintErr("Ошибка скриншота страницы: %v", err)
		return
	}
	ui.PrintOK("%s Скриншот страницы: %s", ui.IconCamera, path)
}

func (h *SessionHandler) Scroll(ctx context.Context, arg string) {
	started := time.Now()

	if strings.TrimSpace(arg) == "bottom" {
		err := h.browser.ScrollToBottom(ctx)
		h.record("scroll", "", "bottom", "", started, err)
		if err != nil {
			ui.PrintErr("Ошибка прокрутки: %v", err)
			return
		}
		ui.PrintOK("Страница прокручена вниз")
		return
	}

	sel, ok := h.parse(arg)
	if !ok {
		return
	}

	el, err := h.browser.Locate(ctx, sel, 0)
	if err == nil {
		err = h.browser.ScrollToElement(ctx, el)
	}
	h.record("scroll", sel.String(), "", "", started, err)
	if err != nil {
		ui.PrintErr("Ошибка прокрутки к элементу: %v", err)
		return
	}
	ui.PrintOK("Прокручено к %s", sel.String())
}

func (h *SessionHandler) JS(ctx context.Context, script string) {
	started := time.Now()
	result, err := h.browser.RunScript(ctx, script, nil)
	h.record("script", "", script, "", started, err)
	if err != nil {
		ui.PrintErr("Ошибка выполнения скрипта: %v", err)
		return
	}
	ui.PrintOK("Результат: %v", result)
}

func (h *SessionHandler) URL() {
	url, err := h.browser.CurrentURL()
	if err != nil {
		ui.PrintErr("Ошибка получения URL: %v", err)
		return
	}
	ui.PrintInfo("%s %s", ui.IconGlobe, url)
}

func (h *SessionHandler) Present(ctx context.Context, rawSel string) {
	sel, ok := h.parse(rawSel)
	if !ok {
		return
	}

	if h.browser.IsPresent(ctx, sel) {
		ui.PrintOK("Элемент %s присутствует", sel.String())
	} else {
		ui.PrintInfo("Элемент %s отсутствует", sel.String())
	}
}
