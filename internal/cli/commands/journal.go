package commands

import (
	"fmt"
	"strconv"
	"strings"

	"browserkit/internal/cli/ui"
	"browserkit/internal/database"
)

// JournalHandler показывает записи журнала сессий.
type JournalHandler struct {
	repo *database.JournalRepository
}

func NewJournalHandler(repo *database.JournalRepository) *JournalHandler {
	return &JournalHandler{repo: repo}
}

func (h *JournalHandler) Sessions() {
	if h.repo == nil {
		ui.PrintErr("Журнал недоступен")
		return
	}

	sessions, err := h.repo.ListSessions(20, 0)
	if err != nil {
		ui.PrintErr("Ошибка чтения журнала: %v", err)
		return
	}
	if len(sessions) == 0 {
		ui.PrintInfo("Журнал пуст")
		return
	}

	fmt.Println(ui.ColorBold + ui.IconList + " Сессии:" + ui.ColorReset)
	for _, s := range sessions {
		closed := "-"
		if s.ClosedAt != nil {
			closed = s.ClosedAt.Format("15:04:05")
		}
		fmt.Printf("  #%d  headless=%v  %s  запущена %s  закрыта %s\n",
			s.ID, s.Headless, s.Status, s.StartedAt.Format("15:04:05"), closed)
	}
}

func (h *JournalHandler) Actions(rawID string) {
	if h.repo == nil {
		ui.PrintErr("Журнал недоступен")
		return
	}

	id, err := strconv.ParseUint(strings.TrimSpace(rawID), 10, 64)
	if err != nil {
		ui.PrintErr("ID сессии должен быть числом: %q", rawID)
		return
	}

	actions, err := h.repo.ListActions(uint(id))
	if err != nil {
		ui.PrintErr("Ошибка чтения журнала: %v", err)
		return
	}
	if len(actions) == 0 {
		ui.PrintInfo("Нет действий для сессии #%d", id)
		return
	}

	fmt.Println(ui.ColorBold + ui.IconList + " Действия:" + ui.ColorReset)
	for _, a := range actions {
		mark := ui.ColorGreen + ui.IconCheckmark + ui.ColorReset
		if !a.Success {
			mark = ui.ColorRed + ui.IconCross + ui.ColorReset
		}
		line := fmt.Sprintf("  %s %-18s %s %s (%d мс)", mark, a.Action, a.Selector, a.Detail, a.DurationMs)
		fmt.Println(strings.TrimRight(line, " "))
		if a.Error != "" {
			fmt.Println(ui.ColorGray + "      " + a.Error + ui.ColorReset)
		}
	}
}
