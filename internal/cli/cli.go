package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"browserkit/internal/browser"
	"browserkit/internal/cli/commands"
	"browserkit/internal/cli/ui"
	"browserkit/internal/database"
	"browserkit/internal/logger"
)

type CLI struct {
	log            *logger.Zap
	rl             *readline.Instance
	sessionHandler *commands.SessionHandler
	journalHandler *commands.JournalHandler
}

func New(repo *database.JournalRepository, log *logger.Zap, br browser.Browser, headless bool) *CLI {
	cli := &CLI{log: log}

	// Инициализация handlers
	cli.sessionHandler = commands.NewSessionHandler(br, repo, log, headless)
	cli.journalHandler = commands.NewJournalHandler(repo)

	// Инициализация readline
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     ".browserkit-history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		log.Warn("Не удалось инициализировать readline, будет использован fallback режим")
	} else {
		cli.rl = rl
	}

	return cli
}

func (c *CLI) readLine() (string, error) {
	if c.rl != nil {
		return c.rl.Readline()
	}
	// Fallback для работы без readline
	reader := bufio.NewReader(os.Stdin)
	println(ui.ColorCyan + "> " + ui.ColorReset)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *CLI) closeReadline() {
	if c.rl != nil {
		c.rl.Close()
	}
}

func (c *CLI) Run(ctx context.Context) {
	ui.PrintWelcome()
	defer c.closeReadline()
	defer func() {
		// Закрываем браузер при любом выходе из консоли
		if c.sessionHandler.Running() {
			c.sessionHandler.Close()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			println("\n" + ui.ColorCyan + ui.IconWave + " Получен сигнал завершения..." + ui.ColorReset)
			return
		default:
		}

		line, err := c.readLine()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if !c.handleCommand(ctx, line) {
			return
		}
	}
}

// handleCommand возвращает false, когда консоль должна завершиться.
func (c *CLI) handleCommand(ctx context.Context, line string) bool {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "exit":
		println(ui.ColorCyan + ui.IconWave + " До свидания!" + ui.ColorReset)
		return false

	case "clear":
		ui.ClearScreen()

	case "open":
		c.sessionHandler.Open(ctx, rest)

	case "close":
		c.sessionHandler.Close()

	case "type":
		sel, text, ok := splitArg(rest)
		if !ok {
			ui.PrintErr("Использование: type <sel> <текст>")
			return true
		}
		c.sessionHandler.Type(ctx, sel, text)

	case "select":
		sel, text, ok := splitArg(rest)
		if !ok {
			ui.PrintErr("Использование: select <sel> <текст>")
			return true
		}
		c.sessionHandler.Select(ctx, sel, text)

	case "alert":
		switch rest {
		case "accept":
			c.sessionHandler.Alert(true)
		case "dismiss":
			c.sessionHandler.Alert(false)
		default:
			ui.PrintErr("Использование: alert accept|dismiss")
		}

	case "window":
		c.sessionHandler.Window(rest)

	case "shot":
		sel, path, ok := splitArg(rest)
		if !ok {
			ui.PrintErr("Использование: shot <sel> <файл>")
			return true
		}
		c.sessionHandler.Shot(ctx, sel, path)

	case "shotpage":
		if rest == "" {
			ui.PrintErr("Использование: shotpage <файл>")
			return true
		}
		c.sessionHandler.ShotPage(ctx, rest)

	case "scroll":
		if rest == "" {
			ui.PrintErr("Использование: scroll bottom | scroll <sel>")
			return true
		}
		c.sessionHandler.Scroll(ctx, rest)

	case "js":
		if rest == "" {
			ui.PrintErr("Использование: js <скрипт>")
			return true
		}
		c.sessionHandler.JS(ctx, rest)

	case "url":
		c.sessionHandler.URL()

	case "present":
		c.sessionHandler.Present(ctx, rest)

	case "sessions":
		c.journalHandler.Sessions()

	case "actions":
		c.journalHandler.Actions(rest)

	default:
		ui.PrintHelp()
	}

	return true
}

// splitArg отделяет первый аргумент (селектор) от остатка строки.
func splitArg(rest string) (string, string, bool) {
	first, tail, found := strings.Cut(rest, " ")
	if !found || strings.TrimSpace(tail) == "" {
		return "", "", false
	}
	return first, strings.TrimSpace(tail), true
}
