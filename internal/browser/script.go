package browser

import (
	"context"

	"go.uber.org/zap"
)

// RunScript выполняет произвольный скрипт в контексте страницы и
// возвращает его результат. Аргумент передается скрипту как есть.
func (s *Session) RunScript(ctx context.Context, script string, arg any) (any, error) {
	page := s.getPage()
	if page == nil {
		return nil, ErrNotRunning
	}

	var (
		result any
		err    error
	)
	if arg != nil {
		result, err = page.Evaluate(script, arg)
	} else {
		result, err = page.Evaluate(script)
	}
	if err != nil {
		s.log.Error("Ошибка выполнения скрипта", zap.Error(err))
		return nil, err
	}

	return result, nil
}
