package browser

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestSession() *Session {
	return New(Config{Headless: true}, zap.NewNop())
}

func TestNewDefaults(t *testing.T) {
	s := newTestSession()
	assert.Equal(t, DefaultLocateTimeout, s.cfg.Timeout)
}

func TestHelpersBeforeLaunch(t *testing.T) {
	s := newTestSession()
	ctx := context.Background()

	_, err := s.Locate(ctx, ID("q"), time.Second)
	assert.ErrorIs(t, err, ErrNotRunning)

	assert.ErrorIs(t, s.Navigate(ctx, "https://example.com"), ErrNotRunning)
	assert.ErrorIs(t, s.TypeText(ctx, ID("q"), "text"), ErrNotRunning)
	assert.ErrorIs(t, s.SelectOption(ctx, Name("country"), "Россия"), ErrNotRunning)
	assert.ErrorIs(t, s.SwitchToWindow(0), ErrNotRunning)
	assert.ErrorIs(t, s.FullPageScreenshot(ctx, "/tmp/out.png"), ErrNotRunning)
	assert.ErrorIs(t, s.ScrollToBottom(ctx), ErrNotRunning)

	_, err = s.CurrentURL()
	assert.ErrorIs(t, err, ErrNotRunning)

	_, err = s.RunScript(ctx, "() => 1", nil)
	assert.ErrorIs(t, err, ErrNotRunning)

	_, err = s.HandleAlert(true)
	assert.ErrorIs(t, err, ErrNotRunning)

	// Проверка существования не возвращает ошибок
	assert.False(t, s.IsPresent(ctx, ID("q")))
}

func TestCloseWithoutLaunch(t *testing.T) {
	s := newTestSession()
	assert.NoError(t, s.Close())
}

func TestParsePageSize(t *testing.T) {
	w, h, err := parsePageSize(map[string]any{"width": float64(1280), "height": float64(4096)})
	assert.NoError(t, err)
	assert.Equal(t, 1280, w)
	assert.Equal(t, 4096, h)

	_, _, err = parsePageSize("not a map")
	assert.Error(t, err)

	_, _, err = parsePageSize(map[string]any{"width": float64(0), "height": float64(100)})
	assert.Error(t, err)
}
