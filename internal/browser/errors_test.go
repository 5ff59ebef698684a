package browser

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeoutErrorMessage(t *testing.T) {
	err := &TimeoutError{
		Selector: ID("q"),
		Timeout:  10 * time.Second,
	}

	// Сообщение содержит и селектор, и таймаут
	assert.Contains(t, err.Error(), "q")
	assert.Contains(t, err.Error(), "10")
}

func TestTimeoutErrorUnwrap(t *testing.T) {
	cause := errors.New("Timeout 10000ms exceeded")
	err := &TimeoutError{Selector: CSS(".item"), Timeout: 10 * time.Second, Err: cause}

	assert.ErrorIs(t, err, cause)

	var timeoutErr *TimeoutError
	wrapped := fmt.Errorf("шаг не выполнен: %w", err)
	require.ErrorAs(t, wrapped, &timeoutErr)
	assert.Equal(t, ".item", timeoutErr.Selector.Value)
}

func TestNotFoundErrorMessage(t *testing.T) {
	err := &NotFoundError{Selector: ID("missing")}
	assert.Contains(t, err.Error(), "missing")

	withOption := &NotFoundError{Selector: Name("country"), Option: "Нарния"}
	assert.Contains(t, withOption.Error(), "Нарния")
	assert.Contains(t, withOption.Error(), "country")
}

func TestWindowErrorMessage(t *testing.T) {
	err := &WindowError{Index: 3, Count: 1}
	assert.Contains(t, err.Error(), "3")
	assert.Contains(t, err.Error(), "1")
}

func TestActionErrorUnwrap(t *testing.T) {
	cause := errors.New("element is not enabled")
	err := &ActionError{Action: "ввод текста", Selector: ID("q"), Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "q")
}

func TestSentinels(t *testing.T) {
	assert.ErrorIs(t, fmt.Errorf("обертка: %w", ErrNoAlert), ErrNoAlert)
	assert.ErrorIs(t, fmt.Errorf("обертка: %w", ErrNotRunning), ErrNotRunning)
}

func TestIsTimeoutErr(t *testing.T) {
	assert.True(t, isTimeoutErr(errors.New("Timeout 10000ms exceeded")))
	assert.True(t, isTimeoutErr(errors.New("deadline exceeded")))
	assert.False(t, isTimeoutErr(errors.New("no node found for selector")))
	assert.False(t, isTimeoutErr(nil))
}
