package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectorString(t *testing.T) {
	tests := []struct {
		name     string
		sel      Selector
		expected string
	}{
		{"id", ID("submit-button"), "#submit-button"},
		{"css", CSS("div.content > a"), "div.content > a"},
		{"xpath", XPath("//button[@type='submit']"), "xpath=//button[@type='submit']"},
		{"name", Name("email"), "[name='email']"},
		{"text", Text("Войти"), "text=Войти"},
		{"testid", TestID("login-form"), "[data-testid='login-form']"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.sel.String())
		})
	}
}

func TestSelectorValidate(t *testing.T) {
	assert.NoError(t, ID("q").Validate())
	assert.NoError(t, CSS("button.primary").Validate())

	assert.Error(t, CSS("").Validate())
	assert.Error(t, CSS("   ").Validate())
	assert.Error(t, CSS("https://example.com").Validate())
	assert.Error(t, CSS("http://example.com").Validate())
	assert.Error(t, CSS("ftp://example.com/file").Validate())
}

func TestSelectorNormalizeContains(t *testing.T) {
	sel := CSS(`button:contains("Отправить")`)
	normalized, changed := sel.normalize()
	assert.True(t, changed)
	assert.Equal(t, `button:has-text("Отправить")`, normalized)

	sel = CSS(`a:contains('далее')`)
	normalized, changed = sel.normalize()
	assert.True(t, changed)
	assert.Equal(t, `a:has-text('далее')`, normalized)
}

func TestSelectorNormalizeUntouched(t *testing.T) {
	sel := CSS("div#main .item:nth-child(2)")
	normalized, changed := sel.normalize()
	assert.False(t, changed)
	assert.Equal(t, "div#main .item:nth-child(2)", normalized)

	// Не-CSS стратегии не нормализуются
	sel = XPath("//div[contains(text(), 'x')]")
	normalized, changed = sel.normalize()
	assert.False(t, changed)
	assert.Equal(t, "xpath=//div[contains(text(), 'x')]", normalized)
}

func TestParseSelector(t *testing.T) {
	tests := []struct {
		raw      string
		expected Selector
	}{
		{"id=q", ID("q")},
		{"css=div.item", CSS("div.item")},
		{"xpath=//a[@href]", XPath("//a[@href]")},
		{"name=email", Name("email")},
		{"text=Войти", Text("Войти")},
		{"testid=login", TestID("login")},
		{"button.primary", CSS("button.primary")},
		{"[data-role=menu]", CSS("[data-role=menu]")},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			sel, err := ParseSelector(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, sel)
		})
	}

	_, err := ParseSelector("  ")
	assert.Error(t, err)
}

func TestSelectorEngine(t *testing.T) {
	engine, err := ID("q").engine()
	require.NoError(t, err)
	assert.Equal(t, "#q", engine)

	_, err = CSS("https://example.com").engine()
	assert.Error(t, err)
}
