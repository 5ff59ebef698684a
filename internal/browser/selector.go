package browser

import (
	"fmt"
	"regexp"
	"strings"
)

// Strategy определяет способ поиска элемента. Набор стратегий задан
// драйвером, здесь перечислены поддерживаемые.
type Strategy int

const (
	ByCSS Strategy = iota
	ByID
	ByXPath
	ByName
	ByText
	ByTestID
)

func (s Strategy) String() string {
	switch s {
	case ByCSS:
		return "css"
	case ByID:
		return "id"
	case ByXPath:
		return "xpath"
	case ByName:
		return "name"
	case ByText:
		return "text"
	case ByTestID:
		return "testid"
	default:
		return "unknown"
	}
}

// Selector — пара (стратегия, значение), идентифицирующая элемент страницы.
type Selector struct {
	By    Strategy
	Value string
}

func CSS(value string) Selector    { return Selector{By: ByCSS, Value: value} }
func ID(value string) Selector     { return Selector{By: ByID, Value: value} }
func XPath(value string) Selector  { return Selector{By: ByXPath, Value: value} }
func Name(value string) Selector   { return Selector{By: ByName, Value: value} }
func Text(value string) Selector   { return Selector{By: ByText, Value: value} }
func TestID(value string) Selector { return Selector{By: ByTestID, Value: value} }

// String возвращает селектор в синтаксисе selector engine драйвера.
func (s Selector) String() string {
	switch s.By {
	case ByID:
		return "#" + s.Value
	case ByXPath:
		return "xpath=" + s.Value
	case ByName:
		return fmt.Sprintf("[name='%s']", s.Value)
	case ByText:
		return "text=" + s.Value
	case ByTestID:
		return fmt.Sprintf("[data-testid='%s']", s.Value)
	default:
		return s.Value
	}
}

// Validate проверяет, что значение селектора не является URL.
func (s Selector) Validate() error {
	value := strings.TrimSpace(s.Value)
	if value == "" {
		return fmt.Errorf("селектор не может быть пустым")
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return fmt.Errorf("селектор не может быть URL, для перехода используй Navigate. Получен: %s", s.Value)
	}
	if s.By != ByText && strings.Contains(value, "://") {
		return fmt.Errorf("селектор не может содержать протокол (://). Получен: %s", s.Value)
	}
	return nil
}

var (
	containsDouble = regexp.MustCompile(`:contains\("([^"]*)"\)`)
	containsSingle = regexp.MustCompile(`:contains\('([^']*)'\)`)
)

// normalize преобразует jQuery-синтаксис :contains() в :has-text(),
// который понимает драйвер. Возвращает нормализованное значение и флаг
// изменения.
func (s Selector) normalize() (string, bool) {
	if s.By != ByCSS {
		return s.String(), false
	}

	normalized := s.Value
	changed := false

	normalized = containsDouble.ReplaceAllStringFunc(normalized, func(match string) string {
		changed = true
		text := containsDouble.FindStringSubmatch(match)[1]
		text = strings.ReplaceAll(text, "\\", "\\\\")
		text = strings.ReplaceAll(text, `"`, `\"`)
		return `:has-text("` + text + `")`
	})

	normalized = containsSingle.ReplaceAllStringFunc(normalized, func(match string) string {
		changed = true
		text := containsSingle.FindStringSubmatch(match)[1]
		text = strings.ReplaceAll(text, "\\", "\\\\")
		text = strings.ReplaceAll(text, `'`, `\'`)
		return `:has-text('` + text + `')`
	})

	return normalized, changed
}

// ParseSelector разбирает строку вида "стратегия=значение"
// (id=q, css=div.item, xpath=//a, name=email, text=Войти, testid=form).
// Строка без префикса стратегии трактуется как CSS.
func ParseSelector(raw string) (Selector, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Selector{}, fmt.Errorf("селектор не может быть пустым")
	}

	strategy, value, found := strings.Cut(raw, "=")
	if !found {
		return CSS(raw), nil
	}

	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "id":
		return ID(value), nil
	case "css":
		return CSS(value), nil
	case "xpath":
		return XPath(value), nil
	case "name":
		return Name(value), nil
	case "text":
		return Text(value), nil
	case "testid":
		return TestID(value), nil
	default:
		// Знак равенства внутри обычного CSS-селектора ([attr=value])
		return CSS(raw), nil
	}
}

// engine возвращает готовую к передаче драйверу строку селектора:
// валидация, затем нормализация.
func (s Selector) engine() (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	normalized, _ := s.normalize()
	return normalized, nil
}
