// Package rewrite описывает стили рерайта и способы получить переписанный текст.
package rewrite

import (
	"fmt"
	"strings"
)

// Style — тон, в котором backend переписывает статью.
type Style string

const (
	StyleScientific Style = "scientific"
	StyleMeme       Style = "meme"
	StyleCasual     Style = "casual"
)

// Styles — все стили в порядке отображения.
var Styles = []Style{StyleScientific, StyleMeme, StyleCasual}

var displayNames = map[Style]string{
	StyleScientific: "Научно-деловой стиль",
	StyleMeme:       "Мемный стиль",
	StyleCasual:     "Повседневный стиль",
}

// DisplayName возвращает русское название стиля; неизвестный стиль возвращается как есть.
func (s Style) DisplayName() string {
	if name, ok := displayNames[s]; ok {
		return name
	}
	return string(s)
}

// Valid сообщает, что стиль входит в фиксированный набор.
func (s Style) Valid() bool {
	_, ok := displayNames[s]
	return ok
}

func (s Style) String() string {
	return string(s)
}

// ParseStyle разбирает токен стиля (регистр и пробелы игнорируются).
func ParseStyle(raw string) (Style, error) {
	s := Style(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("unknown style %q: expected one of scientific, meme, casual", raw)
	}
	return s, nil
}
