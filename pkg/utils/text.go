package utils

import "strings"

// NormalizeArticle приводит текст статьи к виду, пригодному для отправки.
//
// Переводы строк приводятся к \n, хвостовые пробелы строк удаляются,
// серии пустых строк схлопываются в одну. Markdown-блоки кода
// (```...```) снимаются, содержимое остаётся.
func NormalizeArticle(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		if line == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}
