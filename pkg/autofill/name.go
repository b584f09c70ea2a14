package autofill

import (
	"regexp"
	"strings"
)

var (
	greetingRE     = buildLeadingPattern(Greetings)
	introductionRE = buildLeadingPattern(Introductions)

	// Одно или два слова с заглавной кириллической буквы в самом начале текста
	nameRE = regexp.MustCompile(`^([А-ЯЁ][а-яё]+(?:[ \t]+[А-ЯЁ][а-яё]+)?)(?:[^\p{L}]|$)`)
)

// buildLeadingPattern собирает регулярку для фраз в начале текста.
// Фраза должна заканчиваться знаком препинания, пробелом или концом строки.
func buildLeadingPattern(phrases []string) *regexp.Regexp {
	alternatives := make([]string, 0, len(phrases))
	for _, g := range phrases {
		words := strings.Fields(g)
		for i, w := range words {
			words[i] = regexp.QuoteMeta(w)
		}
		alternatives = append(alternatives, strings.Join(words, `\s+`))
	}
	return regexp.MustCompile(`(?i)^(?:` + strings.Join(alternatives, "|") + `)(?:[,!.\s]+|$)`)
}

// StripGreeting убирает приветствие в начале сообщения вместе со следующими за ним знаками
func StripGreeting(text string) string {
	text = strings.TrimSpace(text)
	return greetingRE.ReplaceAllString(text, "")
}

// ExtractName ищет имя (одно или два слова с заглавной буквы) в начале сообщения
// после приветствия и вводных слов ("меня зовут", "это")
func ExtractName(text string) (string, bool) {
	cleaned := StripGreeting(text)
	cleaned = introductionRE.ReplaceAllString(cleaned, "")

	m := nameRE.FindStringSubmatch(cleaned)
	if m == nil {
		return "", false
	}
	return m[1], true
}
