package autofill

import (
	"strings"
	"unicode"
)

// IsMale решает, относится ли сообщение к мужчине.
// Сначала ищутся ключевые слова в тексте, затем первое слово имени сверяется со списком мужских имен.
// Пустое имя означает, что имя не найдено.
func IsMale(text, name string) bool {
	if hasMaleKeyword(text) {
		return true
	}

	if name == "" {
		return false
	}

	first := strings.Fields(name)
	if len(first) == 0 {
		return false
	}
	_, ok := MaleNames[normalizeWord(first[0])]
	return ok
}

func hasMaleKeyword(text string) bool {
	for _, word := range words(text) {
		if !isExcludedWord(word) {
			for _, stem := range MaleKeywordStems {
				if strings.Contains(word, stem) {
					return true
				}
			}
		}
		for _, whole := range MaleWholeWords {
			if word == whole {
				return true
			}
		}
	}
	return false
}

func isExcludedWord(word string) bool {
	for _, part := range MaleKeywordExclusions {
		if strings.Contains(word, part) {
			return true
		}
	}
	return false
}

// words делит текст на слова в нижнем регистре; разделитель - любой символ, кроме буквы
func words(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for i, f := range fields {
		fields[i] = normalizeWord(f)
	}
	return fields
}

func normalizeWord(w string) string {
	return strings.ReplaceAll(strings.ToLower(w), "ё", "е")
}
