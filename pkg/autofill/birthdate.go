package autofill

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReadingsCRM/pkg/types"
)

// Форматы даты рождения в порядке приоритета. Срабатывает первый найденный формат,
// и если из него не получается существующая дата, дата считается не найденной.
var (
	// 25.03.1990, 5/3/90
	separatedDateRE = regexp.MustCompile(`(?:^|\D)(\d{1,2})[./](\d{1,2})[./](\d{2,4})(?:\D|$)`)

	// 25031990
	compactDateRE = regexp.MustCompile(`(?:^|\D)(\d{2})(\d{2})(\d{4})(?:\D|$)`)

	// 15 мая 1988
	monthNameDateRE = regexp.MustCompile(`(?i)(?:^|\D)(\d{1,2})\s+(` + monthAlternatives() + `)\s+(\d{4})(?:\D|$)`)
)

func monthAlternatives() string {
	names := make([]string, 0, len(GenitiveMonths))
	for name := range GenitiveMonths {
		names = append(names, name)
	}
	return strings.Join(names, "|")
}

// ExtractBirthdate ищет дату рождения в тексте
func ExtractBirthdate(text string) (types.Date, bool) {
	if m := separatedDateRE.FindStringSubmatch(text); m != nil {
		year, ok := expandYear(m[3])
		if !ok {
			return types.Date{}, false
		}
		return buildDate(year, m[2], m[1])
	}

	if m := compactDateRE.FindStringSubmatch(text); m != nil {
		year, _ := strconv.Atoi(m[3])
		return buildDate(year, m[2], m[1])
	}

	if m := monthNameDateRE.FindStringSubmatch(text); m != nil {
		month := GenitiveMonths[strings.ToLower(m[2])]
		year, _ := strconv.Atoi(m[3])
		return buildDate(year, strconv.Itoa(int(month)), m[1])
	}

	return types.Date{}, false
}

// expandYear превращает двузначный год в 20YY (90 -> 2090), трехзначный год не принимается
func expandYear(raw string) (int, bool) {
	switch len(raw) {
	case 2:
		raw = "20" + raw
	case 4:
	default:
		return 0, false
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return year, true
}

func buildDate(year int, monthRaw, dayRaw string) (types.Date, bool) {
	month, err := strconv.Atoi(monthRaw)
	if err != nil {
		return types.Date{}, false
	}
	day, err := strconv.Atoi(dayRaw)
	if err != nil {
		return types.Date{}, false
	}

	d, err := types.NewDate(year, time.Month(month), day)
	if err != nil {
		return types.Date{}, false
	}
	return d, true
}
