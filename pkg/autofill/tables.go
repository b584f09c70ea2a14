package autofill

import "time"

// Справочники, по которым работает автозаполнение.
// Держим их отдельно от логики разбора, чтобы списки было легко проверить и дополнить.

// Greetings приветствия, которые срезаются в начале сообщения перед поиском имени
var Greetings = []string{
	"Здравствуйте",
	"Привет",
	"Добрый день",
	"Добрый вечер",
}

// Introductions вводные слова после приветствия, за которыми обычно следует имя
var Introductions = []string{
	"меня зовут",
	"моё имя",
	"мое имя",
	"это",
	"я",
}

// MaleNames распространенные мужские имена (в нижнем регистре)
var MaleNames = map[string]struct{}{
	"александр":  {},
	"сергей":     {},
	"андрей":     {},
	"дмитрий":    {},
	"алексей":    {},
	"михаил":     {},
	"евгений":    {},
	"иван":       {},
	"максим":     {},
	"артем":      {},
	"владимир":   {},
	"павел":      {},
	"николай":    {},
	"константин": {},
	"игорь":      {},
	"виктор":     {},
	"роман":      {},
	"денис":      {},
	"антон":      {},
	"тимур":      {},
	"олег":       {},
	"никита":     {},
	"кирилл":     {},
	"вадим":      {},
	"валерий":    {},
	"василий":    {},
}

// MaleKeywordStems основы слов, указывающих, что сообщение о мужчине.
// Основа ищется в любом месте слова: "сын" находит "сына" и "пасынок".
var MaleKeywordStems = []string{
	"мужчин",
	"парень",
	"парн",
	"сын",
	"папа",
	"папе",
	"папы",
	"папу",
	"папой",
	"отец",
	"отц",
	"отчим",
	"брат",
	"дед",
}

// MaleKeywordExclusions части слов, в которых основа из MaleKeywordStems не означает мужчину
// ("обратиться", "выбрать", "дедлайн", "парный")
var MaleKeywordExclusions = []string{
	"обрат",
	"выбрат",
	"собрат",
	"забрат",
	"набрат",
	"убрат",
	"добрат",
	"прибрат",
	"избрат",
	"перебрат",
	"дедлайн",
	"парник",
	"парны",
	"парно",
	"парна",
}

// MaleWholeWords слова, которые засчитываются только целиком ("муж", но не "мужество")
var MaleWholeWords = []string{
	"муж",
	"мужа",
	"мужу",
	"мужем",
	"муже",
}

// GenitiveMonths названия месяцев в родительном падеже
var GenitiveMonths = map[string]time.Month{
	"января":   time.January,
	"февраля":  time.February,
	"марта":    time.March,
	"апреля":   time.April,
	"мая":      time.May,
	"июня":     time.June,
	"июля":     time.July,
	"августа":  time.August,
	"сентября": time.September,
	"октября":  time.October,
	"ноября":   time.November,
	"декабря":  time.December,
}
