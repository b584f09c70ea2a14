package autofill

import (
	"fmt"

	"github.com/m04kA/SMC-ReadingsCRM/pkg/types"
)

// BirthdatePolicy решает, искать ли дату рождения в сообщении
type BirthdatePolicy interface {
	ShouldExtract(name string, hasName, male bool) bool
}

// BirthdatePolicyFunc адаптер обычной функции к BirthdatePolicy
type BirthdatePolicyFunc func(name string, hasName, male bool) bool

// ShouldExtract вызывает f
func (f BirthdatePolicyFunc) ShouldExtract(name string, hasName, male bool) bool {
	return f(name, hasName, male)
}

var (
	// RequireNonMaleName ищет дату, только если имя найдено и сообщение не о мужчине.
	// В сообщениях о сыне или муже дата обычно чужая.
	RequireNonMaleName BirthdatePolicy = BirthdatePolicyFunc(func(_ string, hasName, male bool) bool {
		return hasName && !male
	})

	// AlwaysExtract ищет дату в любом сообщении
	AlwaysExtract BirthdatePolicy = BirthdatePolicyFunc(func(string, bool, bool) bool { return true })

	// NeverExtract отключает поиск даты
	NeverExtract BirthdatePolicy = BirthdatePolicyFunc(func(string, bool, bool) bool { return false })
)

// Имена политик в конфиге
const (
	PolicyNonMaleName = "non_male_name"
	PolicyAlways      = "always"
	PolicyNever       = "never"
)

// PolicyByName возвращает политику по имени из конфига, пустое имя дает политику по умолчанию
func PolicyByName(name string) (BirthdatePolicy, error) {
	switch name {
	case "", PolicyNonMaleName:
		return RequireNonMaleName, nil
	case PolicyAlways:
		return AlwaysExtract, nil
	case PolicyNever:
		return NeverExtract, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// Result результат разбора сообщения, nil означает "не найдено"
type Result struct {
	Name      *string
	Birthdate *types.Date

	// Male и BirthdateGated нужны для метрик и отладки
	Male           bool
	BirthdateGated bool
}

// Option настройка Engine
type Option func(*Engine)

// WithBirthdatePolicy задает политику поиска даты рождения
func WithBirthdatePolicy(p BirthdatePolicy) Option {
	return func(e *Engine) {
		if p != nil {
			e.policy = p
		}
	}
}

// Engine разбирает сообщение клиента: имя, пол, дата рождения.
// Состояния между вызовами нет, один Engine можно использовать из нескольких горутин.
type Engine struct {
	policy BirthdatePolicy
}

// NewEngine создает Engine, по умолчанию с политикой RequireNonMaleName
func NewEngine(opts ...Option) *Engine {
	e := &Engine{policy: RequireNonMaleName}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Infer разбирает текст сообщения. Отсутствие имени или даты - нормальный результат, не ошибка.
func (e *Engine) Infer(text string) Result {
	var res Result

	// 1. Имя
	name, hasName := ExtractName(text)
	if hasName {
		res.Name = &name
	}

	// 2. Пол
	res.Male = IsMale(text, name)

	// 3. Дата рождения, если разрешает политика
	if !e.policy.ShouldExtract(name, hasName, res.Male) {
		res.BirthdateGated = true
		return res
	}

	if d, ok := ExtractBirthdate(text); ok {
		res.Birthdate = &d
	}

	return res
}
