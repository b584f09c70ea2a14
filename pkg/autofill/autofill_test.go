package autofill

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReadingsCRM/pkg/types"
)

func mustDate(t *testing.T, y int, m time.Month, d int) types.Date {
	t.Helper()
	date, err := types.NewDate(y, m, d)
	require.NoError(t, err)
	return date
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{
			name:   "Greeting and introduction",
			text:   "Здравствуйте, меня зовут Анна, родилась 25.03.1990",
			want:   "Анна",
			wantOK: true,
		},
		{
			name:   "Two capitalized words",
			text:   "Привет! Анна Иванова, хочу расклад",
			want:   "Анна Иванова",
			wantOK: true,
		},
		{
			name:   "Lowercase greeting with extra spaces",
			text:   "добрый   вечер, Мария",
			want:   "Мария",
			wantOK: true,
		},
		{
			name:   "Second word is not capitalized",
			text:   "Александр интересуется 15 мая 1988",
			want:   "Александр",
			wantOK: true,
		},
		{
			name:   "Name with ё",
			text:   "Семён, добрый день",
			want:   "Семён",
			wantOK: true,
		},
		{
			name:   "Introduction without name",
			text:   "Здравствуйте, я хочу спросить про сына, он родился 25031995",
			wantOK: false,
		},
		{
			name:   "Lowercase name",
			text:   "анна, 25.03.1990",
			wantOK: false,
		},
		{
			name:   "Latin name",
			text:   "Anna 25.03.1990",
			wantOK: false,
		},
		{
			name:   "Upper case word",
			text:   "АННА",
			wantOK: false,
		},
		{
			name:   "Greeting only",
			text:   "Здравствуйте!",
			wantOK: false,
		},
		{
			name:   "Empty",
			text:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractName(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsMale(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		person   string
		expected bool
	}{
		{name: "Keyword son", text: "хочу спросить про сына", expected: true},
		{name: "Keyword upper case", text: "МУЖЧИНА 40 лет", expected: true},
		{name: "Husband as whole word", text: "мой муж родился летом", expected: true},
		{name: "Husband case form", text: "расклад на мужа", expected: true},
		{name: "Husband inside another word", text: "нужно мужество", expected: false},
		{name: "Brother inside another word", text: "Хочу обратиться за раскладом", expected: false},
		{name: "Grandfather", text: "про дедушку", expected: true},
		{name: "Stepson", text: "Анна, мой пасынок родился 01.02.2000", person: "Анна", expected: true},
		{name: "Stepfather", text: "расклад для отчима", expected: true},
		{name: "Father case form", text: "вопрос про отца", expected: true},
		{name: "Verb with brother stem", text: "помогите выбрать расклад", expected: false},
		{name: "Deadline word", text: "какой дедлайн у расклада", expected: false},
		{name: "Male name", text: "Сергей Петров", person: "Сергей Петров", expected: true},
		{name: "Male name with ё", text: "Артём", person: "Артём", expected: true},
		{name: "Female name", text: "Анна", person: "Анна", expected: false},
		{name: "Keyword wins over female name", text: "Анна, вопрос про брата", person: "Анна", expected: true},
		{name: "No name no keyword", text: "добрый день", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsMale(tt.text, tt.person))
		})
	}
}

func TestExtractBirthdate(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   types.Date
		wantOK bool
	}{
		{
			name:   "Dots",
			text:   "родилась 25.03.1990",
			want:   mustDate(t, 1990, time.March, 25),
			wantOK: true,
		},
		{
			name:   "Slashes and single digits",
			text:   "др 5/3/1990",
			want:   mustDate(t, 1990, time.March, 5),
			wantOK: true,
		},
		{
			name:   "Two digit year becomes 20YY",
			text:   "Ольга 05.06.90",
			want:   mustDate(t, 2090, time.June, 5),
			wantOK: true,
		},
		{
			name:   "Three digit year",
			text:   "25.03.199",
			wantOK: false,
		},
		{
			name:   "Three digit year stops the search",
			text:   "25.03.199 или 01.01.2000",
			wantOK: false,
		},
		{
			name:   "Compact",
			text:   "родился 25031995",
			want:   mustDate(t, 1995, time.March, 25),
			wantOK: true,
		},
		{
			name:   "Compact inside longer number",
			text:   "телефон 89250319950",
			wantOK: false,
		},
		{
			name:   "Month name",
			text:   "родилась 15 мая 1988",
			want:   mustDate(t, 1988, time.May, 15),
			wantOK: true,
		},
		{
			name:   "Month name upper case",
			text:   "1 ДЕКАБРЯ 2001",
			want:   mustDate(t, 2001, time.December, 1),
			wantOK: true,
		},
		{
			name:   "Separated pattern has priority",
			text:   "15 мая 1988, по паспорту 01.01.2000",
			want:   mustDate(t, 2000, time.January, 1),
			wantOK: true,
		},
		{
			name:   "First occurrence wins",
			text:   "25.03.1990 или 26.04.1991",
			want:   mustDate(t, 1990, time.March, 25),
			wantOK: true,
		},
		{
			name:   "Invalid calendar date",
			text:   "Мария 31.02.1990",
			wantOK: false,
		},
		{
			name:   "No date",
			text:   "хочу расклад на неделю",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractBirthdate(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEngine_Infer(t *testing.T) {
	engine := NewEngine()

	t.Run("Female name with date", func(t *testing.T) {
		res := engine.Infer("Здравствуйте, меня зовут Анна, родилась 25.03.1990")

		require.NotNil(t, res.Name)
		assert.Equal(t, "Анна", *res.Name)
		require.NotNil(t, res.Birthdate)
		assert.Equal(t, "1990-03-25", res.Birthdate.String())
		assert.False(t, res.Male)
		assert.False(t, res.BirthdateGated)
	})

	t.Run("Message about son", func(t *testing.T) {
		res := engine.Infer("Здравствуйте, я хочу спросить про сына, он родился 25031995")

		assert.Nil(t, res.Name)
		assert.Nil(t, res.Birthdate)
		assert.True(t, res.Male)
		assert.True(t, res.BirthdateGated)
	})

	t.Run("Message about stepson", func(t *testing.T) {
		res := engine.Infer("Анна, мой пасынок родился 01.02.2000")

		require.NotNil(t, res.Name)
		assert.Equal(t, "Анна", *res.Name)
		assert.Nil(t, res.Birthdate)
		assert.True(t, res.Male)
		assert.True(t, res.BirthdateGated)
	})

	t.Run("Male name", func(t *testing.T) {
		res := engine.Infer("Александр интересуется 15 мая 1988")

		require.NotNil(t, res.Name)
		assert.Equal(t, "Александр", *res.Name)
		assert.Nil(t, res.Birthdate)
		assert.True(t, res.Male)
	})

	t.Run("Invalid date", func(t *testing.T) {
		res := engine.Infer("Мария 31.02.1990")

		require.NotNil(t, res.Name)
		assert.Equal(t, "Мария", *res.Name)
		assert.Nil(t, res.Birthdate)
		assert.False(t, res.BirthdateGated)
	})

	t.Run("Two digit year is not windowed", func(t *testing.T) {
		res := engine.Infer("Ольга 05.06.90")

		require.NotNil(t, res.Birthdate)
		assert.Equal(t, 2090, res.Birthdate.Year())
	})

	t.Run("No name means no birthdate", func(t *testing.T) {
		res := engine.Infer("родилась 25.03.1990")

		assert.Nil(t, res.Name)
		assert.Nil(t, res.Birthdate)
		assert.True(t, res.BirthdateGated)
	})

	t.Run("Repeated calls give the same result", func(t *testing.T) {
		text := "хочу расклад"
		first := engine.Infer(text)
		second := engine.Infer(text)

		assert.Equal(t, first, second)
		assert.Nil(t, second.Name)
		assert.Nil(t, second.Birthdate)
	})
}

func TestEngine_Policies(t *testing.T) {
	text := "Здравствуйте, я хочу спросить про сына, он родился 25031995"

	always := NewEngine(WithBirthdatePolicy(AlwaysExtract))
	res := always.Infer(text)
	require.NotNil(t, res.Birthdate)
	assert.Equal(t, "1995-03-25", res.Birthdate.String())
	assert.True(t, res.Male)

	never := NewEngine(WithBirthdatePolicy(NeverExtract))
	res = never.Infer("Здравствуйте, меня зовут Анна, родилась 25.03.1990")
	assert.NotNil(t, res.Name)
	assert.Nil(t, res.Birthdate)
	assert.True(t, res.BirthdateGated)

	withNil := NewEngine(WithBirthdatePolicy(nil))
	res = withNil.Infer(text)
	assert.Nil(t, res.Birthdate)
}

func TestPolicyByName(t *testing.T) {
	for _, name := range []string{"", PolicyNonMaleName, PolicyAlways, PolicyNever} {
		p, err := PolicyByName(name)
		require.NoError(t, err, name)
		assert.NotNil(t, p)
	}

	assert.True(t, mustPolicy(t, PolicyAlways).ShouldExtract("", false, true))
	assert.False(t, mustPolicy(t, PolicyNever).ShouldExtract("Анна", true, false))
	assert.True(t, mustPolicy(t, "").ShouldExtract("Анна", true, false))
	assert.False(t, mustPolicy(t, "").ShouldExtract("Иван", true, true))

	_, err := PolicyByName("sometimes")
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

func mustPolicy(t *testing.T, name string) BirthdatePolicy {
	t.Helper()
	p, err := PolicyByName(name)
	require.NoError(t, err)
	return p
}
