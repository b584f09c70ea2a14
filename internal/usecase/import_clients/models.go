package import_clients

import "io"

// Request модель запроса на импорт.
// Колонки: Имя, Телефон, Мессенджер, Дата рождения (необязательна). Заголовок необязателен.
type Request struct {
	File io.Reader
}

// RowError ошибка в строке файла
type RowError struct {
	Line   int    // Номер строки в файле, с 1
	Reason string // Причина
}

// Response статистика импорта
type Response struct {
	Total    int        // Строк с данными
	Imported int        // Создано клиентов
	Skipped  int        // Телефон уже есть в базе
	Invalid  int        // Строки без имени или телефона
	Errors   []RowError // Подробности по некорректным строкам
}
