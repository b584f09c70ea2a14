package import_sheetdb

// Request модель запроса на импорт таблицы
type Request struct{}

// Stats статистика по одному листу
type Stats struct {
	Total    int // Строк в листе
	Imported int // Создано или обновлено
	Skipped  int // Сироты и конфликты телефонов
	Invalid  int // Строки без обязательных полей
}

// Response статистика импорта
type Response struct {
	Categories   Stats
	Readings     Stats
	Clients      Stats
	Appointments Stats
}
