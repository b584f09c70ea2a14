package domain

// Business validation constants
const (
	MaxNameLength    = 200
	MaxPhoneLength   = 32
	MaxRequestLength = 5000
	MaxColorLength   = 32
)

// InactiveAfterMonths клиент без записей дольше этого срока считается неактивным
const InactiveAfterMonths = 6

// Time format constants
const (
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04:05" // Без часового пояса
	MonthFormat    = "2006-01"             // YYYY-MM
)
