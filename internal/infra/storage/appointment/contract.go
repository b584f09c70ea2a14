package appointment

import (
	"github.com/m04kA/SMC-ReadingsCRM/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
