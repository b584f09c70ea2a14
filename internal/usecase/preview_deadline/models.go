package preview_deadline

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReadingsCRM/pkg/deadline"
)

// Request модель запроса предпросмотра срока.
// Задается либо Duration, либо ReadingID.
type Request struct {
	Start     time.Time          // Показания часов без часового пояса
	Duration  *deadline.Duration // Длительность
	ReadingID *uuid.UUID         // Или расклад, длительность берется из него
}

// Response модель ответа
type Response struct {
	Start    time.Time
	Deadline time.Time
	Duration deadline.Duration
}
