package cli

import (
	"time"

	"github.com/iudanet/shiftsync/internal/models"
)

// fieldString возвращает строковое значение поля записи.
// Поля хранятся как any после JSON-декодирования.
func fieldString(rec *models.Record, name string) string {
	fv, ok := rec.Fields[name]
	if !ok {
		return ""
	}
	s, ok := fv.Value.(string)
	if !ok {
		return ""
	}
	return s
}

// shortID возвращает первые 8 символов идентификатора для таблиц.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func truncate(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// formatMicros форматирует микросекунды epoch для вывода пользователю.
func formatMicros(micros uint64) string {
	if micros == 0 {
		return "never"
	}
	return time.UnixMicro(int64(micros)).Format(time.RFC3339)
}
