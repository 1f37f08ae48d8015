package crdt

import (
	"github.com/iudanet/shiftsync/internal/models"
)

// Tombstone помечает запись удаленной. Метка терминальна: дальнейшие
// обновления полей не воскрешают запись, независимо от их меток времени
// и причинного порядка относительно удаления. Это осознанная политика
// жесткого удаления (медицинские записи не восстанавливаются задним
// числом), а не гонка меток времени.
func Tombstone(rec *models.Record, clock models.VectorClock) *models.Record {
	out := rec.Clone()
	out.Deleted = true
	out.DeletedAt = models.NowMicros()
	out.Clock = out.Clock.MergeWith(clock)
	out.UpdatedAt = out.DeletedAt
	return out
}

// MergeWithTombstone сливает попытку обновления с надгробием.
// Результат всегда сохраняет Deleted = true и DeletedAt надгробия;
// часы сливаются, чтобы удаление доминировало и в причинном порядке.
func MergeWithTombstone(tombstone, update *models.Record) *models.Record {
	out := tombstone.Clone()
	out.Clock = tombstone.Clock.MergeWith(update.Clock)
	return out
}
