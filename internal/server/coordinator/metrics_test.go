package coordinator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/shiftsync/internal/models"
)

func TestMetricsTracker_Levels(t *testing.T) {
	tests := []struct {
		name    string
		latency time.Duration
		want    models.PerformanceLevel
	}{
		{name: "fast syncs keep level optimal", latency: 10 * time.Millisecond, want: models.PerformanceOptimal},
		{name: "slow syncs degrade level", latency: 300 * time.Millisecond, want: models.PerformanceDegraded},
		{name: "very slow syncs are critical", latency: 2 * time.Second, want: models.PerformanceCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMetricsTracker(200*time.Millisecond, time.Second)
			for range latencyWindowSize {
				m.Record(tt.latency, 1, 0)
			}
			assert.Equal(t, tt.want, m.Level())
		})
	}
}

func TestMetricsTracker_WindowSlides(t *testing.T) {
	m := newMetricsTracker(200*time.Millisecond, time.Second)

	for range latencyWindowSize {
		m.Record(2*time.Second, 1, 0)
	}
	assert.Equal(t, models.PerformanceCritical, m.Level())

	// Окно скользящее: после восстановления уровень возвращается
	for range latencyWindowSize {
		m.Record(5*time.Millisecond, 1, 0)
	}
	assert.Equal(t, models.PerformanceOptimal, m.Level())
}

func TestMetricsTracker_Snapshot(t *testing.T) {
	m := newMetricsTracker(200*time.Millisecond, time.Second)

	m.Record(10*time.Millisecond, 5, 1)
	m.Record(20*time.Millisecond, 3, 0)

	snap := m.Snapshot(1000)
	assert.Equal(t, models.PerformanceOptimal, snap.Level)
	assert.Equal(t, uint64(2), snap.SyncCount)
	assert.Equal(t, uint64(8), snap.OperationCount)
	assert.Equal(t, uint64(1), snap.ConflictCount)
	assert.Equal(t, 1000, snap.MaxBatchSize)
	assert.NotZero(t, snap.LastLatencyMicro)
	assert.NotZero(t, snap.P95LatencyMicro)
}

func TestMetricsTracker_ThrottlesBatchSize(t *testing.T) {
	m := newMetricsTracker(200*time.Millisecond, time.Second)

	for range latencyWindowSize {
		m.Record(300*time.Millisecond, 1, 0)
	}
	assert.Equal(t, 500, m.Snapshot(1000).MaxBatchSize)

	for range latencyWindowSize {
		m.Record(2*time.Second, 1, 0)
	}
	assert.Equal(t, 100, m.Snapshot(1000).MaxBatchSize)
}
