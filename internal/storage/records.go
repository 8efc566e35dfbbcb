// internal/storage/records.go
package storage

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
)

const (
	recordsObject   = "records"
	recordsProperty = "run"
)

// RunRecords — лучшие результаты по всем забегам.
type RunRecords struct {
	BestWave     int     `json:"best_wave"`
	FastestClear float64 `json:"fastest_clear"` // секунд, лучшее время зачистки волны
	TotalRuns    int     `json:"total_runs"`
}

// RecordStore хранит рекорды через кроссплатформенный gdata.
// Менеджер может быть nil (деградация: рекорды только в памяти).
type RecordStore struct {
	manager *gdata.Manager
	records RunRecords
}

// OpenRecordStore открывает хранилище рекордов. Ошибка инициализации gdata
// не фатальна: возвращается стор в режиме "только память".
func OpenRecordStore(appName string) *RecordStore {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("storage: gdata unavailable, records are in-memory only: %v", err)
		return &RecordStore{}
	}
	rs := &RecordStore{manager: manager}
	if err := rs.load(); err != nil {
		log.Printf("storage: failed to load records: %v", err)
	}
	return rs
}

// Records возвращает текущие рекорды.
func (rs *RecordStore) Records() RunRecords {
	return rs.records
}

// UpdateRun вносит результат завершённого забега и сохраняет рекорды.
func (rs *RecordStore) UpdateRun(wavesCleared int, fastestClear float64) {
	rs.records.TotalRuns++
	if wavesCleared > rs.records.BestWave {
		rs.records.BestWave = wavesCleared
	}
	if fastestClear > 0 && (rs.records.FastestClear == 0 || fastestClear < rs.records.FastestClear) {
		rs.records.FastestClear = fastestClear
	}
	if err := rs.save(); err != nil {
		log.Printf("storage: failed to save records: %v", err)
	}
}

func (rs *RecordStore) load() error {
	if rs.manager == nil || !rs.manager.ObjectPropExists(recordsObject, recordsProperty) {
		return nil
	}
	data, err := rs.manager.LoadObjectProp(recordsObject, recordsProperty)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}
	if err := json.Unmarshal(data, &rs.records); err != nil {
		return fmt.Errorf("unmarshal records: %w", err)
	}
	return nil
}

func (rs *RecordStore) save() error {
	if rs.manager == nil {
		return nil
	}
	data, err := json.Marshal(rs.records)
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	if err := rs.manager.SaveObjectProp(recordsObject, recordsProperty, data); err != nil {
		return fmt.Errorf("save records: %w", err)
	}
	return nil
}
