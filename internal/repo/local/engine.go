package local

import (
	"context"
	"encoding/json"
	"reflect"
	"time"

	"github.com/google/uuid"

	"household-app-go/internal/apperr"
	"household-app-go/internal/kvstore"
	"household-app-go/internal/repo"
)

const tableKeyPrefix = "table:"

// Engine implements the generic repository over a key-value store. Each
// entity table is one JSON array under "table:<name>". Two engines built
// for the same table name against the same store alias the same data.
//
// Writes are read-modify-write with no locking; concurrent updates on
// the same record are last-write-wins.
type Engine[T any, PT interface {
	*T
	repo.Record
}] struct {
	store kvstore.Store
	table string
}

func NewEngine[T any, PT interface {
	*T
	repo.Record
}](store kvstore.Store, table string) *Engine[T, PT] {
	return &Engine[T, PT]{store: store, table: table}
}

func (e *Engine[T, PT]) FindAll(ctx context.Context, filter repo.Filter) ([]T, error) {
	records, err := e.load(ctx)
	if err != nil {
		return nil, err
	}
	if len(filter) == 0 {
		return records, nil
	}

	matched := make([]T, 0, len(records))
	for _, record := range records {
		fields, err := recordFields(record)
		if err != nil {
			return nil, err
		}
		if matches(fields, filter) {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

func (e *Engine[T, PT]) FindByID(ctx context.Context, id string) (*T, error) {
	records, err := e.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if PT(&records[i]).RecordID() == id {
			record := records[i]
			return &record, nil
		}
	}
	return nil, apperr.NotFound("record not found")
}

func (e *Engine[T, PT]) Create(ctx context.Context, record *T) (*T, error) {
	records, err := e.load(ctx)
	if err != nil {
		return nil, err
	}

	e.stampNew(record)
	records = append(records, *record)
	if err := e.save(ctx, records); err != nil {
		return nil, err
	}
	return record, nil
}

func (e *Engine[T, PT]) CreateMany(ctx context.Context, newRecords []*T) ([]T, error) {
	records, err := e.load(ctx)
	if err != nil {
		return nil, err
	}

	created := make([]T, 0, len(newRecords))
	for _, record := range newRecords {
		e.stampNew(record)
		records = append(records, *record)
		created = append(created, *record)
	}
	if err := e.save(ctx, records); err != nil {
		return nil, err
	}
	return created, nil
}

func (e *Engine[T, PT]) Update(ctx context.Context, id string, changes repo.Changes) (*T, error) {
	records, err := e.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if PT(&records[i]).RecordID() != id {
			continue
		}

		merged, err := e.merge(records[i], changes)
		if err != nil {
			return nil, err
		}
		records[i] = *merged
		if err := e.save(ctx, records); err != nil {
			return nil, err
		}
		record := records[i]
		return &record, nil
	}
	return nil, apperr.NotFound("record not found")
}

func (e *Engine[T, PT]) Upsert(ctx context.Context, record *T) (*T, error) {
	id := PT(record).RecordID()
	if id == "" {
		return e.Create(ctx, record)
	}

	if _, err := e.FindByID(ctx, id); apperr.IsNotFound(err) {
		return e.Create(ctx, record)
	} else if err != nil {
		return nil, err
	}

	changes, err := recordFields(*record)
	if err != nil {
		return nil, err
	}
	return e.Update(ctx, id, changes)
}

func (e *Engine[T, PT]) Delete(ctx context.Context, id string) error {
	records, err := e.load(ctx)
	if err != nil {
		return err
	}

	remaining := records[:0]
	found := false
	for i := range records {
		if PT(&records[i]).RecordID() == id {
			found = true
			continue
		}
		remaining = append(remaining, records[i])
	}
	if !found {
		return apperr.NotFound("record not found")
	}
	return e.save(ctx, remaining)
}

func (e *Engine[T, PT]) key() string {
	return tableKeyPrefix + e.table
}

func (e *Engine[T, PT]) load(ctx context.Context) ([]T, error) {
	raw, ok, err := e.store.Get(ctx, e.key())
	if err != nil {
		return nil, apperr.Unknown(err)
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, apperr.Unknown(err)
	}
	return records, nil
}

func (e *Engine[T, PT]) save(ctx context.Context, records []T) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return apperr.Unknown(err)
	}
	if err := e.store.Set(ctx, e.key(), string(raw)); err != nil {
		return apperr.Unknown(err)
	}
	return nil
}

func (e *Engine[T, PT]) stampNew(record *T) {
	pt := PT(record)
	if pt.RecordID() == "" {
		pt.SetRecordID(uuid.NewString())
	}
	now := time.Now().UTC()
	pt.StampCreated(now)
	pt.StampUpdated(now)
}

// merge applies a change map on top of the stored record through its
// JSON representation, keeping id and created_at untouched and
// refreshing updated_at.
func (e *Engine[T, PT]) merge(stored T, changes repo.Changes) (*T, error) {
	fields, err := recordFields(stored)
	if err != nil {
		return nil, err
	}
	for key, value := range changes {
		if key == "id" || key == "created_at" || key == "updated_at" {
			continue
		}
		fields[key] = value
	}
	fields["updated_at"] = time.Now().UTC().Format(time.RFC3339Nano)

	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, apperr.Unknown(err)
	}
	var merged T
	if err := json.Unmarshal(raw, &merged); err != nil {
		return nil, apperr.Unknown(err)
	}
	return &merged, nil
}

func recordFields(record any) (map[string]any, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, apperr.Unknown(err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, apperr.Unknown(err)
	}
	return fields, nil
}

func matches(fields map[string]any, filter repo.Filter) bool {
	for key, want := range filter {
		if !reflect.DeepEqual(fields[key], normalize(want)) {
			return false
		}
	}
	return true
}

// normalize round-trips a filter value through JSON so that typed values
// (ints, pointers) compare equal to the decoded record fields.
func normalize(value any) any {
	raw, err := json.Marshal(value)
	if err != nil {
		return value
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return value
	}
	return decoded
}
