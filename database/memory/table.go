package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jobportal/portalManager/database"
	"github.com/jobportal/portalManager/model"
	"github.com/jobportal/portalManager/table"
)

// record is a pointer to one of the model structs.
type record[T any] interface {
	*T
	ToRow() table.Row
	ApplyUpdate(fields model.DataMap) error
}

// memoryTable keeps copies of records in insertion order. Callers never
// receive a pointer into the table.
type memoryTable[T any, P record[T]] struct {
	mu      sync.RWMutex
	name    string
	columns []string
	records []P
	now     func() time.Time
	// prepare fills in the id and timestamp of a new record and returns its id.
	prepare  func(P, time.Time) uuid.UUID
	id       func(P) uuid.UUID
	onDelete func(ctx context.Context, id uuid.UUID)
}

func newMemoryTable[T any, P record[T]](name string, columns []string, id func(P) uuid.UUID, prepare func(P, time.Time) uuid.UUID) *memoryTable[T, P] {
	return &memoryTable[T, P]{
		name:    name,
		columns: columns,
		now:     time.Now,
		id:      id,
		prepare: prepare,
	}
}

func clone[T any, P record[T]](r P) P {
	c := *r
	return P(&c)
}

func (m *memoryTable[T, P]) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(m.records, func(r P) bool { return m.id(r) == id })
}

func (m *memoryTable[T, P]) insert(ctx context.Context, r P) (P, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored := clone(r)
	id := m.prepare(stored, m.now())
	if m.indexOf(id) >= 0 {
		return nil, fmt.Errorf("insert into %s: duplicate id %s", m.name, id)
	}
	m.records = append(m.records, stored)
	return clone(stored), nil
}

func (m *memoryTable[T, P]) count(ctx context.Context, filters []model.Filter) (int, error) {
	rows, err := m.selectAll(ctx, model.Query{Filters: filters})
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (m *memoryTable[T, P]) selectOne(ctx context.Context, id uuid.UUID) (P, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	index := m.indexOf(id)
	if index < 0 {
		return nil, fmt.Errorf("select %s: %w: %s", m.name, database.ErrNotFound, id)
	}
	return clone(m.records[index]), nil
}

func (m *memoryTable[T, P]) selectAll(ctx context.Context, query model.Query) ([]P, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := m.validate(query); err != nil {
		return nil, fmt.Errorf("select %s: %w", m.name, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	type match struct {
		record P
		row    table.Row
	}
	matches := []match{}
	for _, r := range m.records {
		row := r.ToRow()
		ok, err := matchesAll(row, query.Filters)
		if err != nil {
			return nil, fmt.Errorf("select %s: %w", m.name, err)
		}
		if ok {
			matches = append(matches, match{record: r, row: row})
		}
	}

	if query.Order != nil {
		column, ascending := query.Order.Column, query.Order.Ascending
		slices.SortStableFunc(matches, func(a, b match) int {
			c := compareValues(a.row, b.row, column)
			if c == 0 {
				return strings.Compare(a.row.ID(), b.row.ID())
			}
			if !ascending {
				return -c
			}
			return c
		})
	}

	if query.Limit > 0 && len(matches) > query.Limit {
		matches = matches[:query.Limit]
	}

	records := make([]P, 0, len(matches))
	for _, match := range matches {
		records = append(records, clone(match.record))
	}
	return records, nil
}

func (m *memoryTable[T, P]) selectByIDs(ctx context.Context, ids []uuid.UUID) ([]P, error) {
	if len(ids) == 0 {
		return []P{}, nil
	}
	return m.selectAll(ctx, model.Query{Filters: []model.Filter{model.In("id", ids)}})
}

func (m *memoryTable[T, P]) update(ctx context.Context, id uuid.UUID, fields model.DataMap) (P, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	index := m.indexOf(id)
	if index < 0 {
		return nil, fmt.Errorf("update %s: %w: %s", m.name, database.ErrNotFound, id)
	}

	updated := clone(m.records[index])
	if err := updated.ApplyUpdate(fields); err != nil {
		return nil, fmt.Errorf("update %s: %w", m.name, err)
	}
	m.records[index] = updated
	return clone(updated), nil
}

func (m *memoryTable[T, P]) delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	m.records = slices.DeleteFunc(m.records, func(r P) bool { return m.id(r) == id })
	m.mu.Unlock()

	if m.onDelete != nil {
		m.onDelete(ctx, id)
	}
	return nil
}

// deleteWhere removes every record whose row matches the filter.
func (m *memoryTable[T, P]) deleteWhere(filter model.Filter) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = slices.DeleteFunc(m.records, func(r P) bool {
		ok, _ := matches(r.ToRow(), filter)
		return ok
	})
}

// modify applies fn to every record matching the filter.
func (m *memoryTable[T, P]) modify(filter model.Filter, fn func(P)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, r := range m.records {
		if ok, _ := matches(r.ToRow(), filter); ok {
			updated := clone(r)
			fn(updated)
			m.records[i] = updated
		}
	}
}

func (m *memoryTable[T, P]) truncate() {
	m.mu.Lock()
	m.records = nil
	m.mu.Unlock()
}

func (m *memoryTable[T, P]) validate(query model.Query) error {
	for _, filter := range query.Filters {
		if !slices.Contains(m.columns, filter.Column) {
			return fmt.Errorf("%w: %s", database.ErrUnknownColumn, filter.Column)
		}
	}
	if query.Order != nil && !slices.Contains(m.columns, query.Order.Column) {
		return fmt.Errorf("%w: %s", database.ErrUnknownColumn, query.Order.Column)
	}
	return nil
}
