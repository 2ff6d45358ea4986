package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeDB serves seat_layouts rows from memory.
type fakeDB struct {
	rows    [][]any
	err     error
	queries []string
}

func (f *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.queries = append(f.queries, sql)
	if f.err != nil {
		return nil, f.err
	}
	return &fakeRows{rows: f.rows, pos: -1}, nil
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.queries = append(f.queries, sql)
	if f.err != nil {
		return fakeRow{err: f.err}
	}
	for _, row := range f.rows {
		if len(args) > 0 && row[0] == args[0] {
			return fakeRow{values: row}
		}
	}
	return fakeRow{err: pgx.ErrNoRows}
}

func (f *fakeDB) Ping(ctx context.Context) error { return f.err }

func (f *fakeDB) Close() {}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(r.values, dest)
}

type fakeRows struct {
	rows [][]any
	pos  int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos < len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error {
	return assign(r.rows[r.pos], dest)
}

func (r *fakeRows) Values() ([]any, error) {
	return r.rows[r.pos], nil
}

func assign(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: %d values into %d targets", len(values), len(dest))
	}
	for i, v := range values {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case *int:
			*d = v.(int)
		case *[]string:
			*d = append([]string(nil), v.([]string)...)
		default:
			return errors.New("scan: unsupported target")
		}
	}
	return nil
}
