package rest

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeQuerier stands in for the pool in handler tests. It records every
// statement issued so tests can assert which queries ran.
type fakeQuerier struct {
	calls      []storeCall
	queryFn    func(sql string, args []any) (pgx.Rows, error)
	queryRowFn func(sql string, args []any) pgx.Row
}

type storeCall struct {
	sql  string
	args []any
}

func (q *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.calls = append(q.calls, storeCall{sql: sql, args: args})
	if q.queryFn == nil {
		return nil, errors.New("unexpected query")
	}
	return q.queryFn(sql, args)
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.calls = append(q.calls, storeCall{sql: sql, args: args})
	if q.queryRowFn == nil {
		return fakeRow{scan: func(...any) error { return errors.New("unexpected query") }}
	}
	return q.queryRowFn(sql, args)
}

type fakeRow struct {
	scan func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error { return r.scan(dest...) }

// fakeRows plays back one scan func per row.
type fakeRows struct {
	scans []func(dest ...any) error
	idx   int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.idx < len(r.scans) {
		r.idx++
		return true
	}
	return false
}

func (r *fakeRows) Scan(dest ...any) error {
	return r.scans[r.idx-1](dest...)
}
