package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/Knetic/go-namedParameterQuery"
	"github.com/jekabolt/sales-panel/internal/dependency"
	"github.com/jmoiron/sqlx"
)

// bindNamed turns :name parameters into positional ones and expands slice
// values for IN clauses.
func bindNamed(query string, params map[string]any) (string, []any, error) {
	q := namedParameterQuery.NewNamedParameterQuery(query)
	q.SetValuesFromMap(params)
	bound, args, err := sqlx.In(q.GetParsedQuery(), q.GetParsedParameters()...)
	if err != nil {
		return "", nil, fmt.Errorf("bind %q: %w", firstLine(query), err)
	}
	return bound, args, nil
}

func firstLine(query string) string {
	query = strings.TrimSpace(query)
	if i := strings.IndexByte(query, '\n'); i >= 0 {
		return query[:i]
	}
	return query
}

// QueryListNamed scans every row into T. It never returns a nil slice.
func QueryListNamed[T any](ctx context.Context, conn dependency.DB, query string, params map[string]any) ([]T, error) {
	bound, args, err := bindNamed(query, params)
	if err != nil {
		return nil, err
	}
	rows, err := conn.QueryxContext(ctx, bound, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	res := []T{}
	for rows.Next() {
		var t T
		if err := rows.StructScan(&t); err != nil {
			return nil, fmt.Errorf("struct scan: %w", err)
		}
		res = append(res, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return res, nil
}

// QueryNamedOne scans a single row into T. sql.ErrNoRows is returned wrapped.
func QueryNamedOne[T any](ctx context.Context, conn dependency.DB, query string, params map[string]any) (T, error) {
	var t T
	bound, args, err := bindNamed(query, params)
	if err != nil {
		return t, err
	}
	if err := conn.QueryRowxContext(ctx, bound, args...).StructScan(&t); err != nil {
		return t, fmt.Errorf("struct scan: %w", err)
	}
	return t, nil
}

// ExecNamed executes a statement and returns the number of affected rows.
func ExecNamed(ctx context.Context, conn dependency.DB, query string, params map[string]any) (int64, error) {
	bound, args, err := bindNamed(query, params)
	if err != nil {
		return 0, err
	}
	res, err := conn.ExecContext(ctx, bound, args...)
	if err != nil {
		return 0, fmt.Errorf("exec: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

// BulkInsert inserts rows into table with a single statement. Every row must
// hold one value per column, in column order.
func BulkInsert(ctx context.Context, conn dependency.DB, table string, columns []string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	placeholder := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ") + ")"

	var sb strings.Builder
	fmt.Fprintf(&sb, "INSERT INTO %s (%s) VALUES ", table, strings.Join(columns, ", "))
	args := make([]any, 0, len(rows)*len(columns))
	for i, row := range rows {
		if len(row) != len(columns) {
			return fmt.Errorf("bulk insert into %s: row %d has %d values, want %d", table, i, len(row), len(columns))
		}
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(placeholder)
		args = append(args, row...)
	}

	if _, err := conn.ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("bulk insert into %s: %w", table, err)
	}
	return nil
}
