package errors

import (
	"context"
	stdErrors "errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// Trace is the log-side view of an error: the typed code, the unwrap chain,
// and any database diagnostics carried by the postgres drivers.
type Trace struct {
	Message   string
	Code      Code
	Retryable bool
	Aborted   string
	Chain     []string
	SQL       *SQLState
}

// SQLState holds the server-side fields of a postgres error.
type SQLState struct {
	Code       string
	Table      string
	Constraint string
	Detail     string
	Message    string
}

// TraceOf walks err and collects everything worth logging about it.
func TraceOf(err error) Trace {
	if err == nil {
		return Trace{}
	}

	t := Trace{Message: err.Error()}
	if typed := As(err); typed != nil {
		t.Code = typed.Code()
		t.Retryable = MetadataFor(t.Code).Retryable
	}

	switch {
	case stdErrors.Is(err, context.DeadlineExceeded):
		t.Aborted = "deadline"
	case stdErrors.Is(err, context.Canceled):
		t.Aborted = "canceled"
	}

	for e := err; e != nil; e = stdErrors.Unwrap(e) {
		t.Chain = append(t.Chain, fmt.Sprintf("%T: %v", e, e))
	}

	t.SQL = sqlStateOf(err)
	return t
}

func sqlStateOf(err error) *SQLState {
	var pgxErr *pgconn.PgError
	if stdErrors.As(err, &pgxErr) {
		return &SQLState{
			Code:       pgxErr.Code,
			Table:      pgxErr.TableName,
			Constraint: pgxErr.ConstraintName,
			Detail:     pgxErr.Detail,
			Message:    pgxErr.Message,
		}
	}
	var pqErr *pq.Error
	if stdErrors.As(err, &pqErr) {
		return &SQLState{
			Code:       string(pqErr.Code),
			Table:      pqErr.Table,
			Constraint: pqErr.Constraint,
			Detail:     pqErr.Detail,
			Message:    pqErr.Message,
		}
	}
	return nil
}

// Fields flattens the trace into structured log fields.
func (t Trace) Fields() map[string]any {
	fields := map[string]any{
		"error":       t.Message,
		"error_chain": t.Chain,
	}
	if t.Code != "" {
		fields["error_code"] = t.Code
		fields["retryable"] = t.Retryable
	}
	if t.Aborted != "" {
		fields["aborted"] = t.Aborted
	}
	if t.SQL != nil {
		fields["pg_code"] = t.SQL.Code
		fields["pg_table"] = t.SQL.Table
		fields["pg_constraint"] = t.SQL.Constraint
		fields["pg_detail"] = t.SQL.Detail
		fields["pg_message"] = t.SQL.Message
	}
	return fields
}
