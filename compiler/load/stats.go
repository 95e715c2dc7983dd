package load

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"time"

	"ariga.io/atlas/sql/schema"
	"github.com/rs/zerolog"
)

// DefaultSlowThreshold marks inspection queries worth logging.
const DefaultSlowThreshold = 500 * time.Millisecond

// Stats is a snapshot of the statements an inspection issued.
type Stats struct {
	Queries  int64
	Execs    int64
	Errors   int64
	Slow     int64
	Duration time.Duration
}

// String returns a one-line summary.
func (s Stats) String() string {
	return fmt.Sprintf("queries=%d execs=%d errors=%d slow=%d duration=%s",
		s.Queries, s.Execs, s.Errors, s.Slow, s.Duration)
}

// Querier wraps the connection handed to atlas. It counts statements and
// logs the slow ones.
type Querier struct {
	db        schema.ExecQuerier
	logger    zerolog.Logger
	threshold time.Duration

	queries  atomic.Int64
	execs    atomic.Int64
	errors   atomic.Int64
	slow     atomic.Int64
	duration atomic.Int64
}

// Instrument wraps db. A zero threshold selects DefaultSlowThreshold.
func Instrument(db schema.ExecQuerier, logger zerolog.Logger, threshold time.Duration) *Querier {
	if threshold <= 0 {
		threshold = DefaultSlowThreshold
	}
	return &Querier{db: db, logger: logger, threshold: threshold}
}

// QueryContext implements schema.ExecQuerier.
func (q *Querier) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := q.db.QueryContext(ctx, query, args...)
	q.queries.Add(1)
	q.record(query, start, err)
	return rows, err
}

// ExecContext implements schema.ExecQuerier.
func (q *Querier) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := q.db.ExecContext(ctx, query, args...)
	q.execs.Add(1)
	q.record(query, start, err)
	return res, err
}

func (q *Querier) record(query string, start time.Time, err error) {
	d := time.Since(start)
	q.duration.Add(int64(d))
	if err != nil {
		q.errors.Add(1)
	}
	q.logger.Trace().Dur("duration", d).Str("query", query).Msg("inspect")
	if d > q.threshold {
		q.slow.Add(1)
		q.logger.Warn().Dur("duration", d).Str("query", query).Msg("slow inspection query")
	}
}

// Stats returns the counters collected so far.
func (q *Querier) Stats() Stats {
	return Stats{
		Queries:  q.queries.Load(),
		Execs:    q.execs.Load(),
		Errors:   q.errors.Load(),
		Slow:     q.slow.Load(),
		Duration: time.Duration(q.duration.Load()),
	}
}
