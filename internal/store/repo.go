package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// QueryOpts configures list queries.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // LLM events only; empty matches all
	UnitID  string // attempts only; empty matches all
	// Since keeps attempts created at or after it; zero matches all.
	Since time.Time
}

// LLMRequest is one recorded call to a language model provider.
type LLMRequest struct {
	ID           string
	CreatedAt    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsage aggregates LLM requests by purpose or model.
type LLMUsage struct {
	Key          string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo records LLM requests.
type EventRepo struct {
	drv *entsql.Driver
}

var llmColumns = []string{
	"id", "created_at", "provider", "model", "purpose", "input_tokens", "output_tokens",
	"latency_ms", "success", "error_message", "request_body", "response_body",
}

// AppendLLMRequest stores e. Empty ID and zero CreatedAt are filled in.
func (r *EventRepo) AppendLLMRequest(ctx context.Context, e LLMRequest) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	query, args := entsql.Dialect(dialect.SQLite).
		Insert("llm_requests").
		Columns(llmColumns...).
		Values(e.ID, e.CreatedAt.UnixMilli(), e.Provider, e.Model, e.Purpose, e.InputTokens,
			e.OutputTokens, e.LatencyMs, boolToInt(e.Success), e.ErrorMessage, e.RequestBody, e.ResponseBody).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("append llm request: %w", err)
	}
	return nil
}

// LLMRequests returns recorded requests, newest first.
func (r *EventRepo) LLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequest, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(llmColumns...).
		From(entsql.Table("llm_requests")).
		OrderBy(entsql.Desc("created_at"))
	if opts.Purpose != "" {
		sel.Where(entsql.EQ("purpose", opts.Purpose))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	return r.scanRequests(ctx, sel)
}

// LLMRequest returns the request with the given id (a unique prefix is
// accepted), or nil if none matches.
func (r *EventRepo) LLMRequest(ctx context.Context, id string) (*LLMRequest, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(llmColumns...).
		From(entsql.Table("llm_requests")).
		Where(entsql.HasPrefix("id", id)).
		Limit(2)
	reqs, err := r.scanRequests(ctx, sel)
	if err != nil {
		return nil, err
	}
	if len(reqs) != 1 {
		return nil, nil
	}
	return &reqs[0], nil
}

func (r *EventRepo) scanRequests(ctx context.Context, sel *entsql.Selector) ([]LLMRequest, error) {
	query, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query llm requests: %w", err)
	}
	defer rows.Close()

	var out []LLMRequest
	for rows.Next() {
		var (
			e         LLMRequest
			createdAt int64
			success   int
		)
		if err := rows.Scan(&e.ID, &createdAt, &e.Provider, &e.Model, &e.Purpose, &e.InputTokens,
			&e.OutputTokens, &e.LatencyMs, &success, &e.ErrorMessage, &e.RequestBody, &e.ResponseBody); err != nil {
			return nil, fmt.Errorf("scan llm request: %w", err)
		}
		e.CreatedAt = time.UnixMilli(createdAt)
		e.Success = success != 0
		out = append(out, e)
	}
	return out, rows.Err()
}

// UsageByPurpose aggregates token usage per purpose label.
func (r *EventRepo) UsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	return r.usage(ctx, "purpose")
}

// UsageByModel aggregates token usage per model id.
func (r *EventRepo) UsageByModel(ctx context.Context) ([]LLMUsage, error) {
	return r.usage(ctx, "model")
}

func (r *EventRepo) usage(ctx context.Context, column string) ([]LLMUsage, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(
			column,
			entsql.Count("*"),
			entsql.Sum("input_tokens"),
			entsql.Sum("output_tokens"),
			entsql.Avg("latency_ms"),
		).
		From(entsql.Table("llm_requests")).
		GroupBy(column).
		OrderBy(column).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query llm usage by %s: %w", column, err)
	}
	defer rows.Close()

	var out []LLMUsage
	for rows.Next() {
		var (
			u   LLMUsage
			avg float64
		)
		if err := rows.Scan(&u.Key, &u.Calls, &u.InputTokens, &u.OutputTokens, &avg); err != nil {
			return nil, fmt.Errorf("scan llm usage: %w", err)
		}
		u.AvgLatencyMs = int64(avg)
		out = append(out, u)
	}
	return out, rows.Err()
}

// Attempt is one finished quiz pass.
type Attempt struct {
	ID             string
	CreatedAt      time.Time
	GradeID        string
	UnitID         string
	SetID          string
	Activity       string
	Score          int
	CorrectCount   int
	Total          int
	ElapsedSeconds int
	WrongIDs       []string
}

// AttemptRepo keeps the quiz attempt history.
type AttemptRepo struct {
	drv *entsql.Driver
}

var attemptColumns = []string{
	"id", "created_at", "grade_id", "unit_id", "set_id", "activity", "score",
	"correct_count", "total", "elapsed_seconds", "wrong_ids",
}

// Record stores a. Empty ID and zero CreatedAt are filled in.
func (r *AttemptRepo) Record(ctx context.Context, a Attempt) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	query, args := entsql.Dialect(dialect.SQLite).
		Insert("quiz_attempts").
		Columns(attemptColumns...).
		Values(a.ID, a.CreatedAt.UnixMilli(), a.GradeID, a.UnitID, a.SetID, a.Activity, a.Score,
			a.CorrectCount, a.Total, a.ElapsedSeconds, strings.Join(a.WrongIDs, ",")).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}

// Recent returns attempts newest first.
func (r *AttemptRepo) Recent(ctx context.Context, opts QueryOpts) ([]Attempt, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(attemptColumns...).
		From(entsql.Table("quiz_attempts")).
		OrderBy(entsql.Desc("created_at"))
	if opts.UnitID != "" {
		sel.Where(entsql.EQ("unit_id", opts.UnitID))
	}
	if !opts.Since.IsZero() {
		sel.Where(entsql.GTE("created_at", opts.Since.UnixMilli()))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var (
			a         Attempt
			createdAt int64
			wrong     string
		)
		if err := rows.Scan(&a.ID, &createdAt, &a.GradeID, &a.UnitID, &a.SetID, &a.Activity, &a.Score,
			&a.CorrectCount, &a.Total, &a.ElapsedSeconds, &wrong); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.CreatedAt = time.UnixMilli(createdAt)
		if wrong != "" {
			a.WrongIDs = strings.Split(wrong, ",")
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Clear deletes all attempts.
func (r *AttemptRepo) Clear(ctx context.Context) error {
	query, args := entsql.Dialect(dialect.SQLite).Delete("quiz_attempts").Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("clear attempts: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
