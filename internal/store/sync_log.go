// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store persists the admin sync log: one row per create, update or
// delete this server forwarded to the backend, with its outcome. Content
// itself is never stored here; the backend owns it.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// Admin actions recorded in the log.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// SyncEntry is one logged admin mutation.
type SyncEntry struct {
	ID        uuid.UUID
	Resource  string
	Action    string
	RecordID  int64
	Username  string
	OK        bool
	Message   string
	RequestID string
	CreatedAt time.Time
}

// SyncLogStore reads and writes sync log rows.
type SyncLogStore struct {
	db  *sql.DB
	sb  squirrel.StatementBuilderType
	now func() time.Time
}

// NewSyncLogStore creates a store for db. dollar selects $n placeholders
// (PostgreSQL); otherwise ? is used (SQLite).
func NewSyncLogStore(db *sql.DB, dollar bool) *SyncLogStore {
	format := squirrel.PlaceholderFormat(squirrel.Question)
	if dollar {
		format = squirrel.Dollar
	}
	return &SyncLogStore{
		db:  db,
		sb:  squirrel.StatementBuilder.PlaceholderFormat(format),
		now: time.Now,
	}
}

// Log records an entry. Logging is best-effort: failures are written to
// slog and never reach the caller.
func (s *SyncLogStore) Log(ctx context.Context, e SyncEntry) {
	if s == nil {
		return
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now().UTC()
	}

	query, args, err := s.sb.Insert("sync_log").
		Columns("id", "resource", "action", "record_id", "username", "ok", "message", "request_id", "created_at").
		Values(e.ID.String(), e.Resource, e.Action, e.RecordID, e.Username, e.OK, e.Message, e.RequestID, e.CreatedAt).
		ToSql()
	if err == nil {
		_, err = s.db.ExecContext(ctx, query, args...)
	}
	if err != nil {
		slog.Warn("failed to write sync log",
			"resource", e.Resource,
			"action", e.Action,
			"record_id", e.RecordID,
			"error", err,
		)
		return
	}
	slog.Debug("sync log written",
		"resource", e.Resource,
		"action", e.Action,
		"record_id", e.RecordID,
		"ok", e.OK,
	)
}

// Recent returns the newest entries first. An empty resource means all
// resources.
func (s *SyncLogStore) Recent(ctx context.Context, resource string, limit int) ([]SyncEntry, error) {
	if s == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}

	q := s.sb.Select("id", "resource", "action", "record_id", "username", "ok", "message", "request_id", "created_at").
		From("sync_log").
		OrderBy("created_at DESC").
		Limit(uint64(limit))
	if resource != "" {
		q = q.Where(squirrel.Eq{"resource": resource})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sync log query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sync log: %w", err)
	}
	defer rows.Close()

	var entries []SyncEntry
	for rows.Next() {
		var (
			e  SyncEntry
			id string
		)
		if err := rows.Scan(&id, &e.Resource, &e.Action, &e.RecordID, &e.Username, &e.OK, &e.Message, &e.RequestID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sync log: %w", err)
		}
		if e.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse sync log id: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CountFailures returns how many failed mutations were logged since t.
func (s *SyncLogStore) CountFailures(ctx context.Context, since time.Time) (int, error) {
	if s == nil {
		return 0, nil
	}
	query, args, err := s.sb.Select("COUNT(*)").
		From("sync_log").
		Where(squirrel.Eq{"ok": false}).
		Where(squirrel.GtOrEq{"created_at": since.UTC()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build failure count: %w", err)
	}

	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sync failures: %w", err)
	}
	return n, nil
}
