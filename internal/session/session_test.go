// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
)

var fixedNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// newMockStore returns a Store wired to redismock with a fixed clock and
// a predictable session ID.
func newMockStore(t *testing.T) (*Store, redismock.ClientMock) {
	t.Helper()
	db, mock := redismock.NewClientMock()
	t.Cleanup(func() { db.Close() })

	store := NewStore(db, true, time.Hour)
	store.newID = func() (string, error) { return "abc123", nil }
	store.now = func() time.Time { return fixedNow }
	return store, mock
}

func payloadFor(t *testing.T, d Data) []byte {
	t.Helper()
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

func TestSessionCreate(t *testing.T) {
	store, mock := newMockStore(t)

	want := Data{Username: "admin", CreatedAt: fixedNow, ExpiresAt: fixedNow.Add(time.Hour)}
	mock.ExpectSet("session:abc123", payloadFor(t, want), time.Hour).SetVal("OK")

	w := httptest.NewRecorder()
	id, err := store.Create(context.Background(), w, "admin")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != "abc123" {
		t.Errorf("id = %q, want abc123", id)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != CookieName || c.Value != "abc123" {
		t.Errorf("cookie = %s=%s", c.Name, c.Value)
	}
	if !c.HttpOnly || !c.Secure {
		t.Errorf("cookie flags: HttpOnly=%v Secure=%v", c.HttpOnly, c.Secure)
	}
	if c.MaxAge != 3600 {
		t.Errorf("MaxAge = %d, want 3600", c.MaxAge)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestSessionCreateStoreFailure(t *testing.T) {
	store, mock := newMockStore(t)

	want := Data{Username: "admin", CreatedAt: fixedNow, ExpiresAt: fixedNow.Add(time.Hour)}
	mock.ExpectSet("session:abc123", payloadFor(t, want), time.Hour).SetErr(errors.New("connection refused"))

	w := httptest.NewRecorder()
	if _, err := store.Create(context.Background(), w, "admin"); err == nil {
		t.Fatal("expected error")
	}
	if len(w.Result().Cookies()) != 0 {
		t.Error("cookie must not be set when the session was not stored")
	}
}

func TestSessionGet(t *testing.T) {
	store, mock := newMockStore(t)

	stored := Data{Username: "admin", CreatedAt: fixedNow, ExpiresAt: fixedNow.Add(time.Hour)}
	mock.ExpectGet("session:abc123").SetVal(string(payloadFor(t, stored)))

	r := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "abc123"})

	got, err := store.Get(context.Background(), r)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.Username != "admin" {
		t.Fatalf("Get = %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestSessionGetNoCookie(t *testing.T) {
	store, _ := newMockStore(t)

	r := httptest.NewRequest(http.MethodGet, "/admin", nil)
	got, err := store.Get(context.Background(), r)
	if err != nil || got != nil {
		t.Errorf("Get without cookie = %+v, %v", got, err)
	}
}

func TestSessionGetExpiredKey(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectGet("session:gone").RedisNil()

	r := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "gone"})

	got, err := store.Get(context.Background(), r)
	if err != nil || got != nil {
		t.Errorf("Get expired = %+v, %v", got, err)
	}
}

func TestSessionGetPastExpiry(t *testing.T) {
	store, mock := newMockStore(t)

	stale := Data{Username: "admin", CreatedAt: fixedNow.Add(-2 * time.Hour), ExpiresAt: fixedNow.Add(-time.Hour)}
	mock.ExpectGet("session:abc123").SetVal(string(payloadFor(t, stale)))
	mock.ExpectDel("session:abc123").SetVal(1)

	r := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "abc123"})

	got, err := store.Get(context.Background(), r)
	if err != nil || got != nil {
		t.Errorf("Get past expiry = %+v, %v", got, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestSessionGetCorruptPayload(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectGet("session:abc123").SetVal("{not json")

	r := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "abc123"})

	if _, err := store.Get(context.Background(), r); err == nil {
		t.Error("expected unmarshal error")
	}
}

func TestSessionDestroy(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectDel("session:abc123").SetVal(1)

	r := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "abc123"})
	w := httptest.NewRecorder()

	if err := store.Destroy(context.Background(), w, r); err != nil {
		t.Fatalf("Destroy: %v", err)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Errorf("expected an expiring cookie, got %+v", cookies)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestGenerateIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id, err := generateID()
		if err != nil {
			t.Fatalf("generateID: %v", err)
		}
		if len(id) != idLength*2 {
			t.Errorf("id length = %d, want %d", len(id), idLength*2)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
