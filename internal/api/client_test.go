// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sonchiraiya/internal/models"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, 2*time.Second)
	require.NoError(t, err)
	return c, srv
}

func TestNewRejectsRelativeURL(t *testing.T) {
	_, err := New("localhost:5000", time.Second)
	assert.Error(t, err)

	_, err = New("/api", time.Second)
	assert.Error(t, err)
}

func TestUploadURL(t *testing.T) {
	c, err := New("http://localhost:5000/", time.Second)
	require.NoError(t, err)

	tests := []struct {
		name   string
		folder string
		ref    string
		want   string
	}{
		{"blank", "hero", "", ""},
		{"absolute", "news", "https://cdn.example.org/a.jpg", "https://cdn.example.org/a.jpg"},
		{"filename", "gallery", "rally.jpg", "http://localhost:5000/uploads/gallery/rally.jpg"},
		{"leading slash", "hero", "/slide 1.png", "http://localhost:5000/uploads/hero/slide%201.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.UploadURL(tt.folder, tt.ref))
		})
	}
}

func TestListDecodesRecords(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/events", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get(RequestIDHeader))
		io.WriteString(w, `[{"id":1,"eventName":"Annual Meet","date":"2024-06-01T00:00:00.000Z","location":"Lucknow"}]`)
	})

	events, err := NewResources(c).Events.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Annual Meet", events[0].EventName)
	assert.Equal(t, 2024, events[0].Date.Year())
}

func TestStatusErrorUsesServerMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"error field", `{"error":"Duplicate slug"}`, "Duplicate slug"},
		{"message field", `{"message":"Image too large"}`, "Image too large"},
		{"html body", `<html>Internal Server Error</html>`, msgGeneric},
		{"empty body", ``, msgGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				io.WriteString(w, tt.body)
			})

			_, err := NewResources(c).Initiatives.Create(context.Background(), NewPayload().Set("slug", "x"))
			require.Error(t, err)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
			assert.Equal(t, tt.want, Message(err))
		})
	}
}

func TestCreateSendsMultipart(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/hero", r.URL.Path)
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}

		assert.Equal(t, "Welcome to Sarojini Nagar", r.FormValue("subtitle"))
		assert.Equal(t, "2", r.FormValue("display_order"))

		f, hdr, err := r.FormFile("hero")
		if !assert.NoError(t, err) {
			return
		}
		defer f.Close()
		assert.Equal(t, "slide.png", hdr.Filename)
		b, _ := io.ReadAll(f)
		assert.Equal(t, "PNGDATA", string(b))

		io.WriteString(w, `{"id":9,"description":"Welcome to Sarojini Nagar","display_order":2}`)
	})

	p := NewPayload().
		Set("subtitle", "Welcome to Sarojini Nagar").
		Set("display_order", "2").
		Attach(&File{Field: "hero", Filename: "slide.png", ContentType: "image/png", Content: []byte("PNGDATA")})

	slide, err := NewResources(c).Hero.Create(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, int64(9), slide.ID)
}

func TestCreateToleratesNonRecordBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `OK`)
	})

	item, err := NewResources(c).Gallery.Create(context.Background(), NewPayload().Set("title", "Rally"))
	require.NoError(t, err)
	assert.Equal(t, models.GalleryItem{}, item)
}

func TestUpdateAndRemovePaths(t *testing.T) {
	var calls []string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})
	res := NewResources(c)

	_, err := res.News.Update(context.Background(), 42, NewPayload().Set("titleEn", "Updated"))
	require.NoError(t, err)
	require.NoError(t, res.Messages.Remove(context.Background(), 5))

	assert.Equal(t, []string{"PUT /api/news/42", "DELETE /api/messages/5"}, calls)
}

func TestSendMessageIsJSON(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/messages", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Asha", body["name"])
		assert.Equal(t, "asha@example.org", body["email"])
		assert.Equal(t, "", body["phone"])
		w.WriteHeader(http.StatusCreated)
	})

	err := NewResources(c).SendMessage(context.Background(), "Asha", "asha@example.org", "", "Please fix the road.")
	require.NoError(t, err)
}

func TestLogin(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] == "secret" {
			io.WriteString(w, `{"success":true}`)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"success":false,"message":"Wrong password"}`)
	})

	ok, err := c.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.True(t, ok.Success)

	bad, err := c.Login(context.Background(), "admin", "guess")
	require.NoError(t, err)
	assert.False(t, bad.Success)
	assert.Equal(t, "Wrong password", bad.Message)
}

func TestLoginServerFault(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
		wantMsg string
	}{
		{"500 with error field", http.StatusInternalServerError, `{"error":"db down"}`, "db down", ""},
		{"503 with success false", http.StatusServiceUnavailable, `{"success":false}`, msgGeneric, ""},
		{"401 with error field", http.StatusUnauthorized, `{"error":"Account locked"}`, "", "Account locked"},
		{"403 bare", http.StatusForbidden, `{}`, "", "Invalid admin credentials."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})

			res, err := c.Login(context.Background(), "admin", "secret")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, Message(err))
				assert.False(t, res.Success)
				return
			}
			require.NoError(t, err)
			assert.False(t, res.Success)
			assert.Equal(t, tt.wantMsg, res.Message)
		})
	}
}

func TestUnreachableBackend(t *testing.T) {
	c, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := NewResources(c).News.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, msgUnreachable, Message(err))
}

func TestCancelledContextAbortsCall(t *testing.T) {
	release := make(chan struct{})
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := NewResources(c).Gallery.List(ctx)
	require.Error(t, err)
	assert.Equal(t, msgCancelled, Message(err))
}

func TestObserverSeesEveryCall(t *testing.T) {
	var n atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	var seen []string
	c, err := New(srv.URL, time.Second, WithObserver(func(method, resource string, status int, _ time.Duration) {
		n.Add(1)
		seen = append(seen, strings.Join([]string{method, resource}, " "))
	}))
	require.NoError(t, err)

	_, err = NewResources(c).Hero.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), n.Load())
	assert.Equal(t, []string{"GET hero"}, seen)
}

func TestPayloadOrder(t *testing.T) {
	p := NewPayload().Set("b", "2").Set("a", "1")
	assert.Equal(t, []Field{{"b", "2"}, {"a", "1"}}, p.Fields())

	v, ok := p.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
}
