package record

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/jask/swipedeck/internal/errors"
)

func serve(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewClient(srv.URL, 2*time.Second)
	require.NoError(t, err)
	return c
}

func TestFetchNext(t *testing.T) {
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/next", r.URL.Path)
		w.Header().Set("content-type", "application/json")
		_, _ = w.Write([]byte(`{"id":"7","url":"/api/image/7","name":"Ada","description":"likes\nmath"}`))
	})

	got, err := c.FetchNext(context.Background())
	require.NoError(t, err)
	want := Record{ID: "7", URL: "/api/image/7", Name: "Ada", Description: "likes\nmath"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestFetchByIDEscapesPath(t *testing.T) {
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/meta/a%2Fb", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"id":"a/b","url":"/api/image/a%2Fb"}`))
	})

	got, err := c.FetchByID(context.Background(), "a/b")
	require.NoError(t, err)
	require.Equal(t, "a/b", got.ID)
	require.Empty(t, got.Name)
	require.Empty(t, got.Description)
}

func TestFetchFailures(t *testing.T) {
	cases := []struct {
		name string
		h    http.HandlerFunc
		code errors.ErrorCode
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}, errors.ErrBadStatus},
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "No images found", http.StatusNotFound)
		}, errors.ErrBadStatus},
		{"not json", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		}, errors.ErrMalformed},
		{"array body", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"id":"1","url":"x"}]`))
		}, errors.ErrMalformed},
		{"missing id", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"url":"/api/image/1"}`))
		}, errors.ErrMalformed},
		{"numeric id", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":1,"url":"/api/image/1"}`))
		}, errors.ErrMalformed},
		{"empty url", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":"1","url":""}`))
		}, errors.ErrMalformed},
		{"trailing garbage", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":"1","url":"u"}garbage`))
		}, errors.ErrMalformed},
		{"two objects", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":"1","url":"u"}{"id":"2","url":"v"}`))
		}, errors.ErrMalformed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := serve(t, tc.h)
			_, err := c.FetchNext(context.Background())
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.code), "got %v", err)
		})
	}
}

func TestFetchAllowsTrailingWhitespace(t *testing.T) {
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{\"id\":\"1\",\"url\":\"u\"}\n  \n"))
	})
	got, err := c.FetchNext(context.Background())
	require.NoError(t, err)
	require.Equal(t, "1", got.ID)
}

func TestFetchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := NewClient(base, time.Second)
	require.NoError(t, err)
	_, err = c.FetchNext(context.Background())
	require.True(t, errors.Is(err, errors.ErrTransport), "got %v", err)
}

func TestFetchHonoursContext(t *testing.T) {
	block := make(chan struct{})
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	})
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.FetchNext(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestResolve(t *testing.T) {
	c, err := NewClient("https://cards.example.com/", time.Second)
	require.NoError(t, err)
	require.Equal(t, "https://cards.example.com/api/image/9", c.Resolve("/api/image/9"))
	require.Equal(t, "https://cdn.example.com/x.png", c.Resolve("https://cdn.example.com/x.png"))
}

func TestNewClientRejectsRelative(t *testing.T) {
	_, err := NewClient("/api", time.Second)
	require.Error(t, err)
}
