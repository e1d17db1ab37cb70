package e2ekit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func Test_checkServer(t *testing.T) {
	t.Parallel()
	t.Run("error", func(t *testing.T) {
		t.Parallel()
		err := checkServer(context.Background(), "http://127.0.0.1:9999", nil)
		assert.ErrorIs(t, err, ErrServerNotFound)
	})
	t.Run("404", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer srv.Close()
		err := checkServer(context.Background(), srv.URL, nil)
		assert.ErrorIs(t, err, ErrServerNotFound)
	})
	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodHead, r.Method)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()
		err := checkServer(context.Background(), srv.URL, nil)
		assert.NoError(t, err)
	})
}

func Test_parseBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		want    string
		wantErr bool
	}{
		{"http", "http://localhost:8181", "http://localhost:8181", false},
		{"trailing slash", "https://example.com/", "https://example.com", false},
		{"with path", "http://localhost:8181/app/", "http://localhost:8181/app", false},
		{"no scheme", "localhost:8181", "", true},
		{"ftp", "ftp://example.com", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseBaseURL(tt.s)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseBaseURL() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var e ErrBadURL
				assert.ErrorAs(t, err, &e)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	t.Run("ok", func(t *testing.T) {
		s, err := New(srv.URL+"/", WithDeviceMode(Mobile), WithLogger(testLogger))
		require.NoError(t, err)
		assert.Equal(t, srv.URL, s.BaseURL())
		assert.Equal(t, Mobile, s.Mode())
		assert.Equal(t, defWaitTimeout, s.opts.waitTimeout)
		assert.True(t, s.opts.headless)
	})
	t.Run("options", func(t *testing.T) {
		s, err := New(srv.URL, WithHeadless(false), WithWaitTimeout(0), WithBundledBrowser(), WithUserAgent(""))
		require.NoError(t, err)
		assert.False(t, s.opts.headless)
		assert.True(t, s.opts.useBundledBrwsr)
		assert.Equal(t, defWaitTimeout, s.opts.waitTimeout, "zero timeout is ignored")
		assert.Empty(t, s.opts.userAgent)
	})
	t.Run("bad url", func(t *testing.T) {
		_, err := New("not a url")
		var e ErrBadURL
		assert.ErrorAs(t, err, &e)
	})
	t.Run("server down", func(t *testing.T) {
		_, err := New("http://127.0.0.1:9999")
		assert.ErrorIs(t, err, ErrServerNotFound)
	})
}

func TestSession_notStarted(t *testing.T) {
	s := &Session{baseURL: "http://localhost"}
	_, err := s.LibraryPage()
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestSession_Close(t *testing.T) {
	var order []int
	s := &Session{}
	s.atClose(func() error { order = append(order, 1); return nil })
	s.atClose(func() error { order = append(order, 2); return errors.New("two") })
	s.atClose(func() error { order = append(order, 3); return errors.New("three") })

	err := s.Close()
	assert.Equal(t, []int{3, 2, 1}, order)
	assert.EqualError(t, err, "three\ntwo")
	assert.NoError(t, s.Close(), "second close is a no-op")
}

func TestErrBrowser(t *testing.T) {
	e := errors.New("boom")
	err := error(ErrBrowser{Err: e, FailedTo: "click"})
	assert.EqualError(t, err, "browser automation error: failed to click: boom")
	assert.ErrorIs(t, err, e)
}
