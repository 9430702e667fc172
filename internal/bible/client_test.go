package bible

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/truthseed/truthseed/internal/model"
)

func testClient(baseURL string) *Client {
	return NewClient(model.BibleConfig{
		BaseURL:            baseURL,
		DefaultTranslation: "nvi",
		Timeout:            5 * time.Second,
		RetryDelay:         1 * time.Millisecond,
	})
}

func noSleep(t *testing.T) {
	t.Helper()
	orig := sleepFunc
	sleepFunc = func(time.Duration) {}
	t.Cleanup(func() { sleepFunc = orig })
}

func juan316() model.Reference {
	return model.Reference{
		Book:        "Juan",
		Chapter:     3,
		VerseStart:  16,
		Display:     "Juan 3:16",
		Translation: "nvi",
	}
}

func TestFetchVerse_Success(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		if r.URL.Path != "/nvi/juan/3/16" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = fmt.Fprint(w, `{"verse":"Porque de tal manera amó Dios al mundo...","number":16}`)
	}))
	defer server.Close()

	data := testClient(server.URL).FetchVerse(context.Background(), juan316())
	if data == nil {
		t.Fatal("expected verse data")
	}
	if data.Text != "Porque de tal manera amó Dios al mundo..." {
		t.Errorf("unexpected text: %q", data.Text)
	}
	if data.Translation != "nvi" {
		t.Errorf("unexpected translation: %q", data.Translation)
	}
	if attempts.Load() != 1 {
		t.Errorf("expected 1 request, got %d", attempts.Load())
	}
}

func TestFetchVerse_UnknownBookNoNetworkCall(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
	}))
	defer server.Close()

	ref := juan316()
	ref.Book = "Atlantis"

	if data := testClient(server.URL).FetchVerse(context.Background(), ref); data != nil {
		t.Errorf("expected absent result, got %+v", data)
	}
	if attempts.Load() != 0 {
		t.Errorf("expected zero network calls, got %d", attempts.Load())
	}
}

func TestFetchVerse_ServerErrorThenSuccess(t *testing.T) {
	noSleep(t)

	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = fmt.Fprint(w, `{"verse":"texto"}`)
	}))
	defer server.Close()

	data := testClient(server.URL).FetchVerse(context.Background(), juan316())
	if data == nil {
		t.Fatal("expected success after one retry")
	}
	if attempts.Load() != 2 {
		t.Errorf("expected exactly 2 requests, got %d", attempts.Load())
	}
}

func TestFetchVerse_TwoServerErrorsExhaustRetry(t *testing.T) {
	noSleep(t)

	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	if data := testClient(server.URL).FetchVerse(context.Background(), juan316()); data != nil {
		t.Errorf("expected absent result, got %+v", data)
	}
	if attempts.Load() != 2 {
		t.Errorf("expected exactly 2 requests, got %d", attempts.Load())
	}
}

func TestFetchVerse_NotFoundNoRetry(t *testing.T) {
	noSleep(t)

	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	if data := testClient(server.URL).FetchVerse(context.Background(), juan316()); data != nil {
		t.Errorf("expected absent result, got %+v", data)
	}
	if attempts.Load() != 1 {
		t.Errorf("404 must not be retried: got %d requests", attempts.Load())
	}
}

func TestFetchVerse_RateLimitedNoRetry(t *testing.T) {
	noSleep(t)

	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	if data := testClient(server.URL).FetchVerse(context.Background(), juan316()); data != nil {
		t.Errorf("expected absent result, got %+v", data)
	}
	if attempts.Load() != 1 {
		t.Errorf("429 must not be retried: got %d requests", attempts.Load())
	}
}

func TestFetchVerse_ClientErrorNoRetry(t *testing.T) {
	noSleep(t)

	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	if data := testClient(server.URL).FetchVerse(context.Background(), juan316()); data != nil {
		t.Errorf("expected absent result, got %+v", data)
	}
	if attempts.Load() != 1 {
		t.Errorf("4xx must not be retried: got %d requests", attempts.Load())
	}
}

func TestFetchVerse_TimeoutNoRetry(t *testing.T) {
	noSleep(t)

	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		time.Sleep(300 * time.Millisecond)
		_, _ = fmt.Fprint(w, `{"verse":"tarde"}`)
	}))
	defer server.Close()

	client := NewClient(model.BibleConfig{
		BaseURL:            server.URL,
		DefaultTranslation: "nvi",
		Timeout:            50 * time.Millisecond,
		RetryDelay:         1 * time.Millisecond,
	})

	if data := client.FetchVerse(context.Background(), juan316()); data != nil {
		t.Errorf("expected absent result on timeout, got %+v", data)
	}
	if attempts.Load() != 1 {
		t.Errorf("timeout must not be retried: got %d requests", attempts.Load())
	}
}

func TestFetchVerse_MalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `<!doctype html><html>not json</html>`)
	}))
	defer server.Close()

	if data := testClient(server.URL).FetchVerse(context.Background(), juan316()); data != nil {
		t.Errorf("expected absent result for malformed payload, got %+v", data)
	}
}

func TestFetchVerse_DefaultTranslationWhenAbsent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/nvi/juan/3/16" {
			t.Errorf("expected default translation in path, got %s", r.URL.Path)
		}
		_, _ = fmt.Fprint(w, `{"verse":"texto"}`)
	}))
	defer server.Close()

	ref := juan316()
	ref.Translation = ""

	data := testClient(server.URL).FetchVerse(context.Background(), ref)
	if data == nil {
		t.Fatal("expected verse data")
	}
	if data.Translation != "nvi" {
		t.Errorf("expected default translation nvi, got %q", data.Translation)
	}
}

func TestFetchVerse_RangePath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rv1960/romanos/8/38-39" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = fmt.Fprint(w, `[{"verse":"a"},{"verse":"b"}]`)
	}))
	defer server.Close()

	ref := model.Reference{
		Book:        "Romanos",
		Chapter:     8,
		VerseStart:  38,
		VerseEnd:    39,
		Display:     "Romanos 8:38-39",
		Translation: "rv1960",
	}

	data := testClient(server.URL).FetchVerse(context.Background(), ref)
	if data == nil {
		t.Fatal("expected verse data")
	}
	if data.Text != "a b" {
		t.Errorf("unexpected text: %q", data.Text)
	}
}
