package gamma

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchEventsBareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("limit") != "50" {
			t.Errorf("limit = %q, want 50", query.Get("limit"))
		}
		if query.Get("active") != "true" {
			t.Errorf("active = %q, want true", query.Get("active"))
		}
		if query.Get("closed") != "false" {
			t.Errorf("closed = %q, want false", query.Get("closed"))
		}
		if query.Get("order") != "volume24hr:desc" {
			t.Errorf("order = %q", query.Get("order"))
		}
		if r.Header.Get("Cache-Control") != "no-cache" {
			t.Errorf("missing no-cache request header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"e1","slug":"event-one","name":"Event One","volume":1000,` +
			`"markets":[{"id":"m1","question":"Q?","outcomePrices":["0.65","0.35"]}]}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL)
	events, err := client.FetchEvents(context.Background(), FetchOptions{
		Limit: 50, Active: true, Closed: false, Order: "volume24hr:desc",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 || events[0].ID != "e1" {
		t.Fatalf("unexpected events: %#v", events)
	}
	if got := events[0].Markets[0].OutcomePrices; len(got) != 2 || got[0] != "0.65" {
		t.Fatalf("unexpected prices: %#v", got)
	}
}

func TestFetchEventsDataWrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":"e1","volume":5}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL)
	events, err := client.FetchEvents(context.Background(), FetchOptions{Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 || events[0].ID != "e1" {
		t.Fatalf("unexpected events: %#v", events)
	}
}

func TestFetchEventsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL)
	_, err := client.FetchEvents(context.Background(), FetchOptions{})
	var ue *UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if ue.Status != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", ue.Status)
	}
	if !IsRetryable(err) {
		t.Fatalf("502 should be retryable")
	}
}

func TestFetchEventsMalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>error</html>`},
		{"wrong shape", `{"events":[]}`},
		{"data not array", `{"data":{"id":"e1"}}`},
	}
	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(tt.body))
		}))
		client := NewClient(srv.Client(), srv.URL)
		_, err := client.FetchEvents(context.Background(), FetchOptions{})
		srv.Close()
		var me *MalformedResponseError
		if !errors.As(err, &me) {
			t.Fatalf("%s: expected MalformedResponseError, got %v", tt.name, err)
		}
		if IsRetryable(err) {
			t.Fatalf("%s: malformed response must not be retryable", tt.name)
		}
	}
}

func TestFetchEventsTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(&http.Client{Timeout: 20 * time.Millisecond}, srv.URL)
	_, err := client.FetchEvents(context.Background(), FetchOptions{})
	var te *TimeoutError
	if !errors.As(err, &te) {
		t.Fatalf("expected TimeoutError, got %v", err)
	}
	if !IsRetryable(err) {
		t.Fatalf("timeout should be retryable")
	}
}

func TestFetchEventsDeadlineExceeded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	client := NewClient(srv.Client(), srv.URL)
	_, err := client.FetchEvents(ctx, FetchOptions{})
	var te *TimeoutError
	if !errors.As(err, &te) {
		t.Fatalf("expected TimeoutError, got %v", err)
	}
}

func TestFetchEventsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewClient(&http.Client{Timeout: time.Second}, url)
	_, err := client.FetchEvents(context.Background(), FetchOptions{})
	var ne *NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if !IsRetryable(err) {
		t.Fatalf("network error should be caller-retryable")
	}
}

func TestFetchEventsCallerCancel(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		time.Sleep(time.Second)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()
	client := NewClient(srv.Client(), srv.URL)
	_, err := client.FetchEvents(ctx, FetchOptions{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("cancellation must propagate as context.Canceled, got %v", err)
	}
}
