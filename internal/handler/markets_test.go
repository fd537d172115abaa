package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"marketboard/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubSource struct {
	views []models.MarketView
	err   error
}

func (s *stubSource) Run(context.Context) ([]models.MarketView, error) {
	return s.views, s.err
}

func marketsRouter(source MarketSource) *gin.Engine {
	r := gin.New()
	h := &MarketHandler{Source: source}
	h.Register(r)
	return r
}

func TestListMarketsOK(t *testing.T) {
	source := &stubSource{views: []models.MarketView{
		{ID: "m1", Question: "Q1?", YesProbability: 65, NoProbability: 35, Volume: "$1.2M", VolumeScore: 1_200_000},
		{ID: "m2", Question: "Q2?", YesProbability: 40, NoProbability: 60, Volume: "$100K"},
	}}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/markets", nil)
	marketsRouter(source).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	// Body is a bare JSON array, not an envelope.
	var got []models.MarketView
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("body is not a market array: %v\n%s", err, w.Body.String())
	}
	if len(got) != 2 || got[0].ID != "m1" || got[1].ID != "m2" {
		t.Fatalf("unexpected body: %#v", got)
	}
}

func TestListMarketsNoCacheHeaders(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/markets", nil)
	marketsRouter(&stubSource{}).ServeHTTP(w, req)

	tests := []struct {
		header string
		want   string
	}{
		{"Cache-Control", "no-store, no-cache, must-revalidate, max-age=0, s-maxage=0"},
		{"Pragma", "no-cache"},
		{"Expires", "0"},
	}
	for _, tt := range tests {
		if got := w.Header().Get(tt.header); got != tt.want {
			t.Fatalf("%s = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestListMarketsPipelineFailure(t *testing.T) {
	source := &stubSource{err: errors.New("dial tcp: connection refused")}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/markets", nil)
	marketsRouter(source).ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad error body: %v", err)
	}
	if body["error"] != "Failed to fetch market data" {
		t.Fatalf("error message = %q", body["error"])
	}
	// The internal failure detail must not leak.
	if len(body) != 1 {
		t.Fatalf("unexpected extra fields: %#v", body)
	}
}

func TestListMarketsEmptyResultIsArray(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/markets", nil)
	marketsRouter(&stubSource{views: []models.MarketView{}}).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := w.Body.String(); body != "[]" {
		t.Fatalf("empty result must serialize as [], got %q", body)
	}
}
