package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pagelens/clarity-scan/internal/domain/clarity"
	"github.com/pagelens/clarity-scan/internal/infra/config"
	apperrors "github.com/pagelens/clarity-scan/pkg/errors"
)

type stubClarityService struct {
	analyzeFn func(ctx context.Context, req clarity.Request) (clarity.Report, error)
}

func (s *stubClarityService) Analyze(ctx context.Context, req clarity.Request) (clarity.Report, error) {
	if s.analyzeFn == nil {
		return clarity.Report{}, nil
	}
	return s.analyzeFn(ctx, req)
}

func newRouterUnderTest(t *testing.T, svc clarity.Service) http.Handler {
	t.Helper()
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(cfg, NewHandler(svc, logger)).Handler
}

func performRequest(path, body string, handler http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

func sampleReport() clarity.Report {
	return clarity.Report{
		Scores: clarity.LensScores{
			User:   clarity.UserScores{Offer: 4, Navigation: 3, Action: 2},
			Visual: clarity.VisualScores{Consistency: 3, Tone: 3, Environment: 3},
			Story:  clarity.StoryScores{Purpose: 3, Emotion: 3, Identity: 3},
		},
		QuickWins: []clarity.QuickWin{
			{Title: "Sharpen the promise on this page", Tip: "Rewrite the headline."},
			{Title: "Put your why on this page", Tip: "Say why you exist."},
		},
	}
}

func TestRouter_AnalyzeSuccess(t *testing.T) {
	report := sampleReport()
	svc := &stubClarityService{
		analyzeFn: func(ctx context.Context, req clarity.Request) (clarity.Report, error) {
			require.Equal(t, "https://example.com", req.URL)
			require.Equal(t, "saas", req.Context)
			return report, nil
		},
	}

	recorder := performRequest("/api/v1/clarity", `{"url":"https://example.com","context":"saas"}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got clarity.Report
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, report, got)
}

func TestRouter_AnalyzeAlwaysIncludesReasons(t *testing.T) {
	recorder := performRequest("/api/v1/clarity", `{}`, newRouterUnderTest(t, &stubClarityService{
		analyzeFn: func(ctx context.Context, req clarity.Request) (clarity.Report, error) {
			return sampleReport(), nil
		},
	}))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Contains(t, body, "scores")
	require.Contains(t, body, "reasons")
	require.Contains(t, body, "quickWins")
}

func TestRouter_AnalyzeMapsErrorCodes(t *testing.T) {
	svc := &stubClarityService{
		analyzeFn: func(ctx context.Context, req clarity.Request) (clarity.Report, error) {
			return clarity.Report{}, apperrors.Wrap("page_fetch_error", "page request failed", nil)
		},
	}

	recorder := performRequest("/api/v1/clarity", `{"url":"https://example.com"}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusBadGateway, recorder.Code)
	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "page_fetch_error", errBody["error"]["code"])
}

func TestRouter_AnalyzeUnexpectedError(t *testing.T) {
	svc := &stubClarityService{
		analyzeFn: func(ctx context.Context, req clarity.Request) (clarity.Report, error) {
			return clarity.Report{}, errors.New("boom")
		},
	}

	recorder := performRequest("/api/v1/clarity", `{}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "analysis_failed", errBody["error"]["code"])
}

func TestRouter_AnalyzeInvalidJSON(t *testing.T) {
	recorder := performRequest("/api/v1/clarity", `{"url":123}`, newRouterUnderTest(t, &stubClarityService{}))
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.NotEmpty(t, errBody["error"]["message"])
}

func TestRouter_Health(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	recorder := httptest.NewRecorder()
	newRouterUnderTest(t, &stubClarityService{}).ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}

func TestRouter_RequestIDHeader(t *testing.T) {
	recorder := performRequest("/api/v1/clarity", `{}`, newRouterUnderTest(t, &stubClarityService{}))
	require.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}

func decodeErrorBody(t *testing.T, payload []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(payload, &body))
	return body
}
