package narrative

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/julianstephens/routinely/internal/models"
)

func items() []models.RoutineItem {
	return []models.RoutineItem{
		{Subject: "Math", DailyHours: 2, FocusTimeSlots: []models.FocusTime{models.FocusAfternoon}},
		{Subject: "English", DailyHours: 1.5},
		{Subject: "History"},
	}
}

func TestBuilder_Summarize(t *testing.T) {
	out := NewBuilder().Summarize(items(), 3, models.FocusAfternoon)

	for _, want := range []string{
		"3 days",
		"Math, English, History",
		"Total hours per day: 5.5",
		"afternoon (from 14:00)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected summary to contain %q, got:\n%s", want, out)
		}
	}
	for _, s := range Strategies {
		if !strings.Contains(out, "- "+s) {
			t.Errorf("Missing strategy %q", s)
		}
	}
	if strings.Contains(out, ClosingNote) {
		t.Error("Closing note should only appear for plans longer than 5 days")
	}
}

func TestBuilder_ClosingNote(t *testing.T) {
	b := NewBuilder()
	if strings.Contains(b.Summarize(items(), 5, models.FocusForenoon), ClosingNote) {
		t.Error("Closing note should not appear for a 5 day plan")
	}
	if !strings.Contains(b.Summarize(items(), 6, models.FocusForenoon), ClosingNote) {
		t.Error("Expected closing note for a 6 day plan")
	}
}

func TestDominantFocus(t *testing.T) {
	if got := DominantFocus(nil); got != models.FocusForenoon {
		t.Errorf("DominantFocus(nil) = %s, want forenoon", got)
	}
	if got := DominantFocus(items()); got != models.FocusAfternoon {
		t.Errorf("DominantFocus() = %s, want afternoon", got)
	}
	if FocusLabel("unknown") != FocusLabel(models.FocusForenoon) {
		t.Error("Expected unknown focus to use the forenoon label")
	}
}

type stubProvider struct {
	text string
	err  error
}

func (s stubProvider) GenerateText(ctx context.Context, system, user string) (string, error) {
	return s.text, s.err
}

func TestSummarizer_UsesPrimaryWithProvider(t *testing.T) {
	s := NewSummarizer(stubProvider{text: "You have got this."})
	out := s.Summarize(context.Background(), items(), 7)

	if !strings.HasPrefix(out, "Your 7-day routine is ready.") {
		t.Errorf("Expected primary template, got:\n%s", out)
	}
	if !strings.Contains(out, "Coach's take: You have got this.") {
		t.Errorf("Expected recommendation in summary, got:\n%s", out)
	}
	if !strings.Contains(out, ClosingNote) {
		t.Error("Expected closing note for a 7 day plan")
	}
}

func TestSummarizer_FallsBackOnError(t *testing.T) {
	s := NewSummarizer(stubProvider{err: errors.New("boom")})
	out := s.Summarize(context.Background(), items(), 2)

	if !strings.HasPrefix(out, "Routine overview (2 days)") {
		t.Errorf("Expected fallback template, got:\n%s", out)
	}

	nilProvider := NewSummarizer(nil).Summarize(context.Background(), items(), 2)
	if nilProvider != out {
		t.Errorf("Expected nil provider to match fallback output")
	}
}

func TestOpenAIProvider_GenerateText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/responses" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Unexpected auth header %q", got)
		}

		body, _ := io.ReadAll(r.Body)
		var req responsesRequest
		if err := json.Unmarshal(body, &req); err != nil {
			t.Errorf("Unmarshal request failed: %v", err)
			return
		}
		if req.Model != "test-model" || len(req.Input) != 2 || req.Input[1].Content != "hello" {
			t.Errorf("Unexpected request: %+v", req)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"output":[{"type":"message","role":"assistant","content":[{"type":"output_text","text":"  Keep going.  "}]}]}`)
	}))
	defer srv.Close()

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL, Model: "test-model"})
	if err != nil {
		t.Fatalf("NewOpenAIProvider failed: %v", err)
	}

	text, err := p.GenerateText(context.Background(), "system", "hello")
	if err != nil {
		t.Fatalf("GenerateText failed: %v", err)
	}
	if text != "Keep going." {
		t.Errorf("GenerateText() = %q", text)
	}
}

func TestOpenAIProvider_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:     "k",
		BaseURL:    srv.URL,
		MaxRetries: 2,
		RetryWait:  time.Millisecond,
	})
	if err != nil {
		t.Fatalf("NewOpenAIProvider failed: %v", err)
	}

	if _, err := p.GenerateText(context.Background(), "s", "u"); err == nil {
		t.Fatal("Expected error from failing server")
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("Expected 3 attempts, got %d", got)
	}
}

func TestOpenAIProvider_DoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	p, _ := NewOpenAIProvider(OpenAIConfig{APIKey: "k", BaseURL: srv.URL, MaxRetries: 3, RetryWait: time.Millisecond})
	if _, err := p.GenerateText(context.Background(), "s", "u"); err == nil {
		t.Fatal("Expected error for unauthorized response")
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("Expected a single attempt, got %d", got)
	}
}

func TestNewOpenAIProvider_RequiresKey(t *testing.T) {
	if _, err := NewOpenAIProvider(OpenAIConfig{}); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("Expected ErrMissingAPIKey, got %v", err)
	}
}
