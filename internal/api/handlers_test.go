package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/kulhunter/eventis-backend/internal/ai"
	"github.com/kulhunter/eventis-backend/internal/config"
	"github.com/kulhunter/eventis-backend/internal/models"
)

type fakeStore struct {
	events     []models.Event
	readErr    error
	publishErr error
	published  [][]models.Event
}

func (s *fakeStore) ReadLatest(_ context.Context) ([]models.Event, error) {
	return s.events, s.readErr
}

func (s *fakeStore) Publish(_ context.Context, events []models.Event) error {
	if s.publishErr != nil {
		return s.publishErr
	}
	s.published = append(s.published, events)
	return nil
}

type fakeScraper struct {
	events []models.Event
	runs   int
}

func (s *fakeScraper) Run(_ context.Context) []models.Event {
	s.runs++
	return s.events
}

type fakeRecommender struct {
	reply string
	err   error
	calls int
}

func (r *fakeRecommender) Recommend(_ context.Context, _ string, _ []models.Event) (string, error) {
	r.calls++
	return r.reply, r.err
}

func newTestApp(h *Handlers) *fiber.App {
	app := fiber.New()
	SetupRoutes(app, h)
	return app
}

func testConfig() *config.Config {
	return &config.Config{ScrapeSecretKey: "s3cret"}
}

func sampleEvent() models.Event {
	return models.Event{
		Name:      "Taller de huerto",
		SourceURL: "https://ev/1",
		City:      "Santiago",
		Location:  "Parque X, Santiago",
		Date:      "2099-01-15",
		Budget:    0,
		PlanType:  "familiar",
	}
}

func TestBanner(t *testing.T) {
	app := newTestApp(NewHandlers(testConfig(), nil, &fakeScraper{}, nil))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Eventis") {
		t.Errorf("unexpected banner: %s", body)
	}
}

func TestGetEventsWithoutStore(t *testing.T) {
	app := newTestApp(NewHandlers(testConfig(), nil, &fakeScraper{}, nil))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/events", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected 500 without store config, got %d", resp.StatusCode)
	}
}

func TestGetEventsReadsThrough(t *testing.T) {
	store := &fakeStore{events: []models.Event{sampleEvent()}}
	app := newTestApp(NewHandlers(testConfig(), store, &fakeScraper{}, nil))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/events", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var events []models.Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		t.Fatalf("response is not an event array: %v", err)
	}
	if len(events) != 1 || events[0].Name != "Taller de huerto" {
		t.Errorf("unexpected events: %+v", events)
	}
}

func TestGetEventsStoreUnreachable(t *testing.T) {
	store := &fakeStore{readErr: errors.New("timeout")}
	app := newTestApp(NewHandlers(testConfig(), store, &fakeScraper{}, nil))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/events", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", resp.StatusCode)
	}
}

func TestRunScrapeBadKey(t *testing.T) {
	scraper := &fakeScraper{}
	store := &fakeStore{}
	app := newTestApp(NewHandlers(testConfig(), store, scraper, nil))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/run-scrape?key=wrong", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", resp.StatusCode)
	}
	if scraper.runs != 0 {
		t.Error("expected no scrape on a bad key")
	}
	if len(store.published) != 0 {
		t.Error("expected no publish on a bad key")
	}
}

func TestRunScrapeEmptySecretAlwaysRejects(t *testing.T) {
	scraper := &fakeScraper{}
	app := newTestApp(NewHandlers(&config.Config{}, &fakeStore{}, scraper, nil))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/run-scrape?key=", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 with unset secret, got %d", resp.StatusCode)
	}
	if scraper.runs != 0 {
		t.Error("expected no scrape with unset secret")
	}
}

func TestRunScrapePublishes(t *testing.T) {
	scraper := &fakeScraper{events: []models.Event{sampleEvent(), sampleEvent()}}
	store := &fakeStore{}
	app := newTestApp(NewHandlers(testConfig(), store, scraper, nil))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/run-scrape?key=s3cret", nil), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "2 eventos") {
		t.Errorf("expected the count in the summary, got %s", body)
	}
	if len(store.published) != 1 || len(store.published[0]) != 2 {
		t.Errorf("expected one publish with 2 events, got %+v", store.published)
	}
}

func TestRunScrapePublishFailure(t *testing.T) {
	scraper := &fakeScraper{events: []models.Event{sampleEvent()}}
	store := &fakeStore{publishErr: errors.New("store down")}
	app := newTestApp(NewHandlers(testConfig(), store, scraper, nil))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/run-scrape?key=s3cret", nil), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected 500 on publish failure, got %d", resp.StatusCode)
	}
}

func postRecommend(app *fiber.App, body string) (*http.Response, error) {
	req := httptest.NewRequest(http.MethodPost, "/recommend-event-ai", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return app.Test(req, -1)
}

func TestRecommendEmptyList(t *testing.T) {
	rec := &fakeRecommender{reply: "Usa los filtros de la página para ver qué hay disponible."}
	app := newTestApp(NewHandlers(testConfig(), nil, &fakeScraper{}, rec))

	resp, err := postRecommend(app, `{"question": "¿Qué hay hoy?", "currentEvents": []}`)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if rec.calls != 1 {
		t.Errorf("expected exactly one model call, got %d", rec.calls)
	}

	var out struct {
		Recommendation string `json:"recommendation"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !strings.Contains(out.Recommendation, "filtros") {
		t.Errorf("unexpected recommendation: %q", out.Recommendation)
	}
}

func TestRecommendMissingQuestion(t *testing.T) {
	rec := &fakeRecommender{}
	app := newTestApp(NewHandlers(testConfig(), nil, &fakeScraper{}, rec))

	resp, err := postRecommend(app, `{"currentEvents": []}`)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 without a question, got %d", resp.StatusCode)
	}
	if rec.calls != 0 {
		t.Error("expected no model call for an invalid request")
	}
}

func TestRecommendWithoutModel(t *testing.T) {
	app := newTestApp(NewHandlers(testConfig(), nil, &fakeScraper{}, nil))

	resp, err := postRecommend(app, `{"question": "¿Qué hay hoy?"}`)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected 500 without a configured model, got %d", resp.StatusCode)
	}
}

func TestRecommendQuotaMapsTo429(t *testing.T) {
	rec := &fakeRecommender{err: fmt.Errorf("recommendation: %w", ai.ErrQuotaExceeded)}
	app := newTestApp(NewHandlers(testConfig(), nil, &fakeScraper{}, rec))

	resp, err := postRecommend(app, `{"question": "¿conciertos gratis?"}`)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Errorf("expected 429 on quota, got %d", resp.StatusCode)
	}
}

func TestRecommendOtherErrorMapsTo500(t *testing.T) {
	rec := &fakeRecommender{err: errors.New("vendor exploded")}
	app := newTestApp(NewHandlers(testConfig(), nil, &fakeScraper{}, rec))

	resp, err := postRecommend(app, `{"question": "¿algo?"}`)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", resp.StatusCode)
	}
}
