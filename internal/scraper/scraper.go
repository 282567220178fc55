// Package scraper harvests event candidates from the configured sources and
// curates them through the model classifier.
package scraper

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kulhunter/eventis-backend/internal/ai"
	"github.com/kulhunter/eventis-backend/internal/logger"
	"github.com/kulhunter/eventis-backend/internal/models"
)

// fetcher retrieves the raw candidates of one source.
type fetcher interface {
	Fetch(ctx context.Context, src models.SourceDescriptor) ([]models.RawCandidate, error)
}

// EventClassifier decides acceptance and rewrites accepted candidates.
type EventClassifier interface {
	Classify(ctx context.Context, raw models.RawCandidate) (*models.Event, error)
}

// Scraper fans out over all configured sources, one task per source, and
// funnels every surviving candidate through the classifier sequentially so
// the shared rate gate stays meaningful.
type Scraper struct {
	html       fetcher
	rss        fetcher
	api        fetcher
	classifier EventClassifier
	sources    []models.SourceDescriptor
}

func New(eventbriteToken string, classifier EventClassifier, sources []models.SourceDescriptor) *Scraper {
	return &Scraper{
		html:       NewHTMLFetcher(),
		rss:        NewRSSFetcher(),
		api:        NewEventbriteFetcher(eventbriteToken),
		classifier: classifier,
		sources:    sources,
	}
}

// Run executes one full scrape. Sources fail independently; the run completes
// when every source task has settled. The returned order reflects production
// order and is non-deterministic across sources.
func (s *Scraper) Run(ctx context.Context) []models.Event {
	log := logger.Get()
	runID := uuid.NewString()
	freshness := NewFreshnessFilter(time.Now())

	log.Info().Str("run_id", runID).Int("sources", len(s.sources)).Msg("scrape started")

	var (
		mu     sync.Mutex
		events []models.Event
		wg     sync.WaitGroup
	)

	for _, src := range s.sources {
		wg.Add(1)
		go func(src models.SourceDescriptor) {
			defer wg.Done()

			accepted := s.processSource(ctx, runID, src, freshness)
			if len(accepted) == 0 {
				return
			}

			mu.Lock()
			events = append(events, accepted...)
			mu.Unlock()
		}(src)
	}

	wg.Wait()

	log.Info().Str("run_id", runID).Int("events", len(events)).Msg("scrape finished")
	return events
}

// processSource runs the fetch → freshness → classify pipeline for one source.
// Candidates are handled sequentially and each is independently terminal.
func (s *Scraper) processSource(ctx context.Context, runID string, src models.SourceDescriptor, freshness *FreshnessFilter) []models.Event {
	log := logger.Get()

	candidates, err := s.fetch(ctx, src)
	if err != nil {
		log.Error().Err(err).Str("run_id", runID).Str("source", src.Name).Msg("source failed")
		return nil
	}

	log.Info().Str("run_id", runID).Str("source", src.Name).Int("candidates", len(candidates)).Msg("source fetched")

	var accepted []models.Event
	for _, raw := range candidates {
		if raw.Location == "" {
			raw.Location = src.City
		}

		if !freshness.Fresh(raw.RawDate) {
			log.Debug().Str("run_id", runID).Str("source", src.Name).
				Str("name", ai.ShortName(raw.Name)).Str("raw_date", raw.RawDate).
				Msg("candidate dropped: past date")
			continue
		}

		event, err := s.classifier.Classify(ctx, raw)
		switch {
		case errors.Is(err, ai.ErrQuotaExceeded):
			log.Warn().Str("run_id", runID).Str("source", src.Name).
				Str("name", ai.ShortName(raw.Name)).
				Msg("candidate dropped: model quota exceeded")
			continue
		case err != nil:
			log.Error().Err(err).Str("run_id", runID).Str("source", src.Name).
				Str("name", ai.ShortName(raw.Name)).
				Msg("candidate dropped: model call failed")
			continue
		case event == nil:
			log.Debug().Str("run_id", runID).Str("source", src.Name).
				Str("name", ai.ShortName(raw.Name)).
				Msg("candidate dropped: rejected by model")
			continue
		}

		accepted = append(accepted, *event)
	}

	return accepted
}

// fetch dispatches on the descriptor's kind tag.
func (s *Scraper) fetch(ctx context.Context, src models.SourceDescriptor) ([]models.RawCandidate, error) {
	switch src.Kind {
	case models.SourceAPI:
		return s.api.Fetch(ctx, src)
	case models.SourceRSS:
		return s.rss.Fetch(ctx, src)
	default:
		return s.html.Fetch(ctx, src)
	}
}
