package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/kulhunter/eventis-backend/internal/logger"
	"github.com/kulhunter/eventis-backend/internal/models"
)

const (
	eventbriteTimeout  = 15 * time.Second
	eventbritePageSize = 50

	// maxEventbritePages caps pagination per source per run. A heuristic to
	// keep call volume bounded, not a quota derived from the API.
	maxEventbritePages = 5

	eventbriteBaseURL = "https://www.eventbriteapi.com/v3/events/search/"

	// The venue is often absent from free listings.
	fallbackVenue = "Online o por confirmar"
)

// EventbriteFetcher drives the free-events search API page by page.
type EventbriteFetcher struct {
	client  *resty.Client
	token   string
	baseURL string
}

type eventbriteResponse struct {
	Events     []eventbriteEvent `json:"events"`
	Pagination struct {
		HasMoreItems bool `json:"has_more_items"`
	} `json:"pagination"`
}

type eventbriteEvent struct {
	Name struct {
		Text string `json:"text"`
	} `json:"name"`
	Summary     string `json:"summary"`
	Description struct {
		Text string `json:"text"`
	} `json:"description"`
	Logo *struct {
		Original struct {
			URL string `json:"url"`
		} `json:"original"`
	} `json:"logo"`
	URL   string `json:"url"`
	Venue *struct {
		Address struct {
			LocalizedAddressDisplay string `json:"localized_address_display"`
		} `json:"address"`
	} `json:"venue"`
	Start *struct {
		Local string `json:"local"`
	} `json:"start"`
}

func NewEventbriteFetcher(token string) *EventbriteFetcher {
	return &EventbriteFetcher{
		client: resty.New().
			SetTimeout(eventbriteTimeout).
			SetHeader("User-Agent", "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)").
			SetHeader("Accept", "application/json"),
		token:   token,
		baseURL: eventbriteBaseURL,
	}
}

// Fetch pages through the free-event search for the descriptor's city. It
// stops at the page cap, when the API reports no more pages, or on the first
// page error; earlier pages are kept either way.
func (f *EventbriteFetcher) Fetch(ctx context.Context, src models.SourceDescriptor) ([]models.RawCandidate, error) {
	log := logger.Get()

	if f.token == "" {
		log.Warn().Str("source", src.Name).Msg("EVENTBRITE_API_TOKEN not configured, skipping source")
		return nil, nil
	}

	var candidates []models.RawCandidate
	for page := 1; page <= maxEventbritePages; page++ {
		resp, err := f.fetchPage(ctx, src.City, page)
		if err != nil {
			log.Error().Err(err).Str("source", src.Name).Int("page", page).Msg("eventbrite page failed, stopping pagination")
			break
		}

		for _, ev := range resp.Events {
			if c, ok := eventbriteCandidate(ev); ok {
				candidates = append(candidates, c)
			}
		}

		log.Debug().Str("source", src.Name).Int("page", page).Int("total", len(candidates)).Msg("eventbrite page extracted")

		if !resp.Pagination.HasMoreItems {
			break
		}
	}

	return candidates, nil
}

func (f *EventbriteFetcher) fetchPage(ctx context.Context, city string, page int) (*eventbriteResponse, error) {
	var result eventbriteResponse
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"location.address": city + ", Chile",
			"price":            "free",
			"page_size":        strconv.Itoa(eventbritePageSize),
			"page":             strconv.Itoa(page),
			"token":            f.token,
		}).
		SetResult(&result).
		Get(f.baseURL)

	if err != nil {
		return nil, fmt.Errorf("search page %d: %w", page, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("search page %d: unexpected status %d", page, resp.StatusCode())
	}

	return &result, nil
}

// eventbriteCandidate maps one API event onto the uniform candidate shape.
func eventbriteCandidate(ev eventbriteEvent) (models.RawCandidate, bool) {
	if ev.Name.Text == "" || ev.URL == "" {
		return models.RawCandidate{}, false
	}

	description := ev.Summary
	if description == "" {
		description = ev.Description.Text
	}

	location := fallbackVenue
	if ev.Venue != nil && ev.Venue.Address.LocalizedAddressDisplay != "" {
		location = ev.Venue.Address.LocalizedAddressDisplay
	}

	var imageURL string
	if ev.Logo != nil {
		imageURL = ev.Logo.Original.URL
	}

	var rawDate string
	if ev.Start != nil && ev.Start.Local != "" {
		rawDate = ev.Start.Local
		if t, err := time.Parse("2006-01-02T15:04:05", ev.Start.Local); err == nil {
			rawDate = t.Format(time.RFC3339)
		}
	}

	return models.RawCandidate{
		Name:        ev.Name.Text,
		Description: description,
		ImageURL:    imageURL,
		SourceURL:   ev.URL,
		Location:    location,
		RawDate:     rawDate,
	}, true
}
