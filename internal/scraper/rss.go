package scraper

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/kulhunter/eventis-backend/internal/models"
	"github.com/mmcdole/gofeed"
)

// RSSFetcher extracts candidates from syndication feeds.
type RSSFetcher struct {
	client       *resty.Client
	parser       *gofeed.Parser
	htmlTagRegex *regexp.Regexp
}

func NewRSSFetcher() *RSSFetcher {
	return &RSSFetcher{
		client: resty.New().
			SetTimeout(htmlFetchTimeout).
			SetHeader("User-Agent", browserUserAgent),
		parser:       gofeed.NewParser(),
		htmlTagRegex: regexp.MustCompile(`<[^>]*>`),
	}
}

// Fetch downloads and parses the feed. Malformed items are skipped silently.
func (f *RSSFetcher) Fetch(ctx context.Context, src models.SourceDescriptor) ([]models.RawCandidate, error) {
	resp, err := f.client.R().SetContext(ctx).Get(src.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", src.URL, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", src.URL, resp.StatusCode())
	}

	feed, err := f.parser.ParseString(string(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", src.URL, err)
	}

	var candidates []models.RawCandidate
	for _, item := range feed.Items {
		if item == nil || item.Title == "" || item.Link == "" {
			continue
		}

		rawDate := item.Published
		if item.PublishedParsed != nil {
			rawDate = item.PublishedParsed.Format(time.RFC3339)
		}

		candidates = append(candidates, models.RawCandidate{
			Name:        item.Title,
			Description: truncateDescription(f.cleanHTML(item.Description)),
			ImageURL:    firstImageURL(item.Content),
			SourceURL:   item.Link,
			RawDate:     rawDate,
		})
	}

	return candidates, nil
}

// cleanHTML strips tags and normalizes whitespace in feed descriptions.
func (f *RSSFetcher) cleanHTML(input string) string {
	cleaned := f.htmlTagRegex.ReplaceAllString(input, " ")
	cleaned = html.UnescapeString(cleaned)
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	return strings.TrimSpace(cleaned)
}

// firstImageURL pulls the first <img src> out of a content:encoded body.
func firstImageURL(content string) string {
	if content == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return ""
	}
	src, _ := doc.Find("img").First().Attr("src")
	return src
}
