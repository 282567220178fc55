package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/kulhunter/eventis-backend/internal/models"
)

const (
	htmlFetchTimeout  = 10 * time.Second
	browserUserAgent  = "Mozilla/5.0"
	maxDescriptionLen = 500
)

// cardSelectors is the union of structural patterns that mark an event-like
// node across the configured portals.
const cardSelectors = "article, .evento, .event-item, .activity-card, .post-card, .card, .columna, .noticia-item, .item-list"

const (
	titleSelectors       = "h1, h2, h3, .title, .nombre-evento, .card-title, .entry-title"
	descriptionSelectors = "p, .description, .bajada, .card-text, .entry-summary"
)

// junkTitleStems marks news/announcement cards that are never events.
var junkTitleStems = []string{
	"buscador bn",
	"ver más",
	"noticia",
	"comunicado",
	"balance municipal",
}

// HTMLFetcher extracts candidates from event-listing pages.
type HTMLFetcher struct {
	client *resty.Client
}

func NewHTMLFetcher() *HTMLFetcher {
	return &HTMLFetcher{
		client: resty.New().
			SetTimeout(htmlFetchTimeout).
			SetHeader("User-Agent", browserUserAgent),
	}
}

// Fetch downloads the source page and extracts one candidate per card-like
// node. A node that cannot be extracted is skipped; it never fails the source.
func (f *HTMLFetcher) Fetch(ctx context.Context, src models.SourceDescriptor) ([]models.RawCandidate, error) {
	resp, err := f.client.R().SetContext(ctx).Get(src.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", src.URL, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", src.URL, resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(resp.Body())))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", src.URL, err)
	}

	base, err := url.Parse(src.URL)
	if err != nil {
		return nil, fmt.Errorf("base url %s: %w", src.URL, err)
	}

	var candidates []models.RawCandidate
	doc.Find(cardSelectors).Each(func(_ int, node *goquery.Selection) {
		if c, ok := extractCard(node, base); ok {
			candidates = append(candidates, c)
		}
	})

	return candidates, nil
}

// extractCard pulls the candidate fields out of one card-like node.
func extractCard(node *goquery.Selection, base *url.URL) (models.RawCandidate, bool) {
	titleNode := node.Find(titleSelectors).First()
	title := strings.TrimSpace(titleNode.Text())

	link, ok := titleNode.Find("a").Attr("href")
	if !ok {
		link, _ = node.Find("a").First().Attr("href")
	}

	description := strings.TrimSpace(node.Find(descriptionSelectors).First().Text())
	imageURL, _ := node.Find("img").First().Attr("src")

	link = resolveURL(base, link)
	imageURL = resolveURL(base, imageURL)

	if title == "" || link == "" {
		return models.RawCandidate{}, false
	}
	if isJunkCard(title, description) {
		return models.RawCandidate{}, false
	}

	return models.RawCandidate{
		Name:        title,
		Description: truncateDescription(description),
		ImageURL:    imageURL,
		SourceURL:   link,
	}, true
}

// isJunkCard applies the coarse prefilter that keeps obvious news and
// near-empty cards away from the model.
func isJunkCard(title, description string) bool {
	lower := strings.ToLower(title)
	for _, stem := range junkTitleStems {
		if strings.Contains(lower, stem) {
			return true
		}
	}
	return len(description) < 30 && len(title) < 20
}

// resolveURL makes ref absolute against base. Unparseable refs come back empty.
func resolveURL(base *url.URL, ref string) string {
	if ref == "" || strings.HasPrefix(ref, "http") {
		return ref
	}
	resolved, err := base.Parse(ref)
	if err != nil {
		return ""
	}
	return resolved.String()
}

func truncateDescription(s string) string {
	runes := []rune(s)
	if len(runes) <= maxDescriptionLen {
		return s
	}
	return string(runes[:maxDescriptionLen]) + "..."
}
