package models

// SourceKind selects which fetcher handles a source.
type SourceKind string

const (
	SourceHTML SourceKind = "html"
	SourceRSS  SourceKind = "rss"
	SourceAPI  SourceKind = "api"
)

// SourceDescriptor describes one configured upstream. API sources carry no URL;
// their endpoint is built per page from the city and the Eventbrite token.
type SourceDescriptor struct {
	Name string     `json:"name"`
	Kind SourceKind `json:"kind"`
	URL  string     `json:"url,omitempty"`
	City string     `json:"city"`
}
