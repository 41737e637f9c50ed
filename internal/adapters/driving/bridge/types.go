package bridge

import (
	"time"

	"github.com/portico-apps/searchkit/internal/core/domain"
)

// ItemPayload mirrors the host-side item object.
type ItemPayload struct {
	ID             string             `json:"id"`
	Domain         string             `json:"domain,omitempty"`
	Title          string             `json:"title,omitempty"`
	Description    string             `json:"description,omitempty"`
	Content        string             `json:"content,omitempty"`
	Keywords       []string           `json:"keywords,omitempty"`
	ContentType    string             `json:"contentType,omitempty"`
	Attributes     []AttributePayload `json:"attributes,omitempty"`
	Thumbnail      *ThumbnailPayload  `json:"thumbnail,omitempty"`
	URL            string             `json:"url,omitempty"`
	CreatedAt      *time.Time         `json:"createdAt,omitempty"`
	LastModified   *time.Time         `json:"lastModified,omitempty"`
	ExpirationDate *time.Time         `json:"expirationDate,omitempty"`
	Rating         float64            `json:"rating,omitempty"`
	Featured       bool               `json:"featured,omitempty"`
}

// AttributePayload mirrors a host-side custom attribute. Searchable and
// Weight are pointers so an absent field keeps the engine's defaults.
type AttributePayload struct {
	Key        string `json:"key"`
	Value      string `json:"value"`
	Searchable *bool  `json:"searchable,omitempty"`
	Weight     *int   `json:"weight,omitempty"`
}

// ThumbnailPayload mirrors a host-side thumbnail. Data arrives base64
// encoded, which encoding/json handles natively for byte slices.
type ThumbnailPayload struct {
	URL      string `json:"url,omitempty"`
	Data     []byte `json:"data,omitempty"`
	MIMEType string `json:"mimeType,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

// QueryPayload mirrors the host-side search query object.
type QueryPayload struct {
	Query        string  `json:"query"`
	Domain       string  `json:"domain,omitempty"`
	ContentType  string  `json:"contentType,omitempty"`
	MaxResults   int     `json:"maxResults,omitempty"`
	MinRelevance float64 `json:"minRelevance,omitempty"`
	SortBy       string  `json:"sortBy,omitempty"`
}

// ResultPayload is a single search result sent back to the host.
type ResultPayload struct {
	Item           ItemPayload `json:"item"`
	Relevance      float64     `json:"relevance"`
	TitleSnippet   string      `json:"titleSnippet,omitempty"`
	ContentSnippet string      `json:"contentSnippet,omitempty"`
}

// SearchResponse is the reply to a search call.
type SearchResponse struct {
	Results []ResultPayload `json:"results"`
	Count   int             `json:"count"`
}

// StatsPayload is the reply to a getStats call.
type StatsPayload struct {
	TotalItems    int        `json:"totalItems"`
	DocumentCount int        `json:"documentCount"`
	ImageCount    int        `json:"imageCount"`
	AudioCount    int        `json:"audioCount"`
	VideoCount    int        `json:"videoCount"`
	OtherCount    int        `json:"otherCount"`
	LastUpdated   *time.Time `json:"lastUpdated,omitempty"`
}

// BatchPayload is the reply to an indexItems call.
type BatchPayload struct {
	SuccessCount int    `json:"successCount"`
	FailureCount int    `json:"failureCount"`
	Status       string `json:"status"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	DurationMS   int64  `json:"durationMs"`
}

// IDPayload carries a bare item ID.
type IDPayload struct {
	ID string `json:"id"`
}

// DomainPayload carries a bare domain name.
type DomainPayload struct {
	Domain string `json:"domain"`
}

// RemovedPayload reports whether a removal found its target.
type RemovedPayload struct {
	Removed bool `json:"removed"`
}

// CountPayload carries a bare count.
type CountPayload struct {
	Count int `json:"count"`
}

// EnabledPayload carries the indexing switch state.
type EnabledPayload struct {
	Enabled bool `json:"enabled"`
}

// PlatformPayload reports the detected platform service.
type PlatformPayload struct {
	Platform    string `json:"platform"`
	Description string `json:"description"`
}

// ToDomain converts a host payload into a domain item, applying the same
// clamping and truncation the engine's builders apply.
func (p ItemPayload) ToDomain() domain.SearchableItem {
	item := domain.NewSearchableItem(p.ID)

	if p.Domain != "" {
		item = item.WithDomain(p.Domain)
	}
	if p.Title != "" {
		item = item.WithTitle(p.Title)
	}
	if p.Description != "" {
		item = item.WithDescription(p.Description)
	}
	if p.Content != "" {
		item = item.WithContent(p.Content)
	}
	if p.ContentType != "" {
		item = item.WithContentType(domain.ContentType(p.ContentType))
	}
	if p.URL != "" {
		item = item.WithURL(p.URL)
	}
	if p.Rating != 0 {
		item = item.WithRating(p.Rating)
	}
	if p.Featured {
		item = item.WithFeatured(true)
	}

	for _, kw := range p.Keywords {
		item = item.AddKeyword(kw)
	}

	for _, attr := range p.Attributes {
		a := domain.NewSearchAttribute(attr.Key, attr.Value)
		if attr.Searchable != nil {
			a = a.WithSearchable(*attr.Searchable)
		}
		if attr.Weight != nil {
			a = a.WithWeight(*attr.Weight)
		}
		item = item.AddAttribute(a)
	}

	if p.Thumbnail != nil {
		thumb := domain.Thumbnail{
			URL:      p.Thumbnail.URL,
			Data:     p.Thumbnail.Data,
			MIMEType: p.Thumbnail.MIMEType,
			Width:    p.Thumbnail.Width,
			Height:   p.Thumbnail.Height,
		}
		item = item.WithThumbnail(thumb)
	}

	if p.CreatedAt != nil {
		item.CreatedAt = *p.CreatedAt
	}
	if p.LastModified != nil {
		item.LastModified = *p.LastModified
	}
	if p.ExpirationDate != nil {
		item = item.WithExpiration(*p.ExpirationDate)
	}

	return item
}

// ItemPayloadFrom converts a domain item into its host representation.
func ItemPayloadFrom(item domain.SearchableItem) ItemPayload {
	p := ItemPayload{
		ID:          item.ID,
		Domain:      item.Domain,
		Title:       item.Title,
		Description: item.Description,
		Content:     item.Content,
		Keywords:    item.Keywords,
		ContentType: string(item.ContentType),
		URL:         item.URL,
		Rating:      item.Rating,
		Featured:    item.Featured,
	}

	for _, attr := range item.Attributes {
		searchable := attr.Searchable
		weight := attr.Weight
		p.Attributes = append(p.Attributes, AttributePayload{
			Key:        attr.Key,
			Value:      attr.Value,
			Searchable: &searchable,
			Weight:     &weight,
		})
	}

	if item.Thumbnail.HasData() {
		p.Thumbnail = &ThumbnailPayload{
			URL:      item.Thumbnail.URL,
			Data:     item.Thumbnail.Data,
			MIMEType: item.Thumbnail.MIMEType,
			Width:    item.Thumbnail.Width,
			Height:   item.Thumbnail.Height,
		}
	}

	if !item.CreatedAt.IsZero() {
		created := item.CreatedAt
		p.CreatedAt = &created
	}
	if !item.LastModified.IsZero() {
		modified := item.LastModified
		p.LastModified = &modified
	}
	if !item.ExpirationDate.IsZero() {
		expires := item.ExpirationDate
		p.ExpirationDate = &expires
	}

	return p
}

// ToDomain converts a host query into a domain query.
func (p QueryPayload) ToDomain() domain.SearchQuery {
	q := domain.NewSearchQuery(p.Query)
	if p.Domain != "" {
		q = q.WithDomain(p.Domain)
	}
	if p.ContentType != "" {
		q = q.WithContentType(domain.ContentType(p.ContentType))
	}
	if p.MaxResults > 0 {
		q = q.WithMaxResults(p.MaxResults)
	}
	if p.MinRelevance > 0 {
		q = q.WithMinRelevance(p.MinRelevance)
	}
	if p.SortBy != "" {
		q = q.WithSortBy(domain.SortOrder(p.SortBy))
	}
	return q
}

// SearchResponseFrom converts domain results into the host reply.
func SearchResponseFrom(results []domain.SearchResult) SearchResponse {
	resp := SearchResponse{
		Results: make([]ResultPayload, len(results)),
		Count:   len(results),
	}
	for i := range results {
		resp.Results[i] = ResultPayload{
			Item:           ItemPayloadFrom(results[i].Item),
			Relevance:      results[i].Relevance,
			TitleSnippet:   results[i].TitleSnippet,
			ContentSnippet: results[i].ContentSnippet,
		}
	}
	return resp
}

// StatsPayloadFrom converts domain statistics into the host reply.
func StatsPayloadFrom(stats domain.IndexStats) StatsPayload {
	p := StatsPayload{
		TotalItems:    stats.TotalItems,
		DocumentCount: stats.DocumentCount,
		ImageCount:    stats.ImageCount,
		AudioCount:    stats.AudioCount,
		VideoCount:    stats.VideoCount,
		OtherCount:    stats.OtherCount,
	}
	if !stats.LastUpdated.IsZero() {
		updated := stats.LastUpdated
		p.LastUpdated = &updated
	}
	return p
}

// BatchPayloadFrom converts a batch outcome into the host reply.
func BatchPayloadFrom(result domain.BatchResult) BatchPayload {
	return BatchPayload{
		SuccessCount: result.SuccessCount,
		FailureCount: result.FailureCount,
		Status:       string(result.Status),
		ErrorMessage: result.ErrorMessage,
		DurationMS:   result.Duration.Milliseconds(),
	}
}
