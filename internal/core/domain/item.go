package domain

import (
	"fmt"
	"strings"
	"time"
)

// Field length limits applied whenever text is copied into an item.
// Overlong values are truncated rather than rejected so one oversized
// field never sinks a whole batch. Limits count runes, not bytes, so
// multi-byte text is never cut mid-character.
const (
	MaxIDLength             = 128
	MaxDomainLength         = 64
	MaxTitleLength          = 256
	MaxDescriptionLength    = 512
	MaxContentLength        = 4096
	MaxKeywordLength        = 64
	MaxURLLength            = 2048
	MaxAttributeKeyLength   = 64
	MaxAttributeValueLength = 256
	MaxMIMETypeLength       = 64
)

const (
	// MaxKeywords caps how many keywords a single item may carry.
	MaxKeywords = 16

	// MaxAttributes caps how many custom attributes a single item may carry.
	MaxAttributes = 8

	// MinRating and MaxRating bound the item rating scale.
	MinRating = 0.0
	MaxRating = 5.0
)

// SearchableItem is a unit of indexable content registered by the host
// application. Everything the engine knows about a piece of content lives
// here; the engine never reaches back into the host to enrich an item.
type SearchableItem struct {
	// ID uniquely identifies the item within the index. Re-indexing an
	// item with the same ID replaces the previous version.
	ID string

	// Domain is a logical grouping identifier chosen by the host, such
	// as "messages" or "documents". Domains can be filtered on and
	// purged as a unit.
	Domain string

	Title       string
	Description string
	Content     string
	Keywords    []string
	ContentType ContentType
	Attributes  []SearchAttribute
	Thumbnail   Thumbnail

	// URL is an app-internal deep link opened when the user activates
	// the item in native search results.
	URL string

	CreatedAt    time.Time
	LastModified time.Time

	// ExpirationDate marks when the item should drop out of the index.
	// The zero time means the item never expires.
	ExpirationDate time.Time

	// Rating is an optional quality signal between MinRating and
	// MaxRating, surfaced to native indexes for display ranking.
	Rating float64

	// Featured marks the item for prominent display in native results.
	Featured bool
}

// NewSearchableItem creates an item with the given identifier, a generic
// content type and creation timestamps set to now. Further fields are
// attached with the With and Add methods, which return updated copies so
// construction chains read top to bottom.
func NewSearchableItem(id string) SearchableItem {
	now := time.Now().UTC()
	return SearchableItem{
		ID:           truncateRunes(id, MaxIDLength),
		ContentType:  ContentTypeGeneric,
		CreatedAt:    now,
		LastModified: now,
	}
}

// WithDomain sets the logical grouping the item belongs to.
func (i SearchableItem) WithDomain(domain string) SearchableItem {
	i.Domain = truncateRunes(domain, MaxDomainLength)
	return i
}

// WithTitle sets the display title.
func (i SearchableItem) WithTitle(title string) SearchableItem {
	i.Title = truncateRunes(title, MaxTitleLength)
	return i
}

// WithDescription sets the short summary shown under the title.
func (i SearchableItem) WithDescription(description string) SearchableItem {
	i.Description = truncateRunes(description, MaxDescriptionLength)
	return i
}

// WithContent sets the full-text body searched alongside the metadata.
func (i SearchableItem) WithContent(content string) SearchableItem {
	i.Content = truncateRunes(content, MaxContentLength)
	return i
}

// WithContentType sets the content classification. Unknown values fall
// back to the generic type rather than poisoning the item.
func (i SearchableItem) WithContentType(contentType ContentType) SearchableItem {
	if !contentType.IsValid() {
		contentType = ContentTypeGeneric
	}
	i.ContentType = contentType
	return i
}

// WithURL sets the deep link opened when the item is activated.
func (i SearchableItem) WithURL(url string) SearchableItem {
	i.URL = truncateRunes(url, MaxURLLength)
	return i
}

// WithThumbnail attaches preview imagery for native result lists.
func (i SearchableItem) WithThumbnail(thumbnail Thumbnail) SearchableItem {
	i.Thumbnail = thumbnail
	return i
}

// WithRating sets the quality signal, clamped to the valid rating range.
func (i SearchableItem) WithRating(rating float64) SearchableItem {
	if rating < MinRating {
		rating = MinRating
	}
	if rating > MaxRating {
		rating = MaxRating
	}
	i.Rating = rating
	return i
}

// WithExpiration sets the moment the item should drop out of the index.
func (i SearchableItem) WithExpiration(expiration time.Time) SearchableItem {
	i.ExpirationDate = expiration
	return i
}

// WithFeatured marks the item for prominent native display.
func (i SearchableItem) WithFeatured(featured bool) SearchableItem {
	i.Featured = featured
	return i
}

// AddKeyword appends one keyword. Keywords beyond the cap are silently
// dropped so bulk feeds with noisy tag lists still index cleanly.
func (i SearchableItem) AddKeyword(keyword string) SearchableItem {
	if len(i.Keywords) >= MaxKeywords {
		return i
	}
	keywords := make([]string, len(i.Keywords), len(i.Keywords)+1)
	copy(keywords, i.Keywords)
	i.Keywords = append(keywords, truncateRunes(keyword, MaxKeywordLength))
	return i
}

// WithKeywords replaces the keyword list, applying the same cap and
// truncation rules as AddKeyword.
func (i SearchableItem) WithKeywords(keywords ...string) SearchableItem {
	if len(keywords) > MaxKeywords {
		keywords = keywords[:MaxKeywords]
	}
	copied := make([]string, len(keywords))
	for n, keyword := range keywords {
		copied[n] = truncateRunes(keyword, MaxKeywordLength)
	}
	i.Keywords = copied
	return i
}

// AddAttribute appends one custom attribute. Attributes beyond the cap
// are silently dropped.
func (i SearchableItem) AddAttribute(attribute SearchAttribute) SearchableItem {
	if len(i.Attributes) >= MaxAttributes {
		return i
	}
	attributes := make([]SearchAttribute, len(i.Attributes), len(i.Attributes)+1)
	copy(attributes, i.Attributes)
	i.Attributes = append(attributes, attribute.normalised())
	return i
}

// Validate checks the invariants the index relies on. Only structural
// problems are errors; oversized text has already been truncated away.
func (i SearchableItem) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return fmt.Errorf("%w: item id is required", ErrInvalidInput)
	}
	if i.ContentType != "" && !i.ContentType.IsValid() {
		return fmt.Errorf("%w: unknown content type %q", ErrInvalidInput, i.ContentType)
	}
	return nil
}

// IsExpired reports whether the item's expiration date has passed at the
// given instant. Items without an expiration date never expire.
func (i SearchableItem) IsExpired(now time.Time) bool {
	return !i.ExpirationDate.IsZero() && i.ExpirationDate.Before(now)
}

// Touch refreshes the modification timestamp without changing content,
// for hosts that re-register an item to keep it current.
func (i SearchableItem) Touch() SearchableItem {
	i.LastModified = time.Now().UTC()
	return i
}

// Clone returns a deep copy of the item. Stores hand out clones so
// callers never share mutable slices with indexed state.
func (i SearchableItem) Clone() SearchableItem {
	clone := i
	if i.Keywords != nil {
		clone.Keywords = append([]string(nil), i.Keywords...)
	}
	if i.Attributes != nil {
		clone.Attributes = append([]SearchAttribute(nil), i.Attributes...)
	}
	if i.Thumbnail.Data != nil {
		clone.Thumbnail.Data = append([]byte(nil), i.Thumbnail.Data...)
	}
	return clone
}

// truncateRunes cuts s down to at most max runes.
func truncateRunes(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
