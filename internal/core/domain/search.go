package domain

// DefaultMaxResults is applied when a query does not cap its result count.
const DefaultMaxResults = 20

// SortOrder describes how a caller wants search results arranged.
//
// Result ordering is currently the order items entered the index; the
// requested sort order is carried through so result consumers can apply
// it where presentation demands one.
type SortOrder string

const (
	SortByRelevance  SortOrder = "relevance"
	SortByDateNewest SortOrder = "date_newest"
	SortByDateOldest SortOrder = "date_oldest"
	SortByTitleAsc   SortOrder = "title_asc"
	SortByTitleDesc  SortOrder = "title_desc"
)

// IsValid checks if the sort order is one of the supported values.
func (s SortOrder) IsValid() bool {
	switch s {
	case SortByRelevance, SortByDateNewest, SortByDateOldest,
		SortByTitleAsc, SortByTitleDesc:
		return true
	default:
		return false
	}
}

// String returns the string representation of the sort order.
func (s SortOrder) String() string {
	return string(s)
}

// AllSortOrders returns all supported sort orders.
func AllSortOrders() []SortOrder {
	return []SortOrder{
		SortByRelevance,
		SortByDateNewest,
		SortByDateOldest,
		SortByTitleAsc,
		SortByTitleDesc,
	}
}

// SearchQuery configures one search over the index.
type SearchQuery struct {
	// Query is the free-text needle. Matching is case-insensitive
	// substring containment, so an empty query matches every item.
	Query string

	// Domain restricts results to one logical grouping. Empty means
	// no domain filter.
	Domain string

	// ContentType restricts results to one content classification.
	// Empty means no type filter.
	ContentType ContentType

	// MaxResults caps how many results are returned. Zero or negative
	// falls back to DefaultMaxResults.
	MaxResults int

	// MinRelevance drops results scoring below this threshold.
	MinRelevance float64

	// SortBy is the ordering the caller would like applied.
	SortBy SortOrder
}

// NewSearchQuery creates a query for the given text with the default
// result cap and relevance-first ordering.
func NewSearchQuery(query string) SearchQuery {
	return SearchQuery{
		Query:      query,
		MaxResults: DefaultMaxResults,
		SortBy:     SortByRelevance,
	}
}

// WithDomain restricts the query to one logical grouping.
func (q SearchQuery) WithDomain(domain string) SearchQuery {
	q.Domain = domain
	return q
}

// WithContentType restricts the query to one content classification.
func (q SearchQuery) WithContentType(contentType ContentType) SearchQuery {
	q.ContentType = contentType
	return q
}

// WithMaxResults caps the number of results returned.
func (q SearchQuery) WithMaxResults(max int) SearchQuery {
	q.MaxResults = max
	return q
}

// WithMinRelevance drops results scoring below the threshold.
func (q SearchQuery) WithMinRelevance(min float64) SearchQuery {
	q.MinRelevance = min
	return q
}

// WithSortBy records the ordering the caller would like applied.
func (q SearchQuery) WithSortBy(order SortOrder) SearchQuery {
	if order.IsValid() {
		q.SortBy = order
	}
	return q
}

// Limit returns the effective result cap for the query.
func (q SearchQuery) Limit() int {
	if q.MaxResults <= 0 {
		return DefaultMaxResults
	}
	return q.MaxResults
}

// SearchResult represents a single search hit.
type SearchResult struct {
	// Item is the matched item.
	Item SearchableItem

	// Relevance is the additive match score. Higher is a stronger match.
	Relevance float64

	// TitleSnippet is the display text for the hit, currently the raw
	// item title.
	TitleSnippet string

	// ContentSnippet is the supporting text for the hit, currently the
	// raw item description.
	ContentSnippet string
}
