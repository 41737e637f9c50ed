package domain

// Attribute weight bounds. Weight is a hint for native indexes that
// support weighted fields; the engine itself only checks presence.
const (
	MinAttributeWeight = 0
	MaxAttributeWeight = 10

	// DefaultAttributeWeight is assigned when the host does not say
	// how important an attribute is.
	DefaultAttributeWeight = 1
)

// SearchAttribute is a custom key/value pair attached to an item, such as
// "author" or "project". Searchable attributes participate in matching on
// platforms that support it.
type SearchAttribute struct {
	Key        string
	Value      string
	Searchable bool
	Weight     int
}

// NewSearchAttribute creates a searchable attribute with the default
// weight. Key and value are truncated to their field limits.
func NewSearchAttribute(key, value string) SearchAttribute {
	return SearchAttribute{
		Key:        truncateRunes(key, MaxAttributeKeyLength),
		Value:      truncateRunes(value, MaxAttributeValueLength),
		Searchable: true,
		Weight:     DefaultAttributeWeight,
	}
}

// WithWeight sets the attribute weight, clamped to the valid range.
func (a SearchAttribute) WithWeight(weight int) SearchAttribute {
	if weight < MinAttributeWeight {
		weight = MinAttributeWeight
	}
	if weight > MaxAttributeWeight {
		weight = MaxAttributeWeight
	}
	a.Weight = weight
	return a
}

// WithSearchable toggles whether the attribute participates in matching.
func (a SearchAttribute) WithSearchable(searchable bool) SearchAttribute {
	a.Searchable = searchable
	return a
}

// normalised applies truncation and clamping to attributes that were
// built as plain struct literals instead of through NewSearchAttribute.
func (a SearchAttribute) normalised() SearchAttribute {
	a.Key = truncateRunes(a.Key, MaxAttributeKeyLength)
	a.Value = truncateRunes(a.Value, MaxAttributeValueLength)
	if a.Weight < MinAttributeWeight {
		a.Weight = MinAttributeWeight
	}
	if a.Weight > MaxAttributeWeight {
		a.Weight = MaxAttributeWeight
	}
	return a
}

// Thumbnail is preview imagery for an item, referenced either by URL or
// carried inline as raw bytes with a MIME type. At most one of the two
// should be set; when both are present the inline data wins.
type Thumbnail struct {
	URL      string
	Data     []byte
	MIMEType string
	Width    int
	Height   int
}

// NewURLThumbnail references preview imagery hosted by the application.
func NewURLThumbnail(url string) Thumbnail {
	return Thumbnail{URL: truncateRunes(url, MaxURLLength)}
}

// NewInlineThumbnail carries preview imagery as raw bytes.
func NewInlineThumbnail(data []byte, mimeType string) Thumbnail {
	return Thumbnail{
		Data:     data,
		MIMEType: truncateRunes(mimeType, MaxMIMETypeLength),
	}
}

// WithDimensions records the pixel size of the imagery.
func (t Thumbnail) WithDimensions(width, height int) Thumbnail {
	t.Width = width
	t.Height = height
	return t
}

// HasData reports whether any imagery has been attached, either as a URL
// reference or as inline bytes.
func (t Thumbnail) HasData() bool {
	return t.URL != "" || len(t.Data) > 0
}
