package collection

import (
	"fmt"
	"strings"
)

// Record is one entry of a collection document as stored on disk.
type Record struct {
	ID       string `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	Label    string `json:"label" yaml:"label" toml:"label"`
	Disabled bool   `json:"disabled,omitempty" yaml:"disabled,omitempty" toml:"disabled,omitempty"`
	Header   bool   `json:"header,omitempty" yaml:"header,omitempty" toml:"header,omitempty"`
}

// Document is the on-disk shape of a collection file.
type Document struct {
	Title string   `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Items []Record `json:"items" yaml:"items" toml:"items"`
}

// Source is where a collection document comes from. Implementations are
// expected to be slow (disk), so callers wrap them with a CachedSource.
type Source interface {
	// Path identifies the source, usually a file path.
	Path() string
	// Load reads and validates the current document.
	Load() (*Document, error)
	// Save replaces the stored document.
	Save(doc *Document) error
}

// ToCollection converts a document into a snapshot. Records without an id
// get a positional one ("item-1", "item-2", ...).
func ToCollection(doc *Document) (*Collection[Record], error) {
	if doc == nil {
		return Empty[Record](), nil
	}
	items := make([]Item[Record], 0, len(doc.Items))
	for i, r := range doc.Items {
		if strings.TrimSpace(r.ID) == "" {
			r.ID = fmt.Sprintf("item-%d", i+1)
		}
		items = append(items, Item[Record]{
			ID:       r.ID,
			Value:    r,
			Label:    r.Label,
			Disabled: r.Disabled,
			Header:   r.Header,
		})
	}
	c, err := New(items)
	if err != nil {
		return nil, fmt.Errorf("build collection: %w", err)
	}
	return c, nil
}

// FromCollection converts a snapshot back into a document, in snapshot order.
func FromCollection(title string, c *Collection[Record]) *Document {
	doc := &Document{Title: title, Items: make([]Record, 0, c.Len())}
	for _, it := range c.Items() {
		r := it.Value
		r.ID = it.ID
		doc.Items = append(doc.Items, r)
	}
	return doc
}
