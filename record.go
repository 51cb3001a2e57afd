package bulletin

import (
	"context"
	"strings"
)

// ImageSeparator joins image URLs in tabular output.
const ImageSeparator = "; "

// DefaultCategory is used when no category can be derived for a page.
const DefaultCategory = "기타"

// Columns lists the record columns in output order.
var Columns = []string{
	"region",
	"source_category",
	"item_title",
	"target",
	"period",
	"content",
	"method",
	"contact",
	"location",
	"notes",
	"purchase_method",
	"image",
	"full_text",
	"source_url",
}

// Record is the flat, exported representation of one item.
type Record struct {
	Region         string   `json:"region"`
	Category       string   `json:"source_category"`
	Title          string   `json:"item_title"`
	Target         string   `json:"target"`
	Period         string   `json:"period"`
	Content        string   `json:"content"`
	Method         string   `json:"method"`
	Contact        string   `json:"contact"`
	Location       string   `json:"location"`
	Notes          string   `json:"notes"`
	PurchaseMethod string   `json:"purchase_method"`
	Images         []string `json:"image"`
	FullText       string   `json:"full_text"`
	SourceURL      string   `json:"source_url"`
}

// Field returns the value of the canonical field named by key.
func (r *Record) Field(key FieldKey) string {
	switch key {
	case FieldTarget:
		return r.Target
	case FieldPeriod:
		return r.Period
	case FieldContent:
		return r.Content
	case FieldMethod:
		return r.Method
	case FieldContact:
		return r.Contact
	case FieldLocation:
		return r.Location
	case FieldNotes:
		return r.Notes
	case FieldPurchaseMethod:
		return r.PurchaseMethod
	}
	return ""
}

// SetFields copies every canonical field from f into the record.
func (r *Record) SetFields(f Fields) {
	r.Target = f[FieldTarget]
	r.Period = f[FieldPeriod]
	r.Content = f[FieldContent]
	r.Method = f[FieldMethod]
	r.Contact = f[FieldContact]
	r.Location = f[FieldLocation]
	r.Notes = f[FieldNotes]
	r.PurchaseMethod = f[FieldPurchaseMethod]
}

// ImageList returns the image URLs joined for tabular output.
func (r *Record) ImageList() string {
	return strings.Join(r.Images, ImageSeparator)
}

// Row returns the record values in Columns order.
func (r *Record) Row() []string {
	return []string{
		r.Region,
		r.Category,
		r.Title,
		r.Target,
		r.Period,
		r.Content,
		r.Method,
		r.Contact,
		r.Location,
		r.Notes,
		r.PurchaseMethod,
		r.ImageList(),
		r.FullText,
		r.SourceURL,
	}
}

// Validate returns an error if the record is missing required fields.
func (r *Record) Validate() error {
	if r.SourceURL == "" {
		return Errorf(EINVALID, "record source URL required")
	}
	return nil
}

// RecordWriter persists a batch of records to one output.
type RecordWriter interface {
	WriteRecords(ctx context.Context, records []*Record) error
}

// RecordFilter represents a filter for FindRecords and DeleteRecords.
type RecordFilter struct {
	Region    *string
	SourceURL *string

	Offset int
	Limit  int
}

// RecordService represents a service for managing stored records.
type RecordService interface {
	RecordWriter

	// CreateRecords stores records, skipping any whose canonical content is
	// already stored. Returns the number of records inserted.
	CreateRecords(ctx context.Context, records []*Record) (int, error)

	// FindRecords retrieves records matching the filter in insertion order.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecords removes records matching the filter.
	// Returns the number of records removed.
	DeleteRecords(ctx context.Context, filter RecordFilter) (int, error)
}
