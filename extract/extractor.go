package extract

import (
	"strings"

	"github.com/fwojciec/bulletin"
)

// ImageTrailer labels the image list appended to the full text.
const ImageTrailer = "이미지:"

var _ bulletin.RecordExtractor = (*Extractor)(nil)

// Extractor runs the whole pipeline over one document: normalize,
// segment, trim noise and accumulate fields per item.
type Extractor struct {
	segmenter   *Segmenter
	accumulator *Accumulator
}

// NewExtractor creates an Extractor configured by rules.
func NewExtractor(rules bulletin.Rules) (*Extractor, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if rules.MaxKeyLength == 0 {
		rules.MaxKeyLength = DefaultMaxKeyLength
	}
	classifier, err := NewClassifier(rules)
	if err != nil {
		return nil, err
	}
	return &Extractor{
		segmenter: &Segmenter{
			NumberedHeadings:   rules.NumberedHeadings,
			MergeContinuations: rules.MergeContinuations,
		},
		accumulator: &Accumulator{
			Classifier:        classifier,
			IncludeKeyInValue: rules.IncludeKeyInValue,
			TrimContact:       rules.TrimContact,
		},
	}, nil
}

// Extract implements bulletin.RecordExtractor.
func (e *Extractor) Extract(doc *bulletin.Document) []*bulletin.Record {
	if doc == nil {
		return nil
	}
	lines := NormalizeLines(doc.Lines)
	if len(lines) == 0 {
		return nil
	}

	items := e.segmenter.Segment(lines, NormalizeLine(doc.FallbackHeading()))
	records := make([]*bulletin.Record, 0, len(items))
	for _, item := range items {
		item.SourceURL = doc.URL
		item.DetailLines = TrimNoise(item.DetailLines)
		fields := e.accumulator.Accumulate(item.DetailLines)
		records = append(records, newRecord(doc, item, fields))
	}
	return records
}

// ExtractLines extracts records from bare lines.
func (e *Extractor) ExtractLines(lines []string, heading, sourceURL string) []*bulletin.Record {
	return e.Extract(&bulletin.Document{URL: sourceURL, Heading: heading, Lines: lines})
}

func newRecord(doc *bulletin.Document, item *bulletin.Item, fields bulletin.Fields) *bulletin.Record {
	images := append([]string{}, doc.Images...)
	full := item.FullText()
	if len(images) > 0 {
		trailer := ImageTrailer + " " + strings.Join(images, bulletin.ImageSeparator)
		if full == "" {
			full = trailer
		} else {
			full += "\n" + trailer
		}
	}

	r := &bulletin.Record{
		Region:    doc.Region,
		Category:  doc.Category,
		Title:     item.Title,
		Images:    images,
		FullText:  full,
		SourceURL: item.SourceURL,
	}
	r.SetFields(fields)
	return r
}
