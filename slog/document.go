package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bulletin"
)

// Ensure LoggingRenderer implements bulletin.Renderer.
var _ bulletin.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with debug logging.
type LoggingRenderer struct {
	next   bulletin.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next bulletin.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Render delegates to the wrapped renderer and logs the document shape.
func (r *LoggingRenderer) Render(url, html string) (doc *bulletin.Document, err error) {
	defer func(begin time.Time) {
		var lines, images int
		var heading, category string
		if doc != nil {
			lines, images = len(doc.Lines), len(doc.Images)
			heading, category = doc.Heading, doc.Category
		}
		r.logger.Debug("render",
			"url", url,
			"heading", heading,
			"category", category,
			"lines", lines,
			"images", images,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Render(url, html)
}

// Ensure LoggingRecordExtractor implements bulletin.RecordExtractor.
var _ bulletin.RecordExtractor = (*LoggingRecordExtractor)(nil)

// LoggingRecordExtractor wraps a RecordExtractor with debug logging.
type LoggingRecordExtractor struct {
	next   bulletin.RecordExtractor
	logger *slog.Logger
}

// NewLoggingRecordExtractor creates a new LoggingRecordExtractor.
func NewLoggingRecordExtractor(next bulletin.RecordExtractor, logger *slog.Logger) *LoggingRecordExtractor {
	return &LoggingRecordExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the record count.
func (e *LoggingRecordExtractor) Extract(doc *bulletin.Document) (records []*bulletin.Record) {
	defer func(begin time.Time) {
		e.logger.Debug("extract",
			"url", doc.URL,
			"records", len(records),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(doc)
}

// Ensure LoggingRecordWriter implements bulletin.RecordWriter.
var _ bulletin.RecordWriter = (*LoggingRecordWriter)(nil)

// LoggingRecordWriter wraps a RecordWriter with logging.
type LoggingRecordWriter struct {
	next   bulletin.RecordWriter
	name   string
	logger *slog.Logger
}

// NewLoggingRecordWriter creates a new LoggingRecordWriter. name identifies
// the output in log lines.
func NewLoggingRecordWriter(next bulletin.RecordWriter, name string, logger *slog.Logger) *LoggingRecordWriter {
	return &LoggingRecordWriter{next: next, name: name, logger: logger}
}

// WriteRecords delegates to the wrapped writer and logs the operation.
func (w *LoggingRecordWriter) WriteRecords(ctx context.Context, records []*bulletin.Record) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write records",
			"output", w.name,
			"records", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteRecords(ctx, records)
}
