package mock

import (
	"context"

	"github.com/fwojciec/bulletin"
)

var _ bulletin.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of bulletin.RecordWriter.
type RecordWriter struct {
	WriteRecordsFn func(ctx context.Context, records []*bulletin.Record) error
}

func (w *RecordWriter) WriteRecords(ctx context.Context, records []*bulletin.Record) error {
	return w.WriteRecordsFn(ctx, records)
}

var _ bulletin.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of bulletin.RecordService.
type RecordService struct {
	WriteRecordsFn  func(ctx context.Context, records []*bulletin.Record) error
	CreateRecordsFn func(ctx context.Context, records []*bulletin.Record) (int, error)
	FindRecordsFn   func(ctx context.Context, filter bulletin.RecordFilter) ([]*bulletin.Record, error)
	DeleteRecordsFn func(ctx context.Context, filter bulletin.RecordFilter) (int, error)
}

func (s *RecordService) WriteRecords(ctx context.Context, records []*bulletin.Record) error {
	return s.WriteRecordsFn(ctx, records)
}

func (s *RecordService) CreateRecords(ctx context.Context, records []*bulletin.Record) (int, error) {
	return s.CreateRecordsFn(ctx, records)
}

func (s *RecordService) FindRecords(ctx context.Context, filter bulletin.RecordFilter) ([]*bulletin.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecords(ctx context.Context, filter bulletin.RecordFilter) (int, error) {
	return s.DeleteRecordsFn(ctx, filter)
}
