package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/bulletin"
	"github.com/fwojciec/bulletin/extract"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ bulletin.RecordService = (*RecordService)(nil)

// RecordService implements bulletin.RecordService using SQLite. Records are
// keyed by a fingerprint of their canonical content so the same item
// collected on different runs is stored once.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// Fingerprint returns the storage key for r.
func Fingerprint(r *bulletin.Record) string {
	return hashKey(extract.CanonicalKey(r))
}

// CreateRecords inserts records inside one transaction, skipping any whose
// fingerprint is already stored.
func (s *RecordService) CreateRecords(ctx context.Context, records []*bulletin.Record) (int, error) {
	for _, r := range records {
		if r == nil {
			return 0, bulletin.Errorf(bulletin.EINVALID, "nil record")
		}
		if err := r.Validate(); err != nil {
			return 0, err
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO records (id, fingerprint, region, source_category, item_title,
			target, period, content, method, contact, location, notes, purchase_method,
			image, full_text, source_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	inserted := 0
	for _, r := range records {
		res, err := stmt.ExecContext(ctx, uuid.New().String(), Fingerprint(r),
			r.Region, r.Category, r.Title, r.Target, r.Period, r.Content, r.Method,
			r.Contact, r.Location, r.Notes, r.PurchaseMethod, r.ImageList(), r.FullText,
			r.SourceURL, now)
		if err != nil {
			return 0, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return inserted, nil
}

// WriteRecords stores records, ignoring duplicates.
func (s *RecordService) WriteRecords(ctx context.Context, records []*bulletin.Record) error {
	_, err := s.CreateRecords(ctx, records)
	return err
}

// FindRecords retrieves records matching the filter in insertion order.
func (s *RecordService) FindRecords(ctx context.Context, filter bulletin.RecordFilter) ([]*bulletin.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT region, source_category, item_title, target, period, content,
		method, contact, location, notes, purchase_method, image, full_text, source_url
		FROM records`)
	appendWhere(&query, &args, filter)
	query.WriteString(" ORDER BY rowid ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*bulletin.Record
	for rows.Next() {
		var r bulletin.Record
		var images string
		if err := rows.Scan(&r.Region, &r.Category, &r.Title, &r.Target, &r.Period,
			&r.Content, &r.Method, &r.Contact, &r.Location, &r.Notes, &r.PurchaseMethod,
			&images, &r.FullText, &r.SourceURL); err != nil {
			return nil, err
		}
		r.Images = splitImages(images)
		records = append(records, &r)
	}

	return records, rows.Err()
}

// DeleteRecords removes records matching the filter. Pagination is ignored.
func (s *RecordService) DeleteRecords(ctx context.Context, filter bulletin.RecordFilter) (int, error) {
	var query strings.Builder
	var args []any

	query.WriteString("DELETE FROM records")
	appendWhere(&query, &args, filter)

	res, err := s.db.ExecContext(ctx, query.String(), args...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func appendWhere(query *strings.Builder, args *[]any, filter bulletin.RecordFilter) {
	query.WriteString(" WHERE 1=1")
	if filter.Region != nil {
		query.WriteString(" AND region = ?")
		*args = append(*args, *filter.Region)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		*args = append(*args, *filter.SourceURL)
	}
}
