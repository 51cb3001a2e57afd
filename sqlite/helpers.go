package sqlite

import (
	"encoding/hex"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/bulletin"
)

// hashKey computes the xxHash of key and returns it as hex.
func hashKey(key string) string {
	h := xxhash.Sum64String(key)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if
// values are > 0. SQLite requires a LIMIT before OFFSET.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	} else if offset > 0 {
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

// splitImages reverses Record.ImageList.
func splitImages(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, bulletin.ImageSeparator)
}
