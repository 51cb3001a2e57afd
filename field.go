package bulletin

import "strings"

// FieldKey identifies one of the canonical record fields.
type FieldKey string

// Canonical field keys. No other keys may appear in Fields.
const (
	FieldTarget         FieldKey = "target"
	FieldPeriod         FieldKey = "period"
	FieldContent        FieldKey = "content"
	FieldMethod         FieldKey = "method"
	FieldContact        FieldKey = "contact"
	FieldLocation       FieldKey = "location"
	FieldNotes          FieldKey = "notes"
	FieldPurchaseMethod FieldKey = "purchase_method"
)

// FieldSeparator joins multiple contributions to the same field.
const FieldSeparator = " / "

// FieldKeys returns all canonical field keys in column order.
func FieldKeys() []FieldKey {
	return []FieldKey{
		FieldTarget,
		FieldPeriod,
		FieldContent,
		FieldMethod,
		FieldContact,
		FieldLocation,
		FieldNotes,
		FieldPurchaseMethod,
	}
}

// Valid reports whether k is a canonical field key.
func (k FieldKey) Valid() bool {
	for _, key := range FieldKeys() {
		if k == key {
			return true
		}
	}
	return false
}

// ParseFieldKey returns the canonical key named by s.
// Returns EINVALID if s does not name a canonical key.
func ParseFieldKey(s string) (FieldKey, error) {
	k := FieldKey(strings.TrimSpace(s))
	if !k.Valid() {
		return "", Errorf(EINVALID, "unknown field key %q", s)
	}
	return k, nil
}

// Fields accumulates text per canonical field for one item.
// Accumulation is append-only: a new contribution is joined after the
// existing value with FieldSeparator.
type Fields map[FieldKey]string

// Append adds value to the field named by key.
// Blank values and non-canonical keys are ignored.
func (f Fields) Append(key FieldKey, value string) {
	value = strings.TrimSpace(value)
	if value == "" || !key.Valid() {
		return
	}
	if cur := f[key]; cur != "" {
		f[key] = cur + FieldSeparator + value
		return
	}
	f[key] = value
}
