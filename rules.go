package bulletin

// Key classification strategies.
const (
	ClassifierKeyword = "keyword"
	ClassifierAlias   = "alias"
)

// KeywordGroup maps any header containing one of Words to Key.
type KeywordGroup struct {
	Key   FieldKey
	Words []string
}

// Rules are the data-driven tables and switches of the extraction engine.
type Rules struct {
	// Classifier selects the key classification strategy.
	Classifier string

	// Keywords are consulted in order by the keyword strategy.
	Keywords []KeywordGroup

	// Aliases map normalized header text to a key for the alias strategy.
	Aliases map[string]FieldKey

	// MaxKeyLength is the longest normalized header, in runes, that is
	// still considered a header.
	MaxKeyLength int

	// NumberedHeadings treats "N. Title" lines as item boundaries.
	NumberedHeadings bool

	// MergeContinuations joins lines that do not start with the body
	// marker onto the previous detail line.
	MergeContinuations bool

	// IncludeKeyInValue stores "header : value" instead of the bare value.
	IncludeKeyInValue bool

	// TrimContact cuts contact values after the last phone number.
	TrimContact bool
}

// Validate returns an error if the rules are unusable.
func (r *Rules) Validate() error {
	switch r.Classifier {
	case "", ClassifierKeyword, ClassifierAlias:
	default:
		return Errorf(EINVALID, "unknown classifier %q", r.Classifier)
	}
	if r.MaxKeyLength < 0 {
		return Errorf(EINVALID, "max key length must not be negative")
	}
	for _, g := range r.Keywords {
		if !g.Key.Valid() {
			return Errorf(EINVALID, "keyword group: unknown field key %q", g.Key)
		}
	}
	for alias, key := range r.Aliases {
		if !key.Valid() {
			return Errorf(EINVALID, "alias %q: unknown field key %q", alias, key)
		}
	}
	return nil
}
