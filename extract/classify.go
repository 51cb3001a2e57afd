package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/bulletin"
)

// Classifier maps free-form header text to a canonical field key.
type Classifier interface {
	// Classify maps a header to a field key. The header is normalized
	// before matching.
	Classify(header string) (bulletin.FieldKey, bool)

	// SplitHeader finds a header written without a delimiter and returns
	// its key and any text after it on the same line.
	SplitHeader(line string) (key bulletin.FieldKey, rest string, ok bool)
}

// NewClassifier returns the classifier selected by rules.
func NewClassifier(rules bulletin.Rules) (Classifier, error) {
	switch rules.Classifier {
	case "", bulletin.ClassifierKeyword:
		return NewKeywordClassifier(rules.Keywords, rules.MaxKeyLength), nil
	case bulletin.ClassifierAlias:
		return NewAliasClassifier(rules.Aliases, rules.MaxKeyLength), nil
	}
	return nil, bulletin.Errorf(bulletin.EINVALID, "unknown classifier %q", rules.Classifier)
}

var (
	_ Classifier = (*KeywordClassifier)(nil)
	_ Classifier = (*AliasClassifier)(nil)
)

// KeywordClassifier maps a header to the first group that has a word
// contained in it. Group order decides ties.
type KeywordClassifier struct {
	groups []bulletin.KeywordGroup
	maxLen int
}

// NewKeywordClassifier creates a KeywordClassifier. A maxLen of zero
// disables the length limit.
func NewKeywordClassifier(groups []bulletin.KeywordGroup, maxLen int) *KeywordClassifier {
	c := &KeywordClassifier{maxLen: maxLen}
	for _, g := range groups {
		words := make([]string, 0, len(g.Words))
		for _, w := range g.Words {
			if w = NormalizeKey(w); w != "" {
				words = append(words, w)
			}
		}
		c.groups = append(c.groups, bulletin.KeywordGroup{Key: g.Key, Words: words})
	}
	return c
}

// Classify implements Classifier.
func (c *KeywordClassifier) Classify(header string) (bulletin.FieldKey, bool) {
	key, _ := normalizeKey(header)
	return c.match(key)
}

// SplitHeader implements Classifier. Only a line that is a header as a
// whole matches, so sentences that mention a keyword stay plain text.
func (c *KeywordClassifier) SplitHeader(line string) (bulletin.FieldKey, string, bool) {
	key, truncated := normalizeKey(line)
	if truncated {
		return "", "", false
	}
	k, ok := c.match(key)
	return k, "", ok
}

func (c *KeywordClassifier) match(key string) (bulletin.FieldKey, bool) {
	if key == "" || tooLong(key, c.maxLen) {
		return "", false
	}
	for _, g := range c.groups {
		for _, w := range g.Words {
			if strings.Contains(key, w) {
				return g.Key, true
			}
		}
	}
	return "", false
}

// AliasClassifier maps a header to a key by exact lookup of its
// normalized form.
type AliasClassifier struct {
	aliases map[string]bulletin.FieldKey
	maxLen  int
}

// NewAliasClassifier creates an AliasClassifier. Alias spellings are
// normalized, so "문 의" and "문의" are the same entry.
func NewAliasClassifier(aliases map[string]bulletin.FieldKey, maxLen int) *AliasClassifier {
	c := &AliasClassifier{
		aliases: make(map[string]bulletin.FieldKey, len(aliases)),
		maxLen:  maxLen,
	}
	for alias, key := range aliases {
		if norm := NormalizeKey(alias); norm != "" {
			c.aliases[norm] = key
		}
	}
	return c
}

// Classify implements Classifier.
func (c *AliasClassifier) Classify(header string) (bulletin.FieldKey, bool) {
	key, _ := normalizeKey(header)
	return c.match(key)
}

// SplitHeader implements Classifier. The longest matching prefix wins.
func (c *AliasClassifier) SplitHeader(line string) (bulletin.FieldKey, string, bool) {
	return scanPrefixes(line, c.match)
}

func (c *AliasClassifier) match(key string) (bulletin.FieldKey, bool) {
	if key == "" || tooLong(key, c.maxLen) {
		return "", false
	}
	k, ok := c.aliases[key]
	return k, ok
}

// scanPrefixes tries word prefixes of line as headers, longest first. A
// prefix that had to be cut at a colon or digit is never a header.
func scanPrefixes(line string, match func(string) (bulletin.FieldKey, bool)) (bulletin.FieldKey, string, bool) {
	words := strings.Fields(line)
	for i := len(words); i > 0; i-- {
		key, truncated := normalizeKey(strings.Join(words[:i], " "))
		if truncated {
			continue
		}
		if k, ok := match(key); ok {
			return k, strings.Join(words[i:], " "), true
		}
	}
	return "", "", false
}

func tooLong(key string, maxLen int) bool {
	return maxLen > 0 && utf8.RuneCountInString(key) > maxLen
}
