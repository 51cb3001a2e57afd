package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/bulletin"
)

// LineKind is the outcome of classifying one detail line.
type LineKind int

// Line kinds.
const (
	LinePlain LineKind = iota
	LineBullet
	LineBareHeader
	LineKeyValue
)

// String returns the kind name.
func (k LineKind) String() string {
	switch k {
	case LineBullet:
		return "bullet"
	case LineBareHeader:
		return "header"
	case LineKeyValue:
		return "key-value"
	}
	return "plain"
}

// Line is a classified detail line. Key and Header are set for header
// kinds; Value only for LineKeyValue.
type Line struct {
	Kind   LineKind
	Key    bulletin.FieldKey
	Header string
	Delim  string
	Value  string
	Text   string
}

func (l Line) isHeader() bool {
	return l.Kind == LineKeyValue || l.Kind == LineBareHeader
}

// noteMarker opens an annotation line that is never a header.
const noteMarker = "※"

var dashHeaderRe = regexp.MustCompile(`^([가-힣A-Za-z\s]+?)\s*[-–]\s*(.+)$`)

// Accumulator folds an item's detail lines into canonical fields.
type Accumulator struct {
	Classifier Classifier

	// IncludeKeyInValue stores "header : value" instead of the value.
	IncludeKeyInValue bool

	// TrimContact applies CleanContact to contact values.
	TrimContact bool
}

// ClassifyLine decides what one detail line is.
func (a *Accumulator) ClassifyLine(text string) Line {
	text = strings.TrimSpace(text)
	line := Line{Kind: LinePlain, Text: text}
	if text == "" || strings.HasPrefix(text, noteMarker) {
		return line
	}

	body := stripMarker(text)
	if header, value, ok := splitColon(body); ok {
		if key, ok := a.Classifier.Classify(header); ok {
			return headerLine(text, key, header, ":", value)
		}
	}
	if m := dashHeaderRe.FindStringSubmatch(body); m != nil {
		if key, ok := a.Classifier.Classify(m[1]); ok {
			return headerLine(text, key, strings.TrimSpace(m[1]), "-", strings.TrimSpace(m[2]))
		}
	}
	if key, rest, ok := a.Classifier.SplitHeader(body); ok {
		header := strings.TrimSpace(strings.TrimSuffix(body, rest))
		return headerLine(text, key, header, "", rest)
	}
	if isBullet(text) {
		line.Kind = LineBullet
	}
	return line
}

func headerLine(text string, key bulletin.FieldKey, header, delim, value string) Line {
	kind := LineKeyValue
	if value == "" {
		kind = LineBareHeader
	}
	return Line{Kind: kind, Key: key, Header: header, Delim: delim, Value: value, Text: text}
}

// splitColon splits at the first colon that is not part of a clock time.
func splitColon(s string) (string, string, bool) {
	for i, r := range s {
		if r != ':' && r != '：' {
			continue
		}
		if i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
			continue
		}
		return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+utf8.RuneLen(r):]), true
	}
	return "", "", false
}

// locks reports whether a section opened by key captures every following
// line until a different header appears.
func locks(key bulletin.FieldKey) bool {
	return key == bulletin.FieldMethod
}

// Accumulate classifies each detail line and appends it to a field.
//
// Lines are appended to the most recently opened section, or to content
// when none is open. Once a method section opens it is locked: every line
// goes to method until a header for a different key appears, and that
// line contributes only its value.
func (a *Accumulator) Accumulate(lines []string) bulletin.Fields {
	fields := bulletin.Fields{}
	var current, locked bulletin.FieldKey

	for _, raw := range lines {
		line := a.ClassifyLine(raw)
		if line.Text == "" {
			continue
		}

		if locked != "" {
			if line.isHeader() && line.Key != locked {
				locked = ""
				current = line.Key
				fields.Append(line.Key, a.clean(line.Key, line.Value))
				if locks(current) {
					locked = current
				}
				continue
			}
			fields.Append(locked, line.Text)
			continue
		}

		switch line.Kind {
		case LineKeyValue:
			fields.Append(line.Key, a.value(line))
			current = line.Key
		case LineBareHeader:
			current = line.Key
		default:
			target := current
			if target == "" {
				target = bulletin.FieldContent
			}
			fields.Append(target, line.Text)
			continue
		}
		if locks(current) {
			locked = current
		}
	}
	return fields
}

func (a *Accumulator) value(line Line) string {
	v := a.clean(line.Key, line.Value)
	if !a.IncludeKeyInValue || line.Header == "" || v == "" {
		return v
	}
	if line.Delim == "" {
		return line.Header + " " + v
	}
	return line.Header + " " + line.Delim + " " + v
}

func (a *Accumulator) clean(key bulletin.FieldKey, v string) string {
	if a.TrimContact && key == bulletin.FieldContact {
		return CleanContact(v)
	}
	return v
}
