package infobox

import (
	"fmt"
	"regexp"
)

// Field identifies one extractable infobox attribute
type Field int

const (
	FieldName Field = iota
	FieldTerm
	FieldParty
	FieldBirth
	FieldPredecessor
	FieldSuccessor
)

// String returns the field name
func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldTerm:
		return "term"
	case FieldParty:
		return "party"
	case FieldBirth:
		return "birth"
	case FieldPredecessor:
		return "predecessor"
	case FieldSuccessor:
		return "successor"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// MissingFieldError reports that the infobox text did not match a field's
// extraction pattern
type MissingFieldError struct {
	Field   Field
	Message string
}

func (e *MissingFieldError) Error() string {
	return e.Message
}

type fieldPattern struct {
	re      *regexp.Regexp
	missing string
}

// One pattern per extractable field. The trailing word-run captures for
// name, party, predecessor and successor can overrun into the next infobox
// label.
var fieldPatterns = [...]fieldPattern{
	FieldName: {
		re:      regexp.MustCompile(`(?is)President.*?(?P<president>[\w\s]+)`),
		missing: "Page infobox has no president information",
	},
	FieldTerm: {
		re:      regexp.MustCompile(`(?is)Term\s*of\s*office\s*.*?(\d{4}-\d{4})`),
		missing: "Page infobox has no term information",
	},
	FieldParty: {
		re:      regexp.MustCompile(`(?is)Political\s*party\s*.*?([\w\s]+)`),
		missing: "Page infobox has no political party information",
	},
	FieldBirth: {
		re:      regexp.MustCompile(`(?is)Born\D*(?P<birth>\d{4}-\d{2}-\d{2})`),
		missing: "Page infobox has no birth information (at least none in xxxx-xx-xx format)",
	},
	FieldPredecessor: {
		re:      regexp.MustCompile(`(?is)Predecessor\s*.*?([\w\s]+)`),
		missing: "Page infobox has no predecessor information",
	},
	FieldSuccessor: {
		re:      regexp.MustCompile(`(?is)Successor\s*.*?([\w\s]+)`),
		missing: "Page infobox has no successor information",
	},
}

// ExtractField applies a field's pattern to cleaned infobox text and returns
// the captured value
func ExtractField(text string, field Field) (string, error) {
	if int(field) < 0 || int(field) >= len(fieldPatterns) {
		return "", fmt.Errorf("unknown field %v", field)
	}

	fp := fieldPatterns[field]
	m := fp.re.FindStringSubmatch(text)
	if m == nil {
		return "", &MissingFieldError{Field: field, Message: fp.missing}
	}

	return m[1], nil
}
