package infobox

import (
	"errors"
	"strings"
	"testing"
)

func TestCleanText_CollapsesRuns(t *testing.T) {
	got := CleanText("a    b\n\n\nc")
	if got != "a b\nc" {
		t.Errorf("CleanText = %q, want %q", got, "a b\nc")
	}
}

func TestCleanText_ReplacesNonASCII(t *testing.T) {
	// The replacement space is then collapsed with its neighbors
	got := CleanText("a é b")
	if got != "a b" {
		t.Errorf("CleanText = %q, want %q", got, "a b")
	}

	got = CleanText("café")
	if got != "caf " {
		t.Errorf("CleanText = %q, want %q", got, "caf ")
	}
}

func TestCleanText_KeepsPrintableASCII(t *testing.T) {
	in := "Born (1980-05-12) age 45\tyears"
	if got := CleanText(in); got != in {
		t.Errorf("CleanText changed clean input: %q -> %q", in, got)
	}
}

func TestCleanText_SpacesCollapseBeforeNewlines(t *testing.T) {
	// A non-ASCII char between newlines becomes a space, leaving the
	// newline run intact rather than merged
	got := CleanText("a\né\nb")
	if got != "a\n \nb" {
		t.Errorf("CleanText = %q, want %q", got, "a\n \nb")
	}
}

const samplePage = `
<html><body>
<p>lead paragraph</p>
<table class="infobox vcard">
  <caption>French Republic</caption>
  <tr><th>President</th><td>Emmanuel Macron</td></tr>
  <tr><th>Political party</th><td>Renaissance</td></tr>
</table>
<table class="infobox">
  <tr><th>President</th><td>Someone Else</td></tr>
</table>
</body></html>`

func TestFirstInfoboxText_TakesFirstBox(t *testing.T) {
	text, err := FirstInfoboxText(samplePage)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(text, "Emmanuel Macron") {
		t.Errorf("Expected first infobox content, got %q", text)
	}
	if strings.Contains(text, "Someone Else") {
		t.Errorf("Expected only the first infobox, got %q", text)
	}
}

func TestFirstInfoboxText_BlockBoundariesBreakLines(t *testing.T) {
	text, err := FirstInfoboxText(samplePage)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	// Label and value cells must not run together into one word
	if strings.Contains(text, "partyRenaissance") {
		t.Errorf("Expected block boundary between label and value, got %q", text)
	}
}

func TestFirstInfoboxText_NoInfobox(t *testing.T) {
	_, err := FirstInfoboxText("<html><body><p>nothing here</p></body></html>")
	if !errors.Is(err, ErrNoInfobox) {
		t.Errorf("Expected ErrNoInfobox, got %v", err)
	}
}

func TestFirstInfoboxText_ClassListMatching(t *testing.T) {
	// "infobox" must match as a whole class name, not a substring
	_, err := FirstInfoboxText(`<table class="infoboxish"><tr><td>x</td></tr></table>`)
	if !errors.Is(err, ErrNoInfobox) {
		t.Errorf("Expected ErrNoInfobox for partial class name, got %v", err)
	}
}
