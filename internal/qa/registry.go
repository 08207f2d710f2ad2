// Package qa dispatches tokenized user queries to pattern-action pairs and
// runs the matching extraction pipeline.
package qa

import (
	"context"
	"strings"

	"github.com/ppiankov/presbot/internal/infobox"
	"github.com/ppiankov/presbot/internal/match"
)

// Fixed replies for queries that match nothing or produce nothing.
const (
	ReplyUnknown   = "I don't understand"
	ReplyNoAnswers = "No answers"
)

// Handler produces answers for a matched query, given the values bound to
// the template's wildcards
type Handler func(ctx context.Context, bindings []string) ([]string, error)

// PatternAction pairs a query template with the handler invoked when the
// template matches
type PatternAction struct {
	Template []string
	Action   Handler
}

// Registry holds the pattern-action pairs, tried in declaration order.
// Built once at startup and read-only afterwards.
type Registry struct {
	pairs []PatternAction
}

// NewRegistry builds the registry of recognized president queries
func NewRegistry(svc *Service) *Registry {
	return &Registry{pairs: []PatternAction{
		{tokens("who is the president of %"), svc.fieldHandler(infobox.FieldName)},
		{tokens("what is the term of the president of %"), svc.fieldHandler(infobox.FieldTerm)},
		{tokens("what is the political party of the president of %"), svc.fieldHandler(infobox.FieldParty)},
		{tokens("when was the president of % born"), svc.fieldHandler(infobox.FieldBirth)},
		{tokens("who was the predecessor of the president of %"), svc.fieldHandler(infobox.FieldPredecessor)},
		{tokens("who is the successor of the president of %"), svc.fieldHandler(infobox.FieldSuccessor)},
	}}
}

func tokens(template string) []string {
	return strings.Fields(template)
}

// Tokenize normalizes one line of user input: question marks dropped, the
// rest lowercased and split on whitespace
func Tokenize(line string) []string {
	return strings.Fields(strings.ToLower(strings.ReplaceAll(line, "?", "")))
}

// Answer tokenizes a query line, finds the first matching template and runs
// its action. An unmatched query answers ReplyUnknown; a matched query whose
// action produces nothing answers ReplyNoAnswers. Action errors abort only
// the current query.
func (r *Registry) Answer(ctx context.Context, line string) ([]string, error) {
	src := Tokenize(line)

	for _, pa := range r.pairs {
		bindings := match.Match(pa.Template, src)
		if bindings == nil {
			continue
		}

		answers, err := pa.Action(ctx, bindings)
		if err != nil {
			return nil, err
		}
		if len(answers) == 0 {
			return []string{ReplyNoAnswers}, nil
		}
		return answers, nil
	}

	return []string{ReplyUnknown}, nil
}
