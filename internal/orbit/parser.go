package orbit

import (
	"strings"
)

// Separator splits the orbited label from the orbiter label.
const Separator = ")"

// ParseRelation parses a single `A)B` line. Surrounding whitespace is ignored.
// The returned relation has Line set to 0; callers that know the position
// should set it themselves.
func ParseRelation(text string) (Relation, error) {
	return parseRelationAt(text, 0)
}

func parseRelationAt(text string, line int) (Relation, error) {
	trimmed := strings.TrimSpace(text)

	if n := strings.Count(trimmed, Separator); n != 1 {
		reason := "missing separator"
		if n > 1 {
			reason = "more than one separator"
		}
		return Relation{}, &MalformedRelationError{Line: line, Text: text, Reason: reason}
	}

	orbited, orbiter, _ := strings.Cut(trimmed, Separator)
	if orbited == "" {
		return Relation{}, &MalformedRelationError{Line: line, Text: text, Reason: "empty orbited label"}
	}
	if orbiter == "" {
		return Relation{}, &MalformedRelationError{Line: line, Text: text, Reason: "empty orbiter label"}
	}

	return Relation{Orbited: Label(orbited), Orbiter: Label(orbiter), Line: line}, nil
}

// ParseLines parses every line into a relation, numbering lines from 1.
// A single empty line at the very end is tolerated since most files end with
// a newline; any other empty line is malformed.
func ParseLines(lines []string) ([]Relation, error) {
	if n := len(lines); n > 0 && strings.TrimSpace(lines[n-1]) == "" {
		lines = lines[:n-1]
	}

	relations := make([]Relation, 0, len(lines))
	for i, line := range lines {
		rel, err := parseRelationAt(line, i+1)
		if err != nil {
			return nil, err
		}
		relations = append(relations, rel)
	}
	return relations, nil
}
