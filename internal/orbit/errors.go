package orbit

import "fmt"

// MalformedRelationError reports a line that is not a valid `A)B` relation,
// or one that breaks the tree shape of the map.
type MalformedRelationError struct {
	Line   int
	Text   string
	Reason string
}

func (e *MalformedRelationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed relation on line %d %q: %s", e.Line, e.Text, e.Reason)
	}
	return fmt.Sprintf("malformed relation %q: %s", e.Text, e.Reason)
}

// DisconnectedTargetError reports a designated label that the traversal never
// reached from the root.
type DisconnectedTargetError struct {
	Label Label
	Root  Label
}

func (e *DisconnectedTargetError) Error() string {
	return fmt.Sprintf("object %q is not reachable from root %q", e.Label, e.Root)
}

// NoCommonAncestorError reports two objects whose ancestor paths share no
// entry. It cannot happen for a well-formed tree.
type NoCommonAncestorError struct {
	Source Label
	Target Label
}

func (e *NoCommonAncestorError) Error() string {
	return fmt.Sprintf("objects %q and %q have no common ancestor", e.Source, e.Target)
}

// InputUnavailableError reports an input source that could not be opened.
type InputUnavailableError struct {
	Path string
	Err  error
}

func (e *InputUnavailableError) Error() string {
	return fmt.Sprintf("input %s is unavailable: %v", e.Path, e.Err)
}

func (e *InputUnavailableError) Unwrap() error {
	return e.Err
}
