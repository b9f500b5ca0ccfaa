package orbit

// Label is the unique identifier of an object in the orbit map, e.g. `COM`.
type Label string

// String returns the label as a plain string.
func (l Label) String() string {
	return string(l)
}

// Relation is a single `A)B` entry: Orbiter is directly orbiting Orbited.
type Relation struct {
	Orbited Label
	Orbiter Label
	Line    int // 1-based source line, 0 when unknown.
}

// String renders the relation in its canonical textual form.
func (r Relation) String() string {
	return string(r.Orbited) + Separator + string(r.Orbiter)
}

// Default labels used when no configuration overrides them.
const (
	DefaultRoot   Label = "COM"
	DefaultSource Label = "YOU"
	DefaultTarget Label = "SAN"
)
