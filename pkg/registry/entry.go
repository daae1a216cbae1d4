package registry

// Entry is what a registry stores per name. It is either Plain (id only) or
// WithAttribute (id plus a side attribute such as party affiliation).
type Entry interface {
	ID() int
	isEntry()
}

// Plain is an entry registered from a bare name.
type Plain struct {
	id int
}

func (p Plain) ID() int { return p.id }
func (Plain) isEntry()  {}

// WithAttribute is an entry registered from a (name, attribute) pair.
type WithAttribute struct {
	id        int
	Attribute string
}

func (w WithAttribute) ID() int { return w.id }
func (WithAttribute) isEntry()  {}

// Item is one element of a build sequence.
type Item struct {
	Name         string
	Attribute    string
	HasAttribute bool
}

// Record is the reverse view of an entry.
type Record struct {
	Name         string
	Attribute    string
	HasAttribute bool
}

// Names wraps plain names as build items.
func Names(names []string) []Item {
	items := make([]Item, len(names))
	for i, name := range names {
		items[i] = Item{Name: name}
	}
	return items
}

// Pairs zips names with attributes. Extra elements of the longer slice are
// ignored, like zip.
func Pairs(names, attributes []string) []Item {
	n := min(len(names), len(attributes))
	items := make([]Item, n)
	for i := 0; i < n; i++ {
		items[i] = Item{Name: names[i], Attribute: attributes[i], HasAttribute: true}
	}
	return items
}
