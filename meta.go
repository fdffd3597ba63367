package blacklog

import "iter"

// Meta is one named attribute attached to a log event.
type Meta struct {
	Name  string
	Value any
}

func NewMeta(name string, value any) Meta {
	return Meta{Name: name, Value: value}
}

// Format lets an attribute value control its own rendering. Values that do
// not implement it go through the default dispatch in formatValue.
type Format interface {
	Format(f *Formatter) error
}

// MetaFunc defers evaluation of an attribute value until the moment it is
// rendered. Useful for values that are expensive to compute.
type MetaFunc func() any

func (fn MetaFunc) Format(f *Formatter) error {
	return formatValue(f, fn())
}

// MetaLink is one node in a backward-linked chain of attribute slices. Each
// scope that adds attributes pushes a node pointing at its parent, so
// building the chain never copies earlier attributes. Node ids grow by one
// per link, root at zero; Walk checks the sequence to catch chains stitched
// together from unrelated links.
type MetaLink struct {
	metas []Meta
	prev  *MetaLink
	id    uint32
}

// NewMetaLink starts a chain with id 0.
func NewMetaLink(metas []Meta) *MetaLink {
	return &MetaLink{metas: metas}
}

// Next extends the chain with one more node of attributes.
func (l *MetaLink) Next(metas []Meta) *MetaLink {
	return &MetaLink{metas: metas, prev: l, id: l.id + 1}
}

// ID returns the node's position in the chain, root at zero.
func (l *MetaLink) ID() uint32 { return l.id }

// All iterates every attribute in chronological order: the root node first,
// then each later node, slice order within a node. A nil receiver yields
// nothing.
func (l *MetaLink) All() iter.Seq[*Meta] {
	return func(yield func(*Meta) bool) {
		l.walk(yield)
	}
}

func (l *MetaLink) walk(yield func(*Meta) bool) bool {
	if l == nil {
		return true
	}
	if l.prev != nil {
		if l.prev.id+1 != l.id {
			panic("blacklog: meta chain ids out of sequence")
		}
		if !l.prev.walk(yield) {
			return false
		}
	} else if l.id != 0 {
		panic("blacklog: meta chain root must have id 0")
	}
	for i := range l.metas {
		if !yield(&l.metas[i]) {
			return false
		}
	}
	return true
}

// Find returns the first attribute named name in chronological order, so when
// names repeat the earliest attached one wins.
func (l *MetaLink) Find(name string) (*Meta, bool) {
	var found *Meta
	for m := range l.All() {
		if m.Name == name {
			found = m
			break
		}
	}
	return found, found != nil
}

// Len counts the attributes across the whole chain.
func (l *MetaLink) Len() int {
	n := 0
	for node := l; node != nil; node = node.prev {
		n += len(node.metas)
	}
	return n
}

// flatten copies the chain into a single chronological slice.
func (l *MetaLink) flatten() []Meta {
	if l == nil {
		return nil
	}
	out := make([]Meta, 0, l.Len())
	for m := range l.All() {
		out = append(out, *m)
	}
	return out
}
