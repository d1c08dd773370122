package taxonomy

// Tree is the immutable three-level taxonomy supplied once by the caller.
// It is never mutated after construction; all methods are read-only lookups
// that fail silently (nil / empty result) when a name is absent, because
// taxonomy data may evolve independently of historical records that still
// reference old names.
type Tree struct {
	roots []Node
}

// New builds a Tree from the given root nodes, validating the three-level
// depth invariant up front. Malformed config is rejected here rather than
// failing deep inside rendering.
func New(roots []Node) (*Tree, error) {
	if errs := Validate(roots); HasBlocking(errs) {
		return nil, Errors(errs)
	}
	return &Tree{roots: roots}, nil
}

// Roots returns the core-level nodes in declared order.
func (t *Tree) Roots() []Node {
	return t.roots
}

// CoreCount returns the number of core categories.
func (t *Tree) CoreCount() int {
	return len(t.roots)
}

// FindCore returns the core node with the given name, or nil.
func (t *Tree) FindCore(name string) *Node {
	for i := range t.roots {
		if t.roots[i].Name == name {
			return &t.roots[i]
		}
	}
	return nil
}

// FindPrimary returns the named primary under the named core, or nil.
func (t *Tree) FindPrimary(core, primary string) *Node {
	c := t.FindCore(core)
	if c == nil {
		return nil
	}
	return c.child(primary)
}

// FindTertiary returns the named leaf under the named core/primary, or nil.
func (t *Tree) FindTertiary(core, primary, tertiary string) *Node {
	p := t.FindPrimary(core, primary)
	if p == nil {
		return nil
	}
	return p.child(tertiary)
}

// SiblingsAt returns the ordered candidate nodes a user can pick next at the
// given level, under the partial path (core, primary). For LevelCore both
// path components are ignored; for LevelPrimary only core is consulted.
// An unknown path yields an empty slice.
func (t *Tree) SiblingsAt(level Level, core, primary string) []Node {
	switch level {
	case LevelCore:
		return t.roots
	case LevelPrimary:
		if c := t.FindCore(core); c != nil {
			return c.Children
		}
	case LevelTertiary:
		if p := t.FindPrimary(core, primary); p != nil {
			return p.Children
		}
	}
	return nil
}
