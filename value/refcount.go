package value

// Retain and Release track how many persistent slots — Scope bindings and
// container elements — hold a given shared container handle (List, Dict,
// Port). They are the bookkeeping half of the copy-on-share protocol:
// mutating operators consult RefCount before deciding whether they may
// mutate in place or must clone first. Values that aren't shared containers
// are no-ops, since only List/Dict/Port carry a refcount.
func Retain(v Value) {
	switch c := v.(type) {
	case *List:
		c.refs++
	case *Dict:
		c.refs++
	case *PortHandle:
		c.refs++
	}
}

// Release is Retain's inverse, called when a slot stops holding v (an
// overwritten Scope binding, a removed list element, …).
func Release(v Value) {
	switch c := v.(type) {
	case *List:
		if c.refs > 0 {
			c.refs--
		}
	case *Dict:
		if c.refs > 0 {
			c.refs--
		}
	case *PortHandle:
		if c.refs > 0 {
			c.refs--
		}
	}
}

// RefCount reports how many persistent slots currently hold v. Non-shared
// Values report 0.
func RefCount(v Value) int {
	switch c := v.(type) {
	case *List:
		return c.refs
	case *Dict:
		return c.refs
	case *PortHandle:
		return c.refs
	default:
		return 0
	}
}

// IsUniquelyHeld reports whether v may be mutated in place: it is a shared
// container held by at most one persistent slot. A freshly constructed,
// not-yet-bound container (refs == 0) counts as uniquely held.
func IsUniquelyHeld(v Value) bool {
	return RefCount(v) <= 1
}

// MutableList returns l itself if it is uniquely held, or an unretained
// clone otherwise — the copy-on-share step every list-* mutator performs
// before touching its target.
func MutableList(l *List) *List {
	if IsUniquelyHeld(l) {
		return l
	}
	return l.Clone()
}

// MutableDict is MutableList's Dict counterpart.
func MutableDict(d *Dict) *Dict {
	if IsUniquelyHeld(d) {
		return d
	}
	return d.Clone()
}
