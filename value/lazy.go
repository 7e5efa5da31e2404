package value

// LazyCell is the two-state thunk backing both Lazy and ProtectedLazy:
// unforced (Thunk is callable with zero args) or forced (Cached holds the
// memoized result). Forcing is idempotent; a failed force leaves the cell
// unforced so a later attempt can retry.
type LazyCell struct {
	Thunk  Value
	forced bool
	cached Value
}

// NewLazyCell wraps thunk (typically a Block or Lambda) in an unforced
// cell.
func NewLazyCell(thunk Value) *LazyCell {
	return &LazyCell{Thunk: thunk}
}

// Forced reports whether the cell has already been evaluated.
func (c *LazyCell) Forced() bool { return c.forced }

// Cached returns the memoized value; only meaningful once Forced() is true.
func (c *LazyCell) Cached() Value { return c.cached }

// Memoize records the cell's forced result. Called by the evaluator after
// successfully invoking Thunk with zero arguments.
func (c *LazyCell) Memoize(v Value) {
	c.cached = v
	c.forced = true
}

// Lazy auto-forces on identifier lookup: the evaluator invokes Cell.Thunk
// with zero args and substitutes the result wherever a Lazy is encountered
// via a Lookup.
type Lazy struct {
	Cell *LazyCell
}

func NewLazy(thunk Value) *Lazy { return &Lazy{Cell: NewLazyCell(thunk)} }

func (l *Lazy) Kind() Kind           { return KindLazy }
func (l *Lazy) Display() string     { return "<lazy>" }
func (l *Lazy) DebugDisplay() string { return l.Display() }

// ProtectedLazy wraps the same two-state cell as Lazy and is what the `lazy`
// operator produces. A Lookup of a name bound to it forces and memoizes the
// cell exactly as for a Lazy, but it is not forced when it is passed as an
// argument value or stored as a container element, and calling it directly
// is an error (see eval's Call dispatch).
type ProtectedLazy struct {
	Cell *LazyCell
}

func NewProtectedLazy(thunk Value) *ProtectedLazy {
	return &ProtectedLazy{Cell: NewLazyCell(thunk)}
}

func (p *ProtectedLazy) Kind() Kind           { return KindProtectedLazy }
func (p *ProtectedLazy) Display() string      { return "<lazy>" }
func (p *ProtectedLazy) DebugDisplay() string { return p.Display() }
