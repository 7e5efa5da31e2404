package value

import "strings"

// List is a shared-mutable ordered sequence of Values, indexable via a
// call: `(l 0)`. See refcount.go for the copy-on-share mutation protocol
// that list-* operators apply to it.
type List struct {
	Items []Value
	refs  int
}

// NewList wraps items in a freshly-minted, unretained List handle, retaining
// each item since l.Items is now a persistent slot holding it (the same
// bookkeeping Scope.Insert does for a variable binding).
func NewList(items []Value) *List {
	for _, v := range items {
		Retain(v)
	}
	return &List{Items: items}
}

func (l *List) Kind() Kind { return KindList }

func (l *List) Display() string {
	parts := make([]string, len(l.Items))
	for i, v := range l.Items {
		parts[i] = v.Display()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (l *List) DebugDisplay() string {
	parts := make([]string, len(l.Items))
	for i, v := range l.Items {
		parts[i] = v.DebugDisplay()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// At implements the list-as-callable index lookup: out-of-range is None,
// never an error.
func (l *List) At(idx float64) Value {
	i := int(idx)
	if i < 0 || i >= len(l.Items) {
		return Nil()
	}
	return l.Items[i]
}

// Clone makes a new, unretained List sharing no backing array with l —
// the copy-on-share step mutating operators take when refs > 1. Element
// Values themselves are shared by reference (a shallow clone), so each one
// gains an additional slot-holder and is retained accordingly.
func (l *List) Clone() *List {
	items := make([]Value, len(l.Items))
	copy(items, l.Items)
	for _, v := range items {
		Retain(v)
	}
	return &List{Items: items}
}

// Append adds items to the end of l's backing array, retaining each since
// they now occupy a persistent slot in l.
func (l *List) Append(items ...Value) {
	for _, v := range items {
		Retain(v)
	}
	l.Items = append(l.Items, items...)
}

// Truncate shrinks l to its first n items, releasing the ones dropped.
func (l *List) Truncate(n int) {
	for _, v := range l.Items[n:] {
		Release(v)
	}
	l.Items = l.Items[:n]
}

// InsertAt splices items into l starting at idx, retaining each.
func (l *List) InsertAt(idx int, items ...Value) {
	for _, v := range items {
		Retain(v)
	}
	rest := append([]Value(nil), l.Items[idx:]...)
	l.Items = append(l.Items[:idx], items...)
	l.Items = append(l.Items, rest...)
}

// RemoveRange deletes l.Items[start:end], releasing each removed element.
func (l *List) RemoveRange(start, end int) {
	for _, v := range l.Items[start:end] {
		Release(v)
	}
	l.Items = append(l.Items[:start], l.Items[end:]...)
}

// SetAt overwrites the item at idx, releasing the occupant it displaces and
// retaining the new one without otherwise changing l's length — used by
// list-map to lift an element out of its slot and later restore it.
func (l *List) SetAt(idx int, v Value) {
	Release(l.Items[idx])
	Retain(v)
	l.Items[idx] = v
}

// Dict is a shared-mutable mapping from byte-string keys to Values,
// callable with one string argument for key lookup.
type Dict struct {
	entries map[string]Value
	order   []string // insertion order, for stable Display
	refs    int
}

// NewDict creates an empty, unretained Dict handle.
func NewDict() *Dict {
	return &Dict{entries: make(map[string]Value)}
}

func (d *Dict) Kind() Kind { return KindDict }

func (d *Dict) Display() string {
	parts := make([]string, 0, len(d.order))
	for _, k := range d.order {
		parts = append(parts, k+": "+d.entries[k].Display())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (d *Dict) DebugDisplay() string {
	parts := make([]string, 0, len(d.order))
	for _, k := range d.order {
		parts = append(parts, k+": "+d.entries[k].DebugDisplay())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Get returns the value bound to key, or None if absent.
func (d *Dict) Get(key string) Value {
	if v, ok := d.entries[key]; ok {
		return v
	}
	return Nil()
}

// Has reports whether key is present.
func (d *Dict) Has(key string) bool {
	_, ok := d.entries[key]
	return ok
}

// Set inserts or overwrites key, preserving first-insertion order for
// Display. The old occupant (if any) is released and v is retained, since
// d.entries is a persistent slot exactly like a Scope binding.
func (d *Dict) Set(key string, v Value) {
	if old, exists := d.entries[key]; exists {
		Release(old)
	} else {
		d.order = append(d.order, key)
	}
	Retain(v)
	d.entries[key] = v
}

// Delete removes key if present, releasing its value.
func (d *Dict) Delete(key string) {
	old, ok := d.entries[key]
	if !ok {
		return
	}
	Release(old)
	delete(d.entries, key)
	for i, k := range d.order {
		if k == key {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Keys returns the dict's keys in insertion order.
func (d *Dict) Keys() []string {
	return append([]string(nil), d.order...)
}

// Clone makes a new, unretained Dict with the same entries. Values
// themselves are shared by reference (a shallow clone), each gaining an
// additional slot-holder and retained accordingly.
func (d *Dict) Clone() *Dict {
	nd := &Dict{
		entries: make(map[string]Value, len(d.entries)),
		order:   append([]string(nil), d.order...),
	}
	for k, v := range d.entries {
		Retain(v)
		nd.entries[k] = v
	}
	return nd
}
