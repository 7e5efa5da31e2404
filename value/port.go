package value

// Port is the capability contract the evaluator uses for I/O. A concrete
// port need implement only the subset of methods it supports; the default
// PortBase embedded by implementations answers every method with
// ErrNotSupported.
type Port interface {
	Read() (Value, *StackTrace)
	ReadChunk(n int) (Value, *StackTrace)
	Write(v Value) *StackTrace
	Seek(offset int64, whence string) *StackTrace
}

// ErrNotSupported is the StackTrace raised by a Port method an
// implementation does not offer.
func ErrNotSupported(op string) *StackTrace {
	return NewError(op + " not supported by this port")
}

// PortBase gives every method of Port a "not supported" default;
// concrete ports embed it and override only what they implement.
type PortBase struct{}

func (PortBase) Read() (Value, *StackTrace)            { return nil, ErrNotSupported("read") }
func (PortBase) ReadChunk(int) (Value, *StackTrace)     { return nil, ErrNotSupported("read_chunk") }
func (PortBase) Write(Value) *StackTrace                { return ErrNotSupported("write") }
func (PortBase) Seek(int64, string) *StackTrace         { return ErrNotSupported("seek") }

// PortHandle is the shared-mutable Value wrapping a concrete Port
// capability. Its refcount participates in the same copy-on-share
// bookkeeping as List/Dict, though ports are never cloned in practice —
// mutating a port mutates the underlying resource directly.
type PortHandle struct {
	Impl Port
	refs int
}

func NewPort(impl Port) *PortHandle {
	return &PortHandle{Impl: impl}
}

func (p *PortHandle) Kind() Kind           { return KindPort }
func (p *PortHandle) Display() string      { return "<port>" }
func (p *PortHandle) DebugDisplay() string { return p.Display() }
