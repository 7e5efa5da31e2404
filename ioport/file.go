package ioport

import (
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"osyris/bstring"
	"osyris/value"
)

// FilePort adapts an *os.File to value.Port, supporting read/write/seek.
// Open, close, and seek are logged at debug level — the one place this
// module touches a process-global log sink, kept out of the language core
// entirely.
type FilePort struct {
	value.PortBase
	f    *os.File
	path string
}

// OpenFile opens path with the given os.OpenFile flag/perm and wraps it.
func OpenFile(path string, flag int, perm os.FileMode) (*FilePort, error) {
	f, err := os.OpenFile(path, flag, perm)
	if err != nil {
		log.Debug().Str("path", path).Err(err).Msg("osyris: file port open failed")
		return nil, err
	}
	log.Debug().Str("path", path).Msg("osyris: file port opened")
	return &FilePort{f: f, path: path}, nil
}

// Close releases the underlying file handle.
func (p *FilePort) Close() error {
	log.Debug().Str("path", p.path).Msg("osyris: file port closed")
	return p.f.Close()
}

func (p *FilePort) Read() (value.Value, *value.StackTrace) {
	var b [1]byte
	n, err := p.f.Read(b[:])
	if n == 0 && err != nil {
		return value.Nil(), nil
	}
	if err != nil && err != io.EOF {
		return nil, value.NewError(err.Error())
	}
	return value.NewString(bstring.New(b[:n])), nil
}

func (p *FilePort) ReadChunk(n int) (value.Value, *value.StackTrace) {
	buf := make([]byte, n)
	read, err := io.ReadFull(p.f, buf)
	if read == 0 && err != nil {
		return value.Nil(), nil
	}
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		log.Debug().Str("path", p.path).Err(err).Msg("osyris: file port short read")
		return nil, value.NewError(err.Error())
	}
	return value.NewString(bstring.New(buf[:read])), nil
}

func (p *FilePort) Write(v value.Value) *value.StackTrace {
	var raw []byte
	if s, isStr := v.(value.String); isStr {
		raw = s.Bytes.Bytes()
	} else {
		raw = []byte(v.Display())
	}
	if _, err := p.f.Write(raw); err != nil {
		return value.NewError(err.Error())
	}
	return nil
}

// Seek implements the `seek` operator's whence vocabulary: "set", "end", and
// both "cur" and "current" spellings for the current position.
func (p *FilePort) Seek(offset int64, whence string) *value.StackTrace {
	var w int
	switch whence {
	case "", "set":
		w = io.SeekStart
	case "cur", "current":
		w = io.SeekCurrent
	case "end":
		w = io.SeekEnd
	default:
		return value.NewError("invalid seek whence '%s'", whence)
	}
	if _, err := p.f.Seek(offset, w); err != nil {
		log.Debug().Str("path", p.path).Err(err).Msg("osyris: file port seek failed")
		return value.NewError(err.Error())
	}
	return nil
}
