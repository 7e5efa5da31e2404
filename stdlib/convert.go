package stdlib

import (
	"strconv"
	"strings"

	"osyris/bstring"
	"osyris/value"
)

func registerConversions(scope *value.Scope) {
	scope.Insert("bool", value.NewFunc("bool", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) != 1 {
			return nil, value.NewError("Not enough arguments")
		}
		return value.Bool(value.ToBool(args[0])), nil
	}))

	scope.Insert("number", value.NewFunc("number", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) != 1 {
			return nil, value.NewError("Not enough arguments")
		}
		if str, isStr := args[0].(value.String); isStr {
			n, err := strconv.ParseFloat(strings.TrimSpace(str.Bytes.String()), 64)
			if err != nil {
				return nil, value.NewError("Expected number")
			}
			return value.Number(n), nil
		}
		return value.Number(value.ToNumber(args[0])), nil
	}))

	scope.Insert("string", value.NewFunc("string", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		var sb strings.Builder
		for _, a := range args {
			sb.WriteString(a.Display())
		}
		return value.NewString(bstring.FromString(sb.String())), nil
	}))
}

func registerIO(scope *value.Scope) {
	scope.Insert("print", value.NewFunc("print", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		out, found := s.Lookup("stdout")
		if !found {
			return nil, value.NewError("Variable 'stdout' doesn't exist")
		}
		port, isPort := out.(*value.PortHandle)
		if !isPort {
			return nil, value.NewError("Expected port")
		}
		parts := make([]string, len(args))
		for i, a := range args {
			if str, isStr := a.(value.String); isStr {
				parts[i] = str.Bytes.String()
			} else {
				parts[i] = a.Display()
			}
		}
		line := strings.Join(parts, " ") + "\n"
		if err := port.Impl.Write(value.NewString(bstring.FromString(line))); err != nil {
			return nil, err
		}
		return value.Nil(), nil
	}))

	portArg := func(args []value.Value, i int) (*value.PortHandle, *value.StackTrace) {
		if i >= len(args) {
			return nil, value.NewError("Not enough arguments")
		}
		p, ok := args[i].(*value.PortHandle)
		if !ok {
			return nil, value.NewError("Expected port")
		}
		return p, nil
	}

	scope.Insert("read", value.NewFunc("read", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		p, err := portArg(args, 0)
		if err != nil {
			return nil, err
		}
		if len(args) >= 2 {
			n, isNum := args[1].(value.Number)
			if !isNum {
				return nil, value.NewError("Expected number")
			}
			return p.Impl.ReadChunk(int(n))
		}
		return p.Impl.Read()
	}))

	scope.Insert("write", value.NewFunc("write", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		p, err := portArg(args, 0)
		if err != nil {
			return nil, err
		}
		if len(args) != 2 {
			return nil, value.NewError("Not enough arguments")
		}
		if werr := p.Impl.Write(args[1]); werr != nil {
			return nil, werr
		}
		return value.Nil(), nil
	}))

	scope.Insert("seek", value.NewFunc("seek", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		p, err := portArg(args, 0)
		if err != nil {
			return nil, err
		}
		if len(args) < 2 {
			return nil, value.NewError("Not enough arguments")
		}
		off, isNum := args[1].(value.Number)
		if !isNum {
			return nil, value.NewError("Expected number")
		}
		whence := "set"
		if len(args) >= 3 {
			w, isStr := args[2].(value.String)
			if !isStr {
				return nil, value.NewError("Expected string")
			}
			whence = w.Bytes.String()
		}
		if serr := p.Impl.Seek(int64(off), whence); serr != nil {
			return nil, serr
		}
		return value.Nil(), nil
	}))
}
