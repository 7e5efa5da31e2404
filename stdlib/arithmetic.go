// Package stdlib registers Osyris' built-in standard operators into a root
// value.Scope: arithmetic, comparison, equality, logic, definition/mutation,
// control flow, container manipulation, laziness, and port I/O.
package stdlib

import (
	"math"

	"osyris/value"
)

func registerArithmetic(scope *value.Scope) {
	scope.Insert("+", value.NewFunc("+", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) == 0 {
			return value.Number(0), nil
		}
		sum := value.ToNumber(args[0])
		for _, a := range args[1:] {
			sum += value.ToNumber(a)
		}
		return value.Number(sum), nil
	}))

	scope.Insert("-", value.NewFunc("-", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) == 0 {
			return value.Number(0), nil
		}
		if len(args) == 1 {
			return value.Number(-value.ToNumber(args[0])), nil
		}
		diff := value.ToNumber(args[0])
		for _, a := range args[1:] {
			diff -= value.ToNumber(a)
		}
		return value.Number(diff), nil
	}))

	scope.Insert("*", value.NewFunc("*", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) == 0 {
			return value.Number(0), nil
		}
		prod := value.ToNumber(args[0])
		for _, a := range args[1:] {
			prod *= value.ToNumber(a)
		}
		return value.Number(prod), nil
	}))

	scope.Insert("/", value.NewFunc("/", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) == 0 {
			return value.Number(0), nil
		}
		if len(args) == 1 {
			return value.Number(1 / value.ToNumber(args[0])), nil
		}
		quot := value.ToNumber(args[0])
		for _, a := range args[1:] {
			quot /= value.ToNumber(a)
		}
		return value.Number(quot), nil
	}))

	scope.Insert("mod", value.NewFunc("mod", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) != 2 {
			return nil, value.NewError("Not enough arguments")
		}
		return value.Number(math.Mod(value.ToNumber(args[0]), value.ToNumber(args[1]))), nil
	}))
}
