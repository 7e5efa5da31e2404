package value

import "strconv"

// Equal implements Osyris' structural equality (`==`): recursive over
// None/Bool/Number/String/List/Dict; every other variant compares by
// shared-instance identity (same underlying pointer).
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case None:
		return true
	case Bool:
		return av == b.(Bool)
	case Number:
		return av == b.(Number)
	case String:
		return av.Bytes.Equal(b.(String).Bytes)
	case *List:
		bv := b.(*List)
		if len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !Equal(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	case *Dict:
		bv := b.(*Dict)
		if len(av.entries) != len(bv.entries) {
			return false
		}
		for k, v := range av.entries {
			other, ok := bv.entries[k]
			if !ok || !Equal(v, other) {
				return false
			}
		}
		return true
	default:
		// Block, Func, Lambda, Binding, Lazy, ProtectedLazy, Port: identity.
		return a == b
	}
}

// Truthy implements Osyris' truthiness rule: None and Bool(false) are
// false, everything else is true.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case None:
		return false
	case Bool:
		return bool(t)
	default:
		return true
	}
}

// ToNumber implements the `to_num` coercion: Number passes through,
// Bool(true)/Bool(false) become 1/0, String is parsed (zero on failure),
// everything else coerces to zero.
func ToNumber(v Value) float64 {
	switch t := v.(type) {
	case Number:
		return float64(t)
	case Bool:
		if t {
			return 1
		}
		return 0
	case String:
		n, err := strconv.ParseFloat(t.Bytes.String(), 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// ToBool implements the `bool` operator: it is exactly Truthy, exposed
// under the coercion's own name for callers that reach for `to_bool`.
func ToBool(v Value) bool {
	return Truthy(v)
}
