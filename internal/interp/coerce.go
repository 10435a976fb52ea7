package interp

import "github.com/anushkanayak15/brewin-go/internal/errors"

// coerceBool applies the single implicit conversion the language has
// (spec §4.4 "Int→Bool coercion rule"): an int is replaced by x != 0 in a
// bool-demanding context. Any other type is a TYPE error.
func coerceBool(v Value) (bool, error) {
	switch v.Kind {
	case KindBool:
		return v.Bool, nil
	case KindInt:
		return v.Int != 0, nil
	default:
		return false, errors.NotBool(v.TypeName())
	}
}

// coerceToDeclaredType applies int→bool coercion when assigning/returning
// into a bool-declared slot, and otherwise requires an exact type match
// (spec §4.5 step 5, §4.6 assignment). declaredType is "int"/"bool"/
// "string" or a struct name; "" denotes a void-returning context, which
// only Void may satisfy.
func coerceToDeclaredType(v Value, declaredType string, structs *StructRegistry) (Value, error) {
	switch declaredType {
	case "":
		if v.Kind == KindVoid {
			return v, nil
		}
		return Value{}, errors.BadReturnType(v.TypeName(), "void")
	case TypeBool:
		b, err := coerceBool(v)
		if err != nil {
			return Value{}, errors.BadReturnType(v.TypeName(), TypeBool)
		}
		return BoolVal(b), nil
	case TypeInt:
		if v.Kind != KindInt {
			return Value{}, errors.BadReturnType(v.TypeName(), TypeInt)
		}
		return v, nil
	case TypeString:
		if v.Kind != KindString {
			return Value{}, errors.BadReturnType(v.TypeName(), TypeString)
		}
		return v, nil
	default:
		// Struct-typed slot: nil is always legal; otherwise the value
		// must be a record of exactly this declared type (spec §3).
		if v.Kind == KindNil {
			return v, nil
		}
		if v.Kind == KindRecord && v.Record.TypeName == declaredType {
			return v, nil
		}
		return Value{}, errors.BadReturnType(v.TypeName(), declaredType)
	}
}

// valuesEqual implements `==`/`!=` (spec §4.4 "Equality"): any two
// operand types may be compared; int/bool compare after int→bool
// coercion; records compare by identity, and a record compares equal to
// Nil only when its own value is literally Nil.
func valuesEqual(a, b Value) bool {
	if (a.Kind == KindInt && b.Kind == KindBool) || (a.Kind == KindBool && b.Kind == KindInt) {
		ab, _ := coerceBool(a)
		bb, _ := coerceBool(b)
		return ab == bb
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindInt:
		return a.Int == b.Int
	case KindBool:
		return a.Bool == b.Bool
	case KindString:
		return a.Str == b.Str
	case KindNil:
		return true
	case KindRecord:
		return a.Record == b.Record
	default:
		return false
	}
}
