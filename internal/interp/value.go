package interp

import "fmt"

// ValueKind tags the variant a Value holds (spec §3).
type ValueKind int

const (
	KindInt ValueKind = iota
	KindBool
	KindString
	KindNil
	KindVoid
	KindRecord
)

func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindNil:
		return "nil"
	case KindVoid:
		return "void"
	case KindRecord:
		return "record"
	}
	return "unknown"
}

// Value is the tagged union the evaluator produces and consumes. Int,
// Bool, String, Nil, and Void are represented as the comparable Value
// struct itself (copied by value); Record is represented by a pointer to
// a shared RecordInstance so record values keep reference semantics
// (spec §3: "multiple references to the same record share state").
type Value struct {
	Kind   ValueKind
	Int    int64
	Bool   bool
	Str    string
	Record *RecordInstance
}

// RecordInstance is a struct ("record") value: a name identifying its
// declared type, and a mutable field map shared by every Value that
// references it.
type RecordInstance struct {
	TypeName string
	Fields   map[string]Value
}

func IntVal(i int64) Value        { return Value{Kind: KindInt, Int: i} }
func BoolVal(b bool) Value        { return Value{Kind: KindBool, Bool: b} }
func StringVal(s string) Value    { return Value{Kind: KindString, Str: s} }
func NilVal() Value               { return Value{Kind: KindNil} }
func VoidVal() Value              { return Value{Kind: KindVoid} }
func RecordVal(r *RecordInstance) Value {
	if r == nil {
		return NilVal()
	}
	return Value{Kind: KindRecord, Record: r}
}

// IsNil reports whether this value is nil. A record-typed binding holding
// Nil has Kind == KindNil as well (spec §3), so it reports true for that
// too.
func (v Value) IsNil() bool { return v.Kind == KindNil }

func (v Value) TypeName() string {
	if v.Kind == KindRecord {
		return v.Record.TypeName
	}
	return v.Kind.String()
}

// Printable renders a value the way `print` concatenates it (spec §4.7).
// Callers must reject Record and Void before calling this.
func (v Value) Printable() string {
	switch v.Kind {
	case KindInt:
		return fmt.Sprintf("%d", v.Int)
	case KindString:
		return v.Str
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindNil:
		return "nil"
	default:
		return ""
	}
}
