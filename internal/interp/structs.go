package interp

import "github.com/anushkanayak15/brewin-go/internal/errors"

// Primitive declared-type names, as they appear in var_type nodes.
const (
	TypeInt    = "int"
	TypeBool   = "bool"
	TypeString = "string"
)

func isPrimitiveType(name string) bool {
	return name == TypeInt || name == TypeBool || name == TypeString
}

// FieldDecl is one (name, declared type) pair of a struct definition.
type FieldDecl struct {
	Name string
	Type string
}

// StructType is the immutable descriptor for a declared record type
// (spec §3): a name and an ordered list of typed fields.
type StructType struct {
	Name   string
	Fields []FieldDecl
}

// StructRegistry holds every struct type declared at program start. It is
// immutable once Run begins executing functions (spec §3 "Lifecycles").
type StructRegistry struct {
	types map[string]*StructType
}

func NewStructRegistry() *StructRegistry {
	return &StructRegistry{types: make(map[string]*StructType)}
}

// Reserve registers the name of a struct before its fields are known, so
// that forward and self references in field types resolve (spec §4.3).
func (r *StructRegistry) Reserve(name string) error {
	if _, exists := r.types[name]; exists {
		return errors.DuplicateStruct(name)
	}
	r.types[name] = &StructType{Name: name}
	return nil
}

// Define finalizes a reserved struct's field list, validating each field's
// declared type against primitives and the reserved name set.
func (r *StructRegistry) Define(name string, fields []FieldDecl) error {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if seen[f.Name] {
			return errors.DuplicateField(f.Name, name)
		}
		seen[f.Name] = true
		if !isPrimitiveType(f.Type) {
			if _, ok := r.types[f.Type]; !ok {
				return errors.UndefinedFieldType(f.Type, name)
			}
		}
	}
	r.types[name].Fields = fields
	return nil
}

// Lookup returns the struct type by name, or false if undeclared.
func (r *StructRegistry) Lookup(name string) (*StructType, bool) {
	t, ok := r.types[name]
	return t, ok
}

// IsDeclaredType reports whether name is int/bool/string or a declared struct.
func (r *StructRegistry) IsDeclaredType(name string) bool {
	if isPrimitiveType(name) {
		return true
	}
	_, ok := r.types[name]
	return ok
}

// Instantiate builds a fresh record with every field set to its declared
// type's default (spec §3): 0 for int, false for bool, "" for string,
// Nil for a record-typed field.
func (r *StructRegistry) Instantiate(name string) (*RecordInstance, error) {
	t, ok := r.types[name]
	if !ok {
		return nil, errors.BadNewType(name)
	}
	inst := &RecordInstance{TypeName: name, Fields: make(map[string]Value, len(t.Fields))}
	for _, f := range t.Fields {
		inst.Fields[f.Name] = defaultValue(f.Type)
	}
	return inst, nil
}

func defaultValue(declaredType string) Value {
	switch declaredType {
	case TypeInt:
		return IntVal(0)
	case TypeBool:
		return BoolVal(false)
	case TypeString:
		return StringVal("")
	default:
		return NilVal()
	}
}
