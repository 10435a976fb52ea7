package interp

import (
	"strings"

	"github.com/anushkanayak15/brewin-go/internal/errors"
)

// resolveFieldPath reads a dotted variable reference like "a.b.c" (spec
// §4.4 "Variable reference"): parts[0] is looked up (and forced) in env,
// then each remaining part walks one field deeper. A nil record anywhere
// along the chain, or a field name the record's type doesn't declare, is
// a FAULT/NAME error respectively — never a panic.
func (ip *Interpreter) resolveFieldPath(parts []string, env *Environment) (Value, error) {
	v, err := env.Get(parts[0])
	if err != nil {
		return Value{}, err
	}
	for _, field := range parts[1:] {
		next, err := stepField(v, field)
		if err != nil {
			return Value{}, err
		}
		v = next
	}
	return v, nil
}

func stepField(v Value, field string) (Value, error) {
	if v.Kind == KindNil {
		return Value{}, errors.NilDereference(field)
	}
	if v.Kind != KindRecord {
		return Value{}, errors.NotAStruct(field, v.TypeName())
	}
	fv, ok := v.Record.Fields[field]
	if !ok {
		return Value{}, errors.UndefinedField(field, v.Record.TypeName)
	}
	return fv, nil
}

// assignFieldPath writes through a dotted assignment target like "a.b.c"
// (spec §4.6 "Assign"): walks to the record owning the last field name,
// coerces val to that field's declared type, and sets it in place so
// every other reference to the same record observes the change.
func (ip *Interpreter) assignFieldPath(parts []string, val Value, env *Environment) error {
	owner, err := ip.resolveFieldPath(parts[:len(parts)-1], env)
	if err != nil {
		return err
	}
	lastField := parts[len(parts)-1]

	if owner.Kind == KindNil {
		return errors.NilDereference(strings.Join(parts, "."))
	}
	if owner.Kind != KindRecord {
		return errors.NotAStruct(lastField, owner.TypeName())
	}

	structType, ok := ip.structs.Lookup(owner.Record.TypeName)
	if !ok {
		return errors.UndefinedStruct(owner.Record.TypeName)
	}
	declType := ""
	for _, f := range structType.Fields {
		if f.Name == lastField {
			declType = f.Type
			break
		}
	}
	if declType == "" {
		return errors.UndefinedField(lastField, owner.Record.TypeName)
	}

	coerced, err := coerceToDeclaredType(val, declType, ip.structs)
	if err != nil {
		return err
	}
	owner.Record.Fields[lastField] = coerced
	return nil
}
