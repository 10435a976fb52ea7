package errors

// Message catalog: one constant per recurring message shape, plus
// constructor functions so call sites read as what failed rather than as
// a format string.

const (
	msgUndefinedVariable  = "undefined variable: %s"
	msgUndefinedFunction  = "function %s taking %d args not found"
	msgDuplicateVariable  = "duplicate definition for variable %s"
	msgDuplicateFunction  = "duplicate definition for function %s/%d"
	msgDuplicateStruct    = "duplicate definition for type %s"
	msgDuplicateField     = "duplicate field %s in struct %s"
	msgUndefinedStruct    = "undefined struct type %s"
	msgUndefinedFieldType = "unknown field type %s in struct %s"
	msgUndefinedField     = "field %s not found in struct %s"
	msgTooManyInputArgs   = "no inputi/inputs function that takes more than 1 parameter"

	msgTypeMismatchBinary = "incompatible types for %s operation: %s and %s"
	msgTypeMismatchUnary  = "incompatible type for %s operation: %s"
	msgNotAStruct         = "cannot access field %s of non-record type %s"
	msgNotBool            = "expected bool, got %s"
	msgNotInt             = "expected int, got %s"
	msgNotString          = "expected string, got %s"
	msgBadNewType         = "cannot instantiate undeclared struct type %s"
	msgBadReturnType      = "return value %s is not compatible with declared return type %s"
	msgBadRaiseType       = "raise expression must evaluate to a string, got %s"
	msgNotPrintable       = "value of type %s is not printable"
	msgBadInputInt        = "could not parse %q as an integer"

	msgNilDereference = "field access on nil value %s"
	msgDiv0           = "div0"
	msgCyclicThunk    = "cyclic evaluation detected"
	msgUncaughtRaise  = "uncaught exception: %s"
)

func UndefinedVariable(name string) *BrewinError { return Name(msgUndefinedVariable, name) }

func UndefinedFunction(name string, arity int) *BrewinError {
	return Name(msgUndefinedFunction, name, arity)
}

func DuplicateVariable(name string) *BrewinError { return Name(msgDuplicateVariable, name) }

func DuplicateFunction(name string, arity int) *BrewinError {
	return Name(msgDuplicateFunction, name, arity)
}

func DuplicateStruct(name string) *BrewinError { return Name(msgDuplicateStruct, name) }

func DuplicateField(field, structName string) *BrewinError {
	return Name(msgDuplicateField, field, structName)
}

func UndefinedStruct(name string) *BrewinError { return Type(msgUndefinedStruct, name) }

func UndefinedFieldType(fieldType, structName string) *BrewinError {
	return Type(msgUndefinedFieldType, fieldType, structName)
}

func UndefinedField(field, structName string) *BrewinError {
	return Name(msgUndefinedField, field, structName)
}

func TooManyInputArgs() *BrewinError { return Name(msgTooManyInputArgs) }

func TypeMismatchBinary(op, leftType, rightType string) *BrewinError {
	return Type(msgTypeMismatchBinary, op, leftType, rightType)
}

func TypeMismatchUnary(op, operandType string) *BrewinError {
	return Type(msgTypeMismatchUnary, op, operandType)
}

func NotAStruct(field, typeName string) *BrewinError { return Type(msgNotAStruct, field, typeName) }

func NotBool(typeName string) *BrewinError { return Type(msgNotBool, typeName) }

func NotInt(typeName string) *BrewinError { return Type(msgNotInt, typeName) }

func NotString(typeName string) *BrewinError { return Type(msgNotString, typeName) }

func BadNewType(name string) *BrewinError { return Type(msgBadNewType, name) }

func BadReturnType(got, want string) *BrewinError { return Type(msgBadReturnType, got, want) }

func BadRaiseType(typeName string) *BrewinError { return Type(msgBadRaiseType, typeName) }

func NotPrintable(typeName string) *BrewinError { return Type(msgNotPrintable, typeName) }

func BadInputInt(raw string) *BrewinError { return Type(msgBadInputInt, raw) }

func NilDereference(path string) *BrewinError { return Fault(msgNilDereference, path) }

// Div0 is the string carried by the exception integer division by zero
// raises (spec §4.4/§4.6); it is a user-level exception, not itself a
// BrewinError, since it is catchable.
const Div0 = msgDiv0

func CyclicThunk() *BrewinError { return Fault(msgCyclicThunk) }

func UncaughtRaise(value string) *BrewinError { return Fault(msgUncaughtRaise, value) }
