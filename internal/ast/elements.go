package ast

// Element types the interpreter switches on. Mirrors spec §6's node table.
const (
	Program  = "program"
	Function = "function"
	Param    = "param"
	Struct   = "struct"
	Field    = "field"

	IntLit    = "int"
	StringLit = "string"
	BoolLit   = "bool"
	NilLit    = "nil"
	Var       = "var"
	FCall     = "fcall"
	NewExpr   = "new"
	Neg       = "neg"
	Not       = "!"

	VarDef = "vardef"
	Assign = "="
	If     = "if"
	For    = "for"
	Return = "return"
	Raise  = "raise"
	Try    = "try"
	Catch  = "catch"

	Add = "+"
	Sub = "-"
	Mul = "*"
	Div = "/"
	Lt  = "<"
	Le  = "<="
	Gt  = ">"
	Ge  = ">="
	Eq  = "=="
	Ne  = "!="
	And = "&&"
	Or  = "||"
)

// BinaryOps is the set of element types handled by the binary-operator
// dispatch table (arithmetic, comparison, equality, logical).
var BinaryOps = map[string]bool{
	Add: true, Sub: true, Mul: true, Div: true,
	Lt: true, Le: true, Gt: true, Ge: true,
	Eq: true, Ne: true, And: true, Or: true,
}
