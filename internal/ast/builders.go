package ast

// The functions below build Node trees by hand, standing in for the
// external parser (out of scope, spec §1/§6) so that tests — and any
// embedder wiring up its own front end — can construct programs without
// writing out Node/With/WithList calls directly.

var zeroPos = Position{Line: 1, Column: 1}

func IntNode(v int64) *Node    { return New(IntLit, zeroPos).WithValue(v) }
func StringNode(v string) *Node { return New(StringLit, zeroPos).WithValue(v) }
func BoolNode(v bool) *Node    { return New(BoolLit, zeroPos).WithValue(v) }
func NilNode() *Node           { return New(NilLit, zeroPos) }

// VarNode references a variable or dotted field path by name, e.g. "a.b.c".
func VarNode(name string) *Node {
	return New(Var, zeroPos).WithValue(name)
}

func NegNode(op *Node) *Node { return New(Neg, zeroPos).With("op1", op) }
func NotNode(op *Node) *Node { return New(Not, zeroPos).With("op1", op) }

func BinaryNode(op string, left, right *Node) *Node {
	return New(op, zeroPos).With("op1", left).With("op2", right)
}

func NewNode(typeName string) *Node {
	return New(NewExpr, zeroPos).WithValue(typeName)
}

func CallNode(name string, args ...*Node) *Node {
	return New(FCall, zeroPos).WithValue(name).WithList("args", args)
}

func VarDefNode(name, varType string) *Node {
	return New(VarDef, zeroPos).WithValue(name).With("var_type", New(varType, zeroPos))
}

func AssignNode(name string, expr *Node) *Node {
	return New(Assign, zeroPos).WithValue(name).With("expression", expr)
}

func ReturnNode(expr *Node) *Node {
	n := New(Return, zeroPos)
	if expr != nil {
		n.With("expression", expr)
	}
	return n
}

func RaiseNode(expr *Node) *Node {
	return New(Raise, zeroPos).With("exception_type", expr)
}

func IfNode(cond *Node, then []*Node, els []*Node) *Node {
	n := New(If, zeroPos).With("condition", cond).WithList("statements", then)
	if els != nil {
		n.WithList("else_statements", els)
	}
	return n
}

func ForNode(init, cond, update *Node, body []*Node) *Node {
	return New(For, zeroPos).
		With("init", init).
		With("condition", cond).
		With("update", update).
		WithList("statements", body)
}

func CatchNode(exceptionType string, body []*Node) *Node {
	return New(Catch, zeroPos).With("exception_type", StringNode(exceptionType)).WithList("statements", body)
}

func TryNode(body []*Node, catchers ...*Node) *Node {
	return New(Try, zeroPos).WithList("statements", body).WithList("catchers", catchers)
}

// FuncNode builds a function definition. params is a list of (name, type)
// pairs built with ParamNode; returnType may be "" for a void function.
func FuncNode(name string, params []*Node, returnType string, body []*Node) *Node {
	n := New(Function, zeroPos).WithValue(name).WithList("args", params).WithList("statements", body)
	if returnType != "" {
		n.With("return_type", New(returnType, zeroPos))
	}
	return n
}

func ParamNode(name, varType string) *Node {
	return New(Param, zeroPos).WithValue(name).With("var_type", New(varType, zeroPos))
}

func FieldNode(name, varType string) *Node {
	return New(Field, zeroPos).WithValue(name).With("var_type", New(varType, zeroPos))
}

func StructNode(name string, fields ...*Node) *Node {
	return New(Struct, zeroPos).WithValue(name).WithList("fields", fields)
}

func ProgramNode(functions []*Node, structs []*Node) *Node {
	return New(Program, zeroPos).WithList("functions", functions).WithList("structs", structs)
}
