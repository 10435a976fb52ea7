package interp

import (
	"strings"

	"github.com/anushkanayak15/brewin-go/internal/ast"
	"github.com/anushkanayak15/brewin-go/internal/errors"
)

// evalExpr is the recursive expression evaluator (spec §4.4). It is
// wired into every Thunk via evalContext, so a lazily-bound parameter or
// assignment RHS is evaluated by the exact same code path as any other
// expression.
func (ip *Interpreter) evalExpr(n *ast.Node, env *Environment) (Value, error) {
	switch n.Type {
	case ast.IntLit:
		v, _ := n.Value().(int64)
		return IntVal(v), nil
	case ast.StringLit:
		v, _ := n.Value().(string)
		return StringVal(v), nil
	case ast.BoolLit:
		v, _ := n.Value().(bool)
		return BoolVal(v), nil
	case ast.NilLit:
		return NilVal(), nil
	case ast.Var:
		name, _ := n.Value().(string)
		return ip.resolveFieldPath(strings.Split(name, "."), env)
	case ast.NewExpr:
		typeName, _ := n.Value().(string)
		inst, err := ip.structs.Instantiate(typeName)
		if err != nil {
			return Value{}, err
		}
		return RecordVal(inst), nil
	case ast.Neg:
		return ip.evalNeg(n, env)
	case ast.Not:
		return ip.evalNot(n, env)
	case ast.FCall:
		name, _ := n.Value().(string)
		return ip.callFunction(name, n.GetList("args"), env)
	}
	if ast.BinaryOps[n.Type] {
		return ip.evalBinary(n, env)
	}
	return Value{}, errors.Fault("unrecognized expression %s", n.Type)
}

func (ip *Interpreter) evalNeg(n *ast.Node, env *Environment) (Value, error) {
	operand, err := ip.evalExpr(n.Get("op1"), env)
	if err != nil {
		return Value{}, err
	}
	if operand.Kind != KindInt {
		return Value{}, errors.TypeMismatchUnary(ast.Neg, operand.TypeName())
	}
	return IntVal(-operand.Int), nil
}

func (ip *Interpreter) evalNot(n *ast.Node, env *Environment) (Value, error) {
	operand, err := ip.evalExpr(n.Get("op1"), env)
	if err != nil {
		return Value{}, err
	}
	b, err := coerceBool(operand)
	if err != nil {
		return Value{}, err
	}
	return BoolVal(!b), nil
}

// evalBinary dispatches the full binary-operator set (spec §4.4
// "Binary operators"): && and || short-circuit their right operand, ==
// and != accept any pair of types, and the rest require two ints — except
// + which also concatenates two strings.
func (ip *Interpreter) evalBinary(n *ast.Node, env *Environment) (Value, error) {
	left := n.Get("op1")
	right := n.Get("op2")

	switch n.Type {
	case ast.And:
		lv, err := ip.evalExpr(left, env)
		if err != nil {
			return Value{}, err
		}
		lb, err := coerceBool(lv)
		if err != nil {
			return Value{}, err
		}
		if !lb {
			return BoolVal(false), nil
		}
		rv, err := ip.evalExpr(right, env)
		if err != nil {
			return Value{}, err
		}
		rb, err := coerceBool(rv)
		if err != nil {
			return Value{}, err
		}
		return BoolVal(rb), nil

	case ast.Or:
		lv, err := ip.evalExpr(left, env)
		if err != nil {
			return Value{}, err
		}
		lb, err := coerceBool(lv)
		if err != nil {
			return Value{}, err
		}
		if lb {
			return BoolVal(true), nil
		}
		rv, err := ip.evalExpr(right, env)
		if err != nil {
			return Value{}, err
		}
		rb, err := coerceBool(rv)
		if err != nil {
			return Value{}, err
		}
		return BoolVal(rb), nil
	}

	lv, err := ip.evalExpr(left, env)
	if err != nil {
		return Value{}, err
	}
	rv, err := ip.evalExpr(right, env)
	if err != nil {
		return Value{}, err
	}

	switch n.Type {
	case ast.Eq:
		return BoolVal(valuesEqual(lv, rv)), nil
	case ast.Ne:
		return BoolVal(!valuesEqual(lv, rv)), nil
	}

	if n.Type == ast.Add && lv.Kind == KindString && rv.Kind == KindString {
		return StringVal(lv.Str + rv.Str), nil
	}

	if lv.Kind != KindInt || rv.Kind != KindInt {
		return Value{}, errors.TypeMismatchBinary(n.Type, lv.TypeName(), rv.TypeName())
	}

	switch n.Type {
	case ast.Add:
		return IntVal(lv.Int + rv.Int), nil
	case ast.Sub:
		return IntVal(lv.Int - rv.Int), nil
	case ast.Mul:
		return IntVal(lv.Int * rv.Int), nil
	case ast.Div:
		if rv.Int == 0 {
			return Value{}, raise(errors.Div0)
		}
		return IntVal(lv.Int / rv.Int), nil
	case ast.Lt:
		return BoolVal(lv.Int < rv.Int), nil
	case ast.Le:
		return BoolVal(lv.Int <= rv.Int), nil
	case ast.Gt:
		return BoolVal(lv.Int > rv.Int), nil
	case ast.Ge:
		return BoolVal(lv.Int >= rv.Int), nil
	}

	return Value{}, errors.Fault("unrecognized binary operator %s", n.Type)
}
