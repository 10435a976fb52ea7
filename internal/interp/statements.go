package interp

import (
	"strings"

	"github.com/anushkanayak15/brewin-go/internal/ast"
	"github.com/anushkanayak15/brewin-go/internal/errors"
)

// execStatus reports what a block of statements did: ran off the end
// normally, or hit a return (spec §4.6 "Return"). A raise is never
// represented as a status — it propagates as an error instead, since
// try/catch needs to see it even across an intervening execBlock.
type execStatus int

const (
	execNormal execStatus = iota
	execReturn
)

// execBlock runs stmts in a fresh nested block scope of env (spec §4.1
// "Block scope"): vardefs inside are invisible once the block exits.
func (ip *Interpreter) execBlock(stmts []*ast.Node, env *Environment) (execStatus, Value, error) {
	env.PushBlock()
	defer env.PopBlock()
	return ip.execStatements(stmts, env)
}

func (ip *Interpreter) execStatements(stmts []*ast.Node, env *Environment) (execStatus, Value, error) {
	for _, s := range stmts {
		status, val, err := ip.execStatement(s, env)
		if err != nil {
			return execNormal, Value{}, err
		}
		if status == execReturn {
			return status, val, nil
		}
	}
	return execNormal, Value{}, nil
}

func (ip *Interpreter) execStatement(s *ast.Node, env *Environment) (execStatus, Value, error) {
	switch s.Type {
	case ast.VarDef:
		return execNormal, Value{}, ip.execVarDef(s, env)
	case ast.Assign:
		return execNormal, Value{}, ip.execAssign(s, env)
	case ast.FCall:
		_, err := ip.evalExpr(s, env)
		return execNormal, Value{}, err
	case ast.If:
		return ip.execIf(s, env)
	case ast.For:
		return ip.execFor(s, env)
	case ast.Return:
		if expr := s.Get("expression"); expr != nil {
			v, err := ip.evalExpr(expr, env)
			return execReturn, v, err
		}
		return execReturn, VoidVal(), nil
	case ast.Raise:
		v, err := ip.evalExpr(s.Get("exception_type"), env)
		if err != nil {
			return execNormal, Value{}, err
		}
		if v.Kind != KindString {
			return execNormal, Value{}, errors.BadRaiseType(v.TypeName())
		}
		return execNormal, Value{}, raise(v.Str)
	case ast.Try:
		return ip.execTry(s, env)
	default:
		return execNormal, Value{}, errors.Fault("unrecognized statement %s", s.Type)
	}
}

// execVarDef implements a local declaration (spec §4.6 "VarDef"): the
// variable is created in the innermost block scope holding its declared
// type's default value, same as a fresh struct field (structs.go
// defaultValue).
func (ip *Interpreter) execVarDef(s *ast.Node, env *Environment) error {
	name, _ := s.Value().(string)
	varType := s.Get("var_type").Type
	if !ip.structs.IsDeclaredType(varType) {
		return errors.UndefinedStruct(varType)
	}
	return env.Create(name, defaultValue(varType))
}

// execAssign implements assignment (spec §4.6 "Assign"). A plain variable
// target is rebound to a thunk over the RHS expression, so the RHS is not
// evaluated until the variable is next read (the Open Question on
// assignment timing is resolved as lazy-at-read). A dotted field target
// cannot be lazy the same way — RecordInstance.Fields stores Values, not
// thunks, so the field's own declared type must be known to coerce into —
// so the RHS is evaluated eagerly and the field set directly.
func (ip *Interpreter) execAssign(s *ast.Node, env *Environment) error {
	target, _ := s.Value().(string)
	expr := s.Get("expression")
	parts := strings.Split(target, ".")

	if len(parts) == 1 {
		thunk := NewThunk(expr, env.Snapshot(), ip.ec)
		return env.SetThunk(parts[0], thunk)
	}

	v, err := ip.evalExpr(expr, env)
	if err != nil {
		return err
	}
	return ip.assignFieldPath(parts, v, env)
}

func (ip *Interpreter) execIf(s *ast.Node, env *Environment) (execStatus, Value, error) {
	condVal, err := ip.evalExpr(s.Get("condition"), env)
	if err != nil {
		return execNormal, Value{}, err
	}
	cond, err := coerceBool(condVal)
	if err != nil {
		return execNormal, Value{}, err
	}
	if cond {
		return ip.execBlock(s.GetList("statements"), env)
	}
	if els := s.GetList("else_statements"); els != nil {
		return ip.execBlock(els, env)
	}
	return execNormal, Value{}, nil
}

// execFor implements the C-style for loop (spec §4.6 "For"): init runs
// once in a scope that survives the whole loop, the body gets its own
// fresh block scope every iteration, and update runs in the loop's own
// scope after each iteration.
func (ip *Interpreter) execFor(s *ast.Node, env *Environment) (execStatus, Value, error) {
	env.PushBlock()
	defer env.PopBlock()

	if init := s.Get("init"); init != nil {
		if err := ip.execAssignOrVarDef(init, env); err != nil {
			return execNormal, Value{}, err
		}
	}

	for {
		condVal, err := ip.evalExpr(s.Get("condition"), env)
		if err != nil {
			return execNormal, Value{}, err
		}
		cond, err := coerceBool(condVal)
		if err != nil {
			return execNormal, Value{}, err
		}
		if !cond {
			return execNormal, Value{}, nil
		}

		status, val, err := ip.execBlock(s.GetList("statements"), env)
		if err != nil {
			return execNormal, Value{}, err
		}
		if status == execReturn {
			return status, val, nil
		}

		if update := s.Get("update"); update != nil {
			if err := ip.execAssignOrVarDef(update, env); err != nil {
				return execNormal, Value{}, err
			}
		}
	}
}

func (ip *Interpreter) execAssignOrVarDef(s *ast.Node, env *Environment) error {
	if s.Type == ast.VarDef {
		return ip.execVarDef(s, env)
	}
	return ip.execAssign(s, env)
}

// execTry implements try/catch (spec §4.6 "Try"): a raise escaping the
// body is matched against each catcher's exception string in order; the
// first match runs, anything else (a BrewinError, or no catcher
// matching) propagates unchanged.
func (ip *Interpreter) execTry(s *ast.Node, env *Environment) (execStatus, Value, error) {
	status, val, err := ip.execBlock(s.GetList("statements"), env)
	if err == nil {
		return status, val, nil
	}
	re, ok := asRaised(err)
	if !ok {
		return execNormal, Value{}, err
	}
	for _, c := range s.GetList("catchers") {
		want, _ := c.Get("exception_type").Value().(string)
		if want == re.Value {
			return ip.execBlock(c.GetList("statements"), env)
		}
	}
	return execNormal, Value{}, err
}
