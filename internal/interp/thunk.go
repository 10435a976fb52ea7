package interp

import (
	"github.com/anushkanayak15/brewin-go/internal/ast"
	"github.com/anushkanayak15/brewin-go/internal/errors"
)

// Thunk is a deferred expression: the AST node, the environment snapshot
// it closed over at capture time, and memoized result (spec §3
// "LazyThunk"). First Force evaluates and caches; re-entering Force while
// still in progress is a cyclic-evaluation fault (spec §5).
type Thunk struct {
	expr       *ast.Node
	env        *Environment
	eval       *evalContext
	evaluated  bool
	inProgress bool
	result     Value
	err        error
}

// evalContext is the minimal slice of the interpreter a thunk needs to
// force itself — just enough to call back into expression evaluation
// without the thunk depending on the full Interpreter type.
type evalContext struct {
	evalExpr func(node *ast.Node, env *Environment) (Value, error)
}

// NewThunk captures expr under env for later forcing.
func NewThunk(expr *ast.Node, env *Environment, ec *evalContext) *Thunk {
	return &Thunk{expr: expr, env: env, eval: ec}
}

// Force evaluates the captured expression under the captured environment
// the first time it is called, caches the outcome (value or error), and
// returns the cached outcome on every subsequent call.
func (t *Thunk) Force() (Value, error) {
	if t.evaluated {
		return t.result, t.err
	}
	if t.inProgress {
		return Value{}, errors.CyclicThunk()
	}
	t.inProgress = true
	v, err := t.eval.evalExpr(t.expr, t.env)
	t.inProgress = false
	t.evaluated = true
	t.result, t.err = v, err
	return v, err
}
