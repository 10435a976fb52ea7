package interp

import (
	"fmt"

	"github.com/anushkanayak15/brewin-go/internal/ast"
	"github.com/anushkanayak15/brewin-go/internal/errors"
)

// ParamDecl is one (name, declared type) pair of a function signature.
type ParamDecl struct {
	Name string
	Type string
}

// Function is the immutable descriptor for a declared function (spec §3).
type Function struct {
	Name       string
	Params     []ParamDecl
	ReturnType string // "" for a void function
	Body       []*ast.Node
}

func (f *Function) Arity() int { return len(f.Params) }

type funcKey struct {
	name  string
	arity int
}

// FunctionTable registers and resolves functions keyed by (name, arity)
// (spec §4.2): dispatch keys must be unique, and built-ins are dispatched
// before this table is ever consulted.
type FunctionTable struct {
	funcs map[funcKey]*Function
}

func NewFunctionTable() *FunctionTable {
	return &FunctionTable{funcs: make(map[funcKey]*Function)}
}

// Register adds fn, failing with a NAME error if (name, arity) collides
// with an already-registered function (spec §3 invariant).
func (t *FunctionTable) Register(fn *Function) error {
	key := funcKey{fn.Name, fn.Arity()}
	if _, exists := t.funcs[key]; exists {
		return errors.DuplicateFunction(fn.Name, fn.Arity())
	}
	t.funcs[key] = fn
	return nil
}

// Resolve looks up a function by (name, arity), failing with a NAME error
// on arity mismatch or unknown name (spec §4.2/§4.5 step 1).
func (t *FunctionTable) Resolve(name string, arity int) (*Function, error) {
	fn, ok := t.funcs[funcKey{name, arity}]
	if !ok {
		return nil, errors.UndefinedFunction(name, arity)
	}
	return fn, nil
}

func (f *Function) String() string {
	return fmt.Sprintf("%s/%d", f.Name, f.Arity())
}
