package interp

import (
	"testing"

	"github.com/anushkanayak15/brewin-go/internal/ast"
	berrors "github.com/anushkanayak15/brewin-go/internal/errors"
)

func TestThunkForceMemoizesResult(t *testing.T) {
	calls := 0
	ec := &evalContext{evalExpr: func(_ *ast.Node, _ *Environment) (Value, error) {
		calls++
		return IntVal(42), nil
	}}
	th := NewThunk(ast.IntNode(42), NewEnvironment(), ec)

	v1, err := th.Force()
	if err != nil {
		t.Fatalf("first Force: %v", err)
	}
	v2, err := th.Force()
	if err != nil {
		t.Fatalf("second Force: %v", err)
	}
	if v1.Int != 42 || v2.Int != 42 {
		t.Errorf("got %+v, %+v, want int 42 both times", v1, v2)
	}
	if calls != 1 {
		t.Errorf("evalExpr called %d times, want 1 (Force must memoize)", calls)
	}
}

func TestThunkForceMemoizesError(t *testing.T) {
	calls := 0
	ec := &evalContext{evalExpr: func(_ *ast.Node, _ *Environment) (Value, error) {
		calls++
		return Value{}, berrors.UndefinedVariable("z")
	}}
	th := NewThunk(ast.VarNode("z"), NewEnvironment(), ec)

	if _, err := th.Force(); err == nil {
		t.Fatal("expected an error from the first Force")
	}
	if _, err := th.Force(); err == nil {
		t.Fatal("expected the cached error from the second Force")
	}
	if calls != 1 {
		t.Errorf("evalExpr called %d times, want 1 (errors memoize too)", calls)
	}
}

// TestThunkCyclicForceIsFault covers spec §5's cyclic-evaluation case: a
// thunk whose own evaluation re-enters Force on itself must fault rather
// than recurse forever.
func TestThunkCyclicForceIsFault(t *testing.T) {
	var th *Thunk
	ec := &evalContext{evalExpr: func(_ *ast.Node, _ *Environment) (Value, error) {
		return th.Force()
	}}
	th = NewThunk(ast.IntNode(0), NewEnvironment(), ec)

	_, err := th.Force()
	be, ok := berrors.As(err)
	if !ok {
		t.Fatalf("expected *errors.BrewinError, got %T (%v)", err, err)
	}
	if be.Kind != "FAULT_ERROR" {
		t.Errorf("expected FAULT_ERROR, got %s", be.Kind)
	}
}
