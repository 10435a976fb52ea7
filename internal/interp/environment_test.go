package interp

import (
	"testing"

	"github.com/anushkanayak15/brewin-go/internal/ast"
	berrors "github.com/anushkanayak15/brewin-go/internal/errors"
)

func mustName(t *testing.T, err error) {
	t.Helper()
	be, ok := berrors.As(err)
	if !ok {
		t.Fatalf("expected *errors.BrewinError, got %T (%v)", err, err)
	}
	if be.Kind != "NAME_ERROR" {
		t.Errorf("expected NAME_ERROR, got %s", be.Kind)
	}
}

func TestEnvironmentCreateAndGet(t *testing.T) {
	env := NewEnvironment()
	if err := env.Create("x", IntVal(5)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	v, err := env.Get("x")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v.Kind != KindInt || v.Int != 5 {
		t.Errorf("got %+v, want int 5", v)
	}
}

func TestEnvironmentCreateDuplicateIsNameError(t *testing.T) {
	env := NewEnvironment()
	if err := env.Create("x", IntVal(1)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := env.Create("x", IntVal(2))
	mustName(t, err)
}

func TestEnvironmentGetUndefinedIsNameError(t *testing.T) {
	env := NewEnvironment()
	_, err := env.Get("nope")
	mustName(t, err)
}

func TestEnvironmentBlockScopingShadowsAndUnwinds(t *testing.T) {
	env := NewEnvironment()
	if err := env.Create("x", IntVal(1)); err != nil {
		t.Fatalf("Create outer: %v", err)
	}

	env.PushBlock()
	if err := env.Create("x", IntVal(2)); err != nil {
		t.Fatalf("Create inner shadow: %v", err)
	}
	v, err := env.Get("x")
	if err != nil {
		t.Fatalf("Get inner: %v", err)
	}
	if v.Int != 2 {
		t.Errorf("inner x = %d, want 2 (shadowing the outer binding)", v.Int)
	}
	env.PopBlock()

	v, err = env.Get("x")
	if err != nil {
		t.Fatalf("Get after pop: %v", err)
	}
	if v.Int != 1 {
		t.Errorf("x after PopBlock = %d, want 1 (outer binding restored)", v.Int)
	}
}

func TestEnvironmentRootHasNoOuterScope(t *testing.T) {
	env := NewEnvironment()
	if env.top.outer != nil {
		t.Error("a fresh activation record's root scope must have outer == nil")
	}
}

// TestEnvironmentSnapshotIsPointInTimeCopy is the regression test for the
// Snapshot aliasing bug: a snapshot must not observe a rebind that happens
// on the live environment afterward (spec §8 closure capture).
func TestEnvironmentSnapshotIsPointInTimeCopy(t *testing.T) {
	env := NewEnvironment()
	if err := env.Create("x", IntVal(1)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	snap := env.Snapshot()

	if err := env.SetValue("x", IntVal(2)); err != nil {
		t.Fatalf("SetValue: %v", err)
	}

	v, err := snap.Get("x")
	if err != nil {
		t.Fatalf("Get on snapshot: %v", err)
	}
	if v.Int != 1 {
		t.Errorf("snapshot x = %d, want 1 (snapshot must not see the later rebind)", v.Int)
	}

	live, err := env.Get("x")
	if err != nil {
		t.Fatalf("Get on live env: %v", err)
	}
	if live.Int != 2 {
		t.Errorf("live x = %d, want 2", live.Int)
	}
}

// TestEnvironmentSnapshotSharesThunkIdentity checks the other half of the
// Snapshot contract: a binding a snapshot still points at is the same cell
// as the live one, so forcing the thunk through either is memoized once.
func TestEnvironmentSnapshotSharesThunkIdentity(t *testing.T) {
	env := NewEnvironment()
	calls := 0
	ec := &evalContext{evalExpr: func(_ *ast.Node, _ *Environment) (Value, error) {
		calls++
		return IntVal(7), nil
	}}
	env.CreateThunk("y", NewThunk(nil, env, ec))

	snap := env.Snapshot()

	if _, err := snap.Get("y"); err != nil {
		t.Fatalf("Get via snapshot: %v", err)
	}
	if _, err := env.Get("y"); err != nil {
		t.Fatalf("Get via live env: %v", err)
	}
	if calls != 1 {
		t.Errorf("thunk forced %d times, want 1 (snapshot and live env share the same binding)", calls)
	}
}
