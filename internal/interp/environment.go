package interp

import "github.com/anushkanayak15/brewin-go/internal/errors"

// binding is what a name maps to in a scope: either an already-evaluated
// Value, or a Thunk that produces one on first force (spec §3).
type binding struct {
	value Value
	thunk *Thunk
	lazy  bool
}

func valueBinding(v Value) *binding { return &binding{value: v} }
func thunkBinding(t *Thunk) *binding { return &binding{thunk: t, lazy: true} }

// Force resolves a binding to its Value, forcing its thunk (if any) at
// most once; the cell keeps pointing at the same thunk afterward so
// repeat reads are O(1) (spec §4.4 "Variable reference").
func (b *binding) Force() (Value, error) {
	if !b.lazy {
		return b.value, nil
	}
	return b.thunk.Force()
}

// scope is one block: function body, if/else branch, for body, or
// try/catch body (spec §3 "Block scope"). Scopes chain via outer; a
// function-call root scope has outer == nil so lookup never walks past
// it into a caller's frame (spec §4.1 invariant).
type scope struct {
	vars  map[string]*binding
	outer *scope
}

func newScope(outer *scope) *scope {
	return &scope{vars: make(map[string]*binding), outer: outer}
}

// Environment is the block-scope stack of a single activation record
// (spec §3 "Environment"/§4.1).
type Environment struct {
	top *scope
}

// NewEnvironment creates the root environment of a fresh activation
// record (push_func, spec §4.1): it has no outer scope, so it never
// crosses into a caller's frame.
func NewEnvironment() *Environment {
	return &Environment{top: newScope(nil)}
}

// PushBlock enters a new nested block scope.
func (e *Environment) PushBlock() {
	e.top = newScope(e.top)
}

// PopBlock exits the innermost block scope.
func (e *Environment) PopBlock() {
	if e.top.outer != nil {
		e.top = e.top.outer
	}
}

// Create defines name in the innermost scope with the given binding. It
// fails if name already exists in that scope (spec §4.1).
func (e *Environment) Create(name string, v Value) error {
	if _, exists := e.top.vars[name]; exists {
		return errors.DuplicateVariable(name)
	}
	e.top.vars[name] = valueBinding(v)
	return nil
}

// CreateThunk defines name bound to a thunk (used for parameter binding,
// spec §4.5 step 3). Parameters are never duplicates within one call, so
// this does not check for collisions the way Create does — the evaluator
// guarantees uniqueness of parameter names at function-definition time is
// the parser's job, out of scope here.
func (e *Environment) CreateThunk(name string, t *Thunk) {
	e.top.vars[name] = thunkBinding(t)
}

// lookup walks scopes innermost-out within this activation record only.
func (e *Environment) lookup(name string) (*binding, bool) {
	for s := e.top; s != nil; s = s.outer {
		if b, ok := s.vars[name]; ok {
			return b, true
		}
	}
	return nil, false
}

// Get resolves name to a forced Value, per spec §4.4 "Variable reference":
// missing name is a NAME error raised at force time, not at capture time.
func (e *Environment) Get(name string) (Value, error) {
	b, ok := e.lookup(name)
	if !ok {
		return Value{}, errors.UndefinedVariable(name)
	}
	return b.Force()
}

// Has reports whether name is bound anywhere in this activation record,
// without forcing it.
func (e *Environment) Has(name string) bool {
	_, ok := e.lookup(name)
	return ok
}

// SetThunk replaces the binding for an existing name with a thunk (used
// by assignment, spec §4.6 — lazy at first read). Fails if name is
// undefined in this activation record.
func (e *Environment) SetThunk(name string, t *Thunk) error {
	s := e.scopeOf(name)
	if s == nil {
		return errors.UndefinedVariable(name)
	}
	s.vars[name] = thunkBinding(t)
	return nil
}

// SetValue replaces the binding for an existing name with an already
// evaluated value. Fails if name is undefined in this activation record.
func (e *Environment) SetValue(name string, v Value) error {
	s := e.scopeOf(name)
	if s == nil {
		return errors.UndefinedVariable(name)
	}
	s.vars[name] = valueBinding(v)
	return nil
}

func (e *Environment) scopeOf(name string) *scope {
	for s := e.top; s != nil; s = s.outer {
		if _, ok := s.vars[name]; ok {
			return s
		}
	}
	return nil
}

// Snapshot captures the current block-scope chain for closure capture
// (spec §4.1 "snapshot"): a fresh chain of scopes holding the same
// binding pointers the live chain held at this instant. A later
// create/set against the live environment writes a *new* binding pointer
// into the live scope's map and never touches the snapshot's copy, so
// `x = 1; y = x; x = 2` leaves y's captured reference to x at 1 (spec §8
// "closure capture"). A binding a snapshot still points at is the very
// same cell as the live one, though: forcing a thunk through either
// mutates that one Thunk in place, so memoization is visible from both.
func (e *Environment) Snapshot() *Environment {
	return &Environment{top: copyScope(e.top)}
}

func copyScope(s *scope) *scope {
	if s == nil {
		return nil
	}
	cp := &scope{vars: make(map[string]*binding, len(s.vars)), outer: copyScope(s.outer)}
	for name, b := range s.vars {
		cp.vars[name] = b
	}
	return cp
}
