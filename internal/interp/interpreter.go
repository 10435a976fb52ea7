// Package interp is the tree-walking core of the Brewin interpreter:
// value model, environment, struct/function registries, the call-by-need
// thunk engine, and the expression/statement evaluator (spec §2-§7).
package interp

import (
	"github.com/anushkanayak15/brewin-go/internal/ast"
	"github.com/anushkanayak15/brewin-go/internal/errors"
	"github.com/anushkanayak15/brewin-go/internal/host"
)

// Interpreter ties the function table, struct registry, and host
// together and drives a single program run (spec §2 "Flow").
type Interpreter struct {
	funcs   *FunctionTable
	structs *StructRegistry
	host    host.Host
	ec      *evalContext
}

// New builds an interpreter reporting output/input/errors through h.
func New(h host.Host) *Interpreter {
	ip := &Interpreter{
		funcs:   NewFunctionTable(),
		structs: NewStructRegistry(),
		host:    h,
	}
	ip.ec = &evalContext{evalExpr: ip.evalExpr}
	return ip
}

// Run registers the program's struct types and functions, then invokes
// main with no arguments (spec §2 "Flow"). Any error is also reported to
// the host before being returned, so callers that only care about exit
// status can ignore the return value and inspect the host.
func (ip *Interpreter) Run(program *ast.Node) error {
	if err := ip.registerStructs(program.GetList("structs")); err != nil {
		ip.reportAndReturn(err)
		return err
	}
	if err := ip.registerFunctions(program.GetList("functions")); err != nil {
		ip.reportAndReturn(err)
		return err
	}
	if err := ip.validateSignatures(); err != nil {
		ip.reportAndReturn(err)
		return err
	}

	_, err := ip.callFunction("main", nil, NewEnvironment())
	if err != nil {
		if re, ok := asRaised(err); ok {
			uncaught := errors.UncaughtRaise(re.Value)
			ip.reportAndReturn(uncaught)
			return uncaught
		}
		ip.reportAndReturn(err)
		return err
	}
	return nil
}

func (ip *Interpreter) reportAndReturn(err error) {
	if be, ok := errors.As(err); ok {
		ip.host.Error(be.Kind, be.Message)
		return
	}
	ip.host.Error(host.FaultError, err.Error())
}

func (ip *Interpreter) registerStructs(nodes []*ast.Node) error {
	for _, n := range nodes {
		name, _ := n.Value().(string)
		if err := ip.structs.Reserve(name); err != nil {
			return err
		}
	}
	for _, n := range nodes {
		name, _ := n.Value().(string)
		var fields []FieldDecl
		for _, f := range n.GetList("fields") {
			fname, _ := f.Value().(string)
			ftype := f.Get("var_type").Type
			fields = append(fields, FieldDecl{Name: fname, Type: ftype})
		}
		if err := ip.structs.Define(name, fields); err != nil {
			return err
		}
	}
	return nil
}

func (ip *Interpreter) registerFunctions(nodes []*ast.Node) error {
	for _, n := range nodes {
		name, _ := n.Value().(string)
		var params []ParamDecl
		for _, p := range n.GetList("args") {
			pname, _ := p.Value().(string)
			ptype := p.Get("var_type").Type
			params = append(params, ParamDecl{Name: pname, Type: ptype})
		}
		returnType := ""
		if rt := n.Get("return_type"); rt != nil {
			returnType = rt.Type
		}
		fn := &Function{
			Name:       name,
			Params:     params,
			ReturnType: returnType,
			Body:       n.GetList("statements"),
		}
		if err := ip.funcs.Register(fn); err != nil {
			return err
		}
	}
	return nil
}

// validateSignatures checks every registered function's parameter and
// return types against the now-complete struct registry, surfacing a
// TYPE error for a bad signature even on a path main never reaches
// (SPEC_FULL.md §4, grounded on interpreterv3.py's struct-then-function
// registration order).
func (ip *Interpreter) validateSignatures() error {
	for _, fn := range ip.funcs.funcs {
		for _, p := range fn.Params {
			if !ip.structs.IsDeclaredType(p.Type) {
				return errors.UndefinedStruct(p.Type)
			}
		}
		if fn.ReturnType != "" && !ip.structs.IsDeclaredType(fn.ReturnType) {
			return errors.UndefinedStruct(fn.ReturnType)
		}
	}
	return nil
}
