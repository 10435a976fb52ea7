package interp

import (
	"strconv"
	"strings"

	"github.com/anushkanayak15/brewin-go/internal/ast"
	"github.com/anushkanayak15/brewin-go/internal/errors"
)

// callBuiltin dispatches the three host-backed built-ins (spec §4.7):
// print, inputi, inputs. Built-ins are checked before user functions are
// resolved, so a program cannot shadow them by defining its own print/N.
// handled is false when name isn't a built-in at all, letting the caller
// fall through to ordinary function resolution.
func (ip *Interpreter) callBuiltin(name string, args []*ast.Node, env *Environment) (Value, bool, error) {
	switch name {
	case "print":
		v, err := ip.callPrint(args, env)
		return v, true, err
	case "inputi":
		v, err := ip.callInput(args, env, false)
		return v, true, err
	case "inputs":
		v, err := ip.callInput(args, env, true)
		return v, true, err
	default:
		return Value{}, false, nil
	}
}

// callPrint concatenates the printable rendering of every argument and
// writes one line to the host (spec §4.7 "print"). Record and Void
// arguments are a TYPE error — the language has no string conversion for
// either.
func (ip *Interpreter) callPrint(args []*ast.Node, env *Environment) (Value, error) {
	var b strings.Builder
	for _, a := range args {
		v, err := ip.evalExpr(a, env)
		if err != nil {
			return Value{}, err
		}
		if v.Kind == KindRecord || v.Kind == KindVoid {
			return Value{}, errors.NotPrintable(v.TypeName())
		}
		b.WriteString(v.Printable())
	}
	ip.host.Output(b.String())
	return VoidVal(), nil
}

// callInput prints an optional single prompt argument, then blocks for
// one line of host input and parses it as int (inputi) or returns it
// verbatim (inputs) (spec §4.7 "inputi"/"inputs"). More than one
// argument is a NAME error, the same "no such builtin overload" treatment
// given to any other arity mismatch.
func (ip *Interpreter) callInput(args []*ast.Node, env *Environment, asString bool) (Value, error) {
	if len(args) > 1 {
		return Value{}, errors.TooManyInputArgs()
	}
	if len(args) == 1 {
		prompt, err := ip.evalExpr(args[0], env)
		if err != nil {
			return Value{}, err
		}
		if prompt.Kind == KindRecord || prompt.Kind == KindVoid {
			return Value{}, errors.NotPrintable(prompt.TypeName())
		}
		ip.host.Output(prompt.Printable())
	}

	line, err := ip.host.GetInput()
	if err != nil {
		return Value{}, errors.Fault("reading input: %v", err)
	}
	if asString {
		return StringVal(line), nil
	}
	n, convErr := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if convErr != nil {
		return Value{}, errors.BadInputInt(line)
	}
	return IntVal(n), nil
}
