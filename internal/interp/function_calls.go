package interp

import (
	"github.com/anushkanayak15/brewin-go/internal/ast"
)

// callFunction implements spec §4.5: resolve by (name, arity), wrap each
// actual argument in a thunk capturing callerEnv, push a fresh activation
// record with parameters bound to those thunks, run the body, and coerce
// the result to the declared return type.
func (ip *Interpreter) callFunction(name string, args []*ast.Node, callerEnv *Environment) (Value, error) {
	if v, handled, err := ip.callBuiltin(name, args, callerEnv); handled {
		return v, err
	}

	fn, err := ip.funcs.Resolve(name, len(args))
	if err != nil {
		return Value{}, err
	}

	callEnv := NewEnvironment()
	snapshot := callerEnv.Snapshot()
	for i, param := range fn.Params {
		thunk := NewThunk(args[i], snapshot, ip.ec)
		callEnv.CreateThunk(param.Name, thunk)
	}

	status, result, err := ip.execBlock(fn.Body, callEnv)
	if err != nil {
		return Value{}, err
	}
	if status != execReturn {
		result = voidOrDefault(fn.ReturnType)
	}

	return coerceToDeclaredType(result, fn.ReturnType, ip.structs)
}

// voidOrDefault yields the fall-through result of a function body that
// never executes a return: Void for a void function, else its declared
// type's default value (spec §4.5 step 4).
func voidOrDefault(returnType string) Value {
	if returnType == "" {
		return VoidVal()
	}
	return defaultValue(returnType)
}
