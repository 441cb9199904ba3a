package analyzer

import (
	"github.com/AndyShiue/Ende/internal/ast"
	"github.com/AndyShiue/Ende/internal/diagnostics"
	"github.com/AndyShiue/Ende/internal/tagged"
	"github.com/AndyShiue/Ende/internal/typesystem"
)

// TagFunctionCall resolves a callee name. The tag is the callee's function
// type. Resolution only reads env.
func (a *Analyzer) TagFunctionCall(f ast.FunctionCall, env *typeEnv) (*tagged.FunctionCall[typesystem.Type], errorList) {
	ty, ok := env.Find(f.Name)
	if !ok {
		return nil, diagnostics.List(diagnostics.NewError(
			diagnostics.ErrT001, // Undeclared identifier
			"Function %s is undeclared.", f.Name,
		))
	}
	if _, ok := typesystem.IsFunc(ty); !ok {
		return nil, diagnostics.List(diagnostics.NewError(
			diagnostics.ErrT002,
			"%s is called as a function, but it has type %s", f.Name, ty,
		))
	}
	return &tagged.FunctionCall[typesystem.Type]{Tag: ty, Name: f.Name}, nil
}

// tagCall checks a call. Arity is checked first and a mismatch stops there.
// Otherwise every argument is checked isolated against its positional
// parameter and one ErrT004 is collected per mismatching argument. An
// argument that fails to check at all still stops the call immediately.
func (a *Analyzer) tagCall(t *ast.Call, env *typeEnv) (typedTerm, errorList) {
	callee, errs := a.TagFunctionCall(t.Func, env.Clone())
	if errs != nil {
		return nil, errs
	}
	fn, _ := typesystem.IsFunc(callee.GetTag())

	if fn.Arity() != len(t.Args) {
		return nil, diagnostics.List(diagnostics.NewError(
			diagnostics.ErrT003,
			"Function %s expects %d argument(s), but %d are provided.",
			t.Func.Name, fn.Arity(), len(t.Args),
		))
	}

	var args []typedTerm
	if t.Args != nil {
		args = make([]typedTerm, 0, len(t.Args))
	}
	var mismatches errorList
	for i, arg := range t.Args {
		expected := fn.Params[i]
		ta, errs := a.TagTerm(arg, env.Clone())
		if errs != nil {
			return nil, errs
		}
		args = append(args, ta)
		if actual := ta.GetTag(); !typesystem.Equal(expected, actual) {
			mismatches = append(mismatches, diagnostics.NewArgumentError(
				i+1,
				"Expect term of type %s, found term of type %s.",
				expected, actual,
			))
		}
	}
	if mismatches != nil {
		return nil, mismatches
	}

	// Resolved again on the live environment for the tagged head.
	head, errs := a.TagFunctionCall(t.Func, env)
	if errs != nil {
		return nil, errs
	}
	return &tagged.Call[typesystem.Type]{Tag: fn.Return, Func: head, Args: args}, nil
}
