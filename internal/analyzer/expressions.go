package analyzer

import (
	"fmt"

	"github.com/AndyShiue/Ende/internal/ast"
	"github.com/AndyShiue/Ende/internal/diagnostics"
	"github.com/AndyShiue/Ende/internal/tagged"
	"github.com/AndyShiue/Ende/internal/typesystem"
)

// TagTerm checks one term.
func (a *Analyzer) TagTerm(t ast.Term, env *typeEnv) (typedTerm, errorList) {
	switch t := t.(type) {
	case *ast.Literal:
		return &tagged.Literal[typesystem.Type]{Tag: typesystem.I32{}, Value: t.Value}, nil
	case *ast.Var:
		return a.tagVar(t, env)
	case *ast.Infix:
		return a.tagInfix(t, env)
	case *ast.Call:
		return a.tagCall(t, env)
	case *ast.Scope:
		return a.tagScope(t, env)
	case *ast.If:
		return a.tagIf(t, env)
	case *ast.While:
		return a.tagWhile(t, env)
	case *ast.Stmt:
		return a.tagStmt(t, env)
	}
	panic(fmt.Sprintf("analyzer: unexpected term %T", t))
}

func (a *Analyzer) tagVar(t *ast.Var, env *typeEnv) (typedTerm, errorList) {
	ty, ok := env.Find(t.Name)
	if !ok {
		return nil, diagnostics.List(diagnostics.NewError(
			diagnostics.ErrT001, // Undeclared identifier
			"Undeclared variable %s.", t.Name,
		))
	}
	return &tagged.Var[typesystem.Type]{Tag: ty, Name: t.Name}, nil
}

// tagInfix checks the left operand isolated and the right operand threaded.
// Both must be I32.
func (a *Analyzer) tagInfix(t *ast.Infix, env *typeEnv) (typedTerm, errorList) {
	left, errs := a.TagTerm(t.Left, env.Clone())
	if errs != nil {
		return nil, errs
	}
	right, errs := a.TagTerm(t.Right, env)
	if errs != nil {
		return nil, errs
	}

	leftTy, rightTy := left.GetTag(), right.GetTag()
	if !typesystem.Equal(leftTy, typesystem.I32{}) || !typesystem.Equal(rightTy, typesystem.I32{}) {
		return nil, diagnostics.List(diagnostics.NewError(
			diagnostics.ErrT005,
			"The left-hand-side of %s has type %s, but the right-hand-side of it has type %s.",
			t.Op, leftTy, rightTy,
		))
	}
	return &tagged.Infix[typesystem.Type]{Tag: leftTy, Left: left, Op: t.Op, Right: right}, nil
}

// tagScope threads the environment into the block: bindings made inside a
// scope used as a value stay visible after it.
func (a *Analyzer) tagScope(t *ast.Scope, env *typeEnv) (typedTerm, errorList) {
	block, errs := a.TagBlock(t.Block, env)
	if errs != nil {
		return nil, errs
	}
	return &tagged.Scope[typesystem.Type]{Tag: block.GetTag(), Block: block}, nil
}

// tagIf checks the condition and both branches isolated. The condition's
// type is not constrained; the branches must agree.
func (a *Analyzer) tagIf(t *ast.If, env *typeEnv) (typedTerm, errorList) {
	cond, errs := a.TagTerm(t.Cond, env.Clone())
	if errs != nil {
		return nil, errs
	}
	then, errs := a.TagTerm(t.Then, env.Clone())
	if errs != nil {
		return nil, errs
	}
	els, errs := a.TagTerm(t.Else, env.Clone())
	if errs != nil {
		return nil, errs
	}

	thenTy, elseTy := then.GetTag(), els.GetTag()
	if !typesystem.Equal(thenTy, elseTy) {
		return nil, diagnostics.List(diagnostics.NewError(
			diagnostics.ErrT006,
			"The term of the then part has type %s, but that of the else part has type %s.",
			thenTy, elseTy,
		))
	}
	return &tagged.If[typesystem.Type]{Tag: thenTy, Cond: cond, Then: then, Else: els}, nil
}

// tagWhile checks the condition isolated and the body threaded, so bindings
// made in the body are visible after the loop.
func (a *Analyzer) tagWhile(t *ast.While, env *typeEnv) (typedTerm, errorList) {
	cond, errs := a.TagTerm(t.Cond, env.Clone())
	if errs != nil {
		return nil, errs
	}
	if !typesystem.Equal(cond.GetTag(), typesystem.I32{}) {
		return nil, diagnostics.List(diagnostics.NewError(
			diagnostics.ErrT007,
			"The condition of a while loop should be of type I32",
		))
	}

	body, errs := a.TagBlock(t.Body, env)
	if errs != nil {
		return nil, errs
	}
	return &tagged.While[typesystem.Type]{Tag: body.GetTag(), Cond: cond, Body: body}, nil
}

// tagStmt delegates to the statement rule on the live environment.
func (a *Analyzer) tagStmt(t *ast.Stmt, env *typeEnv) (typedTerm, errorList) {
	stmt, errs := a.TagStatement(t.Stmt, env)
	if errs != nil {
		return nil, errs
	}
	return &tagged.Stmt[typesystem.Type]{Tag: typesystem.Unit(), Stmt: stmt}, nil
}
