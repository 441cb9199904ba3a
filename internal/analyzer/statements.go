package analyzer

import (
	"fmt"

	"github.com/AndyShiue/Ende/internal/ast"
	"github.com/AndyShiue/Ende/internal/tagged"
	"github.com/AndyShiue/Ende/internal/typesystem"
)

// TagStatement checks one statement. Only declarations write to env;
// every term a statement contains is checked isolated.
func (a *Analyzer) TagStatement(s ast.Statement, env *typeEnv) (tagged.Statement[typesystem.Type], errorList) {
	switch s := s.(type) {
	case *ast.TermSemicolon:
		term, errs := a.TagTerm(s.Term, env.Clone())
		if errs != nil {
			return nil, errs
		}
		// Unit whatever the term's own type is.
		return &tagged.TermSemicolon[typesystem.Type]{Tag: typesystem.Unit(), Term: term}, nil

	case *ast.Let:
		term, errs := a.TagTerm(s.Term, env.Clone())
		if errs != nil {
			return nil, errs
		}
		env.Define(s.Name, term.GetTag())
		return &tagged.Let[typesystem.Type]{Tag: typesystem.Forbidden{}, Name: s.Name, Term: term}, nil

	case *ast.LetMut:
		term, errs := a.TagTerm(s.Term, env.Clone())
		if errs != nil {
			return nil, errs
		}
		env.Define(s.Name, term.GetTag())
		return &tagged.LetMut[typesystem.Type]{Tag: typesystem.Forbidden{}, Name: s.Name, Term: term}, nil

	case *ast.Mutate:
		// The assigned type is not compared with the binding's declared type.
		term, errs := a.TagTerm(s.Term, env.Clone())
		if errs != nil {
			return nil, errs
		}
		return &tagged.Mutate[typesystem.Type]{Tag: typesystem.Forbidden{}, Name: s.Name, Term: term}, nil

	case *ast.Extern:
		env.Define(s.Name, s.Type)
		return &tagged.Extern[typesystem.Type]{Tag: typesystem.Forbidden{}, Name: s.Name, Type: s.Type}, nil
	}
	panic(fmt.Sprintf("analyzer: unexpected statement %T", s))
}
