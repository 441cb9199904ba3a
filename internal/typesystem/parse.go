package typesystem

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/AndyShiue/Ende/internal/config"
)

// Parse reads a type expression:
//
//	I32
//	Bool                 (a name found in enums)
//	(I32, Bool) -> I32
//	(I32, ) -> I32       (the rendered form; trailing comma allowed)
//	() -> (I32) -> I32
//
// The arrow is right-associative.
func Parse(src string, enums map[string]Enum) (Type, error) {
	p := &typeParser{src: src, enums: enums}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, p.errorf("unexpected %q after type", p.src[p.pos:])
	}
	return t, nil
}

type typeParser struct {
	src   string
	pos   int
	enums map[string]Enum
}

func (p *typeParser) errorf(format string, args ...interface{}) *ParseError {
	return &ParseError{Src: p.src, Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

func (p *typeParser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *typeParser) accept(s string) bool {
	p.skipSpace()
	if len(p.src)-p.pos >= len(s) && p.src[p.pos:p.pos+len(s)] == s {
		p.pos += len(s)
		return true
	}
	return false
}

func (p *typeParser) parseType() (Type, error) {
	if p.peek() != '(' {
		return p.parseName()
	}
	p.pos++

	var params []Type
	for p.peek() != ')' {
		param, err := p.parseType()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if !p.accept(",") {
			break
		}
	}
	if !p.accept(")") {
		return nil, p.errorf("expected ')'")
	}
	if !p.accept("->") {
		return nil, p.errorf("expected '->' after parameter list")
	}
	ret, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if params == nil {
		params = []Type{}
	}
	return Func{Params: params, Return: ret}, nil
}

func (p *typeParser) parseName() (Type, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !isIdentRune(r, p.pos == start) {
			break
		}
		p.pos += size
	}
	if start == p.pos {
		return nil, p.errorf("expected a type")
	}
	name := p.src[start:p.pos]
	if name == config.IntTypeName {
		return I32{}, nil
	}
	if name == config.UnitTypeName {
		return Unit(), nil
	}
	if e, ok := p.enums[name]; ok {
		return e, nil
	}
	return nil, NewUnknownTypeError(name)
}

// IsIdent reports whether s is a valid type or binding name: a letter or
// underscore followed by letters, digits and underscores.
func IsIdent(s string) bool {
	for i, r := range s {
		if !isIdentRune(r, i == 0) {
			return false
		}
	}
	return s != ""
}

func isIdentRune(r rune, first bool) bool {
	if r == utf8.RuneError {
		return false
	}
	return r == '_' || unicode.IsLetter(r) || (!first && unicode.IsDigit(r))
}
