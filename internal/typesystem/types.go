package typesystem

import (
	"github.com/AndyShiue/Ende/internal/config"
	"strings"
)

// Type is the interface for all types in our system.
// The set of implementations is closed: Forbidden, I32, Enum and Func.
type Type interface {
	String() string
	Equals(other Type) bool
	typeNode()
}

// Forbidden marks a node that carries no meaningful type (statements, the
// program root). It must never reach a rendering call site.
type Forbidden struct{}

func (Forbidden) typeNode() {}

func (Forbidden) String() string {
	panic("typesystem: Forbidden type rendered; this is a checker bug")
}

func (Forbidden) Equals(other Type) bool {
	_, ok := other.(Forbidden)
	return ok
}

// I32 is the language's single scalar type.
type I32 struct{}

func (I32) typeNode()      {}
func (I32) String() string { return config.IntTypeName }
func (I32) Equals(other Type) bool {
	_, ok := other.(I32)
	return ok
}

// Enum is a nominal type. Two enums are equal only when both the name and the
// ordered variant list match.
type Enum struct {
	Name     string
	Variants []string
}

func (Enum) typeNode() {}

// String renders the name only.
func (t Enum) String() string { return t.Name }

func (t Enum) Equals(other Type) bool {
	o, ok := other.(Enum)
	if !ok || o.Name != t.Name || len(o.Variants) != len(t.Variants) {
		return false
	}
	for i, v := range t.Variants {
		if o.Variants[i] != v {
			return false
		}
	}
	return true
}

// HasVariant reports whether label is one of the enum's variants.
func (t Enum) HasVariant(label string) bool {
	for _, v := range t.Variants {
		if v == label {
			return true
		}
	}
	return false
}

// Func represents a function type (e.g. (I32, I32, ) -> I32).
// Parameters are matched positionally.
type Func struct {
	Params []Type
	Return Type
}

func (Func) typeNode() {}

// String writes ", " after every parameter: (I32, Bool, ) -> I32.
func (t Func) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	for _, p := range t.Params {
		sb.WriteString(p.String())
		sb.WriteString(", ")
	}
	sb.WriteString(") -> ")
	sb.WriteString(t.Return.String())
	return sb.String()
}

func (t Func) Equals(other Type) bool {
	o, ok := other.(Func)
	if !ok || len(o.Params) != len(t.Params) {
		return false
	}
	for i, p := range t.Params {
		if !Equal(p, o.Params[i]) {
			return false
		}
	}
	return Equal(t.Return, o.Return)
}

// Arity returns the declared parameter count.
func (t Func) Arity() int { return len(t.Params) }

// Equal is structural equality. It is the only compatibility check the
// checker performs: there is no subtyping and no coercion.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equals(b)
}

// Unit is the one-variant enumeration meaning "no value".
func Unit() Enum {
	return Enum{Name: config.UnitTypeName, Variants: []string{config.UnitVariantName}}
}

// IsFunc reports whether t is a function type and returns it.
func IsFunc(t Type) (Func, bool) {
	f, ok := t.(Func)
	return f, ok
}

// IsForbidden reports whether t is the Forbidden sentinel.
func IsForbidden(t Type) bool {
	_, ok := t.(Forbidden)
	return ok
}
