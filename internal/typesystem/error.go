package typesystem

import "fmt"

// UnknownTypeError indicates a type name was not found
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown type: %s", e.Name)
}

func NewUnknownTypeError(name string) *UnknownTypeError {
	return &UnknownTypeError{Name: name}
}

// ParseError reports malformed type syntax at a byte offset.
type ParseError struct {
	Src    string
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("type %q: offset %d: %s", e.Src, e.Offset, e.Msg)
}
