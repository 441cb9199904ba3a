package diagnostics

// ErrorCode identifies the kind of a diagnostic.
type ErrorCode string

// Type checker errors (T prefix)
const (
	ErrT001 ErrorCode = "T001" // undeclared identifier (variable or function)
	ErrT002 ErrorCode = "T002" // not callable
	ErrT003 ErrorCode = "T003" // arity mismatch
	ErrT004 ErrorCode = "T004" // argument type mismatch
	ErrT005 ErrorCode = "T005" // operand type mismatch
	ErrT006 ErrorCode = "T006" // branch type mismatch
	ErrT007 ErrorCode = "T007" // while condition type mismatch
	ErrT008 ErrorCode = "T008" // annotation not supported for this payload
)

// Input errors
const (
	ErrD001 ErrorCode = "D001" // malformed bare tree document
	ErrC001 ErrorCode = "C001" // invalid prelude configuration
)

var codeNames = map[ErrorCode]string{
	ErrT001: "UndeclaredIdentifier",
	ErrT002: "NotCallable",
	ErrT003: "ArityMismatch",
	ErrT004: "ArgumentTypeMismatch",
	ErrT005: "OperandTypeMismatch",
	ErrT006: "BranchTypeMismatch",
	ErrT007: "ConditionTypeMismatch",
	ErrT008: "Unsupported",
	ErrD001: "MalformedTree",
	ErrC001: "InvalidConfig",
}

// Name returns the descriptive name of the code, or the code itself.
func (c ErrorCode) Name() string {
	if n, ok := codeNames[c]; ok {
		return n
	}
	return string(c)
}
