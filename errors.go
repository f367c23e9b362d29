package notify

// Reason identifies which validation step rejected the input.
type Reason int

const (
	ReasonInvalidFormat    Reason = iota + 1 // wrong number or shape of '+'-joined parts
	ReasonInvalidComponent                   // unknown color or style token
	ReasonInvalidColor                       // color failure surfaced by Format
	ReasonInvalidScope                       // scope outside all/prompt/prompt_text
	ReasonInvalidRole                        // unknown role name
)

// String returns a short name for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonInvalidFormat:
		return "invalid_format"
	case ReasonInvalidComponent:
		return "invalid_component"
	case ReasonInvalidColor:
		return "invalid_color"
	case ReasonInvalidScope:
		return "invalid_scope"
	case ReasonInvalidRole:
		return "invalid_role"
	default:
		return "unknown"
	}
}

// ValueError is the single error type returned by every function in this
// package. Callers that need to branch on the cause can inspect Reason.
type ValueError struct {
	Reason Reason
	Msg    string
	Err    error // wrapped cause, set when Format re-raises a color error
}

func (e *ValueError) Error() string {
	return e.Msg
}

func (e *ValueError) Unwrap() error {
	return e.Err
}
