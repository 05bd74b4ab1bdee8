package result

// Type classifies the outcome of a service operation. Handlers branch on
// the type, never on diagnostic text.
type Type int

const (
	Success Type = iota
	Invalid
	Duplicate
	NotFound
)

func (t Type) String() string {
	switch t {
	case Success:
		return "success"
	case Invalid:
		return "invalid"
	case Duplicate:
		return "duplicate"
	case NotFound:
		return "not_found"
	}
	return "unknown"
}

// Result carries the outcome of a single service operation: a
// classification, the accumulated diagnostics, and on success the produced
// entity. It is the only channel for expected business-rule failures;
// infrastructure faults travel on the ordinary error return next to it.
//
// Every AddMessage overwrites the classification, so when several rules
// fail the last appended one decides the type while all diagnostics
// survive in order.
type Result[T any] struct {
	typ      Type
	messages []string
	payload  *T
}

// New returns a fresh Result classified as Success with no messages.
func New[T any]() *Result[T] {
	return &Result[T]{typ: Success}
}

// IsSuccess reports whether the classification is still Success.
func (r *Result[T]) IsSuccess() bool {
	return r.typ == Success
}

// Type returns the current classification.
func (r *Result[T]) Type() Type {
	return r.typ
}

// AddMessage appends a diagnostic and sets the classification to t.
func (r *Result[T]) AddMessage(msg string, t Type) {
	r.messages = append(r.messages, msg)
	r.typ = t
}

// Messages returns a copy of the accumulated diagnostics, oldest first.
func (r *Result[T]) Messages() []string {
	out := make([]string, len(r.messages))
	copy(out, r.messages)
	return out
}

// SetPayload attaches the produced entity. Success path only.
func (r *Result[T]) SetPayload(v T) {
	r.payload = &v
}

// Payload returns the attached entity, or nil when none was set.
func (r *Result[T]) Payload() *T {
	return r.payload
}
