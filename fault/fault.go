// Package fault defines the error kinds reported by the toolkit and the
// Reporter that records them.
//
// Every fallible operation reports exactly one Kind. Kinds are bit flags so a
// Reporter can accumulate the set of kinds seen since it was last cleared.
package fault

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// Kind classifies a failure, values are bit flags
type Kind uint8

const (
	None            Kind = 0
	InvalidArgument Kind = 1 << (iota - 1)
	NotEnoughMemory
	NoSuchElement
	IOReadFailure
	IOWriteFailure
)

var kindNames = [...]struct {
	kind Kind
	name string
}{
	{InvalidArgument, "invalid argument"},
	{NotEnoughMemory, "not enough memory"},
	{NoSuchElement, "no such element"},
	{IOReadFailure, "failed io read"},
	{IOWriteFailure, "failed io write"},
}

// String names a single kind, or every kind in a combined mask joined by '|'
func (k Kind) String() string {
	if k == None {
		return "none"
	}
	var parts []string
	for _, kn := range kindNames {
		if k&kn.kind != 0 {
			parts = append(parts, kn.name)
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return strings.Join(parts, "|")
}

// Error is a classified failure with the operation that produced it
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// Sentinels for errors.Is comparisons by kind
var (
	ErrInvalidArgument = &Error{Kind: InvalidArgument}
	ErrNotEnoughMemory = &Error{Kind: NotEnoughMemory}
	ErrNoSuchElement   = &Error{Kind: NoSuchElement}
	ErrIORead          = &Error{Kind: IOReadFailure}
	ErrIOWrite         = &Error{Kind: IOWriteFailure}
)

func (e *Error) Error() string {
	var sb strings.Builder
	if e.Op != "" {
		sb.WriteString(e.Op)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Kind.String())
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind when target carries no op or cause
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Op != "" || t.Err != nil {
		return t == e
	}
	return t.Kind == e.Kind
}

// New creates a classified error, capturing the caller's stack
func New(kind Kind, op, msg string) error {
	return &Error{Kind: kind, Op: op, Err: errors.New(msg)}
}

// Newf is New with a format string
func Newf(kind Kind, op, format string, args ...any) error {
	return &Error{Kind: kind, Op: op, Err: errors.Errorf(format, args...)}
}

// Wrap classifies an underlying error, nil stays nil
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: errors.WithStack(err)}
}

// KindOf returns the kind of the first *Error in err's chain, None otherwise
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return None
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// selfPrefix filters this package's own frames out of Origin
var selfPrefix = reflect.TypeOf(Error{}).PkgPath() + "."

// Origin formats "file:line function" for the first frame outside this package
// that created err, or "unknown" when err carries no stack
func Origin(err error) string {
	var st stackTracer
	if !errors.As(err, &st) {
		return "unknown"
	}
	for _, f := range st.StackTrace() {
		fn := runtime.FuncForPC(uintptr(f) - 1)
		if fn != nil && strings.HasPrefix(fn.Name(), selfPrefix) {
			continue
		}
		return fmt.Sprintf("%s:%d %n", f, f, f)
	}
	return "unknown"
}
