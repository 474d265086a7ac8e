package fault

import (
	"fmt"
	"log"
	"os"
)

// Mode selects what a Reporter does after recording
type Mode uint8

const (
	// ModeAccumulate records and returns, the caller checks explicitly
	ModeAccumulate Mode = iota
	// ModeFailFast aborts on the first recorded error
	ModeFailFast
)

func (m Mode) String() string {
	switch m {
	case ModeAccumulate:
		return "accumulate"
	case ModeFailFast:
		return "fail-fast"
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// ParseMode resolves "accumulate" or "fail-fast"
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "accumulate":
		return ModeAccumulate, nil
	case "fail-fast", "failfast":
		return ModeFailFast, nil
	}
	return ModeAccumulate, Newf(InvalidArgument, "fault.ParseMode", "unknown mode %q", s)
}

// Reporter accumulates the kinds of recorded errors
// A nil *Reporter is valid: Record returns the error untouched
type Reporter struct {
	Mode Mode

	// Logger receives one line per recorded error, nil uses log.Default()
	Logger *log.Logger

	// Abort is called with a diagnostic in ModeFailFast, nil prints to stderr and exits 1
	Abort func(diagnostic string)

	recorded Kind
}

// NewReporter creates a reporter in the given mode
func NewReporter(mode Mode) *Reporter {
	return &Reporter{Mode: mode}
}

// Record stores err's kind and returns err so callers can write `return r.Record(err)`
func (r *Reporter) Record(err error) error {
	if r == nil || err == nil {
		return err
	}

	r.recorded |= KindOf(err)

	origin := Origin(err)
	r.logger().Printf("fault: %v (%s)", err, origin)

	if r.Mode == ModeFailFast {
		r.abort(fmt.Sprintf("%s: %v", origin, err))
	}
	return err
}

// Recorded returns every kind recorded since the last clear
func (r *Reporter) Recorded() Kind {
	if r == nil {
		return None
	}
	return r.recorded
}

// Has reports whether any kind in k has been recorded
func (r *Reporter) Has(k Kind) bool {
	return r.Recorded()&k != 0
}

// Clear forgets the given kinds
func (r *Reporter) Clear(k Kind) {
	if r == nil {
		return
	}
	r.recorded &^= k
}

// ClearAll forgets every recorded kind
func (r *Reporter) ClearAll() {
	if r == nil {
		return
	}
	r.recorded = None
}

func (r *Reporter) logger() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.Default()
}

func (r *Reporter) abort(diagnostic string) {
	if r.Abort != nil {
		r.Abort(diagnostic)
		return
	}
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mOOLONG FAULT: %s\x1b[0m\r\n", diagnostic)
	os.Exit(1)
}
