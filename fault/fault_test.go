package fault_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/lixenwraith/oolong/fault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind fault.Kind
		want string
	}{
		{fault.None, "none"},
		{fault.InvalidArgument, "invalid argument"},
		{fault.IOWriteFailure, "failed io write"},
		{fault.NoSuchElement | fault.IOReadFailure, "no such element|failed io read"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestKind_DistinctBits(t *testing.T) {
	kinds := []fault.Kind{fault.InvalidArgument, fault.NotEnoughMemory, fault.NoSuchElement, fault.IOReadFailure, fault.IOWriteFailure}
	var seen fault.Kind
	for _, k := range kinds {
		assert.Zero(t, seen&k, "kind %v overlaps", k)
		seen |= k
	}
}

func TestError_IsMatchesKind(t *testing.T) {
	err := fault.New(fault.NoSuchElement, "StackView.Element", "id 7")

	assert.True(t, errors.Is(err, fault.ErrNoSuchElement))
	assert.False(t, errors.Is(err, fault.ErrInvalidArgument))
	assert.Equal(t, fault.NoSuchElement, fault.KindOf(err))
	assert.Equal(t, "StackView.Element: no such element: id 7", err.Error())

	wrapped := fmt.Errorf("render page: %w", err)
	assert.True(t, errors.Is(wrapped, fault.ErrNoSuchElement))
	assert.Equal(t, fault.NoSuchElement, fault.KindOf(wrapped))
}

func TestWrap_NilStaysNil(t *testing.T) {
	assert.NoError(t, fault.Wrap(fault.IOWriteFailure, "op", nil))
	assert.Equal(t, fault.None, fault.KindOf(errors.New("plain")))
}

func TestOrigin_PointsAtCaller(t *testing.T) {
	err := fault.New(fault.InvalidArgument, "op", "bad")
	origin := fault.Origin(err)
	assert.Contains(t, origin, "fault_test.go:")
	assert.Contains(t, origin, "TestOrigin_PointsAtCaller")

	assert.Equal(t, "unknown", fault.Origin(errors.New("no stack")))
}

func TestReporter_Accumulate(t *testing.T) {
	var logBuf bytes.Buffer
	r := fault.NewReporter(fault.ModeAccumulate)
	r.Logger = log.New(&logBuf, "", 0)

	err := r.Record(fault.New(fault.IOReadFailure, "StackView.Render", "terminal size 0x0"))
	require.Error(t, err)
	r.Record(fault.New(fault.InvalidArgument, "Element.Render", "width alignment"))
	r.Record(fault.New(fault.InvalidArgument, "Element.Render", "again"))

	assert.Equal(t, fault.IOReadFailure|fault.InvalidArgument, r.Recorded())
	assert.True(t, r.Has(fault.IOReadFailure))
	assert.False(t, r.Has(fault.IOWriteFailure))
	assert.Equal(t, 3, strings.Count(logBuf.String(), "fault: "))

	r.Clear(fault.IOReadFailure)
	assert.Equal(t, fault.InvalidArgument, r.Recorded())

	r.ClearAll()
	assert.Equal(t, fault.None, r.Recorded())
}

func TestReporter_FailFastAborts(t *testing.T) {
	var diagnostic string
	r := &fault.Reporter{
		Mode:   fault.ModeFailFast,
		Logger: log.New(io.Discard, "", 0),
		Abort:  func(d string) { diagnostic = d },
	}

	r.Record(fault.New(fault.IOWriteFailure, "DialogView.Render", "short write"))

	require.NotEmpty(t, diagnostic)
	assert.Contains(t, diagnostic, "fault_test.go:")
	assert.Contains(t, diagnostic, "TestReporter_FailFastAborts")
	assert.Contains(t, diagnostic, "failed io write")
}

func TestReporter_NilIsPassThrough(t *testing.T) {
	var r *fault.Reporter
	err := fault.New(fault.NotEnoughMemory, "op", "huge")

	assert.Same(t, err, r.Record(err))
	assert.Equal(t, fault.None, r.Recorded())
	assert.False(t, r.Has(fault.NotEnoughMemory))
	r.Clear(fault.NotEnoughMemory)
	r.ClearAll()
}

func TestParseMode(t *testing.T) {
	m, err := fault.ParseMode("fail-fast")
	require.NoError(t, err)
	assert.Equal(t, fault.ModeFailFast, m)

	m, err = fault.ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, fault.ModeAccumulate, m)

	_, err = fault.ParseMode("explode")
	assert.True(t, errors.Is(err, fault.ErrInvalidArgument))
}
