package ptysession_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tuicore/vtengine/ptysession"
	"github.com/tuicore/vtengine/ptysession/testfixtures"
	"github.com/tuicore/vtengine/units"
)

// TestSessionEchoHelloRoundTrip covers S6: spawn `echo hello`, expect the
// concatenated Output to be "hello\r\n", then Exit(0), and Drain reporting
// status 0.
func TestSessionEchoHelloRoundTrip(t *testing.T) {
	cfg := ptysession.Config{
		Program: "echo",
		Args:    []string{"hello"},
		Cols:    units.ColWidth(80),
		Rows:    units.RowHeight(24),
	}
	sess, err := ptysession.Spawn(cfg, nil)
	require.NoError(t, err)

	output, code, timedOut := testfixtures.ReadLinesAndDrain(sess.Events, 5*time.Second)
	require.False(t, timedOut)
	require.Equal(t, "hello\r\n", string(output))
	require.Equal(t, 0, code)

	require.Equal(t, 0, sess.Drain())
}

// TestSessionNonZeroExit covers a failing command surfacing its real exit
// code through both the Exit event and Drain.
func TestSessionNonZeroExit(t *testing.T) {
	cfg := ptysession.Config{
		Program: "sh",
		Args:    []string{"-c", "exit 3"},
		Cols:    units.ColWidth(80),
		Rows:    units.RowHeight(24),
	}
	sess, err := ptysession.Spawn(cfg, nil)
	require.NoError(t, err)

	_, code, timedOut := testfixtures.ReadLinesAndDrain(sess.Events, 5*time.Second)
	require.False(t, timedOut)
	require.Equal(t, 3, code)
	require.Equal(t, 3, sess.Drain())
}

// TestSessionOscCaptureRoutesThroughBuffer confirms that when OscCapture is
// enabled, raw output never reaches the Events channel as EventOutput —
// the parser consumes it into the screen.Buffer instead, and Buffer()
// exposes it non-nil.
func TestSessionOscCaptureRoutesThroughBuffer(t *testing.T) {
	cfg := ptysession.Config{
		Program:    "echo",
		Args:       []string{"hello"},
		Cols:       units.ColWidth(80),
		Rows:       units.RowHeight(24),
		OscCapture: true,
	}
	sess, err := ptysession.Spawn(cfg, nil)
	require.NoError(t, err)
	require.NotNil(t, sess.Buffer())

	output, code, timedOut := testfixtures.ReadLinesAndDrain(sess.Events, 5*time.Second)
	require.False(t, timedOut)
	require.Empty(t, output)
	require.Equal(t, 0, code)
}
