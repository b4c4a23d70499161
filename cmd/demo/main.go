// Command demo runs a shell behind a PTY session, composites its output
// into an offscreen buffer, and paints the diff to the host terminal —
// the same wiring cli.New/term.Start/term.RunShell/term.Wait describes for
// the teacher's embedded widget, flattened into a standalone program.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tuicore/vtengine/backend"
	"github.com/tuicore/vtengine/ptysession"
	"github.com/tuicore/vtengine/render"
	"github.com/tuicore/vtengine/units"
	"github.com/tuicore/vtengine/vtlog"

	"go.uber.org/zap"
)

func main() {
	if os.Getenv("VTENGINE_DEBUG") != "" {
		l, _ := zap.NewDevelopment()
		vtlog.SetLogger(l)
	}

	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}

	cfg := ptysession.Config{
		Program:    shell,
		Cols:       units.ColWidth(80),
		Rows:       units.RowHeight(24),
		OscCapture: true,
	}

	sess, err := ptysession.Spawn(cfg, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "vtengine demo: spawn failed:", err)
		os.Exit(1)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		sess.Close()
	}()

	comp := render.New()
	out := backend.NewDirect()
	opBuf := render.GetOpBuffer()
	defer render.PutOpBuffer(opBuf)

	for ev := range sess.Events {
		switch ev.Kind {
		case ptysession.EventOscEvents:
			for _, d := range ev.Dsr {
				_, _ = sess.Write(d.Bytes())
			}
			comp.Diff(sess.Buffer(), opBuf)
			if err := out.Paint(os.Stdout, opBuf.Ops()); err != nil {
				fmt.Fprintln(os.Stderr, "vtengine demo: paint failed:", err)
			}
		case ptysession.EventExit:
			fmt.Fprintf(os.Stderr, "vtengine demo: child exited with code %d\n", ev.Code)
		}
	}

	code := sess.Drain()
	os.Exit(code)
}
