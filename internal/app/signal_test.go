//go:build unix

package app

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/atomicstack/numcanvas/internal/screen"
	"github.com/atomicstack/numcanvas/internal/testutil"
)

func TestHangupStopsRunAndRestores(t *testing.T) {
	ctx, stop := signalContext(context.Background())
	defer stop()

	gw := testutil.NewGateway(25, 80)
	sent := false
	c := newTestController(t, gw, testutil.NewClock(), WithSleep(func(time.Duration) {
		if !sent {
			sent = true
			if err := syscall.Kill(syscall.Getpid(), syscall.SIGHUP); err != nil {
				t.Fatalf("kill: %v", err)
			}
		}
		select {
		case <-ctx.Done():
		case <-time.After(2 * time.Second):
			t.Fatalf("expected hangup to cancel the run context")
		}
	}))
	if err := c.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}
	if gw.Raw() || gw.Restored() != 1 {
		t.Fatalf("expected terminal restored after hangup, raw=%v restored=%d", gw.Raw(), gw.Restored())
	}
	if c.Screen(screen.Menu).Canvas() != nil {
		t.Fatalf("expected canvases released after hangup")
	}
}
