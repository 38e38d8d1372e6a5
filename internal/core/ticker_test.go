package core

import (
	"testing"
	"time"
)

func TestLoopDeliversTicks(t *testing.T) {
	loop := StartLoop(1000)
	defer loop.Stop()

	select {
	case <-loop.C():
	case <-time.After(time.Second):
		t.Fatal("no tick delivered within a second")
	}
}

func TestLoopStopIsIdempotent(t *testing.T) {
	loop := StartLoop(1000)
	loop.Stop()
	loop.Stop()
	loop.Stop()
}

func TestLoopDefaultsInvalidRate(t *testing.T) {
	loop := StartLoop(0)
	defer loop.Stop()

	select {
	case <-loop.C():
	case <-time.After(time.Second):
		t.Fatal("loop with defaulted rate delivered no tick")
	}
}
