package registry

import (
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	if Logger() == nil {
		t.Fatal("default logger is nil")
	}

	core, logs := observer.New(zap.DebugLevel)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Logger().Debug("concurrent read")
		}()
	}
	SetLogger(zap.New(core))
	wg.Wait()

	Logger().Info("after set")
	if got := logs.FilterMessage("after set").Len(); got != 1 {
		t.Errorf("entries = %d, want 1", got)
	}

	SetLogger(nil)
	if Logger() == nil {
		t.Error("nil SetLogger left no logger")
	}
}
