package logger

import (
	"context"
	"testing"

	"github.com/snipbin/snipbin/pkg/ctxutil"
)

func TestWith(t *testing.T) {
	ctx := context.Background()
	if e := With(ctx, map[string]any{"k": "v"}); e == nil {
		t.Fatal("expected non-nil entry")
	}
	if e := With(ctx, nil); e == nil {
		t.Fatal("expected non-nil entry with nil fields")
	}
}

func TestWith_CarriesRequestScopedIDs(t *testing.T) {
	ctx := ctxutil.WithRequestID(context.Background(), "req-1")
	ctx = ctxutil.WithClientID(ctx, "cli-1")
	e := With(ctx, map[string]any{"k": "v"})
	if e.Data["request_id"] != "req-1" {
		t.Fatalf("missing request_id: %v", e.Data)
	}
	if e.Data["client_id"] != "cli-1" {
		t.Fatalf("missing client_id: %v", e.Data)
	}
	if e.Data["k"] != "v" {
		t.Fatalf("missing caller field: %v", e.Data)
	}
}

func TestLoggingMethods(t *testing.T) {
	ctx := context.Background()
	// None of these should panic.
	Trace(ctx, "trace message")
	Debug(ctx, "debug: %s %d", "test", 123)
	Info(ctx, "info message")
	Warn(ctx, "warn: %.2f%%", 75.5)
	Error(ctx, "error: %t", false)
}

func TestConcurrentLogging(t *testing.T) {
	ctx := context.Background()
	done := make(chan struct{}, 10)
	for i := 0; i < 10; i++ {
		go func(id int) {
			With(ctx, map[string]any{"goroutine": id}).Info("concurrent log message")
			Info(ctx, "global log message from goroutine %d", id)
			done <- struct{}{}
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}
