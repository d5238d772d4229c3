package ctxutil

import (
	"context"
	"testing"
)

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "rid-1")
	if got := RequestID(ctx); got != "rid-1" {
		t.Fatalf("want rid-1, got %q", got)
	}
}

func TestClientID_RoundTrip(t *testing.T) {
	ctx := WithClientID(context.Background(), "cid-1")
	if got := ClientID(ctx); got != "cid-1" {
		t.Fatalf("want cid-1, got %q", got)
	}
}

func TestIdentity_RoundTrip(t *testing.T) {
	ctx := WithIdentity(context.Background(), "user-1")
	if got := Identity(ctx); got != "user-1" {
		t.Fatalf("want user-1, got %q", got)
	}
}

func TestEmptyContext(t *testing.T) {
	ctx := context.Background()
	if RequestID(ctx) != "" || ClientID(ctx) != "" || Identity(ctx) != "" {
		t.Fatalf("expected empty values for empty context")
	}
}
