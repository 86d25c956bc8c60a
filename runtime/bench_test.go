package runtime

import (
	"context"
	"testing"
)

// BenchmarkExecute measures the round trip of one call through the queue,
// the worker, and the reply channel.
func BenchmarkExecute(b *testing.B) {
	ctx := context.Background()

	rt, err := New(ctx)
	if err != nil {
		b.Fatal(err)
	}
	defer rt.Close(ctx)

	// Warmup
	if _, err := rt.Execute(ctx, "1 + 1"); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rt.Execute(ctx, "1 + 1"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSubmitWait measures pipelined submission: all calls are queued
// before any reply is consumed, so the worker never idles between scripts.
func BenchmarkSubmitWait(b *testing.B) {
	ctx := context.Background()

	rt, err := New(ctx)
	if err != nil {
		b.Fatal(err)
	}
	defer rt.Close(ctx)

	if _, err := rt.Execute(ctx, "1 + 1"); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	calls := make([]*Call, 0, b.N)
	for i := 0; i < b.N; i++ {
		call, err := rt.Submit(ctx, "1 + 1")
		if err != nil {
			b.Fatal(err)
		}
		calls = append(calls, call)
	}
	for _, call := range calls {
		if _, err := call.Wait(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkExecute_ConsoleOutput includes console capture in the round trip.
func BenchmarkExecute_ConsoleOutput(b *testing.B) {
	ctx := context.Background()

	rt, err := New(ctx)
	if err != nil {
		b.Fatal(err)
	}
	defer rt.Close(ctx)

	if _, err := rt.Execute(ctx, `console.log("warm")`); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rt.Execute(ctx, `console.log("bench")`); err != nil {
			b.Fatal(err)
		}
	}
}
