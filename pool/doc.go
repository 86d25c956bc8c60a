// Package pool manages a fixed set of independent script runtimes.
//
// Each pooled runtime owns its own engine instance and worker goroutine, so
// scripts running on different pool members never share interpreter state.
// Instances are handed out over a channel: Acquire blocks until one is idle,
// Release returns it.
//
// For one-off scripts, Execute wraps the acquire/run/release cycle:
//
//	p, err := pool.New(ctx, 4, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer p.Close(ctx)
//
//	res, err := p.Execute(ctx, `console.log("hello")`)
//
// Hold an instance across calls when consecutive scripts must see the same
// interpreter state:
//
//	rt, err := p.Acquire(ctx)
//	if err != nil {
//		return err
//	}
//	defer p.Release(ctx, rt)
//
//	rt.Execute(ctx, "var x = 42")
//	rt.Execute(ctx, "console.log(x * 2)")
package pool
