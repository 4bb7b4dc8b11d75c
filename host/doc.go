// Package host defines the host side of the bridge: the single accepting
// Loop, the Transport contract and the Call, Reply and Event messages.
//
// All call handling and event publishing runs on one Loop. Native
// goroutines never touch host state directly; they Post work to the loop,
// which runs it in FIFO order.
//
//	loop := host.NewLoop()
//	defer loop.Close()
//
//	loop.Post(func() { transport.Publish(ev) })
//
//	err := loop.Do(ctx, func() error {
//	    return controller.Attach(ctx)
//	})
//
// Memory is an in-process Transport for tests and tooling; the wshost
// package serves the same contract over WebSocket.
package host
