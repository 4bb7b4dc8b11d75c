// Package rtcbridge connects a host application to a native RTC engine
// through named channels.
//
// The host calls operations on channels and receives events back on the
// same channels. The bridge owns every native object it creates and routes
// each call to the right one.
//
// # Architecture Overview
//
//	rtcbridge/
//	├── rtc/             Native engine contract: objects, records, enums, handlers
//	│   └── simengine/   In-process simulated engine
//	├── codec/           Ordered maps and the record schema table
//	├── errors/          Structured errors and the host reply mapping
//	├── registry/        Live native instances keyed by (kind, id)
//	├── host/            Loop, Transport contract and in-memory transport
//	│   └── wshost/      WebSocket transport with CBOR frames
//	├── bridge/          Channel naming, dispatcher, emitter, completions, switches
//	├── plugin/          Lifecycle controller and per-kind method tables
//	├── config/          bridge.toml loading
//	└── cmd/rtcbridge/   serve, console and version commands
//
// # Quick Start
//
//	mem := host.NewMemory()
//	ctrl := plugin.New(simengine.NewFactory(), mem, plugin.Config{})
//	if _, err := ctrl.Attach(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer ctrl.Detach(ctx)
//
//	r, err := mem.Invoke(ctx, "engine", "createRTCRoom",
//	    codec.NewMap().Set("roomInsId", "7").Set("roomId", "r1"))
//
//	r, err = mem.Invoke(ctx, "room#7", "joinRoom",
//	    codec.NewMap().Set("token", token).Set("uid", "u1"))
//
// Events raised by room 7 are published on "room#7" and carry the name of
// the callback in "methodName".
//
// # Channels
//
// Singletons use the kind as their name: "plugin", "engine", "ktv_manager".
// Multi-instance kinds append the instance id: "room#7", "media_player#1",
// "audio_effect_player#0", "ktv_player#0". The "spatial_audio#7" and
// "range_audio#7" channels are facets of room 7. A configured namespace
// prefixes every name.
//
// # Errors
//
// Every failed call is answered with {code, message, kind}. Native failures
// keep the engine's code; bridge failures use the stable codes in the errors
// package.
package rtcbridge
