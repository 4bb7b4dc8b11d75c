// Package bridge multiplexes host channels onto native instances.
//
// # Channels
//
// Every addressable object has a channel named <namespace><kind> for
// singletons or <namespace><kind>#<id> otherwise:
//
//	plugin             root operations
//	engine             the engine singleton
//	room#7             room 7
//	spatial_audio#7    spatial audio facet of room 7
//	range_audio#7      range audio facet of room 7
//	media_player#1     media player 1
//	ktv_manager        karaoke manager singleton
//	ktv_player#a       karaoke player a
//	audio_mixing_manager  audio mixing facet of the engine
//	video_effect          video effect facet of the engine
//	sing_scoring_manager  singing score manager singleton
//
// # Calls
//
// Dispatcher resolves the channel through the registry, picks the method
// from the kind's Table and replies exactly once. Methods decode their
// arguments with a codec.Reader and return a record, a scalar or nil:
//
//	bridge.Table{
//	    "leaveRoom": bridge.Native(func(room rtc.Room, args *codec.Reader) (any, error) {
//	        return nil, room.LeaveRoom()
//	    }),
//	}
//
// # Events
//
// Native callbacks encode their payload on the calling goroutine and hand
// it to Emitter, which delivers on the host loop. Events for destroyed
// instances are dropped. One-shot results that need request metadata go
// through Completions.
package bridge
