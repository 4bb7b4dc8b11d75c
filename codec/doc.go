// Package codec converts native records and enums to and from the generic
// ordered maps the host exchanges.
//
// # Value Model
//
// A Map holds normalised values only:
//
//	┌──────────────┬──────────────────────────────┐
//	│ host type    │ Go value                     │
//	├──────────────┼──────────────────────────────┤
//	│ null         │ nil, Absent                  │
//	│ bool         │ bool                         │
//	│ int          │ int64                        │
//	│ float        │ float64                      │
//	│ string       │ string                       │
//	│ bytes        │ []byte                       │
//	│ list         │ []any                        │
//	│ map          │ *Map                         │
//	└──────────────┴──────────────────────────────┘
//
// Enums travel as their stable integer (or string) tag. Optional fields are
// always present in encoded maps; an unset one holds Absent.
//
// # Schemas
//
// Every rtc.Record type has one encoder and one decoder registered in a
// closed table keyed by RecordName. Encode and Decode select from it:
//
//	m, err := codec.Encode(rtc.RemoteStreamKey{RoomID: "r1", UID: "u1"})
//	key, err := codec.Decode[rtc.RemoteStreamKey](m)
//
// Decoding is strict. Missing required keys, wrong value types and unknown
// enum tags fail with an *errors.Error carrying the key path and the expected
// type; no defaults are substituted. Unknown extra keys are ignored.
package codec
