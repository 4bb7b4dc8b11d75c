// Package wshost serves the host Transport contract over WebSocket.
//
// Every WebSocket message is one CBOR-encoded Frame. A client sends call
// frames and receives exactly one reply frame per call, matched by id.
// Events are broadcast to every connected client.
//
//	call   {t: "call",  id, ch, m, a}
//	reply  {t: "reply", id, r | e}
//	event  {t: "event", ch, m, a}
//
// Unset optional values travel as CBOR null.
package wshost
