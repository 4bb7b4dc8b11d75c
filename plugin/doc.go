// Package plugin ties the bridge together into an attachable plugin.
//
// A Controller owns one session at a time. Attach creates the host loop,
// the instance registry and the engine, and binds the plugin and engine
// channels. Objects created through the engine get their own channels,
// bound and unbound by a registry observer, so a room is reachable on
// room#<id> exactly while it exists.
//
// Detach destroys dependents before their owners and unbinds everything.
// A later Attach starts over with a fresh engine.
package plugin
