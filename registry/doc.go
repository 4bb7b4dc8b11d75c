// Package registry tracks the native objects the host can address.
//
// Each Instance is keyed by (Kind, ID). Engine and karaoke manager are
// singletons with the empty id; rooms and players carry host-chosen ids:
//
//	reg := registry.New()
//	inst, err := reg.Create(registry.KindRoom, "7", func(k registry.Key) (any, error) {
//	    return engine.CreateRoom(k.ID)
//	})
//
// # In-flight Safety
//
// Callers bracket every use of Instance.Native with Acquire and Release.
// Destroy removes the instance from lookups at once but defers the native
// destructor until the last in-flight user releases it, so a method that
// destroys its own instance completes normally:
//
//	if !inst.Acquire() {
//	    return errors.ErrInstanceNotFound
//	}
//	defer inst.Release()
//
// # Teardown Order
//
// DestroyAll destroys karaoke players first, then rooms and players, then
// the karaoke manager and finally the engine.
package registry
