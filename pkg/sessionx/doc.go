// Package sessionx implements cookie-bound server-side sessions.
//
// A browser holds only an opaque random token. The backing Store keys each
// Record by the token's SHA-256 fingerprint, so the store never contains a
// value that could be replayed as a cookie. Records carry string attributes
// and expire after a sliding idle timeout.
//
// Typical use:
//
//	mgr := sessionx.NewManager(sessionx.NewMemoryStore(), sessionx.Options{})
//	handler = mgr.Middleware(handler)
//
//	// inside a handler
//	sess := sessionx.FromContext(r.Context())
//	_ = sess.Put(r.Context(), "userId", "42")
package sessionx
