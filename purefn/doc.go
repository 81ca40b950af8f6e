// Package purefn memoizes functions by a key the caller derives from their
// arguments.
//
// Memoize is not a general purpose cache. It asks the developer to decide:
//
//	→ "What makes two calls the same call?"
//
// The answer is the key function. Everything else follows: one table per
// wrapped function, filled on the first successful call for a key and kept
// for as long as the wrapped function is reachable. There is no eviction,
// no expiry and no persistence.
//
// Features:
//   - Memoize, MemoizeI2, MemoizeI3: typed decorators for common arities.
//   - Wrap: one-shot form with full type inference.
//   - HashKey, StringKey, Identity, KeyBy: building blocks for key functions.
//   - Hit policies: presence (default) or truthiness of the cached value.
//   - Debug logging of every hit and miss through zap.
//
// Errors returned by the key function or the wrapped function are passed
// through untouched and never cached, so a failed call is retried next time.
//
// Tables are safe for concurrent use, but concurrent misses on the same key
// are not coalesced: each caller runs the wrapped function and the last
// store wins.
//
// WARNING: Do not memoize functions whose result depends on anything other
// than their arguments (time, I/O, globals) unless stale results are fine.
package purefn
