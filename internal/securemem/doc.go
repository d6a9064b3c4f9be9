// Package securemem provides the guarded buffer that holds the only allowed
// in-memory representation of plaintext key material.
//
// A Buffer owns a fixed number of bytes for its whole lifetime. The backing
// memory is locked against paging (mlock) when the platform allows it, and is
// overwritten with zeros on every release path: explicit Zeroize, Destroy, and
// a finalizer backstop for buffers abandoned without either.
//
// Buffers are not safe for concurrent use. Each one is exclusively owned by
// the operation that created it and must be destroyed inside that operation's
// scope, normally with defer.
package securemem
