// Package storage provides price store implementations.
//
// Implementations:
//   - memory: process-local cell guarded by a reader/writer lock
package storage
