// Package repository implements the data access layer for the Mergington
// Activities API.
//
// The repository package mediates between services and the in-memory store.
// There is no external database; the store is the only backend.
//
// # Repository Pattern
//
// Repositories follow a consistent pattern:
//
//   - Constructor function (NewXxxRepository) accepts a store
//   - Methods implement specific data operations (List, GetByName, ...)
//   - GetByName returns (nil, nil) for a missing activity; mutating methods
//     return store sentinel errors for the service layer to map
//   - Context is checked before each operation so cancelled requests do not
//     touch the registry
package repository
