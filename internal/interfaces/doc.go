// Package interfaces documents the core abstractions used throughout the application.
//
// This package consolidates interface documentation to help code agents understand
// extension points and how to implement new functionality.
//
// # Interface Categories
//
//   - backend.API: the full operation surface of the Bookhub API client
//     (internal/backend/service.go). The facade consumes the client through it,
//     and tests substitute fakes to assert exact delegation.
//   - progress.API: the two-operation subset the reading progress adapter
//     needs (internal/progress/progress.go).
//
// # Swapping the API Client
//
// To point the facade or the progress adapter at a different transport
// (a mock, a recording proxy, an in-process fake):
//
//  1. Implement the relevant interface:
//
//     type fakeAPI struct{}
//
//     func (f *fakeAPI) FetchBooks(ctx context.Context) ([]api.Book, error) { ... }
//     // ... remaining methods
//
//     var _ backend.API = (*fakeAPI)(nil)
//
//  2. Wire it in:
//
//     svc := backend.NewService(&fakeAPI{})
//     adapter := progress.NewAdapter(&fakeAPI{})
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the checks maintained in this repository.
package interfaces
