// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - WordStore: Word persistence (internal/vocabulary/service.go)
//   - Pinger: Database health checks (internal/http/health.go)
//
// ## External Service Interfaces
//
//   - dictionary.Client: Word definitions (internal/dictionary/client.go)
//
// ## Command Layer Interfaces
//
//   - http.WordService: Operations exposed over HTTP (internal/http/words.go)
//   - cli.WordService: Operations exposed as subcommands (internal/cli/words.go)
//
// # Adding a New Dictionary Provider
//
// To add a new word definition source:
//
//  1. Implement Client in internal/dictionary/
//
//     type WiktionaryClient struct {
//         httpClient *http.Client
//     }
//
//     func (c *WiktionaryClient) Fetch(ctx context.Context, word string) (Outcome, error)
//     func (c *WiktionaryClient) Name() string
//
//     var _ Client = (*WiktionaryClient)(nil)
//
//  2. Return NotFound() for unknown words and wrap transport failures with ErrService
//     so the vocabulary service can classify them.
//
//  3. Configure in internal/entrypoint/app.go
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the current list.
package interfaces
