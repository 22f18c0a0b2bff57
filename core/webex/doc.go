// Package webex provides the Webex Calling API surface used by the greeting
// manager: the directory operations (locations, auto-attendant listing and
// details), the configuration update call, and the greeting upload action of
// the provisioning API.
//
// # Client
//
// The Client interface exposes exactly the operations this tool consumes, so
// tests can simulate directories and failures with the mock in
// core/webex/mocks without network access.
//
// # Identifiers
//
// Public API identifiers are opaque base64 strings wrapping a
// "ciscospark://" URI. The provisioning API addresses entities by the bare
// UUID instead; DecodeUUID performs that translation.
//
// # Usage
//
//	client, err := webex.NewClient(cfg.Webex)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	me, err := client.Me(ctx)
package webex
