// Package reconcile computes and applies the minimal state transition
// needed to bring an auto-attendant menu to a desired greeting
// configuration.
//
// # Architecture
//
// The package separates decision from execution:
//
//  1. BuildPlan is a pure function diffing the current menu against the
//     desired target, producing a typed plan (none, set_default, or
//     set_custom with an optional upload step). Keeping it pure makes the
//     no-op and upload-skip rules independently testable.
//
//  2. Engine.Reconcile executes a plan for one auto-attendant: fetch
//     details, plan on a deep copy, upload the asset if required, then
//     submit the full updated configuration. A plan of ActionNone returns
//     before any mutating call, so repeated runs against converged state
//     issue zero uploads and zero updates.
//
//  3. Engine.ReconcileAll fans out one goroutine per auto-attendant and
//     collects a positional Outcome per entity. Failures are captured, not
//     propagated, so one entity's error never aborts its siblings.
//
// # Ordering
//
// The upload always precedes the settings update: the menu must never be
// marked custom while the referenced asset does not exist remotely.
package reconcile
