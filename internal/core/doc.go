// Package core provides the partner-file validation engine.
//
// This package contains all domain logic independent of any CLI or
// transport layer: it can be driven by a command-line tool, an ingestion
// orchestrator, or tests without modification.
//
// # Pipeline
//
// One call to [Engine.ValidateFile] runs the full pipeline:
//
//  1. The contract for (partner, file key) is resolved from the store.
//  2. The file extension is checked against the contract before any read.
//  3. The contract's columns and type rules compile into a [RowSchema].
//  4. The file is opened, decoded from the contract's encoding, and read
//     with the contract's separator; the first row must equal the
//     contract's column list exactly.
//  5. Up to the requested sample of data rows is normalized and checked
//     against the schema, aborting on the first violation.
//
// # Type Rules
//
// Rules are looked up by name in a single table: string, email, sha256,
// and email_or_sha256 are built in, and [RegisterRule] adds more at init
// time. Unknown rule names fall back to string; the fallback is logged so
// misconfigured contracts are auditable rather than silently permissive.
//
// # Error Handling
//
// Every contract violation surfaces as one [*ValidationError] with a
// [Kind] (config, format, structure, row type) and diagnostic context.
// The engine reports a single error per call; nothing is accumulated.
package core
