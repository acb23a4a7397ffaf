// Package core provides the business logic for the inventory service.
//
// This package contains all item rules independent of the HTTP layer. It can
// be used by web handlers, the CLI, or tests without modification.
//
// # Architecture
//
//   - Validation: ordered, short-circuiting checks on create and edit input.
//     Only the first failing rule is reported.
//   - Service: the entry point for create, edit, delete, list, get and export.
//     It depends on a [Store], injected at construction.
//   - Export: [RenderCSV] serializes items; [Service.Export] writes the text to
//     a uniquely named transient file that the caller serves and then removes.
//
// # Error Handling
//
// Rule violations surface as typed errors the transport maps to status codes:
//
//   - [ValidationError]: bad or missing input (400)
//   - [ConflictError]: duplicate SKU on create (400)
//   - [NotFoundError]: edit or delete of an unknown SKU (404)
//
// Anything else is a store or file failure; [MapError] turns it into a
// user-facing message with a support code.
package core
