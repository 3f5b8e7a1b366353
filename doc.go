// Package orion implements the ledger engine behind the Orion
// record-keeping tools: an ordered collection of income/expense records
// with validated mutations, pure filter and aggregation queries, JSONL
// persistence, and CSV/JSON import-export.
//
// The engine is deliberately synchronous and single-owner. A Ledger is
// constructed once per tool session and handed to the presentation layer;
// callers mutate it only through Add, Update and Remove, and read it only
// through snapshots, so identifier uniqueness and the validation rules
// hold for the collection's lifetime. All monetary arithmetic is exact
// decimal; rounding happens only when a value is rendered or formatted.
package orion
