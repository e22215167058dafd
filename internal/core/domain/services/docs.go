// Package services provides the domain services that interpret raw form
// submissions into order aggregates and fold a day's submissions into a
// dispatch summary.
//
// The package includes:
//   - SelectOrderText: picks which of the two free-text fields holds the order
//   - OrderParser: parses order text under two mutually exclusive grammars
//   - FeeSchedule: classifies a merchant name into a fee zone
//   - OrderBuilder: composes selector, parser, and fee schedule into an Order
//   - DailyAggregator: folds submission rows into a DispatchSummary
//
// Every service here is a pure function of its inputs (the builder takes the
// clock as an explicit parameter); none of them perform I/O or hold mutable
// state. Failures are normal, expected outcomes modeled as typed errors, never
// panics: parse failures carry a classification precise enough for the caller
// to pick the matching correction template.
package services
