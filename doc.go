// Package pocketplan projects a personal account balance forward in time
// given a starting balance plus a set of recurring and one-time cash-flow
// events.
//
// The core functionalities include:
//   - Occurrence generation: lazy, strictly increasing sequences of the
//     calendar dates on which a recurring item applies.
//   - Balance projection: the net balance as of any target date, anchored on
//     an initial balance valid from a tracking start date.
//   - Calendar marking: a date-to-category index used to annotate a
//     calendar view across a bounded range.
//   - Data persistence: a key-value snapshot of all item collections and
//     settings, decoded defensively so malformed entries never take the
//     whole state down.
//
// All engine functions are pure over their inputs: the only state is the
// externally-owned item collections, passed by value into each call, so
// concurrent callers are always safe.
//
// This package serves as the foundational logic for the `ppl` command-line
// tool.
package pocketplan
