// Package veedor provides the reconciliation and aggregation engine behind a
// monthly consumer-debt dashboard for public officials. It is designed to be
// local-first and fully deterministic: every derivation is a pure function of
// the loaded dataset snapshot, the current selection and the valuation mode.
//
// The core functionalities include:
//   - Identity Resolution: merging two independently sourced registry
//     snapshots (legislators and officials) into a single addressable entity
//     space with stable, shareable slugs.
//   - Time-Series Aggregation: grouping raw per-institution monthly debt
//     records into per-entity, per-month series suitable for multi-entity
//     overlay charts.
//   - Currency Normalization: rescaling monetary magnitudes into nominal,
//     inflation-adjusted or dollar-converted values using the index tables
//     shipped with the dataset.
//   - Milestone Reconciliation: filtering, merging and coloring timeline
//     annotations relevant to the selected entities.
//   - Selection Management: a bounded, ordered, colored multi-select with a
//     URL-safe wire encoding for sharing.
//
// This package serves as the foundational logic for the `veedor` command-line
// tool; chart widgets and other rendering surfaces are thin consumers of its
// outputs.
package veedor
