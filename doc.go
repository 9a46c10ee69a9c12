// Package biztrack provides the data model and reporting engine for a
// personal sales-tracking tool built around a simulated business game.
// It is designed to be local-first and auditable: every sale, product and
// customer record lives in plain append-only CSV stores, and every report
// is recomputed from a full in-memory snapshot of those stores.
//
// The core functionalities include:
//   - Ledger Management: an append-only record of completed sales plus the
//     mutable product catalog and customer list, loaded as one immutable
//     snapshot for the duration of a report run.
//   - Compound Fields: a pipe/colon codec that lets a single ledger column
//     carry a variable-length list of line items (products sold, materials
//     consumed) with a lossless round-trip guarantee.
//   - Aggregation: independent grouping passes over the snapshot (by day,
//     by customer, by product) accumulating derived statistics per group.
//   - Profitability: per-product economics (unit cost, margin, profit per
//     batch and per hour) derived from the catalog entry alone.
//   - Reports: deterministically ordered summary tables (daily, customer,
//     product, raw detail) plus numeric trend series for charts.
//
// This package serves as the foundational logic for the `bzt` command-line
// tool; rendering to the console and to spreadsheets lives in the renderer
// and xlsx packages.
package biztrack
