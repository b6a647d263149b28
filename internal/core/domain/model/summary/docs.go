// Package summary provides the DailySummary aggregate: the end-of-day
// rollup of a business day's orders. One row exists per calendar day; after
// the shift close deletes the day's live orders, the summary is the only
// record of that day's figures.
//
// Aggregation rule: only FECHADO and DELIVERY orders count. Open tables and
// cancelled orders contribute nothing to revenue, counts or average ticket.
package summary
