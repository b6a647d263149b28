// Package kernel provides shared value objects used across all aggregates:
// UUID for entity identity and Money for exact monetary amounts.
// Both are immutable and enforce their invariants at construction.
package kernel
