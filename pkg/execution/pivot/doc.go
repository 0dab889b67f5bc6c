// Package pivot reshapes a grouped table into a wider one: the distinct
// values of a pivot column become output columns, and each cell holds an
// aggregate of a value column over the rows sharing that group and pivot
// value.
//
// The package is the thin, strict layer between a host pipeline and the
// grouping engine. It resolves the operation name against a closed set of
// six aggregations, gates both named columns on their dtypes before any
// computation runs, consumes exactly one upstream artifact, and translates
// every failure into a structured Error that carries the offending value
// and its source span.
//
// Invocations are synchronous, stateless between calls, and never retried.
package pivot
