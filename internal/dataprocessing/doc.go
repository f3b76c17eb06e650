// Package dataprocessing implements the media post cleaning and analytics
// pipeline: schema validation, type normalization, filtering, the five
// aggregate queries and their paired insight generators.
//
// The pipeline is linear and side-effect free:
//
//	RawTable -> ValidateSchema -> Normalize -> (cached) Dataset
//	Dataset  -> Filter -> aggregate functions -> insight generators
//
// Every stage returns a new value; nothing is mutated in place. Validation
// and normalization failures are reported with *SchemaError and
// *TypeConversionError so callers can surface a complete message to the
// user. Aggregators and insight generators never fail for structurally
// valid datasets; empty input produces empty output.
package dataprocessing
