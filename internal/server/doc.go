// Package server implements the MCP (Model Context Protocol) server
// exposing shape rectangularity analysis as tools.
//
// The server speaks JSON-RPC 2.0 over stdio: newline-delimited
// requests on stdin, responses on stdout. Diagnostics go to stderr so
// they never corrupt the protocol stream.
//
// # Tools
//
// Nine tools are exposed in four groups: mask information (shape_load,
// shape_methods), scoring (shape_score, shape_score_all), inspection
// (shape_geometry, shape_preview) and dataset operations
// (dataset_kinds, dataset_score, dataset_report).
//
// Tool results are returned as pretty-printed JSON wrapped in MCP's
// text content format. Tool failures map to JSON-RPC error -32000,
// malformed parameters to -32602 and unknown methods to -32601.
package server
