// Package render produces the MetaDataObject export document consumed by the
// 1C configurator.
//
// The document layout is fixed: one DataProcessor with a generated uuid, the
// assembled module text in a CDATA block, and one form whose module is a
// static configuration script.
package render
