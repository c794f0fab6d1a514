// Package assemble builds the module text attached to the exported
// DataProcessor from up to three source fragments.
package assemble
