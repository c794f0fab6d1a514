// Package app wires configuration, logging and the pipeline services, and
// drives a build end to end.
package app
