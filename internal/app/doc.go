// Package app wires application dependencies for the CLI.
//
// It builds the keystore and the signing service from Config, exposing
// them via the Wire struct for commands to use. The memory-locking policy
// is fixed here, once, and passed down explicitly.
package app
