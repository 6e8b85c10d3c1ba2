// Package cli turns command-line arguments into a validated config.Config.
package cli
