// Package apperrors defines the error taxonomy shared by the arithmetic
// engines and the supporting layers, along with the process exit codes used
// by the command-line interface.
package apperrors
