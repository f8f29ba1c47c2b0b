// Package demo runs a list of scenarios through a vitals.Monitor and prints a
// human-readable report of each evaluation.
package demo
