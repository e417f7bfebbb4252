// Package report renders analysis results: underlined console sections and
// tables on one side, PNG charts written at a fixed resolution on the other.
// The console output is the program's deliverable and goes to stdout;
// diagnostics stay on the logger.
package report
