// Package doctor diagnoses why a Java runtime is or is not being found.
//
// A Runner executes registered Checks in order and aggregates their
// results into a DoctorReport. Checks cover JAVA_HOME, the launcher on
// PATH, the full inventory, launcher option variables, launcher
// permissions, the platform search table, and the javafind config file.
// Checks that implement Fixer can repair what they find when doctor runs
// with --fix.
package doctor
