// Package core defines the shared types used across the loglane library.
//
// It provides the Level type for severity filtering, the Entry type that
// represents a single log event, and the Field type for structured
// key-value pairs.
//
// Entry objects are pooled via sync.Pool so that loggers with several
// attached handlers do not allocate a fresh record per call. Callers get
// an Entry with GetEntry and must return it with PutEntry once every
// handler has consumed it.
package core
