// Package config ties named handler and formatter registries to a live
// logger. A Config is built once per subsystem: construction resolves
// the log directory, seeds a rich console handler, a file handler and a
// default formatter, then binds them to a named logger from the
// registry. Afterwards the registries can be edited and re-applied with
// Setup, or pushed onto the live logger one handler at a time with
// AddLiveHandler and RemoveLiveHandler.
package config
