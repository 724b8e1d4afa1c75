// Package executor turns a classified gate.Variant into a concrete child
// process and runs it with the parent's standard streams.
//
// Tool resolution happens entirely before anything is spawned, so a missing
// interpreter or shell is reported without partial output. The child's exit
// status becomes shnote's own; a child killed by signal N maps to 128+N on
// POSIX systems.
package executor
