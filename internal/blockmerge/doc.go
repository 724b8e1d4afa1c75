// Package blockmerge installs and updates a delimited block of text inside a
// user-owned file without touching anything outside the block.
//
// A block is framed by a begin and an end marker line that both embed a marker
// id, so several blocks can live in one file. Merging the same body twice is a
// byte-level no-op. Every write goes through a temp file in the target's
// directory followed by a rename, so readers see either the old or the new file.
package blockmerge
