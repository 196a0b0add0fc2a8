// Package fuzztests houses Go fuzz harnesses that exercise the script
// front end (source -> scanner -> parser). Its goal is to smoke test
// robustness and guard against panics or allocator explosions on arbitrary
// inputs: the scanner and parser are total, so no byte sequence may crash
// them or escape without a token stream and a tree.
package fuzztests
