// Package domain contains the user record and the rules that apply to it:
// the email heuristic, optional field validation, and the lossless textual
// encodings used to move a record in and out of the program.
//
// Nothing here performs I/O. Every function is safe for concurrent use.
package domain
