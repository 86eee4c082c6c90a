// Package token defines the lossless token model shared by the formatter and
// the checker. Whitespace runs, line breaks, comments and preprocessor
// directives are ordinary tokens: concatenating the Text of every token in
// order reproduces the lexed source byte-for-byte.
package token
