package dks

// Expected refusals are returned as ordinary errors, output left
// untouched; this includes an unrecognized or truncated header, which
// UnpackHeader/DetectClass report as errors. Contract violations
// (SizeTooLarge during growth, a wrong-sized PackHeader output buffer)
// panic instead — see class.go/dks.go/header.go.
var (
	ErrInvalidUTF8       = dksError("dks: invalid utf-8")
	ErrUnterminatedQuote = dksError("dks: unterminated quote in split_args")
)
