package dks

import "bytes"

// Split returns the ordered sequence of payloads between occurrences of
// sep (which may be multiple bytes), as independently-owned buffers.
func (d *Dks) Split(sep []byte) []*Dks {
	if len(sep) == 0 {
		return []*Dks{d.Dup()}
	}
	var out []*Dks
	rest := d.buf
	for {
		idx := bytes.Index(rest, sep)
		if idx < 0 {
			out = append(out, New(rest))
			return out
		}
		out = append(out, New(rest[:idx]))
		rest = rest[idx+len(sep):]
	}
}

// isHexDigit and hexVal support the \xHH escape in SplitArgs.
func hexVal(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10, true
	default:
		return 0, false
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// SplitArgs is the REPL-style line splitter: double-quoted segments
// support the escapes \n \r \t \a \b and \xHH; single-quoted segments are
// taken verbatim except for the escaped quote \'; unquoted segments end
// at whitespace. A closing quote must be followed by whitespace or end of
// string, else ErrUnterminatedQuote.
func SplitArgs(line string) ([]string, error) {
	var out []string
	p := 0
	n := len(line)
	for {
		for p < n && isSpace(line[p]) {
			p++
		}
		if p >= n {
			return out, nil
		}
		var cur []byte
		inQuotes := false
		inSingle := false
		done := false
		for !done {
			switch {
			case inQuotes:
				if p >= n {
					return nil, ErrUnterminatedQuote
				}
				switch {
				case line[p] == '\\' && p+1 < n && line[p+1] == 'x' && p+3 < n:
					if hi, ok1 := hexVal(line[p+2]); ok1 {
						if lo, ok2 := hexVal(line[p+3]); ok2 {
							cur = append(cur, byte(hi<<4|lo))
							p += 4
							continue
						}
					}
					cur = append(cur, line[p])
					p++
				case line[p] == '\\' && p+1 < n:
					switch line[p+1] {
					case 'n':
						cur = append(cur, '\n')
					case 'r':
						cur = append(cur, '\r')
					case 't':
						cur = append(cur, '\t')
					case 'a':
						cur = append(cur, '\a')
					case 'b':
						cur = append(cur, '\b')
					case '"':
						cur = append(cur, '"')
					case '\\':
						cur = append(cur, '\\')
					default:
						cur = append(cur, line[p+1])
					}
					p += 2
				case line[p] == '"':
					if p+1 < n && !isSpace(line[p+1]) {
						return nil, ErrUnterminatedQuote
					}
					p++
					inQuotes = false
					done = true
				default:
					cur = append(cur, line[p])
					p++
				}
			case inSingle:
				if p >= n {
					return nil, ErrUnterminatedQuote
				}
				switch {
				case line[p] == '\\' && p+1 < n && line[p+1] == '\'':
					cur = append(cur, '\'')
					p += 2
				case line[p] == '\'':
					if p+1 < n && !isSpace(line[p+1]) {
						return nil, ErrUnterminatedQuote
					}
					p++
					inSingle = false
					done = true
				default:
					cur = append(cur, line[p])
					p++
				}
			default:
				if p >= n || isSpace(line[p]) {
					done = true
					break
				}
				switch line[p] {
				case '"':
					if len(cur) == 0 {
						inQuotes = true
						p++
					} else {
						cur = append(cur, line[p])
						p++
					}
				case '\'':
					if len(cur) == 0 {
						inSingle = true
						p++
					} else {
						cur = append(cur, line[p])
						p++
					}
				default:
					cur = append(cur, line[p])
					p++
				}
			}
		}
		out = append(out, string(cur))
	}
}

// CatRepr appends p to d as a quoted, escaped literal — the inverse of
// SplitArgs: non-printable bytes become \xHH, and ", \, \n, \r, \t, \a,
// \b are backslash-escaped.
func (d *Dks) CatRepr(p []byte) {
	d.Cat([]byte{'"'})
	for _, b := range p {
		switch b {
		case '"':
			d.Cat([]byte(`\"`))
		case '\\':
			d.Cat([]byte(`\\`))
		case '\n':
			d.Cat([]byte(`\n`))
		case '\r':
			d.Cat([]byte(`\r`))
		case '\t':
			d.Cat([]byte(`\t`))
		case '\a':
			d.Cat([]byte(`\a`))
		case '\b':
			d.Cat([]byte(`\b`))
		default:
			if b < 32 || b >= 127 {
				const hex = "0123456789abcdef"
				d.Cat([]byte{'\\', 'x', hex[b>>4], hex[b&0xF]})
			} else {
				d.Cat([]byte{b})
			}
		}
	}
	d.Cat([]byte{'"'})
}
