package dks

import "github.com/rpcpool/datakit/primitives"

// CatFmt appends a formatted string to the buffer: it recognizes exactly
// %b %B %s %S %i %I %u %U %%, consuming one arg per specifier (except
// %%), and echoes any other %X verbatim including the percent sign.
//
// Specifier meanings, matching the conventional redis-like sdscatfmt
// pairing of a narrow/wide or C/native variant per letter:
//   - %b / %B — bool, printed as "true"/"false" (%B unused by this port's
//     callers today but kept distinct from %b for format-string symmetry
//     with the other pairs; both format a bool argument identically).
//   - %s — string argument.
//   - %S — *Dks argument, appended by payload.
//   - %i — int32 argument.
//   - %I — int64 argument.
//   - %u — uint32 argument.
//   - %U — uint64 argument.
//   - %% — literal percent, consumes no argument.
func (d *Dks) CatFmt(format string, args ...interface{}) {
	ai := 0
	next := func() interface{} {
		if ai >= len(args) {
			panic("dks: cat_fmt: too few arguments for format string")
		}
		v := args[ai]
		ai++
		return v
	}
	var tmp [24]byte
	i := 0
	for i < len(format) {
		c := format[i]
		if c != '%' || i+1 >= len(format) {
			d.Cat([]byte{c})
			i++
			continue
		}
		spec := format[i+1]
		switch spec {
		case 'b', 'B':
			b := next().(bool)
			if b {
				d.Cat([]byte("true"))
			} else {
				d.Cat([]byte("false"))
			}
		case 's':
			d.Cat([]byte(next().(string)))
		case 'S':
			d.Cat(next().(*Dks).Bytes())
		case 'i':
			n := primitives.I64ToBuf(tmp[:], int64(next().(int32)))
			d.Cat(tmp[:n])
		case 'I':
			n := primitives.I64ToBuf(tmp[:], next().(int64))
			d.Cat(tmp[:n])
		case 'u':
			n := primitives.U64ToBuf(tmp[:], uint64(next().(uint32)))
			d.Cat(tmp[:n])
		case 'U':
			n := primitives.U64ToBuf(tmp[:], next().(uint64))
			d.Cat(tmp[:n])
		case '%':
			d.Cat([]byte{'%'})
		default:
			d.Cat([]byte{'%', spec})
		}
		i += 2
	}
}
