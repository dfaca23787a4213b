package dks

// PackHeader writes the class's packed header for the given length into
// out (which must be exactly class.HeaderBytes() long): one big-endian
// unsigned integer whose low HdrBits bits are the type tag and whose
// remaining high bits are length.
func PackHeader(class DksClass, length uint64, out []byte) {
	n := class.HeaderBytes()
	if len(out) != n {
		panic("dks: header buffer size mismatch")
	}
	packed := length<<class.HdrBits() | uint64(class.TypeTag())
	for i := n - 1; i >= 0; i-- {
		out[i] = byte(packed)
		packed >>= 8
	}
}

// UnpackHeader reads length out of a header known to be of the given
// class, taken from the last class.HeaderBytes() bytes of buf (the bytes
// immediately before the payload). buf must be at least
// class.HeaderBytes() long. It also validates that the low HdrBits bits
// of the final header byte match the class's type tag.
func UnpackHeader(class DksClass, buf []byte) (length uint64, err error) {
	n := class.HeaderBytes()
	if len(buf) < n {
		return 0, ErrTruncatedHeader
	}
	buf = buf[len(buf)-n:]
	var packed uint64
	for i := 0; i < n; i++ {
		packed = packed<<8 | uint64(buf[i])
	}
	tag := byte(packed) & (1<<class.HdrBits() - 1)
	if tag != class.TypeTag() {
		return 0, ErrUnknownClass
	}
	return packed >> class.HdrBits(), nil
}

// DetectClass best-effort identifies the storage class of a header that
// ends at the last byte of buf (the byte immediately before the payload):
// bit 0 of that byte selects the 2-bit-tag classes when clear, the
// 3-bit-tag classes when set, and the tag bits then name the class; buf
// must hold at least that class's HeaderBytes(). Used
// only where the class truly isn't
// known from context (e.g. format fuzzing/round-trip tests); ordinary
// operation always carries the class alongside the *Dks handle instead of
// re-deriving it from raw bytes.
func DetectClass(buf []byte) (DksClass, error) {
	if len(buf) == 0 {
		return 0, ErrTruncatedHeader
	}
	last := buf[len(buf)-1]
	twoBit := last&1 == 0
	if twoBit {
		for _, c := range [2]DksClass{W8, W16} {
			if last&0x3 == c.TypeTag() {
				if len(buf) < c.HeaderBytes() {
					return 0, ErrTruncatedHeader
				}
				return c, nil
			}
		}
	} else {
		for _, c := range [4]DksClass{W24, W32, W40, W48} {
			if last&0x7 == c.TypeTag() {
				if len(buf) < c.HeaderBytes() {
					return 0, ErrTruncatedHeader
				}
				return c, nil
			}
		}
	}
	return 0, ErrUnknownClass
}

var (
	ErrTruncatedHeader = dksError("dks: truncated header")
	ErrUnknownClass    = dksError("dks: unrecognized header type tag")
)
