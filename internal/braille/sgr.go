package braille

// Pre-allocated SGR fragments, written without allocation during render.
const (
	sgrReset    = "\x1b[0m"
	sgrCSI      = "\x1b["
	sgrFg256    = "\x1b[38;5;"
	sgrFgRGB    = "\x1b[38;2;"
	sgrEnd      = 'm'
	sgrParamSep = ';'
)

// Sink is the destination RenderTo writes into. *bytes.Buffer,
// *strings.Builder and *bufio.Writer all satisfy it.
type Sink interface {
	WriteByte(c byte) error
	WriteRune(r rune) (int, error)
	WriteString(s string) (int, error)
}

// frameWriter remembers the first sink error and turns every later write
// into a no-op.
type frameWriter struct {
	sink Sink
	err  error
	row  int
}

func (w *frameWriter) putByte(b byte) {
	if w.err == nil {
		w.err = w.sink.WriteByte(b)
	}
}

func (w *frameWriter) putRune(r rune) {
	if w.err == nil {
		_, w.err = w.sink.WriteRune(r)
	}
}

func (w *frameWriter) putString(s string) {
	if w.err == nil {
		_, w.err = w.sink.WriteString(s)
	}
}

// putUint8 writes n in decimal without allocation.
func (w *frameWriter) putUint8(n uint8) {
	if n >= 100 {
		w.putByte(n/100 + '0')
	}
	if n >= 10 {
		w.putByte(n/10%10 + '0')
	}
	w.putByte(n%10 + '0')
}

// sgr switches the foreground to c; NoColor resets all attributes.
func (w *frameWriter) sgr(c Color) {
	switch c.kind {
	case kindNone:
		w.putString(sgrReset)
		return
	case kindANSI:
		w.putString(sgrCSI)
		w.putUint8(c.code)
	case kindIndexed:
		w.putString(sgrFg256)
		w.putUint8(c.code)
	case kindRGB:
		w.putString(sgrFgRGB)
		w.putUint8(c.r)
		w.putByte(sgrParamSep)
		w.putUint8(c.g)
		w.putByte(sgrParamSep)
		w.putUint8(c.b)
	}
	w.putByte(sgrEnd)
}

func (w *frameWriter) fail() error {
	return &RenderError{Row: w.row, Wrapped: w.err}
}
