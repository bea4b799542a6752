// Package byteops provides in-place reordering primitives over raw
// byte ranges.
package byteops

// Reverse reverses b in place.
func Reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// Rotate rotates b in place so that the bytes at b[middle:] move to
// the front and b[:middle] follow them, preserving the relative order
// within both runs. middle outside (0, len(b)) leaves b unchanged.
func Rotate(b []byte, middle int) {
	if middle <= 0 || middle >= len(b) {
		return
	}
	Reverse(b[:middle])
	Reverse(b[middle:])
	Reverse(b)
}
