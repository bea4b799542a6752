package byteops

import (
	"bytes"
	"testing"
	"testing/quick"
)

func TestReverse(t *testing.T) {
	t.Parallel()

	b := []byte("abcde")
	Reverse(b)
	if !bytes.Equal(b, []byte("edcba")) {
		t.Errorf("Reverse() want=edcba, got=%q", b)
	}

	Reverse(nil) // must not panic
}

func TestRotate(t *testing.T) {
	t.Parallel()

	b := []byte{1, 2, 3, 4, 5}
	Rotate(b, 3)
	if !bytes.Equal(b, []byte{4, 5, 1, 2, 3}) {
		t.Errorf("Rotate(3) unexpected result: %#v", b)
	}

	// degenerate middles leave the slice unchanged
	b = []byte{1, 2, 3}
	Rotate(b, 0)
	Rotate(b, 3)
	Rotate(b, -1)
	if !bytes.Equal(b, []byte{1, 2, 3}) {
		t.Errorf("Rotate() degenerate middle changed slice: %#v", b)
	}
}

func TestRotate_Inverse(t *testing.T) {
	t.Parallel()

	// rotating by m and then by len-m restores the original
	inverse := func(data []byte, m uint) bool {
		if len(data) == 0 {
			return true
		}
		mid := int(m) % len(data)
		b := append([]byte(nil), data...)
		Rotate(b, mid)
		Rotate(b, len(b)-mid)
		return bytes.Equal(b, data)
	}
	if err := quick.Check(inverse, nil); err != nil {
		t.Errorf("quick.Check() failed: %v", err)
	}
}
