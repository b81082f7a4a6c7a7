package conv

import "testing"

func TestHex8(t *testing.T) {
	for in, want := range map[byte]string{0x00: "0x00", 0x48: "0x48", 0x2A: "0x2A", 0xFF: "0xFF"} {
		if got := Hex8(in); got != want {
			t.Fatalf("Hex8(%d) = %q, want %q", in, got, want)
		}
	}
	if got := string(AppendHex8([]byte("reg "), 0x1c)); got != "reg 0x1C" {
		t.Fatalf("AppendHex8 = %q", got)
	}
}

func TestDec8(t *testing.T) {
	for in, want := range map[byte]string{0: "0", 7: "7", 42: "42", 255: "255"} {
		if got := Dec8(in); got != want {
			t.Fatalf("Dec8(%d) = %q, want %q", in, got, want)
		}
	}
}
