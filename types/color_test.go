package types

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestColorFromVec3Clamps(t *testing.T) {
	type spec struct {
		in  Vec3
		exp Color
	}
	specs := []spec{
		{XYZ(0, 0.5, 1), RGB(0, 128, 255)},
		{XYZ(-1, 2, 0.999), RGB(0, 255, 255)},
		{XYZ(math32.NaN(), math32.Inf(1), math32.Inf(-1)), RGB(0, 255, 0)},
	}

	for index, s := range specs {
		if got := ColorFromVec3(s.in); got != s.exp {
			t.Fatalf("[spec %d] expected color %v; got %v", index, s.exp, got)
		}
	}
}

func TestColorRoundTrip(t *testing.T) {
	for v := 0; v < 256; v++ {
		c := RGB(uint8(v), uint8(255-v), uint8(v/2))
		if got := ColorFromVec3(c.Vec3()); got != c {
			t.Fatalf("expected %v to survive a float round trip; got %v", c, got)
		}
	}
}

func TestColorPacking(t *testing.T) {
	c := RGB(0x12, 0x34, 0x56)
	if got := c.Packed(); got != 0x123456 {
		t.Fatalf("expected packed value 0x123456; got 0x%06x", got)
	}
	if got := ColorFromPacked(0xff123456); got != c {
		t.Fatalf("expected unpacked color %v; got %v", c, got)
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#87ceeb")
	if err != nil {
		t.Fatal(err)
	}
	if c != RGB(135, 206, 235) {
		t.Fatalf("unexpected color %v", c)
	}

	if _, err = ParseColor("#fff"); err == nil {
		t.Fatal("expected an error for short color notation")
	}
	if _, err = ParseColor("zzzzzz"); err == nil {
		t.Fatal("expected an error for non-hex color")
	}
}
