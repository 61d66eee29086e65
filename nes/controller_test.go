package nes

import "testing"

func TestControllerSerializesInLatchedOrder(t *testing.T) {
	var c Controller
	buttons := [numButtons]bool{
		ButtonA: true, ButtonSelect: true, ButtonDown: true,
	}
	c.Latch(buttons)

	c.write(0x01) // strobe high, latches continuously
	c.write(0x00) // strobe low, freeze + reset shift index

	got := make([]byte, numButtons)
	for i := range got {
		got[i] = c.read()
	}

	want := []byte{1, 0, 1, 0, 0, 1, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bit %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestControllerReturnsOneAfterEightReads(t *testing.T) {
	var c Controller
	c.Latch([numButtons]bool{})
	c.write(0x01)
	c.write(0x00)

	for i := 0; i < numButtons; i++ {
		c.read()
	}
	if got := c.read(); got != 1 {
		t.Errorf("read after exhausting shift register = %d, want 1", got)
	}
}
