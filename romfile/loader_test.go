package romfile

import (
	"bytes"
	"testing"

	"github.com/brennanwhite/nesgo/nes"
)

func buildImage(prgPages, chrPages byte, flags6, flags7 byte) []byte {
	header := []byte{'N', 'E', 'S', 0x1A, prgPages, chrPages, flags6, flags7, 0, 0, 0, 0, 0, 0, 0, 0}
	buf := append([]byte{}, header...)
	buf = append(buf, make([]byte, int(prgPages)*prgPageSize)...)
	buf = append(buf, make([]byte, int(chrPages)*chrPageSize)...)
	return buf
}

func TestParseValidNROMImage(t *testing.T) {
	image := buildImage(2, 1, 0x00, 0x00)
	cart, err := Parse(bytes.NewReader(image))
	if err != nil {
		t.Fatalf("Parse returned %v", err)
	}
	if cart.MapperID != 0 {
		t.Errorf("MapperID = %d, want 0", cart.MapperID)
	}
	if cart.Mirroring != nes.MirrorHorizontal {
		t.Errorf("Mirroring = %v, want horizontal", cart.Mirroring)
	}
}

func TestParseVerticalMirroringBit(t *testing.T) {
	image := buildImage(1, 1, 0x01, 0x00)
	cart, err := Parse(bytes.NewReader(image))
	if err != nil {
		t.Fatalf("Parse returned %v", err)
	}
	if cart.Mirroring != nes.MirrorVertical {
		t.Errorf("Mirroring = %v, want vertical", cart.Mirroring)
	}
}

func TestParseRejectsBadSignature(t *testing.T) {
	image := buildImage(1, 1, 0, 0)
	image[0] = 'X'
	if _, err := Parse(bytes.NewReader(image)); err == nil {
		t.Fatal("expected an error for a bad signature")
	}
}

func TestParseRejectsUnsupportedMapper(t *testing.T) {
	image := buildImage(1, 1, 0x10, 0x00) // mapper nibble in flags6 high bits -> mapper 1
	if _, err := Parse(bytes.NewReader(image)); err == nil {
		t.Fatal("expected an error for mapper 1")
	}
}

func TestParseZeroChrPagesSucceeds(t *testing.T) {
	image := buildImage(1, 0, 0, 0)
	if _, err := Parse(bytes.NewReader(image)); err != nil {
		t.Fatalf("Parse returned %v, want a CHR-RAM cartridge with no error", err)
	}
}

func TestParseRejectsShortPrgImage(t *testing.T) {
	image := buildImage(1, 0, 0, 0)
	truncated := image[:len(image)-100]
	if _, err := Parse(bytes.NewReader(truncated)); err == nil {
		t.Fatal("expected an error for a truncated PRG image")
	}
}
