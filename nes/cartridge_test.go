package nes

import "testing"

func TestNewCartridgeRejectsUnsupportedMapper(t *testing.T) {
	_, err := NewCartridge(make([]byte, 32*1024), nil, MirrorHorizontal, 1)
	if err == nil {
		t.Fatal("expected an error for mapper 1")
	}
}

func TestNewCartridgeRejectsBadPrgSize(t *testing.T) {
	_, err := NewCartridge(make([]byte, 1000), nil, MirrorHorizontal, 0)
	if err == nil {
		t.Fatal("expected an error for a non-16/32KiB PRG image")
	}
}

func TestZeroLengthChrBecomesRAM(t *testing.T) {
	cart, err := NewCartridge(make([]byte, 16*1024), nil, MirrorHorizontal, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !cart.chrIsRAM {
		t.Fatal("zero-length CHR should be treated as CHR-RAM")
	}
	cart.writeCHR(0x0000, 0xAB)
	if got := cart.readCHR(0x0000); got != 0xAB {
		t.Errorf("readCHR after write = %#02x, want 0xAB", got)
	}
}

func TestPrg16KMirrorsAcrossBankWindow(t *testing.T) {
	prg := make([]byte, 16*1024)
	prg[0] = 0x99
	cart, err := NewCartridge(prg, nil, MirrorHorizontal, 0)
	if err != nil {
		t.Fatal(err)
	}

	lo := cart.readPRG(0x8000)
	hi := cart.readPRG(0xC000)
	if lo != 0x99 || hi != 0x99 {
		t.Errorf("readPRG($8000)=%#02x readPRG($C000)=%#02x, want both 0x99", lo, hi)
	}
}

func TestChrRomWritesAreDropped(t *testing.T) {
	cart, err := NewCartridge(make([]byte, 16*1024), make([]byte, 8*1024), MirrorHorizontal, 0)
	if err != nil {
		t.Fatal(err)
	}
	cart.writeCHR(0x0000, 0xFF)
	if got := cart.readCHR(0x0000); got != 0x00 {
		t.Errorf("readCHR after write to CHR-ROM = %#02x, want 0x00 (write ignored)", got)
	}
}
