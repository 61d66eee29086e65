// Package romfile loads iNES 1.0 cartridge images from disk (or any
// io.Reader) into a nes.Cartridge. It is the only part of this repository
// that touches the filesystem on behalf of the emulation core.
package romfile

import (
	"bytes"
	"io"
	"os"

	"github.com/brennanwhite/nesgo/nes"
	"github.com/pkg/errors"
)

const (
	headerSize  = 16
	prgPageSize = 16 * 1024
	chrPageSize = 8 * 1024
)

var signature = [4]byte{'N', 'E', 'S', 0x1A}

// Load opens path, parses its iNES header, and builds a nes.Cartridge.
func Load(path string) (*nes.Cartridge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "romfile: read %s", path)
	}
	cart, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "romfile: parse %s", path)
	}
	return cart, nil
}

// Parse reads an iNES 1.0 image from r with no filesystem dependency, so
// the format can be exercised against an in-memory buffer in tests.
func Parse(r io.Reader) (*nes.Cartridge, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, errors.Wrap(err, "romfile: short header")
	}
	if header[0] != signature[0] || header[1] != signature[1] ||
		header[2] != signature[2] || header[3] != signature[3] {
		return nil, errors.New("romfile: missing NES\\x1A signature")
	}

	prgPages := int(header[4])
	chrPages := int(header[5])
	flags6 := header[6]
	flags7 := header[7]

	mirror := nes.MirrorHorizontal
	if flags6&0x01 != 0 {
		mirror = nes.MirrorVertical
	}
	hasTrainer := flags6&0x04 != 0
	mapperID := (flags7 & 0xF0) | (flags6 >> 4)

	if hasTrainer {
		trainer := make([]byte, 512)
		if _, err := io.ReadFull(r, trainer); err != nil {
			return nil, errors.Wrap(err, "romfile: short trainer")
		}
	}

	prg := make([]byte, prgPages*prgPageSize)
	if _, err := io.ReadFull(r, prg); err != nil {
		return nil, errors.Wrap(err, "romfile: short PRG image")
	}

	var chr []byte
	if chrPages > 0 {
		chr = make([]byte, chrPages*chrPageSize)
		if _, err := io.ReadFull(r, chr); err != nil {
			return nil, errors.Wrap(err, "romfile: short CHR image")
		}
	}

	cart, err := nes.NewCartridge(prg, chr, mirror, mapperID)
	if err != nil {
		return nil, errors.Wrap(err, "romfile: build cartridge")
	}
	return cart, nil
}
