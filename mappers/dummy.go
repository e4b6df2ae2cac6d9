package mappers

import (
	"math"

	"github.com/kwalton/nescore/nesrom"
)

// dummyMapper is a flat-addressed Mapper backed by one big byte slice, used
// by other packages' tests as a cheap bus/PPU fixture.
type dummyMapper struct {
	memory []uint8
	mm     uint8 // mirroring mode; tests can set this directly
}

func (dm *dummyMapper) ID() uint16                      { return 0 }
func (dm *dummyMapper) Init(*nesrom.ROM)                {}
func (dm *dummyMapper) Name() string                    { return "dummy mapper" }
func (dm *dummyMapper) PrgRead(addr uint16) uint8       { return dm.memory[addr] }
func (dm *dummyMapper) PrgWrite(addr uint16, val uint8) { dm.memory[addr] = val }
func (dm *dummyMapper) ChrRead(addr uint16) uint8       { return dm.memory[addr] }
func (dm *dummyMapper) ChrWrite(addr uint16, val uint8) { dm.memory[addr] = val }
func (dm *dummyMapper) MirroringMode() uint8            { return dm.mm }
func (dm *dummyMapper) HasSaveRAM() bool                { return true }

// Dummy is a ready-to-use dummy mapper for tests.
var Dummy = &dummyMapper{memory: make([]uint8, math.MaxUint16+1)}

// SetMirroringMode lets a test pick which mirroring mode Dummy reports.
func (dm *dummyMapper) SetMirroringMode(mm uint8) {
	dm.mm = mm
}
