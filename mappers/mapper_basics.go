// Package mappers implements and registers mappers, referenced
// numerically by the iNES header's mapper number.
package mappers

import (
	"fmt"

	"github.com/kwalton/nescore/nesrom"
)

// allMappers is a global registry of mappers, keyed by mapper id.
var allMappers = map[uint16]Mapper{}

// RegisterMapper makes a mapper available under its numeric id. Called from
// each mapper implementation's init(); a colliding id is a build-time
// programming error, so it panics rather than returning an error.
func RegisterMapper(id uint16, m Mapper) {
	if om, ok := allMappers[id]; ok {
		panic(fmt.Sprintf("mappers: can't re-register mapper id %d, already used by %q", id, om.Name()))
	}
	allMappers[id] = m
}

// Get returns the mapper registered for rom's header mapper number,
// initialized against rom. Only mapper 0 (NROM) is registered; everything
// else in the Non-goals is deliberately left unregistered and reported as
// an error rather than a panic, since an unsupported cartridge is ordinary
// external input, not an internal invariant violation.
func Get(rom *nesrom.ROM) (Mapper, error) {
	id := rom.MapperNum()
	m, ok := allMappers[id]
	if !ok {
		return nil, fmt.Errorf("mappers: unknown mapper id %d", id)
	}
	m.Init(rom)
	return m, nil
}

// Mapper routes CPU/PPU bus accesses in the PRG/CHR address space through a
// cartridge's bank layout.
type Mapper interface {
	ID() uint16
	Init(*nesrom.ROM)
	Name() string
	PrgRead(uint16) uint8
	PrgWrite(uint16, uint8)
	ChrRead(uint16) uint8
	ChrWrite(uint16, uint8)
	MirroringMode() uint8 // which mirroring mode the PPU bus should use
	HasSaveRAM() bool     // whether Save RAM at 0x6000-0x7FFF is exposed
}

type baseMapper struct {
	id   uint16
	name string
	rom  *nesrom.ROM
}

func newBaseMapper(id uint16, name string) *baseMapper {
	return &baseMapper{id: id, name: name}
}

func (bm *baseMapper) ID() uint16     { return bm.id }
func (bm *baseMapper) Name() string   { return bm.name }
func (bm *baseMapper) String() string { return bm.name }

func (bm *baseMapper) Init(r *nesrom.ROM) {
	bm.rom = r
}

func (bm *baseMapper) MirroringMode() uint8 {
	return bm.rom.MirroringMode()
}

func (bm *baseMapper) HasSaveRAM() bool {
	return bm.rom.HasSaveRAM()
}
