// Package ppu implements the NES picture processing unit: a scanline-timed
// state machine that turns pattern/name/attribute/palette tables into one
// rendered frame every 341*262 PPU cycles, and the CPU-visible register
// window at 0x2000-0x2007.
package ppu

import (
	"fmt"

	"github.com/kwalton/nescore/interrupt"
	"github.com/kwalton/nescore/nesmem"
)

// Bus is the PPU's view of character data (the pattern tables), satisfied
// directly by a cartridge's mapper.
type Bus interface {
	ChrRead(addr uint16) uint8
	ChrWrite(addr uint16, val uint8)
}

// CPU-visible register addresses.
const (
	PPUCTRL   = 0x2000
	PPUMASK   = 0x2001
	PPUSTATUS = 0x2002
	OAMADDR   = 0x2003
	OAMDATA   = 0x2004
	PPUSCROLL = 0x2005
	PPUADDR   = 0x2006
	PPUDATA   = 0x2007
)

// PPUCTRL bits.
const (
	ctrlNametableMask     = 0x03
	ctrlVRAMIncrement     = 1 << 2
	ctrlSpritePattern     = 1 << 3
	ctrlBackgroundPattern = 1 << 4
	ctrlGenerateNMI       = 1 << 7
)

// PPUMASK bits.
const (
	maskShowBackground = 1 << 3
	maskShowSprites    = 1 << 4
)

// PPUSTATUS bits.
const (
	StatusSpriteOverflow = 1 << 5
	StatusSpriteZeroHit  = 1 << 6
	StatusVBlank         = 1 << 7
)

// Scanline geometry: a scanline is 341 PPU cycles long; there are 262
// scanlines per frame (0-239 visible, 240 post-render, 241 vblank start,
// 261 pre-render/reset).
const (
	cyclesPerScanline = 341
	scanlinesPerFrame = 262
	visibleScanlines  = 240
	vblankScanline    = 241
	preRenderScanline = 261
)

// PPU holds the register bank, OAM, VRAM, palette RAM and the scanline
// clock that drives the per-frame rendering pipeline.
type PPU struct {
	bus                 Bus
	irq                 *interrupt.Line
	horizontalMirroring bool

	vram       *nesmem.RAM // 2KB, two name-table pages
	oamMem     *nesmem.RAM // 256 bytes, 64 sprite records
	paletteMem *nesmem.RAM // 32 bytes

	control, mask, status uint8
	oamAddress            uint8
	scroll                scrollReg
	addr                  vramAddr

	cycle uint32
	row   int

	background [30]BackgroundLine
	sprites    [64]SpriteRecord
}

// New constructs a PPU wired to bus (the cartridge's CHR data) and irq (the
// shared NMI line), using horizontalMirroring to route the VRAM mirror per
// the cartridge header.
func New(bus Bus, irq *interrupt.Line, horizontalMirroring bool) *PPU {
	return &PPU{
		bus:                 bus,
		irq:                 irq,
		horizontalMirroring: horizontalMirroring,
		vram:                nesmem.New(2048),
		oamMem:              nesmem.New(256),
		paletteMem:          nesmem.New(32),
	}
}

func (p *PPU) renderingEnabled() bool {
	return p.mask&maskShowBackground != 0 && p.mask&maskShowSprites != 0
}

// WriteRegister implements a CPU write to one of 0x2000-0x2007.
func (p *PPU) WriteRegister(addr uint16, val uint8) {
	switch addr {
	case PPUCTRL:
		p.control = val
	case PPUMASK:
		p.mask = val
	case PPUSTATUS:
		// Read-only; hardware ignores writes.
	case OAMADDR:
		p.oamAddress = val
	case OAMDATA:
		p.oamMem.Write(uint32(p.oamAddress), val)
		p.oamAddress++
	case PPUSCROLL:
		p.scroll.set(val)
	case PPUADDR:
		p.addr.set(val)
	case PPUDATA:
		p.ppuBusWrite(p.addr.get(), val)
		p.incrementVRAMAddress()
	default:
		panic(fmt.Sprintf("ppu: invalid register write at %#04x", addr))
	}
}

// ReadRegister implements a CPU read from one of 0x2000-0x2007.
func (p *PPU) ReadRegister(addr uint16) uint8 {
	switch addr {
	case PPUSTATUS:
		v := p.status
		p.status &^= StatusVBlank
		p.scroll.resetLatch()
		p.addr.resetLatch()
		return v
	case OAMDATA:
		return p.oamMem.Read(uint32(p.oamAddress))
	case PPUDATA:
		v := p.ppuBusRead(p.addr.get())
		p.incrementVRAMAddress()
		return v
	case PPUCTRL, PPUMASK, OAMADDR, PPUSCROLL, PPUADDR:
		// Write-only registers read back as open bus; callers never rely
		// on this, but it must not panic.
		return 0
	default:
		panic(fmt.Sprintf("ppu: invalid register read at %#04x", addr))
	}
}

func (p *PPU) incrementVRAMAddress() {
	step := uint16(1)
	if p.control&ctrlVRAMIncrement != 0 {
		step = 32
	}
	p.addr.increment(step)
}

// TransferSprite writes one DMA-sourced byte into OAM at (oamAddress+index)
// mod 256, per the OAM DMA bridge's contract.
func (p *PPU) TransferSprite(index uint8, val uint8) {
	p.oamMem.Write((uint32(p.oamAddress)+uint32(index))%256, val)
}

// Run advances the pipeline by ticks PPU cycles, returning the completed
// frame's rendering data exactly once per emulated frame (at the pre-render
// scanline boundary) and nil on every other call.
func (p *PPU) Run(ticks uint32) *RenderingData {
	var frame *RenderingData
	for i := uint32(0); i < ticks; i++ {
		p.cycle++
		if p.cycle >= cyclesPerScanline {
			p.cycle = 0
			p.row = (p.row + 1) % scanlinesPerFrame
			if f := p.enterScanline(); f != nil {
				frame = f
			}
		}
	}
	return frame
}

// enterScanline runs the per-scanline-boundary work described in the
// rendering pipeline and returns the completed frame when row is the
// pre-render line.
func (p *PPU) enterScanline() *RenderingData {
	row := p.row

	if row == 0 {
		p.background = [30]BackgroundLine{}
		p.sprites = p.buildSprites()
	}

	if row == int(p.oamMem.Read(0)) && p.renderingEnabled() {
		p.status |= StatusSpriteZeroHit
	}

	if row < visibleScanlines && row%8 == 0 {
		p.background[row/8] = p.buildBackgroundLine(row)
	}

	if row == vblankScanline {
		p.status |= StatusVBlank
		if p.control&ctrlGenerateNMI != 0 {
			p.irq.SetNMI()
		}
	}

	if row == preRenderScanline {
		p.status &^= StatusVBlank
		p.status &^= StatusSpriteZeroHit
		p.irq.ClearNMI()
		return &RenderingData{Background: p.background, Sprites: p.sprites}
	}

	return nil
}

// StatusBits exposes the raw status byte without the read side effects of
// ReadRegister(PPUSTATUS); used by tests and debugging tools.
func (p *PPU) StatusBits() uint8 { return p.status }
