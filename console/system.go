// Package console wires the CPU, PPU, DMA bridge, controller and interrupt
// line into one owning System: the CPU-bus address decode, the frame loop
// that alternates CPU and PPU execution, and the input/cartridge boundary
// the host binary drives.
package console

import (
	"github.com/kwalton/nescore/controller"
	"github.com/kwalton/nescore/cpu"
	"github.com/kwalton/nescore/dma"
	"github.com/kwalton/nescore/interrupt"
	"github.com/kwalton/nescore/mappers"
	"github.com/kwalton/nescore/nesmem"
	"github.com/kwalton/nescore/nesrom"
	"github.com/kwalton/nescore/ppu"
)

// CPU-bus address decode boundaries.
const (
	wramTop      = 0x1FFF
	ppuRegTop    = 0x3FFF
	oamDMA       = 0x4014
	controller1  = 0x4016
	ioRegionTop  = 0x7FFF
	wramSize     = 0x0800
)

// System is the single owning struct the whole machine is built from: one
// concrete WRAM, CPU, PPU, DMA and controller, all reached only through
// method calls on System. Nothing here is ever mutated concurrently; the
// frame loop serializes every call.
type System struct {
	wram       *nesmem.RAM
	irq        *interrupt.Line
	ctrl       *controller.Controller
	mapper     mappers.Mapper
	cpu        *cpu.CPU
	ppu        *ppu.PPU
	dma        *dma.DMA
}

// wramView is the DMA bridge's read-only view of WRAM: it reads through the
// same 4x CPU-bus mirror the CPU itself sees, since a cartridge's DMA
// source page is addressed the same way as any other WRAM access.
type wramView struct{ ram *nesmem.RAM }

func (w wramView) Read(addr uint16) uint8 { return w.ram.Read(uint32(addr % wramSize)) }

// New builds a System around an already-loaded cartridge mapper.
func New(m mappers.Mapper) *System {
	s := &System{
		wram:   nesmem.New(wramSize),
		irq:    interrupt.New(),
		ctrl:   controller.New(),
		mapper: m,
	}
	s.ppu = ppu.New(m, s.irq, m.MirroringMode() == nesrom.MirrorHorizontal)
	s.cpu = cpu.New(s, s.irq)
	s.dma = dma.New(wramView{s.wram}, s.ppu)
	return s
}

// Controller exposes the controller port for the host's input adapter.
func (s *System) Controller() *controller.Controller { return s.ctrl }

// Read implements cpu.Bus: the CPU-visible address decode across WRAM
// (mirrored 4x), the PPU register window (mirrored every 8 bytes),
// the controller port, and program ROM.
func (s *System) Read(addr uint16) uint8 {
	switch {
	case addr <= wramTop:
		return s.wram.Read(uint32(addr % wramSize))
	case addr <= ppuRegTop:
		return s.ppu.ReadRegister(ppu.PPUCTRL + (addr-ppu.PPUCTRL)%8)
	case addr == controller1:
		return s.ctrl.Read()
	case addr <= ioRegionTop:
		// APU, expansion and SRAM: unimplemented, reads as 0.
		return 0
	default:
		return s.mapper.PrgRead(addr)
	}
}

// Write implements cpu.Bus, mirroring Read's address decode plus the
// DMA trigger at 0x4014 and the controller strobe at 0x4016.
func (s *System) Write(addr uint16, val uint8) {
	switch {
	case addr <= wramTop:
		s.wram.Write(uint32(addr%wramSize), val)
	case addr <= ppuRegTop:
		s.ppu.WriteRegister(ppu.PPUCTRL+(addr-ppu.PPUCTRL)%8, val)
	case addr == oamDMA:
		s.dma.Write(val)
	case addr == controller1:
		s.ctrl.Write(val)
	case addr <= ioRegionTop:
		// APU, expansion and SRAM: unimplemented, writes are ignored.
	default:
		s.mapper.PrgWrite(addr, val)
	}
}

// RunFrame runs DMA, CPU and PPU in lockstep - DMA.Run(), CPU.Step(),
// PPU.Run(cycles*3), in that order - until the PPU closes out a frame, and
// returns that frame's rendering data.
func (s *System) RunFrame() *ppu.RenderingData {
	for {
		dmaCycles := s.dma.Run()
		cpuCycles := s.cpu.Step()
		if frame := s.ppu.Run((dmaCycles + cpuCycles) * 3); frame != nil {
			return frame
		}
	}
}
