// Package dma implements the OAM DMA bridge: a single CPU-bus write at
// 0x4014 arms a transfer of one 256-byte WRAM page into PPU object
// attribute memory, billed at a fixed 513 CPU cycles.
package dma

// Memory is the DMA's read-only view of WRAM.
type Memory interface {
	Read(addr uint16) uint8
}

// Sprites receives the transferred bytes, one OAM slot at a time.
type Sprites interface {
	TransferSprite(index uint8, val uint8)
}

// DMA holds the latched source page and arm state between the write at
// 0x4014 and the frame loop's next call to Run.
type DMA struct {
	wram Memory
	ppu  Sprites

	src   uint16
	armed bool
}

// New constructs a DMA bridge over wram and ppu. Neither is copied; both
// must outlive the DMA.
func New(wram Memory, ppu Sprites) *DMA {
	return &DMA{wram: wram, ppu: ppu}
}

// Write latches page as the DMA source (page<<8) and arms a transfer for
// the next Run call. Matches a CPU write to 0x4014.
func (d *DMA) Write(page uint8) {
	d.src = uint16(page) << 8
	d.armed = true
}

// Run copies the latched page into OAM, one byte per Sprites.TransferSprite
// call, and disarms. It returns the number of CPU cycles the transfer
// consumes: 513 if a transfer ran, 0 if Run was called with nothing armed.
func (d *DMA) Run() uint32 {
	if !d.armed {
		return 0
	}
	for i := 0; i < 256; i++ {
		val := d.wram.Read(d.src + uint16(i))
		d.ppu.TransferSprite(uint8(i), val)
	}
	d.armed = false
	return 513
}
