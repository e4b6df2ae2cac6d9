// Package interrupt holds the NMI/IRQ line shared by the CPU and PPU.
package interrupt

// Line is a pair of sticky flags. The PPU sets NMI at vblank; the CPU
// clears it on interrupt entry. IRQ exists for completeness even though
// nothing in this emulator currently raises it.
type Line struct {
	nmi bool
	irq bool
}

func New() *Line {
	return &Line{}
}

func (l *Line) IsNMI() bool { return l.nmi }
func (l *Line) IsIRQ() bool { return l.irq }

func (l *Line) SetNMI()   { l.nmi = true }
func (l *Line) ClearNMI() { l.nmi = false }
func (l *Line) SetIRQ()   { l.irq = true }
func (l *Line) ClearIRQ() { l.irq = false }
