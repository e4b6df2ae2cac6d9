// Package compositor turns one PPU frame of background cells and sprite
// records into a 256x240 RGBA framebuffer, the host binary's blit source.
package compositor

import "github.com/kwalton/nescore/ppu"

// Width and Height are the NES's fixed display resolution.
const (
	Width  = 256
	Height = 240
)

// Composite renders frame into a freshly allocated Width*Height*4 RGBA
// byte slice: a background pass honoring scroll and the leftmost-8-column
// mask, followed by a sprite pass honoring priority and flipping.
func Composite(frame *ppu.RenderingData) []byte {
	out := make([]byte, Width*Height*4)

	for tileRow := range frame.Background {
		for tileCol, cell := range frame.Background[tileRow] {
			if !cell.Visible {
				continue
			}
			drawBackgroundTile(out, tileRow, tileCol, &cell)
		}
	}

	for i := range frame.Sprites {
		sp := &frame.Sprites[i]
		if sp.LowPriority {
			continue
		}
		drawSprite(out, sp)
	}

	return out
}

func drawBackgroundTile(out []byte, tileRow, tileCol int, cell *ppu.BackgroundCell) {
	fineX := int(cell.ScrollX % 8)
	fineY := int(cell.ScrollY % 8)

	for oy := 0; oy < 8; oy++ {
		py := tileRow*8 + oy - fineY
		if py < 0 || py >= Height {
			continue
		}
		for ox := 0; ox < 8; ox++ {
			px := tileCol*8 + ox - fineX
			if px < 0 || px >= Width {
				continue
			}
			c := ppu.SystemPalette[cell.Palette[cell.PaletteOffset(ox, oy)]]
			alpha := uint8(0xFF)
			if px < 8 {
				alpha = 0
			}
			setPixel(out, px, py, c, alpha)
		}
	}
}

func drawSprite(out []byte, sp *ppu.SpriteRecord) {
	for oy := 0; oy < 8; oy++ {
		py := int(sp.Y) + oy
		if py < 0 || py >= Height {
			continue
		}
		sy := oy
		if sp.FlipV {
			sy = 7 - oy
		}
		for ox := 0; ox < 8; ox++ {
			px := int(sp.X) + ox
			if px < 0 || px >= Width {
				continue
			}
			sx := ox
			if sp.FlipH {
				sx = 7 - ox
			}
			off := sp.PaletteOffset(sx, sy)
			if off == 0 {
				continue // transparent
			}
			c := ppu.SystemPalette[sp.Palette[off]]
			setPixel(out, px, py, c, 0xFF)
		}
	}
}

func setPixel(out []byte, x, y int, c ppu.Color, alpha uint8) {
	i := (y*Width + x) * 4
	out[i] = c.R
	out[i+1] = c.G
	out[i+2] = c.B
	out[i+3] = alpha
}
