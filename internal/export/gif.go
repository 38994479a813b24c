package export

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"

	"github.com/san-kum/plotmorph/internal/render"
	"github.com/san-kum/plotmorph/internal/transition"
)

// GIFSink records frames through a Braille canvas into an animated GIF.
// Frames accumulate in memory; Save writes the animation once the session
// has delivered its last frame.
type GIFSink struct {
	sink    *render.CanvasSink
	frames  []*image.Paletted
	delayCS int // per-frame delay in hundredths of a second
	fg, bg  color.Color
}

// NewGIFSink creates a recorder with a w x h character canvas at the given
// frame rate.
func NewGIFSink(w, h int, frameRate float64) *GIFSink {
	delay := 2
	if frameRate > 0 {
		delay = int(100 / frameRate)
		if delay < 1 {
			delay = 1
		}
	}
	return &GIFSink{
		sink:    render.NewCanvasSink(w, h),
		delayCS: delay,
		fg:      color.White,
		bg:      color.Black,
	}
}

func (g *GIFSink) Render(f transition.Frame) error {
	if err := g.sink.Render(f); err != nil {
		return err
	}
	g.frames = append(g.frames, g.rasterize())
	return nil
}

// rasterize expands the canvas's Braille dots into image pixels, 8x16 per
// character cell.
func (g *GIFSink) rasterize() *image.Paletted {
	canvas := g.sink.Canvas()
	charW, charH := 8, 16
	imgW, imgH := canvas.Width*charW, canvas.Height*charH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), color.Palette{g.bg, g.fg})

	dotW, dotH := charW/2, charH/4
	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			baseX, baseY := col*charW, row*charH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&brailleBit(dx, dy) == 0 {
						continue
					}
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, 1)
						}
					}
				}
			}
		}
	}
	return img
}

func brailleBit(dx, dy int) int {
	if dy == 3 {
		if dx == 0 {
			return 0x40
		}
		return 0x80
	}
	return 1 << dy << (dx * 3)
}

// Save writes the recorded animation to path.
func (g *GIFSink) Save(path string) error {
	if len(g.frames) == 0 {
		return fmt.Errorf("no frames recorded")
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range g.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, g.delayCS)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, &anim)
}
