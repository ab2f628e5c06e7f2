//go:build !tinygo && cgo

// Package hostwin shows the firmware's text console in a desktop window.
package hostwin

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"neobios/hal"
	"neobios/internal/buildinfo"
	"neobios/internal/textmode"
)

// Config controls the window.
type Config struct {
	Scale int
}

// Run starts fw on b and opens a window showing the frames b publishes. Keys
// typed into the window arrive on the UART receiver. It blocks until the
// window closes or the firmware stops.
func Run(b *hal.HostBoard, fw func(hal.Board), cfg Config) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 2
	}
	g := &game{
		b:      b,
		screen: textmode.NewScreen(),
		done:   b.Start(fw),
	}
	w, h := g.screen.Size()
	ebiten.SetWindowTitle("Neotron BIOS (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(int(w)*cfg.Scale, int(h)*cfg.Scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type game struct {
	b      *hal.HostBoard
	vram   []byte
	screen *textmode.Screen
	fbImg  *ebiten.Image
	done   <-chan struct{}
}

func (g *game) Update() error {
	select {
	case <-g.done:
		if g.b.Halted() {
			return hal.ErrHalted
		}
		return hal.ErrFirmwareReturned
	default:
	}
	if in := keyBytes(); len(in) > 0 {
		g.b.UART0().Feed(in)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.fbImg == nil {
		w, h := g.screen.Size()
		g.fbImg = ebiten.NewImage(int(w), int(h))
	}
	if g.vram = g.b.Frame(g.vram); g.vram != nil {
		if err := textmode.Render(g.screen, g.vram); err != nil {
			panic(fmt.Sprintf("hostwin: render: %v", err))
		}
	}
	g.fbImg.WritePixels(g.screen.Image().Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.screen.Size()
	return int(w), int(h)
}

// keyBytes turns this frame's key presses into terminal bytes.
func keyBytes() []byte {
	var out []byte
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	if ctrl {
		for _, k := range inpututil.AppendJustPressedKeys(nil) {
			if s := k.String(); len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z' {
				out = append(out, s[0]-'A'+1)
			}
		}
		return out
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		if r < 0x80 {
			out = append(out, byte(r))
		}
	}
	for _, k := range []struct {
		key ebiten.Key
		b   byte
	}{
		{ebiten.KeyEnter, '\r'},
		{ebiten.KeyBackspace, 0x08},
		{ebiten.KeyTab, '\t'},
		{ebiten.KeyEscape, 0x1b},
	} {
		if inpututil.IsKeyJustPressed(k.key) {
			out = append(out, k.b)
		}
	}
	return out
}
