package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"fractal"
)

// fullRenderDelay is how long input must stay idle before a preview is
// replaced by a full-quality frame.
const fullRenderDelay = 100 * time.Millisecond

// event is one input message from the browser.
type event struct {
	Action string `json:"action"` // "pan", "zoom" or "key"
	DX     int    `json:"dx,omitempty"`
	DY     int    `json:"dy,omitempty"`
	X      int    `json:"x,omitempty"` // cursor position, pixels
	Y      int    `json:"y,omitempty"`
	Dir    int    `json:"dir,omitempty"` // zoom: >0 in, <0 out
	Key    string `json:"key,omitempty"`
}

// frameInfo accompanies every frame so the page can draw its readout.
type frameInfo struct {
	Mode         string  `json:"mode"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Zoom         float64 `json:"zoom"`
	Iterations   int     `json:"iterations"`
	Auto         bool    `json:"auto"`
	Palette      string  `json:"palette"`
	Quality      string  `json:"quality"`
	RenderMillis int64   `json:"renderMillis"`
}

type renderKind int

const (
	renderNone renderKind = iota
	renderCoarse
	renderFull
)

// session owns one connection's viewport state and frame buffer. The
// viewport is mutated only between renders, on the session goroutine; each
// render call takes its own snapshot.
type session struct {
	conn          *websocket.Conn
	reg           *fractal.Registry
	view          fractal.Viewport
	img           *image.RGBA
	width, height int
}

func newSession(conn *websocket.Conn, reg *fractal.Registry, width, height int) *session {
	view := fractal.DefaultViewport()
	view.AdjustIterations()
	return &session{
		conn:   conn,
		reg:    reg,
		view:   view,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		width:  width,
		height: height,
	}
}

func (s *session) run(ctx context.Context) error {
	// Tell the page the frame dimensions, then show the initial view.
	hello := map[string]int{"width": s.width, "height": s.height}
	if err := wsjson.Write(ctx, s.conn, hello); err != nil {
		return err
	}
	if err := s.renderFull(ctx); err != nil {
		return err
	}

	events := make(chan event)
	readErr := make(chan error, 1)
	go func() {
		for {
			var ev event
			if err := wsjson.Read(ctx, s.conn, &ev); err != nil {
				readErr <- err
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	debounce := time.NewTimer(fullRenderDelay)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case err := <-readErr:
			if errors.Is(err, io.EOF) || websocket.CloseStatus(err) != -1 {
				return nil
			}
			return err

		case ev := <-events:
			kind, err := s.apply(ev)
			if err != nil {
				log.Printf("event %q: %v", ev.Action, err)
				continue
			}
			switch kind {
			case renderCoarse:
				if err := s.renderPreview(ctx); err != nil {
					return err
				}
				debounce.Reset(fullRenderDelay)
			case renderFull:
				debounce.Stop()
				if err := s.renderFull(ctx); err != nil {
					return err
				}
			}

		case <-debounce.C:
			if err := s.renderFull(ctx); err != nil {
				return err
			}
		}
	}
}

// apply mutates the viewport for one input event and reports which render it
// needs. Continuous gestures (pan, zoom) get coarse previews; discrete
// toggles go straight to a full frame, as the wait is a single render.
func (s *session) apply(ev event) (renderKind, error) {
	v := &s.view
	switch ev.Action {
	case "pan":
		v.PanByPixels(ev.DX, ev.DY, s.width, s.height)
		return renderCoarse, nil

	case "zoom":
		factor := 2.0
		if ev.Dir > 0 {
			factor = 0.5
		}
		v.ZoomAt(ev.X, ev.Y, s.width, s.height, factor)
		return renderCoarse, nil

	case "key":
		return s.applyKey(ev)
	}
	return renderNone, fmt.Errorf("unknown action")
}

func (s *session) applyKey(ev event) (renderKind, error) {
	v := &s.view
	switch ev.Key {
	case "r":
		v.Reset()
	case "j":
		seedX, seedY := v.ComplexAt(ev.X, ev.Y, s.width, s.height)
		v.ToggleJulia(seedX, seedY)
	case "c":
		v.CyclePalette(s.reg.Len())
	case "t":
		v.ToggleFractalType()
	case "z":
		v.ToggleStripes()
	case "m":
		v.StripeFrequency += 0.1
	case "n":
		v.StripeFrequency -= 0.1
	case "v":
		v.StripeIntensity++
	case "b":
		v.StripeIntensity--
	case "i":
		v.DoubleIterations()
	case "k":
		v.HalveIterations()
	case "a":
		v.SetAutoIterations(!v.AutoIterations)
	case "d":
		v.InnerDetail = !v.InnerDetail
	case "ArrowUp":
		v.ColorDensity *= 1.1
	case "ArrowDown":
		v.ColorDensity /= 1.1
	case "s":
		return renderNone, s.screenshot(1)
	case "h":
		return renderNone, s.screenshot(fractal.ExportScale)
	default:
		return renderNone, nil
	}
	return renderFull, nil
}

func (s *session) renderPreview(ctx context.Context) error {
	start := time.Now()
	if err := fractal.RenderPreview(s.img, s.view, s.reg, fractal.PreviewDownscale); err != nil {
		return err
	}
	return s.sendFrame(ctx, "preview", time.Since(start))
}

func (s *session) renderFull(ctx context.Context) error {
	start := time.Now()
	if err := fractal.Render(s.img, s.view, s.reg); err != nil {
		return err
	}
	return s.sendFrame(ctx, "full", time.Since(start))
}

func (s *session) sendFrame(ctx context.Context, quality string, elapsed time.Duration) error {
	if err := s.conn.Write(ctx, websocket.MessageBinary, s.img.Pix); err != nil {
		return err
	}
	mode := "mandelbrot"
	if s.view.Julia {
		mode = "julia"
	}
	return wsjson.Write(ctx, s.conn, frameInfo{
		Mode:         mode,
		X:            s.view.CenterX,
		Y:            s.view.CenterY,
		Zoom:         s.view.Zoom(),
		Iterations:   s.view.Iterations,
		Auto:         s.view.AutoIterations,
		Palette:      s.reg.Name(s.view.PaletteIndex),
		Quality:      quality,
		RenderMillis: elapsed.Milliseconds(),
	})
}

// screenshot renders the current viewport at scale times the frame size and
// saves it as a PNG next to the binary. The filename records mode, position
// and zoom so a shot can be revisited.
func (s *session) screenshot(scale int) error {
	img, err := fractal.RenderScaled(s.view, s.reg, s.width, s.height, scale)
	if err != nil {
		return err
	}

	mode := "mandelbrot"
	if s.view.Julia {
		mode = "julia"
	}
	var name string
	if scale > 1 {
		name = fmt.Sprintf("fractal_%s_%.6f_%.6f_zoom_%.2f_hires_%dx%d_%d.png",
			mode, s.view.CenterX, s.view.CenterY, s.view.Zoom(),
			s.width*scale, s.height*scale, time.Now().Unix())
	} else {
		name = fmt.Sprintf("fractal_%s_%.6f_%.6f_zoom_%.2f_%d.png",
			mode, s.view.CenterX, s.view.CenterY, s.view.Zoom(), time.Now().Unix())
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	log.Printf("screenshot saved: %s", name)
	return nil
}
