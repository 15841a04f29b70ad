// explorer serves an interactive fractal explorer to the browser.
// The page is an HTML canvas; input events arrive as JSON over a websocket,
// rendered frames go back as raw RGBA. Continuous interaction gets coarse
// previews, with a debounced full-quality render once input goes idle.
package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/coder/websocket"

	"fractal"
)

//go:embed static
var staticFiles embed.FS

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run() error {
	addr := flag.String("addr", ":8080", "http listen address")
	width := flag.Int("width", 800, "frame width in pixels")
	height := flag.Int("height", 800, "frame height in pixels")
	verbose := flag.Bool("v", false, "log render timings")
	flag.Parse()

	if *verbose {
		fractal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("frame dimensions %dx%d, must be positive", *width, *height)
	}

	reg := fractal.NewRegistry()

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(reg, *width, *height))
	mux.Handle("/", http.FileServer(http.FS(static)))

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("explorer listening on http://localhost%s", *addr)
	return srv.ListenAndServe()
}

// websocketHandler upgrades the connection and runs one explorer session on
// it. The handler blocks until the session ends; coder/websocket hijacks the
// connection, so returning earlier would cancel the request context under it.
func websocketHandler(reg *fractal.Registry, width, height int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}

		log.Printf("session start: %s", r.RemoteAddr)
		s := newSession(c, reg, width, height)
		if err := s.run(r.Context()); err != nil {
			log.Printf("session %s: %v", r.RemoteAddr, err)
		} else {
			log.Printf("session end: %s", r.RemoteAddr)
		}
		c.Close(websocket.StatusNormalClosure, "")
	}
}
