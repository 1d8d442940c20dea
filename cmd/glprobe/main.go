// SPDX-License-Identifier: Unlicense OR MIT

// The glprobe command reports which windowing backend is active, loads
// the extension-function surfaces for it, and shows how an
// unsatisfiable mode request would be relaxed.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/DDholder/opentk"
	"github.com/DDholder/opentk/binding"
	"github.com/DDholder/opentk/gl"
	"github.com/DDholder/opentk/graphics"
	"github.com/DDholder/opentk/platform"
)

var (
	verbose = flag.Bool("v", false, "log per-slot resolution results")
	list    = flag.Bool("l", false, "list every slot with its availability")

	color   = flag.Int("color", 32, "requested color bit depth")
	depth   = flag.Int("depth", 24, "requested depth bits")
	stencil = flag.Int("stencil", 8, "requested stencil bits")
	samples = flag.Int("samples", 4, "requested antialiasing samples")
	accum   = flag.Int("accum", 0, "requested accumulator bits")
	buffers = flag.Int("buffers", 2, "requested buffer count")
	stereo  = flag.Bool("stereo", false, "request stereoscopic rendering")
)

func main() {
	flag.Parse()
	if *verbose {
		opentk.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	backend := platform.Detect()
	fmt.Printf("backend: %v\n", backend)

	resolve := platform.ProcResolver()
	for _, s := range surfaces(backend) {
		n, err := binding.LoadAll(s, resolve)
		if err != nil {
			fmt.Fprintf(os.Stderr, "glprobe: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s: %d of %d entry points bound\n", s.Namespace(), n, len(s.Slots()))
		if *list {
			for _, sl := range s.Slots() {
				fmt.Printf("  %-40s %v\n", sl.Name, sl.Available())
			}
		}
	}

	mode := graphics.Mode{
		Color:   *color,
		Depth:   *depth,
		Stencil: *stencil,
		Samples: *samples,
		Accum:   *accum,
		Buffers: *buffers,
		Stereo:  *stereo,
	}
	fmt.Printf("requested mode: %v\n", mode)
	for {
		next, changed := graphics.Relax(mode)
		if !changed {
			break
		}
		mode = next
		fmt.Printf("  relaxes to: %v\n", mode)
	}
}

func surfaces(backend platform.Backend) []*gl.Surface {
	ss := []*gl.Surface{gl.NewSurface()}
	switch backend {
	case platform.Win32:
		ss = append(ss, gl.NewWGLSurface())
	case platform.X11:
		ss = append(ss, gl.NewGLXSurface())
	}
	return ss
}
