package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chartkit/chartkit"
	"github.com/chartkit/chartkit/decode"
	"github.com/chartkit/chartkit/render"
	"golang.org/x/sync/errgroup"
)

const defaultJobs = 4

func main() {
	var (
		outdir = flag.String("o", "", "output directory (default: next to input)")
		width  = flag.Float64("width", 0, "container width")
		height = flag.Float64("height", 0, "container height")
		jobs   = flag.Int("jobs", defaultJobs, "files rendered in parallel")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: chartkit [options] file.yaml...")
		os.Exit(2)
	}

	var grp errgroup.Group
	grp.SetLimit(*jobs)
	for _, file := range flag.Args() {
		file := file
		grp.Go(func() error {
			if err := renderFile(file, *outdir, *width, *height); err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func renderFile(file, outdir string, width, height float64) error {
	def, err := decode.File(file)
	if err != nil {
		return err
	}

	view := chartkit.NewView(def.Kind, def.Data, def.Options)
	view.Resize(width, height)

	w, err := os.Create(outputPath(file, outdir))
	if err != nil {
		return err
	}
	defer w.Close()

	return render.Chart(w, view.Frame())
}

func outputPath(file, outdir string) string {
	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)) + ".svg"
	if outdir == "" {
		outdir = filepath.Dir(file)
	}
	return filepath.Join(outdir, base)
}
