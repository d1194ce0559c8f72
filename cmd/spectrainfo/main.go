// Command spectrainfo loads a spectra file and prints what the viewer
// would show for it, page by page.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"spectra-viewer/internal/spectra"
	"spectra-viewer/internal/version"
	"spectra-viewer/internal/view"
)

func main() {
	batch := flag.Int("batch", 1, "number of spectra per page (1 = single mode)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: spectrainfo [-batch n] <file>\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	table, err := spectra.LoadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	describe(os.Stdout, table)
	fmt.Println()
	printPages(os.Stdout, table, *batch)
}

// describe prints the table shape and wavelength extent.
func describe(w io.Writer, t *spectra.Table) {
	fmt.Fprintf(w, "Columns: %d (%d spectra)\n", t.NumColumns(), t.NumSpectra())
	fmt.Fprintf(w, "Rows:    %d\n", t.NumRows())
	if lo, hi, ok := t.WavelengthExtent(); ok {
		fmt.Fprintf(w, "Extent:  %g-%g nm\n", lo, hi)
	} else {
		fmt.Fprintf(w, "Extent:  none\n")
	}
	fmt.Fprintf(w, "Names:   %s\n", strings.Join(t.Names(), ", "))
}

// printPages walks the table with Next the way the viewer does and prints
// every page it stops on.
func printPages(w io.Writer, t *spectra.Table, batch int) {
	v := view.NewState()
	v.Load(t)
	if batch > 1 {
		v.SetMode(view.ModeMultiple)
		v.SetBatchSize(batch)
		v.Clamp()
	}

	for page := 1; ; page++ {
		req, _ := v.RenderRequest()
		labels := make([]string, len(req.Curves))
		for i, c := range req.Curves {
			labels[i] = c.Label
		}
		fmt.Fprintf(w, "Page %d: %s [%s]\n", page, v.PageLabel(), strings.Join(labels, ", "))

		if !v.CanNavigate(view.Next) {
			return
		}
		v.Navigate(view.Next)
	}
}
