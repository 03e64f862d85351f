// Command dayplot renders a one-day figure — a 24-hour x axis with
// hour-aligned HH:MM:SS ticks — to an image file or an HTTP preview,
// optionally drawing per-second pixel counts from a CSV file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gonum.org/v1/plot/plotter"

	"github.com/sweeney/dayplot/internal/series"
	"github.com/sweeney/dayplot/internal/web"
	"github.com/sweeney/dayplot/plottools"
)

// defaultMaxY is the y-axis bound for a blank figure when none is given.
const defaultMaxY = 100

func main() {
	maxY := flag.Float64("max-y", 0, "Y axis upper bound (0 derives it from the data)")
	data := flag.String("data", "", "CSV file of per-second pixel counts to draw (second,count)")
	out := flag.String("o", "dayplot.svg", "Output image path (format from extension)")
	httpAddr := flag.String("http", "", "Serve an HTTP preview on this address instead of writing a file")

	flag.Parse()

	if err := run(*maxY, *data, *out, *httpAddr); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(maxY float64, dataPath, out, httpAddr string) error {
	var xys plotter.XYs
	if dataPath != "" {
		var err error
		xys, err = series.Load(dataPath)
		if err != nil {
			return fmt.Errorf("load data: %w", err)
		}
		log.Printf("loaded %d samples from %s", len(xys), dataPath)
	}

	fig := web.Figure{
		MaxY:   resolveMaxY(maxY, xys),
		Data:   xys,
		Source: dataPath,
	}

	if httpAddr != "" {
		return serve(httpAddr, fig)
	}
	return save(fig, out)
}

// resolveMaxY picks the y-axis bound: an explicit flag value wins
// (including a negative one — the figure stores it verbatim), otherwise
// the data maximum with 5% headroom, otherwise defaultMaxY for a blank
// figure.
func resolveMaxY(flagVal float64, xys plotter.XYs) float64 {
	if flagVal != 0 {
		return flagVal
	}
	if m := series.MaxCount(xys); m > 0 {
		return m * 1.05
	}
	return defaultMaxY
}

func save(fig web.Figure, out string) error {
	p := plottools.NewDayFigure(fig.MaxY)
	if len(fig.Data) > 0 {
		line, err := plotter.NewLine(fig.Data)
		if err != nil {
			return fmt.Errorf("build line: %w", err)
		}
		p.Add(line)
	}

	if err := p.Save(plottools.DefaultWidth, plottools.DefaultHeight, out); err != nil {
		return fmt.Errorf("save figure: %w", err)
	}
	log.Printf("wrote %s", out)
	return nil
}

func serve(addr string, fig web.Figure) error {
	srv := web.New(addr, fig)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("http server error: %v", err)
		}
	}()
	defer srv.Shutdown(context.Background())
	log.Printf("preview server listening on %s", addr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigCh
	log.Printf("received %v, shutting down", s)
	return nil
}
