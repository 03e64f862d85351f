// Package web provides an HTTP preview server for the day figure.
package web

import (
	"context"
	"log"
	"net"
	"net/http"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/sweeney/dayplot/plottools"
)

// Figure describes what the preview server renders. It is a value type
// fixed at startup — handlers only read it.
type Figure struct {
	// MaxY is the upper bound of the y axis.
	MaxY float64
	// Data holds per-second samples drawn as a line, nil for a blank figure.
	Data plotter.XYs
	// Source is the path the data came from, "" for a blank figure.
	Source string
}

// Server serves the figure preview over HTTP.
type Server struct {
	httpServer *http.Server
	fig        Figure
}

// New creates a Server rendering the given figure.
func New(addr string, fig Figure) *Server {
	s := &Server{fig: fig}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/index.html", s.handleIndex)
	mux.HandleFunc("/plot.svg", s.handleSVG)
	mux.HandleFunc("/index.json", s.handleJSON)

	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	return s
}

// ListenAndServe starts listening. It blocks until the server is shut down.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Serve accepts connections on the given listener. Useful for tests.
func (s *Server) Serve(ln net.Listener) error {
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// render builds a fresh figure for one request. Figures are cheap to
// construct and requests never share one.
func (s *Server) render() (*plot.Plot, error) {
	p := plottools.NewDayFigure(s.fig.MaxY)
	if len(s.fig.Data) > 0 {
		line, err := plotter.NewLine(s.fig.Data)
		if err != nil {
			return nil, err
		}
		p.Add(line)
	}
	return p, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && r.URL.Path != "/index.html" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	renderHTML(w, s.fig)
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	p, err := s.render()
	if err != nil {
		log.Printf("render figure: %v", err)
		http.Error(w, "render figure failed", http.StatusInternalServerError)
		return
	}

	wt, err := p.WriterTo(plottools.DefaultWidth, plottools.DefaultHeight, "svg")
	if err != nil {
		log.Printf("render svg: %v", err)
		http.Error(w, "render svg failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	if _, err := wt.WriteTo(w); err != nil {
		log.Printf("write svg: %v", err)
	}
}

func (s *Server) handleJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(formatJSON(s.fig))
}
