package web

import (
	"html/template"
	"io"

	"github.com/sweeney/dayplot/plottools"
	"github.com/sweeney/dayplot/timevals"
)

var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"clock": func(s int) string {
		return plottools.ClockLabel(s)
	},
}).Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Day Plot</title>
<style>
body { font-family: monospace; max-width: 860px; margin: 2em auto; padding: 0 1em; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; margin: 1em 0; }
td, th { text-align: left; padding: 4px 8px; border-bottom: 1px solid #ddd; }
th { width: 40%; }
img { max-width: 100%; border: 1px solid #ddd; }
.blank { color: #888; }
</style>
</head>
<body>
<h1>Day Plot</h1>

<p><img src="/plot.svg" alt="one-day figure"></p>

<h2>Figure</h2>
<table>
<tr><th>Time range</th><td>{{clock 0}} &ndash; {{clock .SecondsInADay}}</td></tr>
<tr><th>Y range</th><td>0 &ndash; {{.MaxY}}</td></tr>
<tr><th>Hour ticks</th><td>{{.TickCount}}</td></tr>
</table>

<h2>Data</h2>
<table>
{{if .Source}}<tr><th>Source</th><td>{{.Source}}</td></tr>
<tr><th>Points</th><td>{{len .Data}}</td></tr>{{else}}<tr><th>Source</th><td class="blank">none (blank figure)</td></tr>{{end}}
</table>

<p><a href="/index.json">JSON</a></p>
</body>
</html>
`

func renderHTML(w io.Writer, fig Figure) {
	data := struct {
		Figure
		SecondsInADay int
		TickCount     int
	}{
		Figure:        fig,
		SecondsInADay: timevals.SecondsInADay,
		TickCount:     len(plottools.HourTicksForOneDay()),
	}
	indexTmpl.Execute(w, data)
}
