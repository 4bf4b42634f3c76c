package site

import (
	"bytes"
	"html/template"
)

// The small script at the bottom of the page listens on /ws when the
// site is hosted by the serve command and reloads after a rebuild; on
// plain static hosting the connection just fails quietly.
const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.Title}}</title>
  <style>
    :root { --bg:#0b1020; --card:#121933; --muted:#a6b1d5; --text:#ecf1ff; --accent:#6ea2ff; }
    * { box-sizing:border-box; }
    body { margin:0; background:var(--bg); color:var(--text); font-family:ui-sans-serif,system-ui,-apple-system,'Segoe UI',Roboto,Arial,sans-serif; }
    .wrap { max-width:1200px; margin: 32px auto; padding: 0 16px; }
    h1 { font-size: clamp(24px, 3vw, 40px); margin: 0 0 16px; }
    .card { background: var(--card); border-radius: 16px; padding: 16px; box-shadow: 0 8px 24px rgba(0,0,0,.25); margin-bottom: 16px; }
    .table { width:100%; border-collapse: collapse; font-size: 14px; }
    .table thead th { text-align: left; padding: 10px 12px; position: sticky; top:0; background: #0f204a; color: #cfe0ff; }
    .table tbody td { padding: 10px 12px; border-top: 1px solid #26345e; }
    .table tbody tr:hover { background: #18244a; }
    a.dl { text-decoration: none; color: var(--accent); }
    footer { color: var(--muted); margin-top: 18px; font-size: 13px; }
  </style>
</head>
<body>
  <div class="wrap">
    <h1>{{.Title}}</h1>
    <div class="card">
      <h2 style="margin:0 0 8px">Standings</h2>
      <div style="overflow:auto">
        <table class="table">
          <thead>
            <tr><th>#</th><th>Team</th><th>P</th><th>W</th><th>D</th><th>L</th><th>GF</th><th>GA</th><th>GD</th><th>Pts</th></tr>
          </thead>
          <tbody>
            {{range .Standings}}<tr><td>{{.Rank}}</td><td>{{.Team}}</td><td>{{.Played}}</td><td>{{.Won}}</td><td>{{.Drawn}}</td><td>{{.Lost}}</td><td>{{.GoalsFor}}</td><td>{{.GoalsAgainst}}</td><td>{{.GoalDiff}}</td><td>{{.Points}}</td></tr>
            {{end}}
          </tbody>
        </table>
      </div>
      <p style="margin-top:12px"><a class="dl" href="./standings.csv" download>Download standings.csv</a></p>
    </div>
    <div class="card">
      <h2 style="margin:0 0 8px">Results</h2>
      <div style="overflow:auto">
        <table class="table">
          <thead>
            <tr><th>Round</th><th>Date</th><th>Home</th><th>Away</th><th>Score</th><th>Stadium</th></tr>
          </thead>
          <tbody>
            {{range .Matches}}<tr><td>{{if .Round}}{{.Round}}{{end}}</td><td>{{.Date}}</td><td>{{.HomeTeam}}</td><td>{{.AwayTeam}}</td><td>{{.HomeGoals}} - {{.AwayGoals}}</td><td>{{.Stadium}}</td></tr>
            {{end}}
          </tbody>
        </table>
      </div>
    </div>
    <footer>GF = goals for, GA = goals against, GD = goal difference. Win 3, draw 1, loss 0. Generated {{.GeneratedAt}} (build {{.BuildID}}).</footer>
  </div>
  <script>
    (function () {
      var proto = location.protocol === "https:" ? "wss:" : "ws:";
      try {
        var ws = new WebSocket(proto + "//" + location.host + "/ws");
        ws.onmessage = function (ev) {
          try {
            if (JSON.parse(ev.data).type === "rebuilt") location.reload();
          } catch (e) {}
        };
      } catch (e) {}
    })();
  </script>
</body>
</html>
`

var indexTmpl = template.Must(template.New("index").Parse(indexTemplate))

func renderIndex(res *Result) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := indexTmpl.Execute(buf, res); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
