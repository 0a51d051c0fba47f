package printer

import (
	"html/template"
	"io"

	"github.com/iho/partyledger/internal/domain"
)

// statementPage is a self-contained document: inline styles only, so the
// page prints the same whether it is opened from the app or saved to disk.
const statementPage = `<!DOCTYPE html>
<html dir="rtl" lang="ar">
<head>
<meta charset="utf-8">
<title>Account Statement - {{.Party.Name}}</title>
<style>
  body { font-family: Tahoma, Arial, sans-serif; margin: 24px; color: #222; }
  h1 { font-size: 20px; margin-bottom: 4px; }
  .meta { font-size: 12px; color: #555; margin-bottom: 16px; }
  table { width: 100%; border-collapse: collapse; font-size: 13px; }
  th, td { border: 1px solid #999; padding: 6px 8px; text-align: right; }
  th { background: #eee; }
  td.num { direction: ltr; text-align: left; font-variant-numeric: tabular-nums; }
  tfoot td { font-weight: bold; background: #f7f7f7; }
  .negative { color: #b00020; }
  @media print { body { margin: 0; } }
</style>
</head>
<body>
<h1>{{.Party.Name}}</h1>
<div class="meta">
  Phone: {{if .Party.Phone}}{{.Party.Phone}}{{else}}&mdash;{{end}}
  | Address: {{if .Party.Address}}{{.Party.Address}}{{else}}&mdash;{{end}}
</div>
<div class="meta">
  {{- if .Period.From}}From {{.Period.From.Format "2006-01-02"}} {{end -}}
  {{- if .Period.To}}To {{.Period.To.Format "2006-01-02"}} {{end -}}
  &mdash; Generated {{.GeneratedAt.Format "2006-01-02 15:04"}}
</div>
<table>
<thead>
<tr><th>Date</th><th>Description</th><th>Debit</th><th>Credit</th><th>Balance</th></tr>
</thead>
<tbody>
<tr>
  <td></td>
  <td>Opening balance</td>
  <td class="num"></td>
  <td class="num"></td>
  <td class="num{{if .Party.OpeningBalance.IsNegative}} negative{{end}}">{{.Party.OpeningBalance}}</td>
</tr>
{{- range .Entries}}
<tr>
  <td>{{.Date.Format "2006-01-02"}}</td>
  <td>{{.Description}}</td>
  <td class="num">{{if not .Debit.IsZero}}{{.Debit}}{{end}}</td>
  <td class="num">{{if not .Credit.IsZero}}{{.Credit}}{{end}}</td>
  <td class="num{{if .Balance.IsNegative}} negative{{end}}">{{.Balance}}</td>
</tr>
{{- end}}
</tbody>
<tfoot>
<tr>
  <td colspan="2">Totals</td>
  <td class="num">{{.Totals.TotalDebit}}</td>
  <td class="num">{{.Totals.TotalCredit}}</td>
  <td class="num{{if .Totals.FinalBalance.IsNegative}} negative{{end}}">{{.Totals.FinalBalance}}</td>
</tr>
</tfoot>
</table>
<script>window.onload = function () { window.print(); };</script>
</body>
</html>
`

// HTMLRenderer renders a statement as a printable HTML page.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer creates a new HTMLRenderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{
		tmpl: template.Must(template.New("statement").Parse(statementPage)),
	}
}

// Render writes the statement page to w.
func (r *HTMLRenderer) Render(w io.Writer, statement *domain.Statement) error {
	return r.tmpl.Execute(w, statement)
}
