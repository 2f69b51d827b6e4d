package http

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"sync"
	"time"

	buddy "github.com/LukasGLars/construction-buddy"
)

// InvoiceServer serves the invoice assembly web form: search the item
// catalog, accumulate lines, render the plain-text invoice.
//
// The cart is a single process-wide accumulation guarded by a mutex. The
// tool is single-user by design; there is no session handling.
type InvoiceServer struct {
	items buddy.ItemService

	mu    sync.Mutex
	lines []buddy.InvoiceLine
}

// NewInvoiceServer creates a new InvoiceServer backed by the given catalog.
func NewInvoiceServer(items buddy.ItemService) *InvoiceServer {
	return &InvoiceServer{items: items}
}

// Handler returns the HTTP handler for the invoice form.
func (s *InvoiceServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /add", s.handleAdd)
	mux.HandleFunc("POST /remove", s.handleRemove)
	mux.HandleFunc("POST /clear", s.handleClear)
	mux.HandleFunc("POST /invoice", s.handleInvoice)
	return mux
}

// Lines returns a copy of the accumulated invoice lines.
func (s *InvoiceServer) Lines() []buddy.InvoiceLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]buddy.InvoiceLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// pageData feeds the single-page template.
type pageData struct {
	Query   string
	Results []*buddy.Item

	Lines        []buddy.InvoiceLine
	TotalExclVAT float64
	TotalInclVAT float64
	ROTDeduction float64
	TotalPayable float64
	HasLabor     bool

	Customer    string
	Project     string
	InvoiceText string
	Error       string
}

func (s *InvoiceServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := pageData{Query: r.URL.Query().Get("q")}

	if data.Query != "" || r.URL.Query().Has("all") {
		results, err := s.items.SearchItems(r.Context(), data.Query)
		if err != nil {
			data.Error = buddy.ErrorMessage(err)
		}
		data.Results = results
	}

	s.render(w, data)
}

func (s *InvoiceServer) handleAdd(w http.ResponseWriter, r *http.Request) {
	id := r.FormValue("id")
	qty, err := strconv.ParseFloat(r.FormValue("qty"), 64)
	if err != nil || qty <= 0 {
		qty = 1
	}

	item, err := s.items.FindItemByID(r.Context(), id)
	if err != nil {
		s.render(w, pageData{Error: buddy.ErrorMessage(err)})
		return
	}

	s.mu.Lock()
	s.lines = append(s.lines, buddy.InvoiceLine{
		ItemNo:      item.ItemNo,
		Description: item.Name,
		Category:    item.Category,
		Quantity:    qty,
		Unit:        item.Unit,
		UnitPrice:   item.Price,
	})
	s.mu.Unlock()

	http.Redirect(w, r, "/?q="+r.FormValue("q"), http.StatusSeeOther)
}

func (s *InvoiceServer) handleRemove(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(r.FormValue("index"))

	s.mu.Lock()
	if err == nil && idx >= 0 && idx < len(s.lines) {
		s.lines = append(s.lines[:idx], s.lines[idx+1:]...)
	}
	s.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *InvoiceServer) handleClear(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.lines = nil
	s.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *InvoiceServer) handleInvoice(w http.ResponseWriter, r *http.Request) {
	inv := &buddy.Invoice{
		Customer: r.FormValue("customer"),
		Project:  r.FormValue("project"),
		Date:     time.Now(),
		Lines:    s.Lines(),
	}

	if err := inv.Validate(); err != nil {
		data := s.cartData()
		data.Customer = inv.Customer
		data.Project = inv.Project
		data.Error = buddy.ErrorMessage(err)
		s.render(w, data)
		return
	}

	text := buddy.RenderInvoice(inv)

	if r.FormValue("download") != "" {
		filename := fmt.Sprintf("faktura_%s_%s.txt", inv.Project, inv.Date.Format("2006-01-02"))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		_, _ = w.Write([]byte(text))
		return
	}

	data := s.cartData()
	data.Customer = inv.Customer
	data.Project = inv.Project
	data.InvoiceText = text
	s.render(w, data)
}

// cartData assembles the cart portion of the page data.
func (s *InvoiceServer) cartData() pageData {
	inv := &buddy.Invoice{Lines: s.Lines()}
	return pageData{
		Lines:        inv.Lines,
		TotalExclVAT: inv.TotalExclVAT(),
		TotalInclVAT: inv.TotalInclVAT(),
		ROTDeduction: inv.ROTDeduction(),
		TotalPayable: inv.TotalPayable(),
		HasLabor:     inv.LaborInclVAT() > 0,
	}
}

func (s *InvoiceServer) render(w http.ResponseWriter, data pageData) {
	if data.Lines == nil {
		cart := s.cartData()
		data.Lines = cart.Lines
		data.TotalExclVAT = cart.TotalExclVAT
		data.TotalInclVAT = cart.TotalInclVAT
		data.ROTDeduction = cart.ROTDeduction
		data.TotalPayable = cart.TotalPayable
		data.HasLabor = cart.HasLabor
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="sv">
<head>
<meta charset="utf-8">
<title>Fakturaverktyg</title>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 2em auto; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
pre { background: #f5f5f5; padding: 1em; overflow-x: auto; }
.error { color: #b00; }
</style>
</head>
<body>
<h1>Fakturaverktyg</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}

<h2>Sök artiklar</h2>
<form method="get" action="/">
<input type="text" name="q" value="{{.Query}}" placeholder="Ex: grenuttag, 2405276, ARBETE">
<button type="submit">Sök</button>
<button type="submit" name="all" value="1">Visa alla</button>
</form>

{{if .Results}}
<p>Hittade {{len .Results}} artiklar</p>
<table>
<tr><th>Art.nr</th><th>Beskrivning</th><th>Kategori</th><th>Enhet</th><th>Pris</th><th>Antal</th><th></th></tr>
{{$q := .Query}}
{{range .Results}}
<tr>
<td>{{.ItemNo}}</td>
<td>{{.Name}}</td>
<td>{{.Category}}</td>
<td>{{.Unit}}</td>
<td>{{printf "%.2f" .Price}} kr</td>
<td>
<form method="post" action="/add">
<input type="hidden" name="id" value="{{.ID}}">
<input type="hidden" name="q" value="{{$q}}">
<input type="number" name="qty" value="1" step="0.5" min="0.1" style="width:5em">
</td>
<td><button type="submit">Lägg till</button></form></td>
</tr>
{{end}}
</table>
{{end}}

<h2>Aktuell faktura</h2>
{{if .Lines}}
<table>
<tr><th>Art.nr</th><th>Beskrivning</th><th>Antal</th><th>Enhet</th><th>A-pris</th><th>Belopp</th><th></th></tr>
{{range $i, $l := .Lines}}
<tr>
<td>{{$l.ItemNo}}</td>
<td>{{$l.Description}}</td>
<td>{{printf "%.2f" $l.Quantity}}</td>
<td>{{$l.Unit}}</td>
<td>{{printf "%.2f" $l.UnitPrice}}</td>
<td>{{printf "%.2f" $l.Amount}}</td>
<td>
<form method="post" action="/remove">
<input type="hidden" name="index" value="{{$i}}">
<button type="submit">Ta bort</button>
</form>
</td>
</tr>
{{end}}
</table>
<p>
Total exkl moms: {{printf "%.2f" .TotalExclVAT}} kr<br>
Total inkl moms: {{printf "%.2f" .TotalInclVAT}} kr<br>
{{if .HasLabor}}ROT-avdrag: -{{printf "%.2f" .ROTDeduction}} kr<br>{{end}}
Att betala: {{printf "%.2f" .TotalPayable}} kr
</p>
<form method="post" action="/clear">
<button type="submit">Rensa faktura</button>
</form>

<h2>Generera faktura</h2>
<form method="post" action="/invoice">
<input type="text" name="customer" value="{{.Customer}}" placeholder="Kundnamn">
<input type="text" name="project" value="{{.Project}}" placeholder="Projektnummer">
<button type="submit">Förhandsvisa</button>
<button type="submit" name="download" value="1">Ladda ner (TXT)</button>
</form>
{{else}}
<p>Lägg till artiklar från sökningen ovan.</p>
{{end}}

{{if .InvoiceText}}
<h2>Förhandsvisning</h2>
<pre>{{.InvoiceText}}</pre>
{{end}}
</body>
</html>
`))
