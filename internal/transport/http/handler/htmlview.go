package handler

import (
	"bytes"
	"html/template"

	"github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/agegate"
	"github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/domain"
)

// dialogTmpl is the server-rendered gate dialog. It carries the modal
// semantics the gate requires: dialog role, aria-modal, and a labelling
// relationship to the heading. The month input receives initial focus.
var dialogTmpl = template.Must(template.New("age-gate-dialog").Parse(`<div class="age-gate-dialog" role="dialog" aria-modal="true" aria-labelledby="age-gate-title">
  <h2 id="age-gate-title">{{.Config.Title}}</h2>
  <p class="age-gate-message">{{.Config.Message}}</p>
  {{if .Error}}<p class="age-gate-error" role="alert">{{.Error}}</p>{{end}}
  <form method="post" action="{{.Action}}">
    <input type="text" name="month" inputmode="numeric" maxlength="2" placeholder="{{.Config.MonthPlaceholder}}" aria-label="Month" value="{{.Month}}"{{if .FocusMonth}} autofocus{{end}}>
    <input type="text" name="day" inputmode="numeric" maxlength="2" placeholder="{{.Config.DayPlaceholder}}" aria-label="Day" value="{{.Day}}">
    <input type="text" name="year" inputmode="numeric" maxlength="4" placeholder="{{.Config.YearPlaceholder}}" aria-label="Year" value="{{.Year}}">
    <button type="submit">{{.Config.ButtonText}}</button>
  </form>
</div>
`))

// htmlView adapts the gate's View capability to server-side HTML. Input
// buffers are seeded from the submitted form so the dialog re-renders with
// the visitor's values on a failed attempt.
type htmlView struct {
	action           string
	month, day, year string
	errText          string
	cfg              domain.GateConfig
	rendered         bool
	tornDown         bool
	focus            agegate.Control
}

func newHTMLView(action string) *htmlView {
	return &htmlView{action: action, focus: agegate.ControlMonth}
}

func (v *htmlView) Render(cfg domain.GateConfig) error {
	v.cfg = cfg
	v.rendered = true
	return nil
}

func (v *htmlView) Values() (string, string, string) { return v.month, v.day, v.year }

func (v *htmlView) ShowError(msg string) { v.errText = msg }
func (v *htmlView) ClearError()          { v.errText = "" }

func (v *htmlView) Focus(c agegate.Control) { v.focus = c }

func (v *htmlView) Teardown() {
	v.rendered = false
	v.tornDown = true
}

// HTML renders the dialog markup, or empty output after teardown.
func (v *htmlView) HTML() (template.HTML, error) {
	if !v.rendered {
		return "", nil
	}
	var buf bytes.Buffer
	err := dialogTmpl.Execute(&buf, struct {
		Config     domain.GateConfig
		Action     string
		Error      string
		Month      string
		Day        string
		Year       string
		FocusMonth bool
	}{v.cfg, v.action, v.errText, v.month, v.day, v.year, v.focus == agegate.ControlMonth})
	if err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// pageChrome records the page-level state the gate drives: the mount is
// forced visible, and page scroll is suspended while the dialog is open.
// The page template translates these flags into classes and inline styles.
type pageChrome struct {
	visible      bool
	scrollLocked bool
}

func (c *pageChrome) ForceVisible()  { c.visible = true }
func (c *pageChrome) LockScroll()    { c.scrollLocked = true }
func (c *pageChrome) RestoreScroll() { c.scrollLocked = false }

// pageTmpl is the storefront page shell. While the gate is open only the
// dialog is emitted, so nothing beneath the overlay is perceivable.
var pageTmpl = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body{{if .ScrollLocked}} class="scroll-locked"{{end}}>
{{if .Gate}}<main class="age-gate-mount"{{if .ForceVisible}} style="display:block"{{end}}>
{{.Gate}}</main>
{{else}}{{range .Blocks}}{{.}}
{{end}}{{end}}</body>
</html>
`))

func renderPage(page *domain.Page, view *htmlView, chrome *pageChrome) ([]byte, error) {
	data := struct {
		Title        string
		ScrollLocked bool
		ForceVisible bool
		Gate         template.HTML
		Blocks       []template.HTML
	}{Title: page.Title}

	if view != nil {
		gate, err := view.HTML()
		if err != nil {
			return nil, err
		}
		data.Gate = gate
	}
	if chrome != nil {
		data.ScrollLocked = chrome.scrollLocked
		data.ForceVisible = chrome.visible
	}
	if data.Gate == "" {
		for _, b := range page.Blocks {
			// Authored content is trusted: it comes from the origin's own
			// document system, not from visitors.
			data.Blocks = append(data.Blocks, template.HTML(b.HTML))
		}
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
