// Package render turns stored page source into complete HTML documents.
//
// Page content is trusted operator input: it is emitted without any
// sanitization, raw HTML fragments included. That is a deliberate trust
// decision for a single-operator publishing tool, not an oversight.
package render

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/dabipages/internal/db"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var markdownEngine = goldmark.New(
	goldmark.WithExtensions(extension.GFM, extension.Table),
	goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML(), html.WithUnsafe()),
)

const documentTemplate = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>{{.Title}} · {{.SiteName}}</title>
<link rel="stylesheet" href="/static/style.css"/>
</head>
<body>
<main class="layout">
  <section class="window">
    <div class="window__titlebar">
      <div class="window__title">{{.Title}}</div>
      <div class="window__controls" aria-hidden="true">
        <span class="winbtn winbtn--min" title="Minimize"></span>
        <span class="winbtn winbtn--max" title="Maximize"></span>
        <span class="winbtn winbtn--close" title="Close"></span>
      </div>
    </div>
    <div class="window__body">
{{.Body}}
    </div>
  </section>
</main>
</body>
</html>`

const indexTemplate = `<h1>{{.SiteName}} Pages</h1>
<ul>
{{- range .Pages}}
<li><a class="link" href="/pages/{{.Slug}}">{{.Title}}</a> <small>({{.Slug}})</small></li>
{{- end}}
</ul>`

// Renderer wraps converted page bodies in the site document shell.
type Renderer struct {
	siteName string
	shell    *template.Template
	index    *template.Template
}

// New returns a Renderer for the given site display name.
func New(siteName string) *Renderer {
	return &Renderer{
		siteName: siteName,
		shell:    template.Must(template.New("document").Parse(documentTemplate)),
		index:    template.Must(template.New("index").Parse(indexTemplate)),
	}
}

// RenderDocument converts a page into a displayable HTML document.
// Markdown content is converted with embedded raw HTML passed through
// verbatim. HTML-mode content skips conversion; if it is already a full
// document it is served as stored, without the shell.
func (r *Renderer) RenderDocument(page *db.Page) (string, error) {
	if page.Mode == db.ModeHTML {
		if isFullDocument(page.Content) {
			return page.Content, nil
		}
		return r.wrap(page.Title, withHeading(page.Title, page.Content))
	}

	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(page.Content), &buf); err != nil {
		return "", err
	}
	return r.wrap(page.Title, withHeading(page.Title, buf.String()))
}

// RenderIndex renders the public listing of pages.
func (r *Renderer) RenderIndex(pages []db.Page) (string, error) {
	var body bytes.Buffer
	data := struct {
		SiteName string
		Pages    []db.Page
	}{r.siteName, pages}
	if err := r.index.Execute(&body, data); err != nil {
		return "", err
	}
	return r.wrap(r.siteName+" Pages", template.HTML(body.String()))
}

func (r *Renderer) wrap(title string, body template.HTML) (string, error) {
	var out bytes.Buffer
	data := struct {
		Title    string
		SiteName string
		Body     template.HTML
	}{title, r.siteName, body}
	if err := r.shell.Execute(&out, data); err != nil {
		return "", err
	}
	return out.String(), nil
}

func withHeading(title, body string) template.HTML {
	heading := "<h1>" + template.HTMLEscapeString(title) + "</h1>\n"
	return template.HTML(heading + body)
}

func isFullDocument(content string) bool {
	lowered := strings.ToLower(content)
	return strings.Contains(lowered, "<html") || strings.Contains(lowered, "<!doctype")
}
