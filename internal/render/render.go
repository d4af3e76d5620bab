// Package render produces the HTML surface: the stage pages, the dashboard,
// and the print report. The dashboard and the report are generated from the
// same projection, so every value shown on screen appears identically in the
// exported report.
package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/finhealthai/finhealth-web-go/internal/domain"
	"github.com/finhealthai/finhealth-web-go/internal/i18n"
	"github.com/finhealthai/finhealth-web-go/internal/port"
	"github.com/finhealthai/finhealth-web-go/internal/projector"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Page carries everything a stage page needs. View is nil until the session
// reaches the results stage.
type Page struct {
	Language  domain.Language
	Languages []domain.Language
	Snapshot  *domain.SessionSnapshot
	View      *projector.View
	Fields    []string
	Values    map[string]string
	Error     string
}

// Renderer executes the HTML templates and caches rendered reports.
type Renderer struct {
	tmpl    *template.Template
	md      goldmark.Markdown
	reports port.Cache[string]
	logger  *zap.Logger

	// onCacheHit/onCacheMiss observe report cache lookups.
	onCacheHit  func()
	onCacheMiss func()
}

// New parses the embedded templates and wires the report cache. The cache
// observers may be nil.
func New(reports port.Cache[string], logger *zap.Logger, onCacheHit, onCacheMiss func()) (*Renderer, error) {
	r := &Renderer{
		md:          goldmark.New(goldmark.WithExtensions(extension.GFM)),
		reports:     reports,
		logger:      logger,
		onCacheHit:  onCacheHit,
		onCacheMiss: onCacheMiss,
	}
	if r.onCacheHit == nil {
		r.onCacheHit = func() {}
	}
	if r.onCacheMiss == nil {
		r.onCacheMiss = func() {}
	}

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"t":          translate,
		"fieldLabel": fieldLabel,
		"markdown":   r.markdown,
	}).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// Stage renders the page for the session's current stage: the profile form,
// the financial form, or the dashboard.
func (r *Renderer) Stage(w io.Writer, page *Page) error {
	name := "profile.html.tmpl"
	switch page.Snapshot.Stage {
	case domain.StageFinancial:
		name = "financial.html.tmpl"
	case domain.StageResults:
		name = "dashboard.html.tmpl"
	}
	page.Languages = domain.Languages
	return r.tmpl.ExecuteTemplate(w, name, page)
}

// ReportHTML renders the print report for one result and language, serving
// from the report cache when possible. The report always carries the English
// header line in addition to the localized one, so a printed copy stays
// legible to reviewers who read neither Hindi nor Tamil.
func (r *Renderer) ReportHTML(result *domain.AnalysisResult, profile *domain.BusinessProfile, lang domain.Language) (string, error) {
	key := reportKey(result.ID, lang)
	if html, ok := r.reports.Get(key); ok {
		r.onCacheHit()
		return html, nil
	}
	r.onCacheMiss()

	view := projector.Project(result, profile, lang)

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "report.html.tmpl", view); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}

	html := buf.String()
	r.reports.Set(key, html)
	return html, nil
}

// WarmReports pre-renders the report in every supported language so a
// language switch after analysis serves from cache.
func (r *Renderer) WarmReports(ctx context.Context, result *domain.AnalysisResult, profile *domain.BusinessProfile) {
	g, _ := errgroup.WithContext(ctx)
	for _, lang := range domain.Languages {
		lang := lang
		g.Go(func() error {
			_, err := r.ReportHTML(result, profile, lang)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		r.logger.Warn("report warm-up failed", zap.Error(err))
	}
}

// PurgeReports drops all cached reports. Called on workflow reset.
func (r *Renderer) PurgeReports() {
	r.reports.Purge()
}

// markdown converts engine prose (insights, recommendations, tips) to HTML.
// The engine's text may carry emphasis and lists; plain text passes through
// wrapped in a paragraph.
func (r *Renderer) markdown(text string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(buf.String())
}

func translate(lang domain.Language, path string) string {
	return i18n.Resolve(lang, path)
}

// fieldLabel resolves the form label for a snake_case statement field; the
// dictionaries key form labels in camelCase.
func fieldLabel(lang domain.Language, field string) string {
	parts := strings.Split(field, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return i18n.Resolve(lang, "financialForm."+strings.Join(parts, ""))
}

func reportKey(resultID string, lang domain.Language) string {
	return fmt.Sprintf("%s:%s", resultID, lang)
}
