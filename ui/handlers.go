package ui

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/CosmicViraj/go-data-analyzer/internal/analysis"
	"github.com/CosmicViraj/go-data-analyzer/internal/dataset"
	"github.com/CosmicViraj/go-data-analyzer/internal/errors"
	"github.com/CosmicViraj/go-data-analyzer/internal/render"
	"github.com/CosmicViraj/go-data-analyzer/internal/session"
)

const sessionCookie = "analyzer_session"

// previewRows is how many rows the index page shows after a load.
const previewRows = 5

// sessionMiddleware ensures every request carries a valid session ID cookie.
func (a *App) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || !session.Valid(id) {
			id = session.NewSession()
			c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
		}
		c.Set(sessionCookie, id)
		c.Next()
	}
}

func (a *App) sessionID(c *gin.Context) string {
	return c.GetString(sessionCookie)
}

// indexPage is the view model for the index template.
type indexPage struct {
	Intro          template.HTML
	Error          string
	Loaded         bool
	Filename       string
	Rows           int
	Headers        []string
	Preview        [][]string
	NumericColumns []string
}

func (a *App) indexState(c *gin.Context) indexPage {
	page := indexPage{Intro: a.intro}
	entry, ok := a.sessions.Get(a.sessionID(c))
	if !ok {
		return page
	}
	page.Loaded = true
	page.Filename = entry.Filename
	page.Rows = entry.Table.Len()
	page.Headers = entry.Table.Headers()
	page.Preview = entry.Table.Preview(previewRows)
	page.NumericColumns = entry.Table.NumericColumns()
	return page
}

func (a *App) handleIndex(c *gin.Context) {
	a.renderTemplate(c, http.StatusOK, "index.html", a.indexState(c))
}

// handleUpload loads the posted file into the session. A failed load leaves
// any previously loaded table untouched and re-renders the index with one
// dismissible error message.
func (a *App) handleUpload(c *gin.Context) {
	file, header, err := c.Request.FormFile("dataset")
	if err != nil {
		a.uploadError(c, "No file uploaded")
		return
	}
	defer file.Close()

	maxSize := a.cfg.Upload.MaxSizeMB * 1024 * 1024
	if header.Size > maxSize {
		a.uploadError(c, fmt.Sprintf("File size (%.1f MB) exceeds the %d MB limit",
			float64(header.Size)/(1024*1024), a.cfg.Upload.MaxSizeMB))
		return
	}

	filename := header.Filename
	if !hasValidExtension(filename) {
		a.uploadError(c, "Only CSV (.csv) and Excel (.xlsx) files are allowed")
		return
	}

	t, err := dataset.Load(filename, file)
	if err != nil {
		a.log.Warn("load failed for %s: %v", filename, err)
		a.uploadError(c, "Error loading file. "+err.Error())
		return
	}

	a.sessions.Put(a.sessionID(c), t, filename)
	a.log.Info("loaded %s: %d columns, %d rows", filename, len(t.Headers()), t.Len())
	c.Redirect(http.StatusSeeOther, "/")
}

func (a *App) uploadError(c *gin.Context, message string) {
	page := a.indexState(c)
	page.Error = message
	a.renderTemplate(c, http.StatusBadRequest, "index.html", page)
}

func hasValidExtension(filename string) bool {
	lower := strings.ToLower(filename)
	return strings.HasSuffix(lower, ".csv") || strings.HasSuffix(lower, ".xlsx")
}

// statsPage is the view model for the stats template.
type statsPage struct {
	Error     string
	Filename  string
	NoNumeric bool
	Summaries []analysis.ColumnSummary
}

func (a *App) handleStats(c *gin.Context) {
	entry, ok := a.sessions.Get(a.sessionID(c))
	if !ok {
		a.renderTemplate(c, http.StatusOK, "stats.html", statsPage{Error: "Load a dataset first."})
		return
	}

	summaries := analysis.Summarize(entry.Table)
	a.renderTemplate(c, http.StatusOK, "stats.html", statsPage{
		Filename:  entry.Filename,
		NoNumeric: len(summaries) == 0,
		Summaries: summaries,
	})
}

// histogramPage is the view model for the histogram template.
type histogramPage struct {
	Error    string
	Filename string
	Columns  []string
	Selected string
	Warning  string
	ImageURL string
}

func (a *App) handleHistogram(c *gin.Context) {
	entry, ok := a.sessions.Get(a.sessionID(c))
	if !ok {
		a.renderTemplate(c, http.StatusOK, "histogram.html", histogramPage{Error: "Load a dataset first."})
		return
	}

	page := histogramPage{
		Filename: entry.Filename,
		Columns:  entry.Table.NumericColumns(),
		Selected: c.Query("column"),
	}

	if page.Selected != "" {
		// Validate before handing the browser an image URL so an invalid
		// selection surfaces as a warning, not a broken image.
		if _, err := analysis.BuildHistogram(entry.Table, page.Selected, a.cfg.Plot.Bins); err != nil {
			page.Warning = err.Error()
		} else {
			page.ImageURL = "/histogram.png?column=" + url.QueryEscape(page.Selected)
		}
	}

	a.renderTemplate(c, http.StatusOK, "histogram.html", page)
}

func (a *App) handleHistogramPNG(c *gin.Context) {
	entry, ok := a.sessions.Get(a.sessionID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no dataset loaded"})
		return
	}

	bins := a.cfg.Plot.Bins
	if binsStr := c.Query("bins"); binsStr != "" {
		if parsed, err := strconv.Atoi(binsStr); err == nil && parsed > 0 {
			bins = parsed
		}
	}

	hist, err := analysis.BuildHistogram(entry.Table, c.Query("column"), bins)
	if err != nil {
		c.JSON(statusForCode(errors.GetCode(err)), gin.H{"error": err.Error()})
		return
	}

	png, err := render.HistogramPNG(hist, a.cfg.Plot.Width, a.cfg.Plot.Height)
	if err != nil {
		a.log.Error("histogram render failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render histogram"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

func statusForCode(code string) int {
	switch code {
	case errors.CodeColumnNotFound:
		return http.StatusNotFound
	case errors.CodeColumnNotNumeric, errors.CodeNoData:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
