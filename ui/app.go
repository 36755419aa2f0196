// Package ui is the browser front-end: a gin server with embedded HTML
// templates over the shared loader, summarizer and plotter.
package ui

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"

	"github.com/CosmicViraj/go-data-analyzer/internal"
	"github.com/CosmicViraj/go-data-analyzer/internal/analysis"
	"github.com/CosmicViraj/go-data-analyzer/internal/config"
	"github.com/CosmicViraj/go-data-analyzer/internal/session"
)

//go:embed templates/*
var embeddedFiles embed.FS

// App represents the web application
type App struct {
	router    *gin.Engine
	cfg       *config.Config
	log       *internal.Logger
	sessions  *session.Store
	templates *template.Template
	intro     template.HTML
}

// NewApp wires routes, templates and the session store.
func NewApp(cfg *config.Config) (*App, error) {
	funcMap := template.FuncMap{
		"fmtStat": analysis.FormatValue,
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	introSource, err := embeddedFiles.ReadFile("templates/intro.md")
	if err != nil {
		return nil, fmt.Errorf("failed to read intro: %w", err)
	}

	app := &App{
		router:    gin.New(),
		cfg:       cfg,
		log:       internal.NewDefaultLogger("web"),
		sessions:  session.NewStore(),
		templates: templates,
		intro:     template.HTML(markdown.ToHTML(introSource, nil, nil)),
	}

	app.router.Use(gin.Logger(), gin.Recovery())
	app.router.Use(app.sessionMiddleware())
	app.setupRoutes()

	return app, nil
}

func (a *App) setupRoutes() {
	a.router.GET("/", a.handleIndex)
	a.router.POST("/upload", a.handleUpload)
	a.router.GET("/stats", a.handleStats)
	a.router.GET("/histogram", a.handleHistogram)
	a.router.GET("/histogram.png", a.handleHistogramPNG)
}

// Router exposes the underlying engine for tests and embedding.
func (a *App) Router() *gin.Engine { return a.router }

// Start starts the HTTP server
func (a *App) Start() error {
	addr := ":" + a.cfg.Server.Port
	a.log.Info("starting data analyzer web UI on %s", addr)
	return a.router.Run(addr)
}
