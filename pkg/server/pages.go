package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/withgalaxy/tsxkit/pkg/props"
	"github.com/withgalaxy/tsxkit/pkg/render"
	"github.com/withgalaxy/tsxkit/pkg/studio"
)

//go:embed assets/templates/*.html assets/docs/*.md assets/static/*
var assetsFS embed.FS

type pageSet struct {
	tmpl *template.Template
	docs map[string]*render.Doc
}

func loadPages(md *render.Renderer) (*pageSet, error) {
	tmpl, err := template.ParseFS(assetsFS, "assets/templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	docs := make(map[string]*render.Doc)
	for _, page := range []string{"svg", "props"} {
		data, err := assetsFS.ReadFile("assets/docs/" + page + ".md")
		if err != nil {
			return nil, fmt.Errorf("read %s doc: %w", page, err)
		}
		doc, err := md.ParseDoc(string(data))
		if err != nil {
			return nil, fmt.Errorf("render %s doc: %w", page, err)
		}
		docs[page] = doc
	}

	return &pageSet{tmpl: tmpl, docs: docs}, nil
}

type pageData struct {
	Page  string
	Title string
	Help  template.HTML

	Color string

	Input string
	Rows  []props.FieldDescriptor
	Kinds []props.Kind
}

func (ps *pageSet) data(page string) pageData {
	d := pageData{Page: page, Title: page}
	if doc, ok := ps.docs[page]; ok {
		d.Help = template.HTML(doc.HTML)
		if t := doc.String("title"); t != "" {
			d.Title = t
		}
	}
	return d
}

func (ps *pageSet) render(w http.ResponseWriter, data pageData) {
	var buf bytes.Buffer
	if err := ps.tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Printf("render %s page: %v", data.Page, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleSVGPage(w http.ResponseWriter, r *http.Request) {
	page := studio.NewIconPage(s.cfg, studio.Env{})

	d := s.pages.data("svg")
	d.Color = page.Color
	s.pages.render(w, d)
}

func (s *Server) handlePropsPage(w http.ResponseWriter, r *http.Request) {
	page := studio.NewPropsPage(s.cfg, studio.Env{})

	d := s.pages.data("props")
	d.Input = page.Input
	d.Rows = page.Rows
	d.Kinds = props.Kinds
	s.pages.render(w, d)
}

func staticHandler() http.Handler {
	sub, err := fs.Sub(assetsFS, "assets/static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
