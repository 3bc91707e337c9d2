// Package web embeds the game shell served at / and /static/.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.tmpl static/*
var assets embed.FS

// StaticFS exposes the embedded static assets for http.FileServer.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		// The subtree is embedded at build time; a miss here means the
		// embed directive and this path disagree.
		panic("web: static assets missing: " + err.Error())
	}
	return http.FS(sub)
}

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.ParseFS(assets, "templates/*.tmpl"))
}
