package resume

import (
	"bytes"
	"embed"
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed themes/*.css
var themes embed.FS

// Themes lists the valid HTML export theme names in ascending order.
func Themes() []string {
	entries, err := themes.ReadDir("themes")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".css"))
	}
	sort.Strings(names)
	return names
}

// HTML converts a rendered markdown CV into a standalone, print-ready
// HTML document styled with the named theme. An unknown theme is an
// error naming the valid ones.
func HTML(markdown string, theme string, title string) ([]byte, error) {
	css, err := themes.ReadFile("themes/" + theme + ".css")
	if err != nil {
		return nil, fmt.Errorf("unknown theme %q, valid themes are: %s", theme, strings.Join(Themes(), ", "))
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var body bytes.Buffer
	if err := md.Convert([]byte(markdown), &body); err != nil {
		return nil, fmt.Errorf("cannot convert cv to HTML: %w", err)
	}

	var doc bytes.Buffer
	fmt.Fprintf(&doc, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<style>
%s</style>
</head>
<body>
<main>
%s</main>
</body>
</html>
`, html.EscapeString(title), css, body.String())
	return doc.Bytes(), nil
}
