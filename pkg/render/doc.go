// Package render produces Graphviz DOT source for route graphs and search
// trees, and renders it to SVG or PNG in-process.
//
// # Usage
//
// Convert a structure to DOT, then render:
//
//	dot := render.GraphDOT(city.Routes, render.Options{Name: city.Name})
//	svg, err := render.SVG(ctx, dot)
//
// Tree renderings keep the left/right orientation readable by emitting an
// invisible spacer edge when a node has exactly one child, so Graphviz does
// not center the lone child under its parent.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG and
// PNG rendering; tests only assert on the generated DOT text.
package render
