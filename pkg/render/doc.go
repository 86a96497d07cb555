// Package render converts part trees to Graphviz DOT and renders them to
// SVG or PNG.
//
// Structural parent/child edges are drawn solid; symmetry links are drawn
// dashed and undirected (one dashed edge per counterpart pair). The symmetry
// root of each group is highlighted so mirrored assemblies read at a glance.
//
// This package uses [github.com/goccy/go-graphviz] for in-process rendering;
// no external Graphviz installation is required.
package render
