// Package mdstyle derives a per-character attribute map from markdown source.
//
// Styling is a fixed sequence of regexp passes over the raw text; later passes
// override earlier ones key by key. There is no syntax tree and no state kept
// between calls: the same input always yields the same map.
package mdstyle
