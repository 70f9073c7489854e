package codeblock

import (
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// tables is built once and only read afterwards.
var tables = map[string]*Language{
	"go":         goLanguage(),
	"python":     pythonLanguage(),
	"javascript": javascriptLanguage(),
	"typescript": typescriptLanguage(),
	"rust":       rustLanguage(),
	"swift":      swiftLanguage(),
	"c":          cLanguage(),
	"cpp":        cppLanguage(),
	"java":       javaLanguage(),
	"kotlin":     kotlinLanguage(),
	"ruby":       rubyLanguage(),
	"shell":      shellLanguage(),
	"sql":        sqlLanguage(),
	"json":       jsonLanguage(),
	"yaml":       yamlLanguage(),
	"css":        cssLanguage(),
	"html":       markupLanguage("html"),
	"xml":        markupLanguage("xml"),
	"generic":    genericLanguage(),
}

// lexerNames maps chroma's canonical lexer names onto table names when the
// two differ.
var lexerNames = map[string]string{
	"c++":                    "cpp",
	"bash":                   "shell",
	"bash session":           "shell",
	"zsh":                    "shell",
	"fish":                   "shell",
	"powershell":             "shell",
	"tsx":                    "typescript",
	"react":                  "javascript",
	"python 2":               "python",
	"objective-c":            "c",
	"mysql":                  "sql",
	"postgresql sql dialect": "sql",
	"plsql":                  "sql",
	"scss":                   "css",
	"sass":                   "css",
	"less":                   "css",
	"svg":                    "xml",
}

// Lookup resolves a fence tag to its rule table. Tags no table covers resolve
// to the generic C-like table with ok=false.
func Lookup(tag string) (lang *Language, ok bool) {
	name := canonicalName(tag)
	l, ok := tables[name]
	if !ok || name == "generic" {
		return tables["generic"], false
	}
	return l, true
}

// Languages lists the names of the built-in tables.
func Languages() []string {
	out := make([]string, 0, len(tables))
	for name := range tables {
		out = append(out, name)
	}
	return out
}

func canonicalName(tag string) string {
	key := strings.ToLower(strings.TrimSpace(tag))
	if _, ok := tables[key]; ok {
		return key
	}
	lexer := lexers.Get(key)
	if lexer == nil {
		return "generic"
	}
	name := strings.ToLower(lexer.Config().Name)
	if mapped, ok := lexerNames[name]; ok {
		return mapped
	}
	if _, ok := tables[name]; ok {
		return name
	}
	return "generic"
}
