package codeblock

import (
	"unicode"

	"github.com/iw2rmb/quill/attr"
	"github.com/iw2rmb/quill/internal/scan"
)

var cLikeKeywords = []string{
	"if", "else", "for", "while", "do", "switch", "case", "default",
	"break", "continue", "return", "goto", "struct", "union", "enum",
	"typedef", "static", "const", "extern", "sizeof", "volatile", "inline",
}

func goLanguage() *Language {
	return newLanguage("go").
		withKeywords("break", "case", "chan", "const", "continue", "default",
			"defer", "else", "fallthrough", "for", "func", "go", "goto", "if",
			"import", "interface", "map", "package", "range", "return", "select",
			"struct", "switch", "type", "var", "true", "false", "nil", "iota").
		withTypes("bool", "byte", "complex64", "complex128", "error", "float32",
			"float64", "int", "int8", "int16", "int32", "int64", "rune", "string",
			"uint", "uint8", "uint16", "uint32", "uint64", "uintptr", "any").
		withStrings(dqString, sqString, "`[^`]*`").
		withComments(lineSlashes, blockSlashes)
}

func pythonLanguage() *Language {
	return newLanguage("python").
		withKeywords("and", "as", "assert", "async", "await", "break", "class",
			"continue", "def", "del", "elif", "else", "except", "finally", "for",
			"from", "global", "if", "import", "in", "is", "lambda", "match",
			"case", "nonlocal", "not", "or", "pass", "raise", "return", "try",
			"while", "with", "yield", "True", "False", "None", "self").
		withTypes("int", "float", "str", "bool", "list", "dict", "set", "tuple",
			"bytes", "bytearray", "complex", "frozenset", "object", "type").
		withStrings(`(?i:[rbfu]{0,2})"""(?s:.*?)"""`, `(?i:[rbfu]{0,2})'''(?s:.*?)'''`,
			`(?i:[rbfu]{0,2})`+dqString, `(?i:[rbfu]{0,2})`+sqString).
		withComments(lineHash).
		withExtra(`(?m)^\s*(@[\w.]+)`, 1, attr.ColorAttribute)
}

var jsKeywords = []string{
	"async", "await", "break", "case", "catch", "class", "const", "continue",
	"debugger", "default", "delete", "do", "else", "export", "extends",
	"finally", "for", "from", "function", "if", "import", "in", "instanceof",
	"let", "new", "of", "return", "static", "super", "switch", "this", "throw",
	"try", "typeof", "var", "void", "while", "with", "yield", "true", "false",
	"null", "undefined",
}

func javascriptLanguage() *Language {
	return newLanguage("javascript").
		withKeywords(jsKeywords...).
		withTypes("Array", "Object", "String", "Number", "Boolean", "Promise",
			"Map", "Set", "Symbol", "BigInt", "Date", "RegExp", "Error").
		withStrings(dqString, sqString, "`(?:[^`\\\\]|\\\\.)*`").
		withComments(lineSlashes, blockSlashes)
}

func typescriptLanguage() *Language {
	l := javascriptLanguage()
	l.Name = "typescript"
	kws := append([]string{"interface", "type", "enum", "namespace", "declare",
		"implements", "private", "protected", "public", "readonly", "abstract",
		"keyof", "as", "is"}, jsKeywords...)
	return l.withKeywords(kws...).
		withTypes("string", "number", "boolean", "any", "unknown", "never",
			"void", "object", "bigint", "symbol", "Array", "Promise", "Record",
			"Partial", "Readonly")
}

func rustLanguage() *Language {
	return newLanguage("rust").
		withKeywords("as", "async", "await", "break", "const", "continue",
			"crate", "dyn", "else", "enum", "extern", "false", "fn", "for", "if",
			"impl", "in", "let", "loop", "match", "mod", "move", "mut", "pub",
			"ref", "return", "self", "Self", "static", "struct", "super", "trait",
			"true", "type", "unsafe", "use", "where", "while").
		withTypes("i8", "i16", "i32", "i64", "i128", "isize", "u8", "u16", "u32",
			"u64", "u128", "usize", "f32", "f64", "bool", "char", "str", "String",
			"Vec", "Box", "Option", "Result").
		withStrings(`r#*"(?s:.*?)"#*`, `b`+dqString, dqString, `'(?:[^'\\\n]|\\.)'`).
		withComments(lineSlashes, blockSlashes).
		withExtra(`#!?\[[^\]\n]*\]`, 0, attr.ColorAttribute)
}

func swiftLanguage() *Language {
	return newLanguage("swift").
		withKeywords("associatedtype", "break", "case", "catch", "class",
			"continue", "default", "defer", "do", "else", "enum", "extension",
			"fallthrough", "false", "for", "func", "guard", "if", "import", "in",
			"init", "inout", "let", "nil", "private", "protocol", "public",
			"repeat", "return", "self", "static", "struct", "switch", "throw",
			"throws", "true", "try", "var", "where", "while", "async", "await").
		withTypes("Int", "Double", "Float", "String", "Bool", "Character",
			"Array", "Dictionary", "Set", "Optional", "Any", "Void").
		withStrings(`"""(?s:.*?)"""`, dqString).
		withComments(lineSlashes, blockSlashes).
		withExtra(`@\w+`, 0, attr.ColorAttribute)
}

func cLanguage() *Language {
	return newLanguage("c").
		withKeywords(cLikeKeywords...).
		withTypes("int", "char", "float", "double", "void", "long", "short",
			"unsigned", "signed", "size_t", "bool", "uint8_t", "uint16_t",
			"uint32_t", "uint64_t", "int8_t", "int16_t", "int32_t", "int64_t").
		withStrings(dqString, sqString).
		withComments(lineSlashes, blockSlashes).
		withExtra(`(?m)^\s*(#\s*\w+)`, 1, attr.ColorKeyword)
}

func cppLanguage() *Language {
	l := cLanguage()
	l.Name = "cpp"
	kws := append([]string{"class", "namespace", "template", "typename",
		"public", "private", "protected", "virtual", "override", "new",
		"delete", "this", "using", "try", "catch", "throw", "auto", "nullptr",
		"true", "false", "constexpr", "noexcept"}, cLikeKeywords...)
	return l.withKeywords(kws...).
		withTypes("int", "char", "float", "double", "void", "long", "short",
			"unsigned", "signed", "size_t", "bool", "string", "vector", "map",
			"unique_ptr", "shared_ptr").
		withStrings(`R"\((?s:.*?)\)"`)
}

func javaLanguage() *Language {
	return newLanguage("java").
		withKeywords("abstract", "break", "case", "catch", "class", "continue",
			"default", "do", "else", "enum", "extends", "final", "finally", "for",
			"if", "implements", "import", "instanceof", "interface", "new",
			"package", "private", "protected", "public", "return", "static",
			"super", "switch", "this", "throw", "throws", "try", "void", "while",
			"true", "false", "null", "var", "record").
		withTypes("int", "long", "short", "byte", "char", "float", "double",
			"boolean", "String", "Object", "List", "Map", "Integer").
		withStrings(`"""(?s:.*?)"""`, dqString, sqString).
		withComments(lineSlashes, blockSlashes).
		withExtra(`@\w+`, 0, attr.ColorAttribute)
}

func kotlinLanguage() *Language {
	return newLanguage("kotlin").
		withKeywords("as", "break", "class", "continue", "do", "else", "false",
			"for", "fun", "if", "in", "interface", "is", "null", "object",
			"package", "return", "super", "this", "throw", "true", "try",
			"typealias", "val", "var", "when", "while", "import", "data",
			"sealed", "override", "private", "public", "internal", "suspend").
		withTypes("Int", "Long", "Double", "Float", "String", "Boolean", "Char",
			"Unit", "Any", "List", "Map", "Set").
		withStrings(`"""(?s:.*?)"""`, dqString, sqString).
		withComments(lineSlashes, blockSlashes)
}

func rubyLanguage() *Language {
	return newLanguage("ruby").
		withKeywords("alias", "and", "begin", "break", "case", "class", "def",
			"do", "else", "elsif", "end", "ensure", "false", "for",
			"if", "in", "module", "next", "nil", "not", "or", "redo", "rescue",
			"retry", "return", "self", "super", "then", "true", "undef",
			"unless", "until", "when", "while", "yield", "require").
		withTypes("Integer", "Float", "String", "Symbol", "Array", "Hash").
		withStrings(dqString, sqString).
		withComments(lineHash, `(?m)^=begin(?s:.*?)^=end`).
		withExtra(`:[A-Za-z_]\w*`, 0, attr.ColorString)
}

func shellLanguage() *Language {
	return newLanguage("shell").
		withKeywords("if", "then", "else", "elif", "fi", "case", "esac", "for",
			"while", "until", "do", "done", "in", "function", "return", "exit",
			"export", "local", "readonly", "source", "echo", "set", "unset").
		withStrings(dqString, `'[^']*'`).
		withComments(`(?m)(?:^|\s)(#[^\n]*)`).
		withExtra(`\$\{?[A-Za-z_][A-Za-z0-9_]*\}?`, 0, attr.ColorAttribute)
}

func sqlLanguage() *Language {
	words := []string{"select", "from", "where", "insert", "into", "values",
		"update", "set", "delete", "create", "table", "drop", "alter", "join",
		"left", "right", "inner", "outer", "on", "group", "by", "order",
		"having", "limit", "as", "and", "or", "not", "null", "is", "in",
		"distinct", "union", "primary", "key", "index"}
	upper := make([]string, 0, len(words)*2)
	for _, w := range words {
		upper = append(upper, w, toUpper(w))
	}
	return newLanguage("sql").
		withKeywords(upper...).
		withTypes("int", "integer", "text", "varchar", "boolean", "date",
			"timestamp", "INT", "INTEGER", "TEXT", "VARCHAR", "BOOLEAN", "DATE",
			"TIMESTAMP").
		withStrings(`'(?:[^']|'')*'`).
		withComments(`--[^\n]*`, blockSlashes)
}

func jsonLanguage() *Language {
	return newLanguage("json").
		dataOnly().
		withKeywords("true", "false", "null").
		withExtra(`(`+dqString+`)\s*:`, 1, attr.ColorProperty).
		withFilteredString(dqString, notKey)
}

func yamlLanguage() *Language {
	return newLanguage("yaml").
		dataOnly().
		withKeywords("true", "false", "null", "yes", "no", "on", "off").
		withExtra(`(?m)^\s*(?:-\s+)?([\w.-]+)\s*:`, 1, attr.ColorProperty).
		withStrings(dqString, sqString).
		withComments(`(?m)(?:^|\s)(#[^\n]*)`)
}

func cssLanguage() *Language {
	return newLanguage("css").
		dataOnly().
		withKeywords("important", "inherit", "initial", "unset", "none", "auto").
		withExtra(`(?m)^\s*([^{}\n;]+?)\s*\{`, 1, attr.ColorTag).
		withExtra(`([A-Za-z-]+)\s*:[^;{}\n]*;`, 1, attr.ColorProperty).
		withExtra(`\d(px|em|rem|vh|vw|pt|ms|s|deg|%)`, 1, attr.ColorKeyword).
		withStrings(dqString, sqString).
		withComments(blockSlashes)
}

func markupLanguage(name string) *Language {
	return newLanguage(name).
		dataOnly().
		withExtra(`</?([A-Za-z][\w:-]*)`, 1, attr.ColorTag).
		withExtra(`\s([A-Za-z_:][\w:.-]*)\s*=`, 1, attr.ColorAttribute).
		withStrings(dqString, sqString).
		withComments(`<!--(?s:.*?)-->`)
}

// genericLanguage is the fallback for tags no table covers.
func genericLanguage() *Language {
	return newLanguage("generic").
		withKeywords(append([]string{"function", "func", "def", "class",
			"return", "import", "var", "let", "true", "false", "null", "nil"},
			cLikeKeywords...)...).
		withStrings(dqString, sqString).
		withComments(lineSlashes, blockSlashes, `(?m)^\s*(#[^\n]*)`)
}

// notKey rejects a string literal that is followed by a colon, which makes it
// an object key rather than a value.
func notKey(s string, m scan.Match) bool {
	for i := m[1]; i < len(s); i++ {
		c := rune(s[i])
		if c == ':' {
			return false
		}
		if !unicode.IsSpace(c) {
			return true
		}
	}
	return true
}

func toUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
