// Package codeblock highlights the interior of fenced code blocks.
//
// Each language is a rule table (keywords, builtin types, string literal and
// comment patterns, optional extras). Token classes are applied in a fixed
// order and later classes win, so comments always end up on top of anything
// that looks like a keyword or string inside them.
package codeblock
