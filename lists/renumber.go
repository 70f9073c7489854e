package lists

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Renumber rewrites ordered markers so every run counts up from 1 per
// indentation depth. cursor is a rune offset into text; the returned cursor
// points at the same content in the rewritten text.
//
// Counting rules: an ordered line at depth d advances counter d and resets
// every deeper counter. Bullet and checkbox lines are compatible siblings:
// they keep counters at their own depth and reset deeper ones. An indented
// plain line continues the item it sits under and closes any deeper run. A
// blank line or an unindented plain line resets everything.
func Renumber(text string, cursor int) (string, int) {
	ls := strings.Split(text, "\n")
	counters := map[int]int{}
	resetDeeper := func(d int) {
		for k := range counters {
			if k > d {
				delete(counters, k)
			}
		}
	}

	changed := false
	off := 0 // rune offset of the current line in the original text
	newCursor := cursor
	for i, line := range ls {
		n := utf8.RuneCountInString(line)
		it := Classify(line)
		switch {
		case strings.TrimSpace(line) == "":
			clear(counters)
		case it.Kind == None:
			if d := depth(leadingSpace(line)); d == 0 {
				clear(counters)
			} else {
				resetDeeper(d)
			}
		case it.Numbered():
			d := depth(it.Indent)
			counters[d]++
			resetDeeper(d)
			if want := counters[d]; want != it.Number {
				ls[i], newCursor = rewrite(line, it, want, off, cursor, newCursor)
				changed = true
			}
		default:
			resetDeeper(depth(it.Indent))
		}
		off += n + 1
	}
	if !changed {
		return text, cursor
	}
	return strings.Join(ls, "\n"), newCursor
}

// rewrite replaces the number of it on line with want. lineOff is the rune
// offset of the line in the original text; orig is the original cursor and
// cur the cursor adjusted for earlier rewrites.
func rewrite(line string, it Item, want, lineOff, orig, cur int) (string, int) {
	oldDigits := strconv.Itoa(it.Number)
	newDigits := strconv.Itoa(want)
	indent := utf8.RuneCountInString(it.Indent)
	rest := line[len(it.Indent):]
	if !strings.HasPrefix(rest, oldDigits) {
		// Leading zeros: the marker text is not the canonical form of Number.
		end := 0
		for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
			end++
		}
		oldDigits = rest[:end]
	}
	out := it.Indent + newDigits + rest[len(oldDigits):]

	digitsStart := lineOff + indent
	digitsEnd := digitsStart + len(oldDigits)
	delta := len(newDigits) - len(oldDigits)
	switch {
	case orig >= digitsEnd:
		cur += delta
	case orig > digitsStart:
		if limit := digitsStart + len(newDigits); orig > limit {
			cur -= orig - limit
		}
	}
	return out, cur
}

func leadingSpace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}
