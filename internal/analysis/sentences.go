package analysis

import (
	"strings"
	"unicode"
)

// Legal abbreviations that end in a period without ending a sentence.
var abbreviations = map[string]bool{
	"v": true, "vs": true, "u.s": true, "s": true, "ct": true, "ed": true, "l": true,
	"f": true, "supp": true, "app": true, "cir": true, "no": true, "nos": true,
	"inc": true, "co": true, "corp": true, "ltd": true, "jr": true, "sr": true,
	"mr": true, "mrs": true, "ms": true, "dr": true, "st": true, "id": true,
	"e.g": true, "i.e": true, "cf": true, "art": true, "amend": true, "const": true,
	"stat": true, "reg": true, "fed": true, "sec": true, "cl": true, "ch": true,
	"p": true, "pp": true, "n": true, "ibid": true, "op": true, "cert": true,
	"u.s.c": true, "c.f.r": true, "j": true, "c.j": true, "jj": true, "dist": true,
	"ann": true, "rev": true, "gen": true, "div": true, "dept": true, "ass'n": true,
}

// splitSentences breaks text into sentences, keeping legal abbreviations and
// reporter citations intact.
func splitSentences(text string) []string {
	var out []string
	runes := []rune(text)
	start := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\n' && i+1 < len(runes) && runes[i+1] == '\n' {
			out = appendSentence(out, runes[start:i])
			start = i + 1
			continue
		}
		if r != '.' && r != '?' && r != '!' {
			continue
		}
		// A sentence ends at whitespace followed by an upper-case letter, a quote or a parenthesis.
		j := i + 1
		for j < len(runes) && (runes[j] == '"' || runes[j] == '\'' || runes[j] == ')' || runes[j] == '”') {
			j++
		}
		if j >= len(runes) {
			continue
		}
		if !unicode.IsSpace(runes[j]) {
			continue
		}
		k := j
		for k < len(runes) && unicode.IsSpace(runes[k]) {
			k++
		}
		if k < len(runes) && !(unicode.IsUpper(runes[k]) || runes[k] == '"' || runes[k] == '“' || runes[k] == '(') {
			continue
		}
		if r == '.' && isAbbreviation(runes[start:i]) {
			continue
		}
		out = appendSentence(out, runes[start:j])
		start = j
		i = j - 1
	}
	return appendSentence(out, runes[start:])
}

func isAbbreviation(before []rune) bool {
	fields := strings.Fields(string(before))
	if len(fields) == 0 {
		return false
	}
	word := strings.ToLower(strings.TrimLeft(fields[len(fields)-1], "(\"'"))
	if word == "" {
		return false
	}
	if abbreviations[word] {
		return true
	}
	// Single initials such as "J." in "John J. Smith".
	return len([]rune(word)) == 1 && unicode.IsLetter([]rune(word)[0])
}

func appendSentence(out []string, r []rune) []string {
	s := strings.Join(strings.Fields(string(r)), " ")
	if len(s) < 2 {
		return out
	}
	return append(out, s)
}
