package query

import (
	"regexp"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"tripreco/internal/catalog"
)

var strayWordsRe = regexp.MustCompile(`\b(to|from)\b`)

// Resolver maps free-text city tokens to canonical catalog destinations.
// Matching is best-effort: ambiguous short inputs resolve to whichever
// catalog entry is iterated first.
type Resolver struct {
	cat        *catalog.Catalog
	knownNames []string
	known      map[string]struct{}
}

func NewResolver(cat *catalog.Catalog) *Resolver {
	names := cat.KnownCityNames()
	known := make(map[string]struct{}, len(names))
	for _, name := range names {
		known[name] = struct{}{}
	}
	return &Resolver{cat: cat, knownNames: names, known: known}
}

// Resolve returns the canonical destination display name for a free-text
// city token, or "" if it cannot be resolved. First structural match wins.
func (r *Resolver) Resolve(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return ""
	}
	if _, ok := r.known[s]; ok {
		for _, d := range r.cat.Destinations() {
			if strings.ToLower(d.Name) == s {
				return d.Name
			}
		}
		return titleCase(s)
	}
	for _, d := range r.cat.Destinations() {
		dn := strings.ToLower(d.Name)
		if strings.HasPrefix(dn, s) || strings.HasPrefix(s, dn) || strings.Contains(dn, s) || strings.Contains(s, dn) {
			return d.Name
		}
	}
	s2 := strings.TrimSpace(strayWordsRe.ReplaceAllString(s, ""))
	if s2 != "" {
		for _, d := range r.cat.Destinations() {
			dn := strings.ToLower(d.Name)
			if s2 == dn || strings.Contains(dn, s2) || strings.Contains(s2, dn) {
				return d.Name
			}
		}
	}
	return ""
}

// ResolveID resolves a token to a catalog destination id, or "".
func (r *Resolver) ResolveID(name string) string {
	resolved := r.Resolve(name)
	if resolved == "" {
		return ""
	}
	if id, ok := r.cat.DestinationIDByName(resolved); ok {
		return id
	}
	return ""
}

type cityMatch struct {
	value string
	start int
	end   int
}

// DetectDestination scans text for whole-word catalog city names and
// returns the destination id. Queries read roughly "from ORIGIN to
// DESTINATION", so a match after "to" wins, else the rightmost match.
func (r *Resolver) DetectDestination(text string) string {
	if text == "" {
		return ""
	}
	lower := strings.ToLower(text)
	var matches []cityMatch
	for _, d := range r.cat.Destinations() {
		re := wholeWord(strings.ToLower(d.Name))
		for _, loc := range re.FindAllStringIndex(lower, -1) {
			matches = append(matches, cityMatch{value: d.ID, start: loc[0], end: loc[1]})
		}
	}
	if len(matches) == 0 {
		return ""
	}
	if loc := wholeWord("to").FindStringIndex(lower); loc != nil {
		best := cityMatch{start: -1}
		for _, m := range matches {
			if m.start >= loc[1] && (best.start == -1 || m.start < best.start) {
				best = m
			}
		}
		if best.start != -1 {
			return best.value
		}
	}
	best := matches[0]
	for _, m := range matches[1:] {
		if m.start >= best.start {
			best = m
		}
	}
	return best.value
}

// DetectOrigin mirrors DetectDestination with the opposite default: a
// match after "from" wins, else the last match before "to", else the
// earliest match. Returns a canonical city name.
func (r *Resolver) DetectOrigin(text string) string {
	if text == "" {
		return ""
	}
	lower := strings.ToLower(text)
	var matches []cityMatch
	for _, name := range r.knownNames {
		re := wholeWord(name)
		for _, loc := range re.FindAllStringIndex(lower, -1) {
			matches = append(matches, cityMatch{value: name, start: loc[0], end: loc[1]})
		}
	}
	if len(matches) == 0 {
		return ""
	}
	if loc := wholeWord("from").FindStringIndex(lower); loc != nil {
		best := cityMatch{start: -1}
		for _, m := range matches {
			if m.start >= loc[1] && (best.start == -1 || m.start < best.start) {
				best = m
			}
		}
		if best.start != -1 {
			return r.Resolve(best.value)
		}
	}
	if loc := wholeWord("to").FindStringIndex(lower); loc != nil {
		best := cityMatch{start: -1}
		for _, m := range matches {
			if m.end <= loc[0] && (best.start == -1 || m.start >= best.start) {
				best = m
			}
		}
		if best.start != -1 {
			return r.Resolve(best.value)
		}
	}
	best := matches[0]
	for _, m := range matches[1:] {
		if m.start < best.start {
			best = m
		}
	}
	return r.Resolve(best.value)
}

// Suggest returns up to n catalog city names fuzzily matching the input.
// Advisory only: resolution itself stays on the structural rules above.
func (r *Resolver) Suggest(input string, n int) []string {
	names := make([]string, 0, len(r.cat.Destinations()))
	for _, d := range r.cat.Destinations() {
		names = append(names, d.Name)
	}
	ranked := fuzzy.Find(input, names)
	out := make([]string, 0, n)
	for _, m := range ranked {
		out = append(out, m.Str)
		if len(out) == n {
			break
		}
	}
	return out
}

// SuggestFromText runs Suggest over each word of free text, longest
// words first, and collects up to n distinct city names. Words shorter
// than four characters are skipped as too ambiguous to match.
func (r *Resolver) SuggestFromText(text string, n int) []string {
	words := strings.Fields(strings.ToLower(text))
	sort.SliceStable(words, func(i, j int) bool { return len(words[i]) > len(words[j]) })

	seen := make(map[string]struct{})
	out := make([]string, 0, n)
	for _, w := range words {
		if len(w) < 4 {
			continue
		}
		for _, name := range r.Suggest(w, n) {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
			if len(out) == n {
				return out
			}
		}
	}
	return out
}

func wholeWord(token string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(token) + `\b`)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
