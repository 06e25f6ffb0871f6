// Package style turns the symbolic style tokens used by the plots ("black", "--",
// "thick", "star", "med", ...) into numeric style codes, and the codes into
// go-chart drawing attributes.
//
// Every table is closed: an unknown token is a *LookupError wrapping
// ErrUnknownToken, never a silent default.
package style

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/nzipper/root-plotting/src/hist"
)

// ErrUnknownToken is wrapped by every failed lookup.
var ErrUnknownToken = errors.New("unknown style token")

// LookupError names the table and token of a failed lookup.
type LookupError struct {
	Table string
	Token string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s: %q is not a known %s (known: %s)", ErrUnknownToken, e.Token, e.Table, strings.Join(knownTokens(e.Table), ", "))
}

func (e *LookupError) Unwrap() error { return ErrUnknownToken }

var colorCodes = map[string]int{
	"white":   0,
	"black":   1,
	"red":     2,
	"green":   3,
	"blue":    4,
	"cyan":    432,
	"gray":    920,
	"magenta": 616,
	"orange":  797,
}

var lineStyleCodes = map[string]int{
	"-":  1,
	"..": 2,
	"--": 9,
	"-.": 10,
}

var lineWidthCodes = map[string]int{
	"thin":  1,
	"med":   2,
	"thick": 5,
}

var markerStyleCodes = map[string]int{
	"":     0,
	".":    1,
	"+":    34,
	"x":    5,
	"o":    4,
	"*":    3,
	"^":    22,
	"star": 29,
}

var markerSizeCodes = map[string]int{
	"small":    1,
	"med":      2,
	"large":    3,
	"x-large":  4,
	"xx-large": 5,
}

var tables = map[string]map[string]int{
	"color":        colorCodes,
	"line style":   lineStyleCodes,
	"line width":   lineWidthCodes,
	"marker style": markerStyleCodes,
	"marker size":  markerSizeCodes,
}

func knownTokens(table string) []string {
	if table == "text size" {
		return []string{`"large"`, `"med"`, `"small"`}
	}
	m := tables[table]
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, fmt.Sprintf("%q", k))
	}
	sort.Strings(out)
	return out
}

func lookup(table, token string) (int, error) {
	code, ok := tables[table][token]
	if !ok {
		return 0, &LookupError{Table: table, Token: token}
	}
	return code, nil
}

// Color returns the color code of token, e.g. "orange" is 797.
func Color(token string) (int, error) { return lookup("color", token) }

// LineStyle returns the line style code of "-", "..", "--" or "-.".
func LineStyle(token string) (int, error) { return lookup("line style", token) }

// LineWidth returns the width of "thin", "med" or "thick".
func LineWidth(token string) (int, error) { return lookup("line width", token) }

// MarkerStyle returns the marker code of token; "" is no marker.
func MarkerStyle(token string) (int, error) { return lookup("marker style", token) }

// MarkerSize returns the size code of "small" through "xx-large".
func MarkerSize(token string) (int, error) { return lookup("marker size", token) }

// Colors lists the known color tokens in sorted order.
func Colors() []string {
	out := make([]string, 0, len(colorCodes))
	for k := range colorCodes {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// EntryTokens is the symbolic description of one series' look.
type EntryTokens struct {
	MarkerColor string
	MarkerStyle string
	MarkerSize  string
	LineColor   string
	LineStyle   string
	LineWidth   string
}

// DefaultEntry is a black medium solid line without markers.
func DefaultEntry() EntryTokens {
	return EntryTokens{
		MarkerColor: "black",
		MarkerStyle: "",
		MarkerSize:  "small",
		LineColor:   "black",
		LineStyle:   "-",
		LineWidth:   "med",
	}
}

// WithLineColor returns a copy with the line color replaced.
func (t EntryTokens) WithLineColor(c string) EntryTokens {
	t.LineColor = c
	return t
}

// Resolve maps every token to its code. The first unknown token aborts.
func (t EntryTokens) Resolve() (hist.Attributes, error) {
	var a hist.Attributes
	var err error
	steps := []struct {
		dst   *int
		fn    func(string) (int, error)
		token string
	}{
		{&a.MarkerColor, Color, t.MarkerColor},
		{&a.MarkerStyle, MarkerStyle, t.MarkerStyle},
		{&a.MarkerSize, MarkerSize, t.MarkerSize},
		{&a.LineColor, Color, t.LineColor},
		{&a.LineStyle, LineStyle, t.LineStyle},
		{&a.LineWidth, LineWidth, t.LineWidth},
	}
	for _, s := range steps {
		if *s.dst, err = s.fn(s.token); err != nil {
			return hist.Attributes{}, err
		}
	}
	return a, nil
}

// Target is anything carrying a title and rendering attributes.
type Target interface {
	SetTitle(string)
	Attributes() *hist.Attributes
}

// FormatEntry resolves tokens and writes them into target. A non-nil title
// replaces the target's title. On a lookup failure target is left untouched.
func FormatEntry(target Target, title *string, tokens EntryTokens) error {
	a, err := tokens.Resolve()
	if err != nil {
		return err
	}
	if title != nil {
		target.SetTitle(*title)
	}
	*target.Attributes() = a
	return nil
}
