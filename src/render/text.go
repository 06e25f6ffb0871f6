package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Titles is a "title;x title;y title" string split into its parts.
type Titles struct {
	Title, X, Y string
}

// SplitTitles splits a semicolon separated title string. Missing parts are empty.
func SplitTitles(s string) Titles {
	parts := strings.SplitN(s, ";", 3)
	var t Titles
	if len(parts) > 0 {
		t.Title = parts[0]
	}
	if len(parts) > 1 {
		t.X = parts[1]
	}
	if len(parts) > 2 {
		t.Y = parts[2]
	}
	return t
}

var greek = strings.NewReplacer(
	"#varepsilon", "ε",
	"#epsilon", "ε",
	"#alpha", "α",
	"#beta", "β",
	"#gamma", "γ",
	"#delta", "δ",
	"#Delta", "Δ",
	"#eta", "η",
	"#mu", "μ",
	"#nu", "ν",
	"#phi", "φ",
	"#pi", "π",
	"#sigma", "σ",
	"#tau", "τ",
	"#chi", "χ",
	"#theta", "θ",
	"#pm", "±",
	"#times", "×",
	"#rightarrow", "→",
	"#geq", "≥",
	"#leq", "≤",
	`\pm`, "±",
)

// PlainText turns the small markup used in axis titles into plain text:
// "#eta" becomes "η", "p_{T}" becomes "pT" and "x^{2}" becomes "x^2".
func PlainText(s string) string {
	s = greek.Replace(s)
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c == '_' || c == '^') && i+1 < len(s) && s[i+1] == '{' {
			if end := strings.IndexByte(s[i+2:], '}'); end >= 0 {
				if c == '^' {
					b.WriteByte('^')
				}
				b.WriteString(s[i+2 : i+2+end])
				i += 2 + end
				continue
			}
		}
		if c == '{' || c == '}' {
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Annotate writes text onto img with the top-left corner of the text box at
// (x, y) in pixels, over a translucent white background. basicfont has a fixed
// cell, so placement does not depend on a loaded font.
func Annotate(img *image.RGBA, text string, x, y int, col color.Color) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	dr := &font.Drawer{Dst: img, Src: image.NewUniform(col), Face: face}
	tw := dr.MeasureString(text).Ceil()
	th := face.Metrics().Height.Ceil()
	bg := image.Rect(x-3, y-2, x+tw+3, y+th+2).Intersect(img.Bounds())
	draw.Draw(img, bg, image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: 200}), image.Point{}, draw.Over)
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y + face.Metrics().Ascent.Ceil())}
	dr.DrawString(text)
}

// TextWidth is the pixel width of text as Annotate draws it.
func TextWidth(text string) int {
	dr := &font.Drawer{Face: basicfont.Face7x13}
	return dr.MeasureString(text).Ceil()
}
