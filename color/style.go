package color

// Style selects the optional foreground (Content) and Background colours of a
// wrapped piece of text. A nil channel leaves that side untouched.
type Style struct {
	Content    *Triple
	Background *Triple
}

// Foreground returns a Style that only sets the content colour.
func Foreground(t Triple) Style { return Style{Content: t.Ptr()} }

// Empty reports whether s applies no colour at all.
func (s Style) Empty() bool { return s.Content == nil && s.Background == nil }

// NamespaceStyle returns the label style for a namespace segment: the
// background is the readability-adjusted hash of ns and the text is black on
// bright backgrounds, white otherwise.
func NamespaceStyle(ns string) Style {
	bg := ImproveForLogReadability(HashText(ns))
	fg := White
	if IsHighBrightness(bg) {
		fg = Black
	}
	return Style{Content: fg.Ptr(), Background: bg.Ptr()}
}
