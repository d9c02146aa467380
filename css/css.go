// Package css renders colour styles for consoles that accept a "%c"
// placeholder followed by a CSS declaration string, such as browser developer
// tools or any sink forwarding to one.
package css

import (
	"strings"

	"pkt.systems/nslog/color"
)

// Marker is the placeholder prefixed to styled content.
const Marker = "%c"

// Wrap returns content prefixed with Marker together with the declarations
// for the colours present in style. An empty Style yields an empty
// declaration string; content is marked either way.
func Wrap(content string, style color.Style) (string, string) {
	decls := make([]string, 0, 2)
	if style.Content != nil {
		decls = append(decls, "color: "+color.Hex(*style.Content)+";")
	}
	if style.Background != nil {
		decls = append(decls, "background-color: "+color.Hex(*style.Background)+";")
	}
	return Marker + content, strings.Join(decls, " ")
}
