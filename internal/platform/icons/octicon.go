package icons

import (
	"regexp"
	"strings"
)

const (
	// IconSize is the only Octicons size converted into the sprite.
	IconSize = "24"
	// IconSuffix is the filename suffix of convertible icons.
	IconSuffix = "-" + IconSize + ".svg"

	octiconSymbolPrefix = "icon-octicon-"
	fillMarker          = "-fill"
	svgExt              = ".svg"
)

var sizeSuffix = regexp.MustCompile(`-\d+$`)

// IsIconFile reports whether filename is a 24px icon.
func IsIconFile(filename string) bool {
	return strings.HasSuffix(filename, IconSuffix)
}

// IconName strips the ".svg" extension and the trailing "-<digits>" size from
// filename. A fill marker is kept: "home-fill-24.svg" yields "home-fill".
func IconName(filename string) string {
	name := strings.TrimSuffix(filename, svgExt)
	return sizeSuffix.ReplaceAllString(name, "")
}

// IsFillVariant reports whether filename names a solid fill variant.
func IsFillVariant(filename string) bool {
	return strings.Contains(filename, fillMarker)
}

// SymbolID returns the sprite symbol id for an icon name.
func SymbolID(name string, fill bool) string {
	if fill {
		return octiconSymbolPrefix + name + fillMarker + "-" + IconSize
	}
	return octiconSymbolPrefix + name + "-" + IconSize
}

// FileSymbolID returns the symbol id for a source filename. The fill marker
// left in the icon name is dropped so SymbolID adds it exactly once.
func FileSymbolID(filename string) string {
	fill := IsFillVariant(filename)
	name := IconName(filename)
	if fill {
		name = strings.TrimSuffix(name, fillMarker)
	}
	return SymbolID(name, fill)
}
