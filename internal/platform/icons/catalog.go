package icons

import "strings"

// Symbol describes one converted sprite entry.
type Symbol struct {
	ID     string
	Name   string
	Fill   bool
	Source string
}

// CatalogMarkdown renders the converted symbols as a markdown table, in the
// order they appear in the sprite.
func CatalogMarkdown(symbols []Symbol) string {
	var builder strings.Builder
	builder.WriteString("# Octicons Symbol Catalog\n\n")
	builder.WriteString("Generated by `octicons-sprite`.\n\n")
	builder.WriteString("| Symbol ID | Icon | Variant | Source |\n")
	builder.WriteString("| --- | --- | --- | --- |\n")
	for _, symbol := range symbols {
		variant := "outline"
		if symbol.Fill {
			variant = "fill"
		}
		builder.WriteString("| `")
		builder.WriteString(symbol.ID)
		builder.WriteString("` | ")
		builder.WriteString(symbol.Name)
		builder.WriteString(" | ")
		builder.WriteString(variant)
		builder.WriteString(" | ")
		builder.WriteString(symbol.Source)
		builder.WriteString(" |\n")
	}
	return builder.String()
}
