// Package svg extracts the view box and inner markup of standalone SVG icons.
package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// DefaultViewBox is used when the root element declares no viewBox.
const DefaultViewBox = "0 0 24 24"

// ErrNoContent is returned for documents without a view box or inner markup.
var ErrNoContent = errors.New("svg has no content")

// innerPattern captures the raw text between the first <svg ...> and the
// next </svg>, across lines.
var innerPattern = regexp.MustCompile(`(?s)<svg[^>]*>(.*?)</svg>`)

// Document is the content of one icon file.
type Document struct {
	ViewBox string
	Inner   string
}

// Extract parses data as an SVG document. The document must be well-formed
// XML. Inner markup is taken verbatim from the source text when possible so
// attributes and formatting survive; otherwise the root's child elements are
// re-rendered.
func Extract(data []byte) (Document, error) {
	viewBox, err := rootViewBox(data)
	if err != nil {
		return Document{}, err
	}

	var inner string
	if match := innerPattern.FindSubmatch(data); match != nil {
		inner = string(match[1])
	} else {
		inner, err = renderChildren(data)
		if err != nil {
			return Document{}, err
		}
	}

	doc := Document{ViewBox: viewBox, Inner: strings.TrimSpace(inner)}
	if doc.ViewBox == "" || doc.Inner == "" {
		return Document{}, ErrNoContent
	}
	return doc, nil
}

// ExtractFile reads path from fsys and extracts it. Callers add the path to
// extraction errors; read errors already carry it.
func ExtractFile(fsys afero.Fs, path string) (Document, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return Document{}, err
	}
	return Extract(data)
}

// rootViewBox decodes the whole document and returns the root viewBox. The
// document must hold exactly one root element and no text outside it.
func rootViewBox(data []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel
	viewBox := DefaultViewBox
	seenRoot, closedRoot := false, false
	depth := 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decode svg: %w", err)
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			if closedRoot {
				return "", fmt.Errorf("decode svg: element <%s> after root", tok.Name.Local)
			}
			if !seenRoot {
				seenRoot = true
				for _, attr := range tok.Attr {
					if attr.Name.Local == "viewBox" {
						viewBox = attr.Value
					}
				}
			}
			depth++
		case xml.EndElement:
			depth--
			if depth == 0 {
				closedRoot = true
			}
		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(tok)) > 0 {
				return "", fmt.Errorf("decode svg: text outside root element")
			}
		}
	}
	if !seenRoot {
		return "", fmt.Errorf("decode svg: no root element")
	}
	return viewBox, nil
}

func renderChildren(data []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("parse svg markup: %w", err)
	}
	root := findRoot(doc)
	if root == nil {
		return "", nil
	}

	var builder strings.Builder
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}
		var buf bytes.Buffer
		if err := html.Render(&buf, child); err != nil {
			return "", fmt.Errorf("render <%s>: %w", child.Data, err)
		}
		builder.WriteString(strings.TrimSpace(buf.String()))
	}
	return builder.String(), nil
}

// findRoot returns the first svg element, prefixed or not, in document order.
func findRoot(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && (n.Data == "svg" || strings.HasSuffix(n.Data, ":svg")) {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findRoot(child); found != nil {
			return found
		}
	}
	return nil
}
