package discover

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"pagepack/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

type Kind int

const (
	External Kind = iota
	Inline
)

// Reference is one style or script resource found on a page.
type Reference struct {
	Kind Kind
	// resolved absolute url for external references, "<tag> inline #N"
	// for inline ones
	Label string
	// absolute url, external only
	Locator string
	// literal element text, inline only
	RawContent string
}

// Discover parses markup and returns the references of the given class
// in document order. It only fails when the markup itself cannot be
// parsed; pages with no matching elements yield an empty slice.
func Discover(markup string, baseURL *url.URL, class Class) ([]Reference, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}

	var selector string
	switch class {
	case Style:
		selector = `link[rel="stylesheet"], style`
	case Script:
		selector = "script"
	}

	var refs []Reference
	inlineCount := 0
	for _, node := range doc.Find(selector).Nodes {
		switch node.Data {
		case "link", "script":
			attr := "href"
			if node.Data == "script" {
				attr = "src"
			}
			raw := htmlutil.GetAttr(node, attr)
			if raw == "" {
				// scripts without src fall back to their inline body
				if node.Data == "script" {
					if ref, ok := inlineRef(node, &inlineCount); ok {
						refs = append(refs, ref)
					}
				}
				continue
			}
			locator, err := baseURL.Parse(raw)
			if err != nil {
				slog.Warn("skipping resource with unparsable url", "url", raw, "err", err)
				continue
			}
			refs = append(refs, Reference{
				Kind:    External,
				Label:   locator.String(),
				Locator: locator.String(),
			})
		case "style":
			// blank <style> content is still emitted, unlike scripts
			inlineCount++
			refs = append(refs, Reference{
				Kind:       Inline,
				Label:      fmt.Sprintf("<style> inline #%d", inlineCount),
				RawContent: htmlutil.GetText(node),
			})
		}
	}
	return refs, nil
}

func inlineRef(node *html.Node, count *int) (Reference, bool) {
	text := htmlutil.GetText(node)
	if strings.TrimSpace(text) == "" {
		return Reference{}, false
	}
	*count++
	return Reference{
		Kind:       Inline,
		Label:      fmt.Sprintf("<script> inline #%d", *count),
		RawContent: text,
	}, true
}
