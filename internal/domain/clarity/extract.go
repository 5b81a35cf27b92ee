package clarity

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// extractionPolicy keeps the structural elements that carry visible copy
// and drops everything executable. bluemonday already skips the content of
// script, style and noscript elements.
var extractionPolicy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"article", "section", "main", "header", "footer", "nav", "aside",
		"div", "p", "span", "br",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"ul", "ol", "li", "blockquote", "pre", "code",
		"b", "strong", "i", "em", "u", "a", "button", "label",
	)
	return p
}()

// ExtractText converts raw page markup into whitespace-collapsed visible
// text, capped at limit characters. Unparsable input degrades to a plain
// tokenizer pass rather than failing.
func ExtractText(raw string, limit int) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	cleaned := extractionPolicy.Sanitize(trimmed)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(cleaned))
	if err != nil {
		return collapseText(tokenizerText(cleaned), limit)
	}
	return collapseText(doc.Text(), limit)
}

// tokenizerText is the weakest fallback: concatenate every text token.
func tokenizerText(raw string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(raw))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			b.Write(z.Text())
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func collapseText(text string, limit int) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	if limit <= 0 {
		return collapsed
	}
	runes := []rune(collapsed)
	if len(runes) <= limit {
		return collapsed
	}
	return string(runes[:limit])
}
