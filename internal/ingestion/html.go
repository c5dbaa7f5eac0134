package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// strippedSelectors are removed before text extraction: they never carry
// JD content and pollute keyword matching ("JavaScript" inside a script
// tag, nav labels, cookie banners).
const strippedSelectors = "script, style, noscript, nav, header, footer, iframe"

// blockTags get a newline after their text so headings and list items
// stay on separate lines.
var blockTags = map[string]bool{
	"p": true, "div": true, "li": true, "br": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// JDFromHTML extracts the plain JD text from a local HTML document.
func JDFromHTML(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(strippedSelectors).Remove()

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	var sb strings.Builder
	for _, node := range root.Nodes {
		renderText(&sb, node)
	}
	return CleanText(sb.String()), nil
}

func renderText(sb *strings.Builder, node *html.Node) {
	if node.Type == html.TextNode {
		sb.WriteString(node.Data)
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		renderText(sb, child)
	}
	if node.Type == html.ElementNode && blockTags[node.Data] {
		sb.WriteString("\n")
	}
}
