package input

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"URLAnalyzer/internal/ports"
)

// HTMLSourceName identifies the HTML anchor source.
const HTMLSourceName = "html"

// HTMLSource collects the href of every anchor in a document.
type HTMLSource struct{}

var _ ports.URLSource = HTMLSource{}

// Name identifies the source inside the registry.
func (HTMLSource) Name() string {
	return HTMLSourceName
}

// Extract returns anchor targets in document order.
func (HTMLSource) Extract(_ context.Context, r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var urls []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") {
			return
		}
		urls = append(urls, href)
	})

	return urls, nil
}
