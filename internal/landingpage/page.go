package landingpage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// maxPageBytes caps how much of a fetched page is parsed.
const maxPageBytes = 5 << 20

// Page is the conversion-relevant content of an HTML landing page.
type Page struct {
	URL              string   `json:"url,omitempty"`
	Title            string   `json:"title"`
	MetaDescription  string   `json:"meta_description"`
	H1               []string `json:"h1"`
	H2               []string `json:"h2"`
	CTAs             []string `json:"ctas"`
	BodyText         string   `json:"body_text"`
	Images           int      `json:"images"`
	ImagesMissingAlt int      `json:"images_missing_alt"`
	FormFields       int      `json:"form_fields"`
	Links            int      `json:"links"`
}

// ParsePage extracts a Page from HTML. Buttons, submit inputs and links
// whose class mentions "btn", "button" or "cta" count as calls to action.
func ParsePage(r io.Reader) (Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Page{}, fmt.Errorf("parsing html: %w", err)
	}

	p := Page{H1: []string{}, H2: []string{}, CTAs: []string{}}
	var body []string

	var walk func(n *html.Node, inBody bool)
	walk = func(n *html.Node, inBody bool) {
		if n.Type == html.TextNode {
			if inBody {
				if t := collapse(n.Data); t != "" {
					body = append(body, t)
				}
			}
			return
		}
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Noscript, atom.Template:
				return
			case atom.Body:
				inBody = true
			case atom.Title:
				if p.Title == "" {
					p.Title = textOf(n)
				}
				return
			case atom.Meta:
				if strings.EqualFold(attr(n, "name"), "description") {
					p.MetaDescription = strings.TrimSpace(attr(n, "content"))
				}
			case atom.H1:
				if t := textOf(n); t != "" {
					p.H1 = append(p.H1, t)
				}
			case atom.H2:
				if t := textOf(n); t != "" {
					p.H2 = append(p.H2, t)
				}
			case atom.Img:
				p.Images++
				if _, ok := attrOK(n, "alt"); !ok {
					p.ImagesMissingAlt++
				}
			case atom.Button:
				if t := textOf(n); t != "" {
					p.CTAs = append(p.CTAs, t)
				}
			case atom.A:
				p.Links++
				if buttonLike(attr(n, "class")) {
					if t := textOf(n); t != "" {
						p.CTAs = append(p.CTAs, t)
					}
				}
			case atom.Input:
				switch strings.ToLower(attr(n, "type")) {
				case "submit", "button":
					if v := strings.TrimSpace(attr(n, "value")); v != "" {
						p.CTAs = append(p.CTAs, v)
					}
				case "hidden", "image", "reset":
				default:
					p.FormFields++
				}
			case atom.Select, atom.Textarea:
				p.FormFields++
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, inBody)
		}
	}
	walk(doc, false)

	p.BodyText = strings.Join(body, " ")
	return p, nil
}

// FetchPage downloads url and parses it. A nil client uses
// http.DefaultClient.
func FetchPage(ctx context.Context, client *http.Client, url string) (Page, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Page{}, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := client.Do(req)
	if err != nil {
		return Page{}, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Page{}, fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
	}

	p, err := ParsePage(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return Page{}, err
	}
	p.URL = url
	return p, nil
}

func attrOK(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}

func attr(n *html.Node, key string) string {
	v, _ := attrOK(n, key)
	return v
}

func buttonLike(class string) bool {
	for _, c := range strings.Fields(strings.ToLower(class)) {
		if strings.Contains(c, "btn") || strings.Contains(c, "button") || strings.Contains(c, "cta") {
			return true
		}
	}
	return false
}

// textOf returns the collapsed text content of n, skipping scripts.
func textOf(n *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style) {
			return
		}
		if n.Type == html.TextNode {
			if t := collapse(n.Data); t != "" {
				parts = append(parts, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
