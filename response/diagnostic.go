// response/diagnostic.go
// Extraction of a readable message from bodies that are not a JSON envelope, typically HTML error pages
// from a gateway or an XML fault from a misrouted endpoint.
package response

import (
	"bytes"
	"strings"

	"github.com/antchfx/xmlquery"
	"golang.org/x/net/html"
)

// maxDiagnosticLength bounds the message carried by a DecodeError.
const maxDiagnosticLength = 512

// DescribeBody returns a best-effort human readable summary of a non-JSON body.
func DescribeBody(contentType string, body []byte) string {
	if len(bytes.TrimSpace(body)) == 0 {
		return "empty response body"
	}

	mimeType, _ := parseHeader(contentType)
	var msg string
	switch mimeType {
	case "text/html":
		msg = parseHTMLBody(body)
	case "application/xml", "text/xml":
		msg = parseXMLBody(body)
	default:
		msg = strings.TrimSpace(string(body))
	}
	return truncate(msg)
}

// parseXMLBody joins every non-blank text node of the document.
func parseXMLBody(body []byte) string {
	doc, err := xmlquery.Parse(bytes.NewReader(body))
	if err != nil {
		return strings.TrimSpace(string(body))
	}

	var messages []string
	var traverse func(*xmlquery.Node)
	traverse = func(n *xmlquery.Node) {
		if (n.Type == xmlquery.TextNode || n.Type == xmlquery.CharDataNode) && strings.TrimSpace(n.Data) != "" {
			messages = append(messages, strings.TrimSpace(n.Data))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(doc)

	if len(messages) == 0 {
		return "Failed to extract error details from XML response"
	}
	return strings.Join(messages, "; ")
}

// parseHTMLBody concatenates the text of <title>, <h1> and <p> elements.
func parseHTMLBody(body []byte) string {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return strings.TrimSpace(string(body))
	}

	var messages []string
	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "title" || n.Data == "h1" || n.Data == "p") {
			if text := nodeText(n); text != "" {
				messages = append(messages, text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}
	parse(doc)

	if len(messages) == 0 {
		return "HTML Error: See raw response for details."
	}
	return strings.Join(dedupe(messages), "; ")
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			if t := strings.TrimSpace(c.Data); t != "" {
				if b.Len() > 0 {
					b.WriteString(" ")
				}
				b.WriteString(t)
			}
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func truncate(s string) string {
	if len(s) <= maxDiagnosticLength {
		return s
	}
	return s[:maxDiagnosticLength] + "..."
}
