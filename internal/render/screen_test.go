package render

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/zatif/resumeforge/internal/resume"
)

func parseFragment(t *testing.T, b []byte) *html.Node {
	t.Helper()
	doc, err := html.Parse(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("parse rendered html: %v", err)
	}
	return doc
}

func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func nodeText(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(buf.String())
}

func TestScreen_RendersSeedStructure(t *testing.T) {
	doc := resume.Seed()
	b, err := (&Screen{}).Render(doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	root := parseFragment(t, b)

	h1s := findAll(root, "h1")
	if len(h1s) != 1 {
		t.Fatalf("expected one h1, got %d", len(h1s))
	}
	if got := nodeText(h1s[0]); got != doc.Name {
		t.Errorf("expected name %q, got %q", doc.Name, got)
	}

	h3s := findAll(root, "h3")
	if len(h3s) != len(doc.Sections) {
		t.Fatalf("expected %d section titles, got %d", len(doc.Sections), len(h3s))
	}
	for i, s := range doc.Sections {
		if got := nodeText(h3s[i]); got != s.Title {
			t.Errorf("section %d: expected title %q, got %q", i, s.Title, got)
		}
	}

	// Seed has 3+3+2 bullets in the entry items.
	lis := findAll(root, "li")
	if len(lis) != 8 {
		t.Errorf("expected 8 bullets, got %d", len(lis))
	}
}

func TestScreen_ContactJoinOmitsAbsentFields(t *testing.T) {
	doc := resume.Document{
		Name:    "Test Person",
		Contact: resume.Contact{Email: "a@b.com", Location: "X"},
	}
	b, err := (&Screen{}).Render(doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.Contains(b, []byte("a@b.com | X")) {
		t.Errorf("expected joined contact line without double separator, got %s", b)
	}
	if bytes.Contains(b, []byte("| |")) {
		t.Error("double separator leaked into output")
	}
}

func TestScreen_EmptyContactOmitsParagraph(t *testing.T) {
	doc := resume.Document{Name: "Solo"}
	b, err := (&Screen{}).Render(doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	root := parseFragment(t, b)
	for _, p := range findAll(root, "p") {
		for _, a := range p.Attr {
			if a.Key == "class" && a.Val == "resume-contact" {
				t.Error("contact paragraph rendered for empty contact")
			}
		}
	}
}

func TestScreen_EscapesUserText(t *testing.T) {
	doc := resume.Document{Name: "<script>alert(1)</script>"}
	b, err := (&Screen{}).Render(doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if bytes.Contains(b, []byte("<script>alert")) {
		t.Error("user text not escaped")
	}
}

func TestScreen_IdempotentRerender(t *testing.T) {
	doc := resume.Seed()
	a, err := (&Screen{}).Render(doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	b, err := (&Screen{}).Render(doc)
	if err != nil {
		t.Fatalf("re-render: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("re-render from the same snapshot produced different output")
	}
}
