// Package bilingual tags rendered content blocks by language so the page can
// show Chinese and English fragments selectively.
package bilingual

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/yuanwutong/portfolio/internal/i18n"
)

// LangAttr is the attribute written on every top-level fragment.
const LangAttr = "data-lang"

// Block is a classified content block.
type Block struct {
	// HTML is the re-serialized block: one element per fragment, each
	// carrying a data-lang attribute, Chinese fragments first when the
	// block is mixed.
	HTML string
	// Langs holds the language of each fragment in output order.
	Langs []i18n.Lang
}

// Has reports whether at least one fragment is in lang.
func (b Block) Has(lang i18n.Lang) bool {
	for _, l := range b.Langs {
		if l == lang {
			return true
		}
	}
	return false
}

// Mixed reports whether the block carries fragments in both languages.
func (b Block) Mixed() bool {
	return b.Has(i18n.LangZH) && b.Has(i18n.LangEN)
}

// Classify tags each top-level element of fragment as zh when its text
// contains a CJK unified ideograph and en otherwise. When both languages
// occur, all zh fragments are moved ahead of all en fragments keeping their
// relative order; single-language blocks keep their order. Top-level
// comments, doctype nodes and whitespace-only text are dropped from the
// output, since they carry no language to tag.
func Classify(fragment string) (Block, error) {
	parent := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), parent)
	if err != nil {
		return Block{}, fmt.Errorf("parsing fragment: %w", err)
	}

	var zh, en []*html.Node
	for _, n := range nodes {
		switch n.Type {
		case html.ElementNode:
		case html.TextNode:
			if strings.TrimSpace(n.Data) == "" {
				continue
			}
			p := &html.Node{Type: html.ElementNode, Data: "p", DataAtom: atom.P}
			p.AppendChild(n)
			n = p
		default:
			continue
		}

		if ContainsCJK(nodeText(n)) {
			setAttr(n, LangAttr, string(i18n.LangZH))
			zh = append(zh, n)
		} else {
			setAttr(n, LangAttr, string(i18n.LangEN))
			en = append(en, n)
		}
	}

	// With a single language one group is empty and this is input order.
	ordered := append(zh, en...)

	var (
		buf   bytes.Buffer
		langs = make([]i18n.Lang, 0, len(ordered))
	)
	for i, n := range ordered {
		if i > 0 {
			buf.WriteByte('\n')
		}
		if err := html.Render(&buf, n); err != nil {
			return Block{}, fmt.Errorf("rendering fragment: %w", err)
		}
		langs = append(langs, i18n.Lang(attr(n, LangAttr)))
	}
	return Block{HTML: buf.String(), Langs: langs}, nil
}

// ContainsCJK reports whether s contains a code point in the CJK Unified
// Ideographs block (U+4E00..U+9FFF).
func ContainsCJK(s string) bool {
	for _, r := range s {
		if r >= 0x4E00 && r <= 0x9FFF {
			return true
		}
	}
	return false
}

func nodeText(node *html.Node) string {
	var b strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}

	walk(node)
	return b.String()
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}
