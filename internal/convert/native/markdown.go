package native

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

type blockKind int

const (
	blockHeading blockKind = iota
	blockParagraph
	blockList
	blockTable
)

// block is the flat intermediate the renderers consume. Inline math stays
// embedded in text as dollar-delimited spans.
type block struct {
	kind  blockKind
	level int
	text  string
	items []string
	rows  [][]string
}

// parseBlocks parses markdown into renderable blocks using goldmark with the
// GFM table extension.
func parseBlocks(markdown string) []block {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	src := []byte(markdown)
	doc := md.Parser().Parse(text.NewReader(src))

	var blocks []block
	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		blocks = appendBlock(blocks, child, src)
	}
	return blocks
}

func appendBlock(blocks []block, n ast.Node, src []byte) []block {
	switch t := n.(type) {
	case *ast.Heading:
		blocks = append(blocks, block{kind: blockHeading, level: t.Level, text: nodeText(t, src)})
	case *ast.Paragraph, *ast.TextBlock:
		if txt := nodeText(n, src); txt != "" {
			blocks = append(blocks, block{kind: blockParagraph, text: txt})
		}
	case *ast.List:
		items := collectListItems(t, src)
		if len(items) > 0 {
			blocks = append(blocks, block{kind: blockList, items: items})
		}
	case *east.Table:
		rows := collectTableRows(t, src)
		if len(rows) > 0 {
			blocks = append(blocks, block{kind: blockTable, rows: rows})
		}
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if txt := linesText(n, src); txt != "" {
			blocks = append(blocks, block{kind: blockParagraph, text: txt})
		}
	case *ast.Blockquote:
		for c := t.FirstChild(); c != nil; c = c.NextSibling() {
			blocks = appendBlock(blocks, c, src)
		}
	}
	return blocks
}

func collectListItems(list *ast.List, src []byte) []string {
	var items []string
	for li := list.FirstChild(); li != nil; li = li.NextSibling() {
		item, ok := li.(*ast.ListItem)
		if !ok {
			continue
		}
		var parts []string
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			if nested, ok := c.(*ast.List); ok {
				items = append(items, collectListItems(nested, src)...)
				continue
			}
			if txt := nodeText(c, src); txt != "" {
				parts = append(parts, txt)
			}
		}
		if len(parts) > 0 {
			items = append(items, strings.Join(parts, " "))
		}
	}
	return items
}

func collectTableRows(table *east.Table, src []byte) [][]string {
	var rows [][]string
	for child := table.FirstChild(); child != nil; child = child.NextSibling() {
		switch row := child.(type) {
		case *east.TableHeader, *east.TableRow:
			var cells []string
			for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
				cells = append(cells, nodeText(cell, src))
			}
			rows = append(rows, cells)
		}
	}
	return rows
}

// nodeText flattens inline children into plain text, the same way the
// renderers in this package treat emphasis and code spans.
func nodeText(n ast.Node, src []byte) string {
	var sb strings.Builder
	collectText(n, src, &sb)
	return strings.TrimSpace(sb.String())
}

func collectText(n ast.Node, src []byte, sb *strings.Builder) {
	if t, ok := n.(*ast.Text); ok {
		sb.Write(t.Segment.Value(src))
		if t.SoftLineBreak() || t.HardLineBreak() {
			sb.WriteByte(' ')
		}
		return
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		collectText(c, src, sb)
	}
}

func linesText(n ast.Node, src []byte) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(src))
	}
	return strings.TrimSpace(sb.String())
}
