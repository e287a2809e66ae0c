package mathdown

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
	mathjax "github.com/litao91/goldmark-mathjax"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
	"go.uber.org/zap"

	"github.com/ericyerongjun/mathdown-go/internal/dispatch"
	"github.com/ericyerongjun/mathdown-go/internal/mermaid"
)

// renderDocument runs the full pipeline: guard + normalize, then goldmark
// with GFM, math, highlighting, and the fence dispatcher wired in.
func renderDocument(document string, config *RenderConfig) (string, error) {
	if config == nil {
		config = DefaultConfig()
	}
	normalized := Normalize(document)

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			mathjax.MathJax,
			highlighting.NewHighlighting(
				highlighting.WithStyle(highlightStyle(config)),
				highlighting.WithGuessLanguage(config.GuessLanguage),
			),
			&renderExtension{config: config},
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)

	var buf bytes.Buffer
	if err := md.Convert([]byte(normalized), &buf); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return buf.String(), nil
}

// highlightStyle validates the configured chroma style name, falling back
// to github for unknown names so a bad config cannot fail a render.
func highlightStyle(config *RenderConfig) string {
	if config.HighlightStyle == "" {
		return "github"
	}
	if s := styles.Get(config.HighlightStyle); s != nil && s.Name == config.HighlightStyle {
		return config.HighlightStyle
	}
	return "github"
}

// renderExtension replaces routed fences in the AST and registers the
// renderer for the replacement nodes. Fences routed to the highlighter or
// to verbatim output are left alone for the highlighting extension.
type renderExtension struct {
	config *RenderConfig
}

// Extend implements goldmark.Extender.
func (e *renderExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&fenceTransformer{config: e.config}, 100),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&targetHTMLRenderer{config: e.config}, 100),
	))
}

// diagramBlock replaces a mermaid fence in the AST.
type diagramBlock struct {
	ast.BaseBlock
	Body    string
	LiveURL string
}

var kindDiagramBlock = ast.NewNodeKind("DiagramBlock")

// Kind implements ast.Node.
func (n *diagramBlock) Kind() ast.NodeKind {
	return kindDiagramBlock
}

// Dump implements ast.Node.
func (n *diagramBlock) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Body": n.Body}, nil)
}

// chartBlock replaces a plotly/chartjs fence in the AST. Exactly one of
// Payload and Err is set.
type chartBlock struct {
	ast.BaseBlock
	Engine  string
	Payload *ChartPayload
	Err     error
	Raw     string
}

var kindChartBlock = ast.NewNodeKind("ChartBlock")

// Kind implements ast.Node.
func (n *chartBlock) Kind() ast.NodeKind {
	return kindChartBlock
}

// Dump implements ast.Node.
func (n *chartBlock) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Engine": n.Engine}, nil)
}

// fenceTransformer walks the parsed document once and swaps each fence
// that routes to a diagram or chart target for its typed node. This is the
// extension point the structural renderer invokes per fenced block.
type fenceTransformer struct {
	config *RenderConfig
}

// Transform implements parser.ASTTransformer.
func (t *fenceTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	source := reader.Source()

	var fences []*ast.FencedCodeBlock
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if f, ok := n.(*ast.FencedCodeBlock); ok {
				fences = append(fences, f)
			}
		}
		return ast.WalkContinue, nil
	})

	for _, f := range fences {
		lang := string(f.Language(source))
		var replacement ast.Node

		switch dispatch.Route(lang) {
		case dispatch.TargetDiagram:
			replacement = t.diagramNode(fenceBody(f, source))
		case dispatch.TargetInteractiveChart:
			replacement = t.chartNode("plotly", fenceBody(f, source))
		case dispatch.TargetStaticChart:
			replacement = t.chartNode("chartjs", fenceBody(f, source))
		default:
			continue
		}

		if parent := f.Parent(); parent != nil {
			parent.ReplaceChild(parent, f, replacement)
		}
	}
}

func (t *fenceTransformer) diagramNode(body string) *diagramBlock {
	node := &diagramBlock{Body: body}
	if t.config.MermaidLiveLink {
		url, err := mermaid.LiveEditURL(body, &mermaid.Config{Theme: t.config.MermaidTheme})
		if err == nil {
			node.LiveURL = url
		}
	}
	return node
}

func (t *fenceTransformer) chartNode(engine, body string) *chartBlock {
	node := &chartBlock{Engine: engine, Raw: body}
	payload, err := dispatch.DecodeChartPayload(body)
	if err != nil {
		node.Err = err
		logger.Debug("chart payload rejected",
			zap.String("engine", engine),
			zap.Error(err))
		return node
	}
	node.Payload = payload
	return node
}

// fenceBody reassembles a fence body verbatim from the source.
func fenceBody(f *ast.FencedCodeBlock, source []byte) string {
	var b strings.Builder
	lines := f.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}

// targetHTMLRenderer emits handoff markup for diagram and chart nodes. The
// heavy engines hydrate these elements client-side; nothing is drawn here.
type targetHTMLRenderer struct {
	config *RenderConfig
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *targetHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(kindDiagramBlock, r.renderDiagram)
	reg.Register(kindChartBlock, r.renderChart)
}

func (r *targetHTMLRenderer) renderDiagram(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*diagramBlock)

	_, _ = w.WriteString("<div class=\"mermaid\">\n")
	_, _ = w.Write(util.EscapeHTML([]byte(n.Body)))
	_, _ = w.WriteString("</div>\n")
	if n.LiveURL != "" {
		_, _ = fmt.Fprintf(w, "<p class=\"mermaid-live\"><a href=%q>edit diagram</a></p>\n", n.LiveURL)
	}
	return ast.WalkContinue, nil
}

func (r *targetHTMLRenderer) renderChart(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*chartBlock)

	if n.Err == nil {
		if raw, err := json.Marshal(n.Payload); err == nil {
			_, _ = fmt.Fprintf(w, "<div class=\"chart\" data-engine=%q data-height=\"%d\">", n.Engine, n.Payload.Height)
			_, _ = w.Write(util.EscapeHTML(raw))
			_, _ = w.WriteString("</div>\n")
			return ast.WalkContinue, nil
		}
	}

	// Visible, non-fatal placeholder: the raw body stays inspectable.
	_, _ = w.WriteString("<pre class=\"chart-error\">")
	_, _ = w.Write(util.EscapeHTML([]byte(n.Raw)))
	_, _ = w.WriteString("</pre>\n")
	return ast.WalkContinue, nil
}
