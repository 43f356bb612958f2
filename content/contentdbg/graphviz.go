package contentdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/nativehtml/content"
	"github.com/npillmayer/nativehtml/style"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for content trees. The diagram is in
// GraphViz (DOT) format. Text nodes are drawn as boxes, nodes with children
// as ellipses. Styled nodes are labelled with their style.
func ToGraphViz(nodes []content.Node, w io.Writer) error {
	head, err := template.New("content").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("contentnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(contentNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("contentedge").Parse(contentEdgeTmpl))
	if err = head.Execute(w, gparams); err != nil {
		return err
	}
	g := graph{w: w, params: &gparams}
	for _, n := range nodes {
		if _, err = g.node(n); err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "}\n")
	return err
}

type graph struct {
	w      io.Writer
	params *graphParamsType
	count  int
}

type vertex struct {
	Name  string
	Kind  string
	Text  string
	Style string
	Leaf  bool
}

type edge struct {
	N1, N2 string
}

// node writes a vertex for n and all of its descendants, and returns the
// name of n's vertex.
func (g *graph) node(n content.Node) (string, error) {
	g.count++
	v := vertex{Name: fmt.Sprintf("node%05d", g.count), Kind: n.Kind().String()}
	v.Text, v.Style = label(n)
	children := content.Children(n)
	v.Leaf = len(children) == 0 && v.Text != ""
	if err := g.params.NodeTmpl.Execute(g.w, v); err != nil {
		return "", err
	}
	for _, ch := range children {
		name, err := g.node(ch)
		if err != nil {
			return "", err
		}
		if err = g.params.EdgeTmpl.Execute(g.w, edge{v.Name, name}); err != nil {
			return "", err
		}
	}
	return v.Name, nil
}

func label(n content.Node) (string, string) {
	var s style.Style
	text := ""
	switch n := n.(type) {
	case content.Text:
		text, s = n.Text, n.Style
	case content.Link:
		text, s = n.Text, n.Style
	case content.Code:
		text = n.Text
	case content.Quote:
		text = n.Text
	case content.Image:
		text = n.Src
	case content.Unsupported:
		text = n.Markup
	case content.Paragraph:
		s = n.Style
	case content.Span:
		s = n.Style
	}
	if s.IsEmpty() {
		return text, ""
	}
	return text, s.String()
}

func shortText(s string) string {
	if len(s) > 10 {
		s = s[:10] + "..."
	}
	s = fmt.Sprintf("%q", `"`+s+`"`)
	s = strings.Replace(s, `\n`, `\\n`, -1)
	s = strings.Replace(s, `\t`, `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const contentNodeTmpl = `{{ if .Leaf }}
{{ .Name }}	[ label={{ shortstring .Text }} xlabel={{ printf "%q" .Style }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .Kind }} xlabel={{ printf "%q" .Style }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const contentEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`
