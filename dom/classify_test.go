package dom

import "testing"

func TestClassify(t *testing.T) {
	for tag, expected := range map[string]Classification{
		"h1":         {Kind: HeadingElement, Level: 1},
		"H3":         {Kind: HeadingElement, Level: 3},
		"h6":         {Kind: HeadingElement, Level: 6},
		"h7":         {Kind: UnsupportedElement},
		"u":          {Kind: TextElement},
		"mark":       {Kind: TextElement},
		"sub":        {Kind: TextElement},
		"sup":        {Kind: TextElement},
		"strong":     {Kind: EmphasisElement},
		"b":          {Kind: EmphasisElement},
		"em":         {Kind: EmphasisElement},
		"i":          {Kind: EmphasisElement},
		"a":          {Kind: AnchorElement},
		"blockquote": {Kind: QuoteElement},
		"code":       {Kind: CodeElement},
		"span":       {Kind: SpanElement},
		"div":        {Kind: DivisionElement},
		"p":          {Kind: ParagraphElement},
		"br":         {Kind: BreakElement},
		"ul":         {Kind: ListElement},
		"ol":         {Kind: ListElement, Ordered: true},
		"li":         {Kind: ListItemElement},
		"table":      {Kind: TableElement},
		"tbody":      {Kind: RowGroupElement},
		"thead":      {Kind: RowGroupElement},
		"tfoot":      {Kind: RowGroupElement},
		"tr":         {Kind: RowElement},
		"td":         {Kind: CellElement},
		"th":         {Kind: CellElement},
		"img":        {Kind: ImageElement},
		"foo":        {Kind: UnsupportedElement},
		"script":     {Kind: UnsupportedElement},
		"":           {Kind: UnsupportedElement},
	} {
		if c := Classify(tag); c != expected {
			t.Errorf("expected <%s> to be classified as %+v, is %+v", tag, expected, c)
		}
	}
}

func TestElementKindString(t *testing.T) {
	if s := RowGroupElement.String(); s != "row-group" {
		t.Errorf("expected row-group, is %q", s)
	}
	if s := ElementKind(99).String(); s != "?" {
		t.Errorf("expected ?, is %q", s)
	}
}
