package output

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/CodMac/go-treesitter-uml/graph"
	"github.com/CodMac/go-treesitter-uml/handle"
	"github.com/CodMac/go-treesitter-uml/model"
)

func init() {
	Register("jsonl", func(opts Options) Presenter { return NewJSONLPresenter(opts) })
}

// NodeRecord 是 JSONL 中的一个节点行
type NodeRecord struct {
	Record        string           `json:"Record"`
	QualifiedName string           `json:"QualifiedName"`
	Name          string           `json:"Name"`
	Package       string           `json:"Package"`
	Type          model.ClassType  `json:"Type"`
	Abstract      bool             `json:"Abstract,omitempty"`
	Enclosing     string           `json:"Enclosing,omitempty"`
	EnumConstants []string         `json:"EnumConstants,omitempty"`
	Fields        []string         `json:"Fields,omitempty"`
	Constructors  []string         `json:"Constructors,omitempty"`
	Methods       []string         `json:"Methods,omitempty"`
	Location      *handle.Location `json:"Location,omitempty"`
}

// EdgeRecord 是 JSONL 中的一个关系行
type EdgeRecord struct {
	Record      string         `json:"Record"`
	Type        model.EdgeType `json:"Type"`
	Source      string         `json:"Source"`
	Target      string         `json:"Target"`
	Description string         `json:"Description,omitempty"`
}

// JSONLWriter 每行写入一个 JSON 对象
type JSONLWriter struct {
	encoder *json.Encoder
}

func NewJSONLWriter(w io.Writer) *JSONLWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONLWriter{encoder: enc}
}

func (w *JSONLWriter) Write(v interface{}) error {
	return w.encoder.Encode(v)
}

// JSONLPresenter 先输出全部节点，再输出全部边
type JSONLPresenter struct {
	opts Options
}

func NewJSONLPresenter(opts Options) *JSONLPresenter {
	return &JSONLPresenter{opts: opts}
}

func (p *JSONLPresenter) FileEnding() string { return "jsonl" }

func (p *JSONLPresenter) Describe(g *graph.Graph) (*Representation, error) {
	var buf bytes.Buffer
	writer := NewJSONLWriter(&buf)

	for _, c := range g.Classes() {
		if err := writer.Write(p.nodeRecord(c)); err != nil {
			return nil, err
		}
	}
	for _, e := range g.Edges() {
		rec := EdgeRecord{
			Record:      "EDGE",
			Type:        e.Type(),
			Source:      e.Source().QualifiedName(),
			Target:      e.Target().QualifiedName(),
			Description: e.Source().Description(),
		}
		if err := writer.Write(rec); err != nil {
			return nil, err
		}
	}
	return &Representation{Content: buf.String(), FileEnding: p.FileEnding()}, nil
}

func (p *JSONLPresenter) nodeRecord(c *model.DomainClass) NodeRecord {
	rec := NodeRecord{
		Record:        "NODE",
		QualifiedName: c.QualifiedName(),
		Name:          c.ClassName(),
		Package:       c.PackageName(),
		Type:          c.ClassType(),
		Abstract:      c.IsAbstract(),
		Enclosing:     c.EnclosingType(),
		EnumConstants: c.EnumConstants(),
		Location:      c.Location(),
	}
	for _, f := range c.Fields() {
		rec.Fields = append(rec.Fields, f.Visibility().Symbol()+" "+f.UMLName())
	}
	for _, ctor := range c.Constructors() {
		rec.Constructors = append(rec.Constructors, ctor.Visibility().Symbol()+" "+ctor.UMLName(p.opts.ShowParameterNames))
	}
	for _, m := range c.Methods() {
		rec.Methods = append(rec.Methods, m.Visibility().Symbol()+" "+m.UMLName(p.opts.ShowParameterNames))
	}
	return rec
}
