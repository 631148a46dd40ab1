package output

import (
	"fmt"
	"strings"

	"github.com/CodMac/go-treesitter-uml/graph"
	"github.com/CodMac/go-treesitter-uml/model"
)

func init() {
	Register("mermaid", func(opts Options) Presenter { return NewMermaidPresenter(opts) })
}

// MermaidPresenter 输出 Mermaid classDiagram，包映射为 namespace
type MermaidPresenter struct {
	opts Options
}

func NewMermaidPresenter(opts Options) *MermaidPresenter {
	return &MermaidPresenter{opts: opts}
}

func (p *MermaidPresenter) FileEnding() string { return "mmd" }

func (p *MermaidPresenter) Describe(g *graph.Graph) (*Representation, error) {
	var sb strings.Builder
	sb.WriteString("classDiagram\n")

	// 1. 按 Package 分组生成 namespace
	for _, pkg := range g.Packages() {
		hasPkg := pkg.Name != ""
		indent := "  "
		if hasPkg {
			fmt.Fprintf(&sb, "  namespace %s {\n", safeID(pkg.Name))
			indent = "    "
		}
		for _, c := range pkg.Classes {
			p.describeClass(&sb, g, c, indent)
		}
		if hasPkg {
			sb.WriteString("  }\n")
		}
	}

	// 2. 非继承关系，再继承关系
	for _, e := range g.RelationEdges() {
		sb.WriteString("  " + mermaidRelation(e) + "\n")
	}
	for _, e := range g.HierarchyEdges() {
		arrow := "<|--"
		if e.Target().ClassType() == model.Interface && e.Source().ClassType() != model.Interface {
			arrow = "<|.."
		}
		fmt.Fprintf(&sb, "  %s %s %s\n", nodeID(e.Target()), arrow, nodeID(e.Source()))
	}

	return &Representation{Content: sb.String(), FileEnding: p.FileEnding()}, nil
}

func (p *MermaidPresenter) describeClass(sb *strings.Builder, g *graph.Graph, c *model.DomainClass, indent string) {
	fmt.Fprintf(sb, "%sclass %s[\"%s\"] {\n", indent, nodeID(c), c.ClassName())
	inner := indent + "  "
	if stereotype := mermaidStereotype(c); stereotype != "" {
		fmt.Fprintf(sb, "%s<<%s>>\n", inner, stereotype)
	}
	for _, constant := range c.EnumConstants() {
		fmt.Fprintf(sb, "%s%s\n", inner, constant)
	}
	for _, f := range c.Fields() {
		if t := f.Type(); !t.IsArray() && g.Contains(t.Raw) {
			continue
		}
		fmt.Fprintf(sb, "%s%s%s%s\n", inner, f.Visibility().Symbol(), generics(f.UMLName()), classifiers(f))
	}
	for _, ctor := range c.Constructors() {
		fmt.Fprintf(sb, "%s%s%s\n", inner, ctor.Visibility().Symbol(), generics(ctor.UMLName(p.opts.ShowParameterNames)))
	}
	for _, m := range c.Methods() {
		fmt.Fprintf(sb, "%s%s%s%s\n", inner, m.Visibility().Symbol(), generics(m.UMLName(p.opts.ShowParameterNames)), classifiers(m))
	}
	fmt.Fprintf(sb, "%s}\n", indent)
}

// generics 把泛型尖括号改写为 Mermaid 的 ~T~ 记法 (e.g. List<Part> -> List~Part~)
var generics = strings.NewReplacer("<", "~", ">", "~").Replace

func mermaidStereotype(c *model.DomainClass) string {
	switch c.ClassType() {
	case model.Interface:
		return "interface"
	case model.Enum:
		return "enumeration"
	case model.Annotation:
		return "annotation"
	default:
		if c.IsAbstract() {
			return "abstract"
		}
		return ""
	}
}

// classifiers: Mermaid 用 $ 表示静态，* 表示抽象
func classifiers(m model.DomainMember) string {
	var s string
	if m.IsStatic() {
		s += "$"
	}
	if m.IsAbstract() {
		s += "*"
	}
	return s
}

func mermaidRelation(e *model.Edge) string {
	source, target := nodeID(e.Source()), nodeID(e.Target())
	switch e.Type() {
	case model.Composition:
		return withLabel(fmt.Sprintf("%s *-- %s", source, target), e.Source().Description())
	case model.Aggregation:
		return withLabel(fmt.Sprintf("%s o-- %s", source, target), e.Source().Description())
	case model.StaticInnerClass:
		return fmt.Sprintf("%s ..> %s : static inner", source, target)
	default:
		return fmt.Sprintf("%s ..> %s : inner", source, target)
	}
}

func withLabel(line, label string) string {
	if label == "" {
		return line
	}
	return line + " : " + label
}

func nodeID(c *model.DomainClass) string {
	return safeID(c.QualifiedName())
}

// safeID 确保 QualifiedName 符合 Mermaid 的 ID 命名规范
func safeID(id string) string {
	r := strings.NewReplacer(".", "_", "/", "_", "-", "_", "$", "_", "<", "_", ">", "_")
	return "n_" + r.Replace(id)
}
