package output

import (
	"fmt"
	"strings"

	"github.com/CodMac/go-treesitter-uml/graph"
	"github.com/CodMac/go-treesitter-uml/model"
)

const (
	PlantUMLPreamble  = "@startuml"
	PlantUMLPostamble = "@enduml"

	defaultPackageName = `"(default)"`
)

func init() {
	Register("plantuml", func(opts Options) Presenter { return NewPlantUMLPresenter(opts) })
}

// PlantUMLPresenter 输出 PlantUML 类图，语法见 https://plantuml.com/class-diagram
type PlantUMLPresenter struct {
	opts Options
}

func NewPlantUMLPresenter(opts Options) *PlantUMLPresenter {
	return &PlantUMLPresenter{opts: opts}
}

func (p *PlantUMLPresenter) FileEnding() string { return "puml" }

// Describe 依次输出：包块、非继承关系、继承关系
func (p *PlantUMLPresenter) Describe(g *graph.Graph) (*Representation, error) {
	var sb strings.Builder
	sb.WriteString(PlantUMLPreamble + "\n")
	for _, pkg := range g.Packages() {
		p.describePackage(&sb, g, pkg)
	}
	for _, e := range g.RelationEdges() {
		sb.WriteString(describeRelation(e) + "\n")
	}
	for _, e := range g.HierarchyEdges() {
		sb.WriteString(describeInheritance(e) + "\n")
	}
	sb.WriteString(PlantUMLPostamble + "\n")
	return &Representation{Content: sb.String(), FileEnding: p.FileEnding()}, nil
}

func (p *PlantUMLPresenter) describePackage(sb *strings.Builder, g *graph.Graph, pkg graph.Package) {
	name := pkg.Name
	if name == "" {
		name = defaultPackageName
	}
	fmt.Fprintf(sb, "package %s {\n", name)
	for _, c := range pkg.Classes {
		fmt.Fprintf(sb, "  %s {%s%s%s%s\n  }\n",
			describeClassHeader(c),
			memberBlock(c.EnumConstants()),
			memberBlock(p.fieldLines(g, c)),
			memberBlock(p.constructorLines(c)),
			memberBlock(p.methodLines(c)))
	}
	sb.WriteString("}\n")
}

func describeClassHeader(c *model.DomainClass) string {
	name := c.ClassName()
	switch c.ClassType() {
	case model.Interface:
		return "interface " + name
	case model.Enum:
		return "enum " + name
	case model.Annotation:
		return "annotation " + name
	default:
		if c.IsAbstract() {
			return "abstract class " + name
		}
		return "class " + name
	}
}

// fieldLines 跳过类型本身就是图中节点的字段，它们已经以边的形式画出
func (p *PlantUMLPresenter) fieldLines(g *graph.Graph, c *model.DomainClass) []string {
	var lines []string
	for _, f := range c.Fields() {
		if t := f.Type(); !t.IsArray() && g.Contains(t.Raw) {
			continue
		}
		lines = append(lines, f.Visibility().Symbol()+" "+f.UMLName()+tags(f))
	}
	return lines
}

func (p *PlantUMLPresenter) constructorLines(c *model.DomainClass) []string {
	var lines []string
	for _, ctor := range c.Constructors() {
		lines = append(lines, ctor.Visibility().Symbol()+" "+ctor.UMLName(p.opts.ShowParameterNames))
	}
	return lines
}

func (p *PlantUMLPresenter) methodLines(c *model.DomainClass) []string {
	var lines []string
	for _, m := range c.Methods() {
		lines = append(lines, m.Visibility().Symbol()+" "+m.UMLName(p.opts.ShowParameterNames)+tags(m))
	}
	return lines
}

func tags(m model.DomainMember) string {
	var s string
	if m.IsStatic() {
		s += " {static}"
	}
	if m.IsAbstract() {
		s += " {abstract}"
	}
	return s
}

// memberBlock 空分类不输出任何内容
func memberBlock(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return "\n    " + strings.Join(lines, "\n    ")
}

// describeRelation 渲染组合/聚合/内部类边。
// 带角色描述时先写目标端并翻转箭头，描述紧贴目标：`Part "-part" <-- Owner`。
func describeRelation(e *model.Edge) string {
	source := e.Source().ClassName()
	target := e.Target().ClassName()

	arrow := "-->"
	var label string
	switch e.Type() {
	case model.StaticInnerClass:
		arrow, label = "+--", "static"
	case model.InnerClass:
		arrow = "+--"
	}

	var line string
	if desc := e.Source().Description(); desc != "" {
		line = fmt.Sprintf("%s \"-%s\" %s %s", target, desc, flip(arrow), source)
	} else {
		line = fmt.Sprintf("%s %s %s", source, arrow, target)
	}
	if label != "" {
		line += " : " + label
	}
	return line
}

// describeInheritance: 非接口实现接口是实现关系 (虚线)，其余为泛化 (实线)
func describeInheritance(e *model.Edge) string {
	arrow := "--|>"
	if e.Target().ClassType() == model.Interface && e.Source().ClassType() != model.Interface {
		arrow = "..|>"
	}
	return fmt.Sprintf("%s %s %s", e.Source().ClassName(), arrow, e.Target().ClassName())
}

// flip 反转箭头方向: "-->" -> "<--", "+--" -> "--+"
func flip(arrow string) string {
	r := []rune(arrow)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	for i, ch := range r {
		switch ch {
		case '<':
			r[i] = '>'
		case '>':
			r[i] = '<'
		}
	}
	return string(r)
}
