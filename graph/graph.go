// Package graph 合并各扫描器的输出，得到供 Presenter 使用的 (nodes, edges)。
package graph

import "github.com/CodMac/go-treesitter-uml/model"

// Graph 是一次生成过程的不可变结果
type Graph struct {
	classes []*model.DomainClass
	index   map[string]bool
	edges   []*model.Edge
}

// Assemble 依次拼接所有边列表，按 (source, target, type) 稳定去重，保留首次出现的边。
// 不同类型的边即使端点相同也都保留。
func Assemble(classes *model.ClassSet, edgeLists ...[]*model.Edge) *Graph {
	g := &Graph{index: make(map[string]bool)}
	if classes != nil {
		g.classes = classes.All()
	}
	for _, c := range g.classes {
		g.index[c.QualifiedName()] = true
	}

	seen := make(map[string]bool)
	for _, list := range edgeLists {
		for _, e := range list {
			if e == nil {
				continue
			}
			key := e.Key()
			if seen[key] {
				continue
			}
			seen[key] = true
			g.edges = append(g.edges, e)
		}
	}
	return g
}

func (g *Graph) Classes() []*model.DomainClass { return g.classes }

func (g *Graph) Edges() []*model.Edge { return g.edges }

// HierarchyEdges 返回 EXTENDS 边，保持原有顺序
func (g *Graph) HierarchyEdges() []*model.Edge {
	return g.filter(func(e *model.Edge) bool { return e.Type().IsHierarchy() })
}

// RelationEdges 返回非继承边 (组合、聚合、内部类)，保持原有顺序
func (g *Graph) RelationEdges() []*model.Edge {
	return g.filter(func(e *model.Edge) bool { return !e.Type().IsHierarchy() })
}

// Packages 按首次出现顺序对类分组
func (g *Graph) Packages() []Package {
	var pkgs []Package
	index := make(map[string]int)
	for _, c := range g.classes {
		i, ok := index[c.PackageName()]
		if !ok {
			i = len(pkgs)
			index[c.PackageName()] = i
			pkgs = append(pkgs, Package{Name: c.PackageName()})
		}
		pkgs[i].Classes = append(pkgs[i].Classes, c)
	}
	return pkgs
}

// Contains 报告限定名是否是图中的节点
func (g *Graph) Contains(qualifiedName string) bool {
	return g.index[qualifiedName]
}

func (g *Graph) filter(keep func(*model.Edge) bool) []*model.Edge {
	var out []*model.Edge
	for _, e := range g.edges {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// Package 是同一包名下的类，按首次出现顺序排列
type Package struct {
	Name    string
	Classes []*model.DomainClass
}
