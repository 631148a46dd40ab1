package scanner

import (
	"github.com/CodMac/go-treesitter-uml/handle"
	"github.com/CodMac/go-treesitter-uml/model"
)

// ScanComposition 发现内部类关系与基于字段的组合/聚合关系。
//
// 对每个类 C：
//   - 声明在 C 内部且在集合中的类型 N 产生 C -> N 的 INNER_CLASS / STATIC_INNER_CLASS；
//   - 字段类型 (数组与泛型实参会被展开) 命中集合中的类型 T 时，
//     T 嵌套在 C 内则归为内部类边，否则字段由参数注入时为 AGGREGATION，其余为 COMPOSITION。
//     组合/聚合边的源节点携带字段名作为角色描述。
//
// 自引用字段 (如链表 next 节点) 会保留为指向自身的边。
func ScanComposition(classes *model.ClassSet) []*model.Edge {
	nested := make(map[string][]*model.DomainClass)
	for _, c := range classes.All() {
		if c.IsNested() {
			nested[c.EnclosingType()] = append(nested[c.EnclosingType()], c)
		}
	}

	var edges []*model.Edge
	for _, clazz := range classes.All() {
		for _, inner := range nested[clazz.QualifiedName()] {
			edges = append(edges, model.NewEdge(clazz, inner, nestingType(inner)))
		}

		for _, field := range clazz.Fields() {
			for _, target := range fieldTargets(field.Type(), classes) {
				if target.EnclosingType() == clazz.QualifiedName() {
					edges = append(edges, model.NewEdge(clazz, target, nestingType(target)))
					continue
				}
				edges = append(edges, model.NewEdge(clazz.WithDescription(field.Name()), target, ownershipType(field)))
			}
		}
	}
	return edges
}

func nestingType(inner *model.DomainClass) model.EdgeType {
	if inner.IsStatic() {
		return model.StaticInnerClass
	}
	return model.InnerClass
}

// ownershipType: 由参数注入且类内没有构造点的字段是聚合，其余是组合
func ownershipType(field *model.DomainField) model.EdgeType {
	if field.Ownership() == handle.OwnershipInjected {
		return model.Aggregation
	}
	return model.Composition
}

// fieldTargets 擦除类型在集合内时直接返回它；否则返回集合内的泛型实参 (按出现顺序去重)
func fieldTargets(ref handle.TypeRef, classes *model.ClassSet) []*model.DomainClass {
	if c, ok := classes.Get(ref.Raw); ok {
		return []*model.DomainClass{c}
	}

	var targets []*model.DomainClass
	seen := make(map[string]bool)
	for _, el := range ref.Elements() {
		c, ok := classes.Get(el.Raw)
		if !ok || seen[el.Raw] {
			continue
		}
		seen[el.Raw] = true
		targets = append(targets, c)
	}
	return targets
}
