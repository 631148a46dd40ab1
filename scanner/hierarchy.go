package scanner

import "github.com/CodMac/go-treesitter-uml/model"

// rootTypes 是所有类的隐式根类型，永远不产生继承边
var rootTypes = map[string]bool{
	"java.lang.Object": true,
}

// ScanHierarchy 只扫描直接的实现/继承关系，目标必须在输入集合内。
// 每个类先输出其实现的接口，再输出父类。
func ScanHierarchy(classes *model.ClassSet) []*model.Edge {
	var edges []*model.Edge
	for _, clazz := range classes.All() {
		for _, iface := range clazz.Interfaces() {
			if parent, ok := classes.Get(iface); ok {
				edges = append(edges, model.NewEdge(clazz, parent, model.Extends))
			}
		}

		super := clazz.Superclass()
		if super == "" || rootTypes[super] {
			continue
		}
		if parent, ok := classes.Get(super); ok {
			edges = append(edges, model.NewEdge(clazz, parent, model.Extends))
		}
	}
	return edges
}
