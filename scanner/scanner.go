// Package scanner 从领域类集合中发现关系。每个扫描器只读取输入集合，返回新的边列表。
package scanner

import "github.com/CodMac/go-treesitter-uml/model"

// Scanner 负责一类关系的发现
type Scanner interface {
	Name() string
	Scan(classes *model.ClassSet) []*model.Edge
}

// Func 把纯函数适配为 Scanner
type Func struct {
	name string
	fn   func(*model.ClassSet) []*model.Edge
}

func NewFunc(name string, fn func(*model.ClassSet) []*model.Edge) *Func {
	return &Func{name: name, fn: fn}
}

func (f *Func) Name() string { return f.name }

func (f *Func) Scan(classes *model.ClassSet) []*model.Edge { return f.fn(classes) }

// Defaults 返回默认扫描器：先组合/内部类，再继承
func Defaults() []Scanner {
	return []Scanner{
		NewFunc("composition", ScanComposition),
		NewFunc("hierarchy", ScanHierarchy),
	}
}
