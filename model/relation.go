package model

import "fmt"

// --- 关系类型 (Edge Types) ---

// EdgeType 是边的类型，构造后不可变
type EdgeType int

const (
	// Extends 继承/实现: 子类 -> 父类 或 实现类 -> 接口
	Extends EdgeType = iota
	// Composition 组合: 声明类独占字段值的生命周期
	Composition
	// Aggregation 聚合: 字段值由外部传入，可独立存活
	Aggregation
	// InnerClass 内部类: 外层类 -> 非静态嵌套类
	InnerClass
	// StaticInnerClass 静态嵌套类: 外层类 -> 静态嵌套类
	StaticInnerClass
)

func (t EdgeType) String() string {
	switch t {
	case Extends:
		return "EXTENDS"
	case Composition:
		return "COMPOSITION"
	case Aggregation:
		return "AGGREGATION"
	case InnerClass:
		return "INNER_CLASS"
	case StaticInnerClass:
		return "STATIC_INNER_CLASS"
	default:
		return fmt.Sprintf("EdgeType(%d)", int(t))
	}
}

func (t EdgeType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// IsHierarchy 报告是否为继承类关系
func (t EdgeType) IsHierarchy() bool { return t == Extends }

// IsNesting 报告是否为内部类关系
func (t EdgeType) IsNesting() bool { return t == InnerClass || t == StaticInnerClass }

// Edge 是 Source -> Target 的有向类型化关系
type Edge struct {
	source *DomainClass
	target *DomainClass
	typ    EdgeType
}

func NewEdge(source, target *DomainClass, typ EdgeType) *Edge {
	return &Edge{source: source, target: target, typ: typ}
}

func (e *Edge) Source() *DomainClass { return e.source }
func (e *Edge) Target() *DomainClass { return e.target }
func (e *Edge) Type() EdgeType       { return e.typ }

// Key 是去重键 (source, target, type)；源节点的描述不参与比较
func (e *Edge) Key() string {
	return e.source.qualifiedName + "|" + e.target.qualifiedName + "|" + e.typ.String()
}

// IsSelfReference 报告边是否指向自身 (如链表节点字段)
func (e *Edge) IsSelfReference() bool { return e.source.Equal(e.target) }

func (e *Edge) String() string {
	return fmt.Sprintf("%s -[%s]-> %s", e.source.qualifiedName, e.typ, e.target.qualifiedName)
}
