package model

import (
	"strings"

	"github.com/CodMac/go-treesitter-uml/handle"
	"github.com/cockroachdb/errors"
)

var (
	// ErrMalformedType 表示句柄元数据不完整或自相矛盾，整个运行应当失败
	ErrMalformedType = errors.New("malformed type handle")
	// ErrAnonymousType 表示句柄是匿名类，没有可渲染的名称
	ErrAnonymousType = errors.New("anonymous type handle")
)

// DomainClass 是关系图中的一个节点。两个 DomainClass 当且仅当限定名相同时相等。
type DomainClass struct {
	qualifiedName string
	simpleName    string
	packageName   string
	classType     ClassType
	abstract      bool
	static        bool
	enclosing     string
	superclass    string
	interfaces    []string
	fields        []*DomainField
	constructors  []*DomainConstructor
	methods       []*DomainMethod
	constants     []string
	description   string
	location      *handle.Location
}

// NewDomainClass 从类型句柄构建领域类，成员保持声明顺序，不做访问级别过滤。
func NewDomainClass(h handle.TypeHandle) (*DomainClass, error) {
	if h == nil {
		return nil, errors.Wrap(ErrMalformedType, "nil type handle")
	}
	if h.IsAnonymous() {
		return nil, errors.Wrapf(ErrAnonymousType, "type %q", h.Name())
	}
	if err := validate(h); err != nil {
		return nil, err
	}

	mods := h.Modifiers()
	dc := &DomainClass{
		qualifiedName: h.Name(),
		simpleName:    h.SimpleName(),
		packageName:   h.PackageName(),
		classType:     classTypeOf(mods),
		static:        mods.IsStatic(),
		enclosing:     h.EnclosingType(),
		superclass:    h.Superclass(),
		interfaces:    append([]string(nil), h.Interfaces()...),
		constants:     append([]string(nil), h.EnumConstants()...),
		location:      h.Location(),
	}
	// 接口与注解在字节码层面总是 abstract，只有类才区分
	dc.abstract = dc.classType == Class && mods.IsAbstract()

	for _, f := range h.Fields() {
		if f.Name == "" || f.Modifiers.IsSynthetic() {
			continue
		}
		dc.fields = append(dc.fields, newDomainField(f))
	}
	for _, c := range h.Constructors() {
		if c.Modifiers.IsSynthetic() {
			continue
		}
		dc.constructors = append(dc.constructors, &DomainConstructor{newDomainExecutable(dc.simpleName, c)})
	}
	for _, m := range h.Methods() {
		if m.Name == "" || m.Modifiers.IsSynthetic() {
			continue
		}
		dc.methods = append(dc.methods, &DomainMethod{newDomainExecutable(m.Name, m)})
	}
	return dc, nil
}

func validate(h handle.TypeHandle) error {
	name, simple, pkg := h.Name(), h.SimpleName(), h.PackageName()
	switch {
	case name == "":
		return errors.Wrap(ErrMalformedType, "type with empty qualified name")
	case simple == "":
		return errors.Wrapf(ErrMalformedType, "type %q: empty simple name", name)
	case name != simple && !strings.HasSuffix(name, "."+simple):
		return errors.Wrapf(ErrMalformedType, "type %q: simple name %q is not a suffix", name, simple)
	case pkg != "" && !strings.HasPrefix(name, pkg+"."):
		return errors.Wrapf(ErrMalformedType, "type %q: not inside package %q", name, pkg)
	case h.EnclosingType() == name || h.Superclass() == name:
		return errors.Wrapf(ErrMalformedType, "type %q: encloses or extends itself", name)
	}
	return nil
}

// WithDescription 返回带角色描述的副本 (用于组合/聚合边的源节点)
func (c *DomainClass) WithDescription(description string) *DomainClass {
	cp := *c
	cp.description = description
	return &cp
}

func (c *DomainClass) QualifiedName() string              { return c.qualifiedName }
func (c *DomainClass) ClassName() string                  { return c.simpleName }
func (c *DomainClass) PackageName() string                { return c.packageName }
func (c *DomainClass) ClassType() ClassType               { return c.classType }
func (c *DomainClass) IsAbstract() bool                   { return c.abstract }
func (c *DomainClass) IsStatic() bool                     { return c.static }
func (c *DomainClass) EnclosingType() string              { return c.enclosing }
func (c *DomainClass) Superclass() string                 { return c.superclass }
func (c *DomainClass) Interfaces() []string               { return c.interfaces }
func (c *DomainClass) Fields() []*DomainField             { return c.fields }
func (c *DomainClass) Constructors() []*DomainConstructor { return c.constructors }
func (c *DomainClass) Methods() []*DomainMethod           { return c.methods }
func (c *DomainClass) EnumConstants() []string            { return c.constants }
func (c *DomainClass) Description() string                { return c.description }
func (c *DomainClass) Location() *handle.Location         { return c.location }

// IsNested 报告该类型是否声明在另一个类型内部
func (c *DomainClass) IsNested() bool { return c.enclosing != "" }

// Equal 按限定名比较
func (c *DomainClass) Equal(other *DomainClass) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.qualifiedName == other.qualifiedName
}

func (c *DomainClass) String() string { return c.qualifiedName }

// ClassSet 是按限定名去重、保持首次出现顺序的领域类集合
type ClassSet struct {
	order  []*DomainClass
	byName map[string]*DomainClass
}

func NewClassSet(classes ...*DomainClass) *ClassSet {
	s := &ClassSet{byName: make(map[string]*DomainClass, len(classes))}
	for _, c := range classes {
		s.Add(c)
	}
	return s
}

// Add 返回 false 表示已存在同名节点 (保留先到者)
func (s *ClassSet) Add(c *DomainClass) bool {
	if c == nil {
		return false
	}
	if _, ok := s.byName[c.qualifiedName]; ok {
		return false
	}
	s.byName[c.qualifiedName] = c
	s.order = append(s.order, c)
	return true
}

func (s *ClassSet) Contains(qualifiedName string) bool {
	_, ok := s.byName[qualifiedName]
	return ok
}

func (s *ClassSet) Get(qualifiedName string) (*DomainClass, bool) {
	c, ok := s.byName[qualifiedName]
	return c, ok
}

func (s *ClassSet) All() []*DomainClass {
	return append([]*DomainClass(nil), s.order...)
}

func (s *ClassSet) Len() int { return len(s.order) }
