package handle

import "strings"

// Type 是 TypeHandle 的纯数据实现，可直接由 YAML 快照解码
type Type struct {
	QualifiedName string       `yaml:"name"`
	Simple        string       `yaml:"simple_name,omitempty"`
	Package       string       `yaml:"package"`
	Kind          Kind         `yaml:"kind,omitempty"`
	Mods          Modifier     `yaml:"modifiers,omitempty"`
	Anonymous     bool         `yaml:"anonymous,omitempty"`
	Local         bool         `yaml:"local,omitempty"`
	Enclosing     string       `yaml:"enclosing,omitempty"`
	Super         string       `yaml:"superclass,omitempty"`
	Ifaces        []string     `yaml:"interfaces,omitempty"`
	FieldDecls    []Field      `yaml:"fields,omitempty"`
	CtorDecls     []Executable `yaml:"constructors,omitempty"`
	MethodDecls   []Executable `yaml:"methods,omitempty"`
	Constants     []string     `yaml:"enum_constants,omitempty"`
	Loc           *Location    `yaml:"location,omitempty"`
}

var _ TypeHandle = (*Type)(nil)

func (t *Type) Name() string { return t.QualifiedName }

func (t *Type) SimpleName() string {
	if t.Simple != "" || t.Anonymous {
		return t.Simple
	}
	if i := strings.LastIndexByte(t.QualifiedName, '.'); i >= 0 {
		return t.QualifiedName[i+1:]
	}
	return t.QualifiedName
}

func (t *Type) PackageName() string        { return t.Package }
func (t *Type) Modifiers() Modifier        { return t.Mods | t.Kind.Bits() }
func (t *Type) IsAnonymous() bool          { return t.Anonymous }
func (t *Type) IsLocal() bool              { return t.Local }
func (t *Type) EnclosingType() string      { return t.Enclosing }
func (t *Type) Superclass() string         { return t.Super }
func (t *Type) Interfaces() []string       { return t.Ifaces }
func (t *Type) Fields() []Field            { return t.FieldDecls }
func (t *Type) Constructors() []Executable { return t.CtorDecls }
func (t *Type) Methods() []Executable      { return t.MethodDecls }
func (t *Type) EnumConstants() []string    { return t.Constants }
func (t *Type) Location() *Location        { return t.Loc }
