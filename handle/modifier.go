package handle

import (
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Modifier 是与 JVM access_flags 取值一致的修饰符位集合
type Modifier uint32

const (
	Public       Modifier = 0x0001
	Private      Modifier = 0x0002
	Protected    Modifier = 0x0004
	Static       Modifier = 0x0008
	Final        Modifier = 0x0010
	Synchronized Modifier = 0x0020
	Volatile     Modifier = 0x0040
	Transient    Modifier = 0x0080
	Native       Modifier = 0x0100
	Interface    Modifier = 0x0200
	Abstract     Modifier = 0x0400
	Strict       Modifier = 0x0800
	Synthetic    Modifier = 0x1000
	Annotation   Modifier = 0x2000
	Enum         Modifier = 0x4000
)

// keywordOrder 决定 String() 的输出顺序，与 Java 源码书写习惯一致
var keywordOrder = []struct {
	bit Modifier
	kw  string
}{
	{Public, "public"},
	{Protected, "protected"},
	{Private, "private"},
	{Abstract, "abstract"},
	{Static, "static"},
	{Final, "final"},
	{Transient, "transient"},
	{Volatile, "volatile"},
	{Synchronized, "synchronized"},
	{Native, "native"},
	{Strict, "strictfp"},
	{Interface, "interface"},
	{Annotation, "annotation"},
	{Enum, "enum"},
	{Synthetic, "synthetic"},
}

// ModifierFromKeyword 把源码关键字映射为修饰符位，未知关键字 (如 default, sealed) 返回 0
func ModifierFromKeyword(kw string) Modifier {
	for _, k := range keywordOrder {
		if k.kw == kw {
			return k.bit
		}
	}
	return 0
}

func (m Modifier) Has(bits Modifier) bool { return m&bits == bits }

func (m Modifier) IsPublic() bool    { return m&Public != 0 }
func (m Modifier) IsProtected() bool { return m&Protected != 0 }
func (m Modifier) IsPrivate() bool   { return m&Private != 0 }
func (m Modifier) IsStatic() bool    { return m&Static != 0 }
func (m Modifier) IsAbstract() bool  { return m&Abstract != 0 }
func (m Modifier) IsSynthetic() bool { return m&Synthetic != 0 }

// Keywords 返回按固定顺序排列的关键字列表
func (m Modifier) Keywords() []string {
	var kws []string
	for _, k := range keywordOrder {
		if m&k.bit != 0 {
			kws = append(kws, k.kw)
		}
	}
	return kws
}

func (m Modifier) String() string {
	return strings.Join(m.Keywords(), " ")
}

// UnmarshalYAML 支持关键字列表 ([public, static]) 或空格分隔的字符串
func (m *Modifier) UnmarshalYAML(value *yaml.Node) error {
	var kws []string
	switch value.Kind {
	case yaml.SequenceNode:
		if err := value.Decode(&kws); err != nil {
			return err
		}
	case yaml.ScalarNode:
		kws = strings.Fields(value.Value)
	default:
		return errors.Newf("line %d: modifiers must be a list or a string", value.Line)
	}

	var out Modifier
	for _, kw := range kws {
		bit := ModifierFromKeyword(kw)
		if bit == 0 {
			return errors.Newf("line %d: unknown modifier %q", value.Line, kw)
		}
		out |= bit
	}
	*m = out
	return nil
}

func (m Modifier) MarshalYAML() (interface{}, error) {
	return m.Keywords(), nil
}
