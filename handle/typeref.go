package handle

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// TypeRef 描述一个声明类型。
// Text 是书写/报告形式 (可能带包名与泛型参数)，Raw 是擦除后的限定名，
// Args 是已解析的泛型实参，Dims 是数组维度。
type TypeRef struct {
	Text string    `yaml:"text"`
	Raw  string    `yaml:"raw,omitempty"`
	Args []TypeRef `yaml:"args,omitempty"`
	Dims int       `yaml:"dims,omitempty"`
}

// ParseTypeRef 把类型文本 (e.g. "java.util.Map<String, List<com.x.Part>>[]") 拆解为 TypeRef。
// 得到的 Raw/Args 保持书写时的名称，不做任何限定名解析。
func ParseTypeRef(text string) TypeRef {
	text = strings.TrimSpace(text)
	ref := TypeRef{Text: text}
	body := stripTypeAnnotations(text)

	for {
		switch {
		case strings.HasSuffix(body, "[]"):
			body = strings.TrimSpace(strings.TrimSuffix(body, "[]"))
			ref.Dims++
			continue
		case strings.HasSuffix(body, "..."):
			body = strings.TrimSpace(strings.TrimSuffix(body, "..."))
			ref.Dims++
			continue
		}
		break
	}

	// 通配符：? / ? extends X / ? super X
	if strings.HasPrefix(body, "?") {
		rest := strings.TrimSpace(strings.TrimPrefix(body, "?"))
		for _, kw := range []string{"extends", "super"} {
			if strings.HasPrefix(rest, kw+" ") {
				bound := ParseTypeRef(strings.TrimPrefix(rest, kw))
				bound.Text = text
				return bound
			}
		}
		return ref
	}

	open := strings.IndexByte(body, '<')
	if open < 0 {
		ref.Raw = strings.ReplaceAll(body, " ", "")
		return ref
	}
	ref.Raw = strings.ReplaceAll(body[:open], " ", "")
	closeIdx := strings.LastIndexByte(body, '>')
	if closeIdx <= open {
		return ref
	}
	for _, arg := range splitTopLevel(body[open+1 : closeIdx]) {
		if arg == "" {
			continue
		}
		ref.Args = append(ref.Args, ParseTypeRef(arg))
	}
	return ref
}

// Ref 构造一个没有泛型参数的 TypeRef，Text 与 Raw 相同
func Ref(qualifiedName string) TypeRef {
	return TypeRef{Text: qualifiedName, Raw: qualifiedName}
}

// Elements 深度优先返回所有泛型实参 (不含自身)，按出现顺序
func (r TypeRef) Elements() []TypeRef {
	var out []TypeRef
	for _, a := range r.Args {
		out = append(out, a)
		out = append(out, a.Elements()...)
	}
	return out
}

func (r TypeRef) IsArray() bool { return r.Dims > 0 }

func (r TypeRef) String() string { return r.Text }

// UnmarshalYAML 允许用标量简写 (type: java.util.List<com.x.Part>)
func (r *TypeRef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*r = ParseTypeRef(value.Value)
		return nil
	}
	type plain TypeRef
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*r = TypeRef(p)
	if r.Raw == "" {
		parsed := ParseTypeRef(r.Text)
		r.Raw = parsed.Raw
		if len(r.Args) == 0 {
			r.Args = parsed.Args
		}
		if r.Dims == 0 {
			r.Dims = parsed.Dims
		}
	}
	return nil
}

func splitTopLevel(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, ch := range s {
		switch ch {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(parts, strings.TrimSpace(s[start:]))
}

// stripTypeAnnotations 去掉类型前的注解 (e.g. "@NonNull String")
func stripTypeAnnotations(s string) string {
	for strings.HasPrefix(s, "@") {
		end := strings.IndexAny(s, " \t")
		if end < 0 {
			return s
		}
		if p := strings.IndexByte(s, '('); p >= 0 && p < end {
			c := strings.IndexByte(s, ')')
			if c < 0 {
				return s
			}
			end = c + 1
		}
		s = strings.TrimSpace(s[end:])
	}
	return s
}
