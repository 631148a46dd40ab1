package handle

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Manifest 是一组类型句柄的 YAML 快照
type Manifest struct {
	Types []*Type `yaml:"types"`
}

// ParseManifest 解码 YAML 快照。缺省 package 时按限定名推断 (外层类型优先)。
func ParseManifest(data []byte) ([]TypeHandle, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "failed to decode type manifest")
	}

	byName := make(map[string]*Type, len(m.Types))
	for i, t := range m.Types {
		if t == nil {
			return nil, errors.Newf("type manifest entry %d is empty", i)
		}
		byName[t.QualifiedName] = t
	}

	handles := make([]TypeHandle, 0, len(m.Types))
	for _, t := range m.Types {
		if t.Kind == "" {
			t.Kind = KindClass
		}
		if t.Package == "" {
			pkg, err := inferPackage(t, byName)
			if err != nil {
				return nil, err
			}
			t.Package = pkg
		}
		handles = append(handles, t)
	}
	return handles, nil
}

// LoadManifest 从文件读取 YAML 快照
func LoadManifest(path string) ([]TypeHandle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read type manifest %s", path)
	}
	handles, err := ParseManifest(data)
	if err != nil {
		return nil, errors.Wrapf(err, "manifest %s", path)
	}
	return handles, nil
}

// inferPackage 沿外层类型链查找第一个显式 package，找不到时按链末端类型的限定名推断
func inferPackage(t *Type, byName map[string]*Type) (string, error) {
	visited := map[string]bool{t.QualifiedName: true}
	cur := t
	for cur.Enclosing != "" {
		outer, ok := byName[cur.Enclosing]
		if !ok {
			break
		}
		if visited[outer.QualifiedName] {
			return "", errors.Newf("type %q: enclosing type chain forms a cycle at %q", t.QualifiedName, outer.QualifiedName)
		}
		visited[outer.QualifiedName] = true
		if outer.Package != "" {
			return outer.Package, nil
		}
		cur = outer
	}

	name, simple := cur.QualifiedName, cur.SimpleName()
	if len(name) > len(simple)+1 && name[len(name)-len(simple)-1] == '.' {
		return name[:len(name)-len(simple)-1], nil
	}
	return "", nil
}
