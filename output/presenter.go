// Package output 把关系图渲染为具体的文本格式。
package output

import (
	"sort"
	"strings"
	"sync"

	"github.com/CodMac/go-treesitter-uml/graph"
	"github.com/cockroachdb/errors"
)

// ErrUnknownPresenter 表示请求的格式没有注册
var ErrUnknownPresenter = errors.New("unknown presenter")

// Representation 是渲染结果及其文件扩展名 (e.g. "puml")
type Representation struct {
	Content    string
	FileEnding string
}

// Options 是渲染时可调整的开关
type Options struct {
	// ShowParameterNames 为真且参数名可恢复时，签名中输出参数名
	ShowParameterNames bool
}

func DefaultOptions() Options {
	return Options{ShowParameterNames: true}
}

// Presenter 把图映射为一种文本记法，同一输入必须产生字节一致的输出
type Presenter interface {
	Describe(g *graph.Graph) (*Representation, error)
	FileEnding() string
}

// Factory 根据选项创建 Presenter
type Factory func(opts Options) Presenter

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register 注册一个 Presenter，重复注册时后者覆盖前者
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// Get 按名称创建 Presenter
func Get(name string, opts Options) (Presenter, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, errors.WithHintf(errors.Wrapf(ErrUnknownPresenter, "%q", name),
			"available presenters: %s", strings.Join(Names(), ", "))
	}
	return factory(opts), nil
}

// Names 返回已注册的 Presenter 名称 (字典序)
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
