package core

import (
	"sync"

	"github.com/CodMac/go-treesitter-uml/model"
	"github.com/cockroachdb/errors"
)

// SymbolResolver 是语言特有的符号解析逻辑
type SymbolResolver interface {
	// BuildQualifiedName 根据父节点和当前名构建 QN (Java 用 ".")
	BuildQualifiedName(parentQN, name string) string

	// Resolve 处理嵌套作用域、导入、同包、通配符等逻辑。
	// 调用方不得持有 GlobalContext 的锁。
	Resolve(gc *GlobalContext, fc *FileContext, scope, symbol string) []*DefinitionEntry

	// RegisterPackage 注册包/命名空间，调用时已持有 GlobalContext 的写锁
	RegisterPackage(gc *GlobalContext, packageName string)
}

var (
	resolverMu        sync.RWMutex
	symbolResolverMap = make(map[model.Language]SymbolResolver)
)

// RegisterSymbolResolver 注册一个语言与其对应的 SymbolResolver
func RegisterSymbolResolver(lang model.Language, resolver SymbolResolver) {
	resolverMu.Lock()
	defer resolverMu.Unlock()
	symbolResolverMap[lang] = resolver
}

// GetSymbolResolver 根据语言类型获取对应的 SymbolResolver 实例
func GetSymbolResolver(lang model.Language) (SymbolResolver, error) {
	resolverMu.RLock()
	defer resolverMu.RUnlock()
	resolver, ok := symbolResolverMap[lang]
	if !ok {
		return nil, errors.Newf("no SymbolResolver for language: %s", lang)
	}
	return resolver, nil
}
