package extractor

import (
	"sync"

	"github.com/CodMac/go-treesitter-uml/core"
	"github.com/CodMac/go-treesitter-uml/handle"
	"github.com/CodMac/go-treesitter-uml/model"
	"github.com/cockroachdb/errors"
)

// Extractor 负责第二阶段：借助全局上下文把文件内的声明链接为类型句柄。
type Extractor interface {
	Extract(fc *core.FileContext, gc *core.GlobalContext) ([]handle.TypeHandle, error)
}

var (
	mu           sync.RWMutex
	extractorMap = make(map[model.Language]Extractor)
)

// RegisterExtractor 注册一个语言与其对应的 Extractor
func RegisterExtractor(lang model.Language, ext Extractor) {
	mu.Lock()
	defer mu.Unlock()
	extractorMap[lang] = ext
}

// GetExtractor 根据语言类型获取对应的 Extractor 实例。
func GetExtractor(lang model.Language) (Extractor, error) {
	mu.RLock()
	defer mu.RUnlock()
	ext, ok := extractorMap[lang]
	if !ok {
		return nil, errors.Newf("no extractor registered for language: %s", lang)
	}
	return ext, nil
}
