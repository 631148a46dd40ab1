package parser

import (
	"sync"

	"github.com/CodMac/go-treesitter-uml/model"
	"github.com/cockroachdb/errors"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ErrLanguageNotRegistered 表示没有为该语言注册 Tree-sitter 语言对象
var ErrLanguageNotRegistered = errors.New("language not registered")

var (
	langMu  sync.RWMutex
	langMap = make(map[model.Language]*sitter.Language)
)

// RegisterLanguage 用于注册 Tree-sitter 语言库 (由 x/<lang>/init.go 调用)
func RegisterLanguage(lang model.Language, tsLang *sitter.Language) {
	langMu.Lock()
	defer langMu.Unlock()
	langMap[lang] = tsLang
}

// GetLanguage 获取已注册的 Tree-sitter 语言对象
func GetLanguage(lang model.Language) (*sitter.Language, error) {
	langMu.RLock()
	defer langMu.RUnlock()
	tsLang, ok := langMap[lang]
	if !ok {
		return nil, errors.Wrapf(ErrLanguageNotRegistered, "%s", lang)
	}
	return tsLang, nil
}
