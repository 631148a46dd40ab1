package java

import "strings"

type NoiseFilter struct{}

func NewJavaNoiseFilter() *NoiseFilter {
	return &NoiseFilter{}
}

// IsNoise 报告限定名是否属于 JDK / 常见基础库或基本类型
func (f *NoiseFilter) IsNoise(qn string) bool {
	if primitiveTypes[qn] {
		return true
	}
	noisePrefixes := []string{
		"java.", "javax.", "jdk.", "sun.", "com.sun.", "lombok.",
		"org.slf4j.", "org.apache.log4j.",
	}
	for _, p := range noisePrefixes {
		if strings.HasPrefix(qn, p) {
			return true
		}
	}
	return false
}
