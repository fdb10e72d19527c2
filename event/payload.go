package event

import "github.com/spf13/cast"

// Payload 事件数据，Fire 不传数据时默认为空 Payload。
// 数据原样透传给订阅回调，类型化读取为可选便利，不做任何 schema 校验。
type Payload map[string]any

func (p Payload) GetString(key string) string {
	return cast.ToString(p[key])
}

func (p Payload) GetInt(key string) int {
	return cast.ToInt(p[key])
}

func (p Payload) GetInt64(key string) int64 {
	return cast.ToInt64(p[key])
}

func (p Payload) GetFloat64(key string) float64 {
	return cast.ToFloat64(p[key])
}

func (p Payload) GetBool(key string) bool {
	return cast.ToBool(p[key])
}

func (p Payload) GetStringSlice(key string) []string {
	return cast.ToStringSlice(p[key])
}

// Has 是否存在指定键
func (p Payload) Has(key string) bool {
	_, ok := p[key]
	return ok
}
