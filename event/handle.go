package event

import "github.com/opdss/eventbus/contracts/event"

var _ event.Handle = (*handle)(nil)

// handle 持有注册时的 (topic, callback, context) 三元组，不持有订阅记录本身
type handle struct {
	registry *Registry
	topic    event.Topic
	callback event.Callback
	context  any
}

// Off 取消订阅，订阅已移除时为空操作，可安全重复调用
func (h *handle) Off() {
	h.registry.Off(h.topic, h.callback, h.context)
}
