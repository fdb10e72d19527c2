package event

import (
	"reflect"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/opdss/eventbus/contracts/event"
	"github.com/opdss/eventbus/iterator"
)

var _ event.Bus = (*Registry)(nil)

// Registry 进程内同步事件总线，单实例供全进程共享，由调用方构造并注入
type Registry struct {
	mu      sync.RWMutex
	subs    map[event.Topic][]*event.Subscription
	logger  *zap.Logger
	isolate bool
}

func NewRegistry(opts ...Option) *Registry {
	o := newOptions(opts...)
	return &Registry{
		subs:    make(map[event.Topic][]*event.Subscription),
		logger:  o.logger,
		isolate: o.isolate,
	}
}

// On 订阅事件。context 最多取第一个；省略或显式传 nil 时回调接收者为总线本身。
// callback 为 nil 时 panic ErrNilCallback。
func (r *Registry) On(topic event.Topic, callback event.Callback, context ...any) event.Handle {
	ctx := firstContext(context)
	r.add(topic, callback, nil, ctx)
	return &handle{registry: r, topic: topic, callback: callback, context: ctx}
}

// OnTopics 同一回调订阅多个事件，批量形式只返回是否成功，不返回句柄
func (r *Registry) OnTopics(topics []event.Topic, callback event.Callback, context ...any) bool {
	for _, topic := range topics {
		r.On(topic, callback, context...)
	}
	return true
}

// Once 订阅事件，触发一次后自动取消。Off 按原始回调仍可在触发前移除。
func (r *Registry) Once(topic event.Topic, callback event.Callback, context ...any) event.Handle {
	ctx := firstContext(context)
	r.add(topic, callback, callback, ctx)
	return &handle{registry: r, topic: topic, callback: callback, context: ctx}
}

// OnceTopics 同一回调一次性订阅多个事件
func (r *Registry) OnceTopics(topics []event.Topic, callback event.Callback, context ...any) bool {
	for _, topic := range topics {
		r.Once(topic, callback, context...)
	}
	return true
}

func (r *Registry) add(topic event.Topic, callback, original event.Callback, ctx any) *event.Subscription {
	if callback == nil {
		panic(ErrNilCallback)
	}
	sub := &event.Subscription{
		ID:       uuid.New().String(),
		Topic:    topic,
		Callback: callback,
		Context:  ctx,
		Original: original,
	}
	r.mu.Lock()
	r.subs[topic] = append(r.subs[topic], sub)
	r.mu.Unlock()
	r.logger.Debug("subscribe",
		zap.String("topic", string(topic)),
		zap.String("id", sub.ID),
		zap.Bool("once", original != nil))
	return sub
}

// Off 按回调移除订阅，同一回调的重复订阅一并移除；事件不存在为空操作。
// 匹配存储的回调或一次性订阅记住的原始回调；context 仅为与 On 对称，不参与匹配。
func (r *Registry) Off(topic event.Topic, callback event.Callback, _ ...any) {
	if callback == nil {
		return
	}
	target := funcPointer(callback)
	r.mu.Lock()
	subs, ok := r.subs[topic]
	if !ok {
		r.mu.Unlock()
		return
	}
	removed := 0
	// 倒序扫描，原地删除不影响未扫描部分
	for i := len(subs) - 1; i >= 0; i-- {
		if matches(subs[i], target) {
			subs = append(subs[:i], subs[i+1:]...)
			removed++
		}
	}
	// 空列表立即删除键，不留悬挂
	if len(subs) == 0 {
		delete(r.subs, topic)
	} else {
		r.subs[topic] = subs
	}
	r.mu.Unlock()
	if removed > 0 {
		r.logger.Debug("unsubscribe",
			zap.String("topic", string(topic)),
			zap.Int("removed", removed))
	}
}

// Fire 同步触发事件，按注册顺序调用订阅回调，payload 省略时默认为空 Payload。
// 对触发开始时的订阅快照分发，回调内的增删不影响本轮；
// 一次性订阅先从注册表移除再调用原始回调。
// 默认不恢复回调 panic，panic 会中止本轮剩余分发并向上传播，见 WithIsolation。
func (r *Registry) Fire(topic event.Topic, payload ...any) {
	var data any = Payload{}
	if len(payload) > 0 {
		data = payload[0]
	}

	r.mu.RLock()
	subs := r.subs[topic]
	snapshot := make([]*event.Subscription, len(subs))
	copy(snapshot, subs)
	r.mu.RUnlock()

	if len(snapshot) == 0 {
		return
	}

	it := iterator.NewSliceIterator(snapshot)
	r.logger.Debug("fire",
		zap.String("topic", string(topic)),
		zap.Int("subscribers", it.Size()))
	for it.Next() {
		sub := it.Value()
		if sub.Original != nil {
			r.removeByID(topic, sub.ID)
		}
		r.invoke(sub, data)
	}
}

// RemoveAllSubscriptions 清空全部订阅，返回总线便于链式调用
func (r *Registry) RemoveAllSubscriptions() event.Bus {
	r.mu.Lock()
	r.subs = make(map[event.Topic][]*event.Subscription)
	r.mu.Unlock()
	r.logger.Debug("remove all subscriptions")
	return r
}

// GetAllSubscriptions 获取全部订阅的副本，修改返回值不影响注册表
func (r *Registry) GetAllSubscriptions() map[event.Topic][]*event.Subscription {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make(map[event.Topic][]*event.Subscription, len(r.subs))
	for topic, subs := range r.subs {
		cp := make([]*event.Subscription, len(subs))
		copy(cp, subs)
		all[topic] = cp
	}
	return all
}

func (r *Registry) invoke(sub *event.Subscription, payload any) {
	ctx := sub.Context
	if ctx == nil {
		ctx = r
	}
	if !r.isolate {
		sub.Callback(ctx, payload)
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("subscriber panic",
				zap.String("topic", string(sub.Topic)),
				zap.String("id", sub.ID),
				zap.Any("recovered", rec))
		}
	}()
	sub.Callback(ctx, payload)
}

// removeByID 按唯一标识移除单条记录，已被移除时为空操作
func (r *Registry) removeByID(topic event.Topic, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	subs, ok := r.subs[topic]
	if !ok {
		return false
	}
	for i, sub := range subs {
		if sub.ID == id {
			subs = append(subs[:i], subs[i+1:]...)
			if len(subs) == 0 {
				delete(r.subs, topic)
			} else {
				r.subs[topic] = subs
			}
			return true
		}
	}
	return false
}

// matches 匹配存储回调或一次性订阅的原始回调
func matches(sub *event.Subscription, target uintptr) bool {
	if funcPointer(sub.Callback) == target {
		return true
	}
	return sub.Original != nil && funcPointer(sub.Original) == target
}

// funcPointer 函数值不可比较，以代码指针作为回调标识。
// 同一字面量生成的多个闭包共享代码指针，Off 会视作重复订阅一并移除。
func funcPointer(fn event.Callback) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

func firstContext(context []any) any {
	if len(context) == 0 {
		return nil
	}
	// 显式 nil 检查，0、""、false 等合法零值接收者不被覆盖
	return context[0]
}
