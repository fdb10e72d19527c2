package event

// Topic 事件名，大小写敏感，精确匹配，不做层级解析
type Topic string

// Callback 事件回调；ctx 为注册时绑定的接收者，payload 为 Fire 传入的数据
type Callback func(ctx any, payload any)

// Subscription 订阅记录
type Subscription struct {
	ID       string   //订阅唯一标识
	Topic    Topic    //事件名
	Callback Callback //回调
	Context  any      //接收者，nil 表示默认为总线本身
	Original Callback //一次性订阅的原始回调，非 nil 即为一次性订阅
}

// Handle 取消订阅句柄，可重复调用，重复调用为空操作
type Handle interface {
	Off()
}

// Bus 进程内同步事件总线
type Bus interface {
	//On 订阅事件，返回取消句柄
	On(topic Topic, callback Callback, context ...any) Handle
	//OnTopics 同一回调订阅多个事件
	OnTopics(topics []Topic, callback Callback, context ...any) bool
	//Once 订阅事件，触发一次后自动取消
	Once(topic Topic, callback Callback, context ...any) Handle
	//OnceTopics 同一回调一次性订阅多个事件
	OnceTopics(topics []Topic, callback Callback, context ...any) bool
	//Off 按回调取消订阅
	Off(topic Topic, callback Callback, context ...any)
	//Fire 同步触发事件，按注册顺序调用全部订阅回调
	Fire(topic Topic, payload ...any)
	//RemoveAllSubscriptions 清空全部订阅
	RemoveAllSubscriptions() Bus
	//GetAllSubscriptions 获取全部订阅的只读视图
	GetAllSubscriptions() map[Topic][]*Subscription
}
