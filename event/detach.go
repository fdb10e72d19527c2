package event

import (
	"github.com/opdss/eventbus/contracts/event"
	"github.com/opdss/eventbus/iterator"
)

// DetachEvents 批量取消订阅，持有方销毁时一次释放其全部订阅；空入参为空操作
func DetachEvents(handles ...event.Handle) {
	it := iterator.NewSliceIterator(handles)
	for it.Next() {
		if h := it.Value(); h != nil {
			h.Off()
		}
	}
}
