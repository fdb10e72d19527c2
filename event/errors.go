package event

import "github.com/zeebo/errs"

var ErrBus = errs.Class("eventbus")

// ErrNilCallback 注册回调为 nil 时的前置条件失败，注册方法以此 panic 快速失败
var ErrNilCallback = ErrBus.New("callback must not be nil")
