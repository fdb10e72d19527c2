package event

import "go.uber.org/zap"

type Option func(opt *options)

// WithLogger 设置日志，默认 zap.NewNop()
func WithLogger(logger *zap.Logger) Option {
	return func(opt *options) {
		if logger != nil {
			opt.logger = logger
		}
	}
}

// WithIsolation 回调 panic 时恢复并继续分发本轮剩余订阅，默认不恢复直接传播
func WithIsolation() Option {
	return func(opt *options) {
		opt.isolate = true
	}
}

type options struct {
	logger  *zap.Logger //日志
	isolate bool        //是否隔离回调 panic
}

func newOptions(opts ...Option) *options {
	o := &options{
		logger:  zap.NewNop(),
		isolate: false,
	}
	for i := range opts {
		opts[i](o)
	}
	return o
}
