package soap

import (
	"context"
	"errors"

	"vindicia_gateway/internal/domain/entities"
)

// FakeTransport queues canned result records or faults and hands them back
// in FIFO order, recording every call it served. Used in place of the real
// client in tests.
type FakeTransport struct {
	queue []fakeReply
	Calls []FakeCall
}

type fakeReply struct {
	result entities.Record
	err    error
}

// FakeCall captures the arguments of one Call invocation.
type FakeCall struct {
	Object string
	Action string
	Params entities.Record
}

func NewFakeTransport() *FakeTransport {
	return &FakeTransport{}
}

func (f *FakeTransport) QueueResult(result entities.Record) *FakeTransport {
	f.queue = append(f.queue, fakeReply{result: result})
	return f
}

func (f *FakeTransport) QueueFault(code, message string) *FakeTransport {
	f.queue = append(f.queue, fakeReply{err: errors.Join(ErrFault, errors.New(code+": "+message))})
	return f
}

func (f *FakeTransport) QueueError(err error) *FakeTransport {
	f.queue = append(f.queue, fakeReply{err: err})
	return f
}

func (f *FakeTransport) Call(_ context.Context, object, action string, params entities.Record) (entities.Record, error) {
	f.Calls = append(f.Calls, FakeCall{Object: object, Action: action, Params: params})
	if len(f.queue) == 0 {
		return nil, errors.New("fake transport: no queued reply")
	}
	next := f.queue[0]
	f.queue = f.queue[1:]
	return next.result, next.err
}
