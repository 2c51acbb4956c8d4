package gopool

import (
	"context"
	"runtime/debug"
	"sync"
)

var workerPool sync.Pool

func init() {
	workerPool.New = newWorker
}

type worker struct {
	pool *pool
}

func newWorker() interface{} {
	return &worker{}
}

func (w *worker) zero() {
	w.pool = nil
}

func (w *worker) Recycle() {
	w.zero()
	workerPool.Put(w)
}

// run pops tasks off the pool's queue until it is empty, then recycles
// itself. A fresh goroutine is spawned per worker; the pool's cap and
// scale threshold bound how many run concurrently.
func (w *worker) run() {
	go func() {
		for {
			var t *task

			w.pool.taskLock.Lock()
			if w.pool.taskHead != nil {
				t = w.pool.taskHead
				w.pool.taskHead = w.pool.taskHead.next
				if w.pool.taskHead == nil {
					w.pool.taskTail = nil
				}
			}
			w.pool.taskLock.Unlock()

			if t == nil {
				break
			}

			w.runTask(t)
		}

		w.pool.decWorkerCount()
		w.Recycle()
	}()
}

func (w *worker) runTask(t *task) {
	defer func() {
		if r := recover(); r != nil {
			if w.pool.panicHandler != nil {
				w.pool.panicHandler(t.ctx, r)
			} else {
				defaultPanicHandler(t.ctx, r)
			}
		}
	}()
	f := t.f
	decrTaskCount(w.pool)
	t.Recycle()
	f()
}

func defaultPanicHandler(_ context.Context, r interface{}) {
	debug.PrintStack()
	_ = r
}
