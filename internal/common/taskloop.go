package common

import (
	"time"

	"github.com/rs/zerolog/log"
)

// How often the loop wakes up to ask the executor if its time has come.
// Short intervals tick at their own pace so they are not quantised away
const maxCycle = time.Second

// TaskLoop invokes a task repeatedly at a fixed interval until stopped.
// The task runs on a single goroutine, so two executions never overlap
type TaskLoop struct {
	cycle    time.Duration
	executor TimedExecutor
	done     chan struct{}
}

func NewTaskLoop(interval time.Duration, task func()) *TaskLoop {
	cycle := interval
	if cycle > maxCycle {
		cycle = maxCycle
	}
	return &TaskLoop{cycle, NewTimedExecutor(interval, task), make(chan struct{})}
}

func (tl *TaskLoop) Start() {
	log.Debug().Msg("Starting task loop")
	ticker := time.NewTicker(tl.cycle)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-tl.done:
				return
			case <-ticker.C:
				tl.executor.Execute()
			}
		}
	}()
}

// Stop the loop. A task already in flight finishes first.
// Stopping twice is not allowed
func (tl *TaskLoop) Stop() {
	log.Debug().Msg("Stopping task loop")
	close(tl.done)
}
