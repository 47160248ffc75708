package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
)

// ErrBusy is returned when the job queue is full. Callers surface it to the
// user instead of buffering transcriptions without bound.
var ErrBusy = errors.New("transcription queue is full")

// Job is a unit of pipeline work executed by a worker.
type Job interface {
	ID() string
	Execute(ctx context.Context) error
}

type submission struct {
	job  Job
	ctx  context.Context
	done chan error
}

// Dispatcher runs jobs on a fixed set of workers. With the default single
// worker it serializes access to the shared speech engine: one transcription
// at a time, every other request waits in line or is turned away.
type Dispatcher struct {
	queue chan submission
	quit  chan struct{}
	wg    sync.WaitGroup
	log   *logrus.Logger
}

func NewDispatcher(workers, queueSize int, log *logrus.Logger) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	d := &Dispatcher{
		queue: make(chan submission, queueSize),
		quit:  make(chan struct{}),
		log:   log,
	}
	for i := 1; i <= workers; i++ {
		d.wg.Add(1)
		go d.work(i)
	}
	return d
}

func (d *Dispatcher) work(id int) {
	defer d.wg.Done()
	for {
		select {
		case sub := <-d.queue:
			if err := sub.ctx.Err(); err != nil {
				// Caller gave up while the job was queued.
				sub.done <- err
				continue
			}
			d.log.WithFields(logrus.Fields{"worker": id, "job": sub.job.ID()}).Debug("Job started")
			err := sub.job.Execute(sub.ctx)
			if err != nil {
				d.log.WithFields(logrus.Fields{"worker": id, "job": sub.job.ID(), "error": err.Error()}).Error("Job failed")
			} else {
				d.log.WithFields(logrus.Fields{"worker": id, "job": sub.job.ID()}).Debug("Job finished")
			}
			sub.done <- err
		case <-d.quit:
			return
		}
	}
}

// SubmitWait enqueues the job and blocks until it completes or ctx is done.
// A full queue fails immediately with ErrBusy.
func (d *Dispatcher) SubmitWait(ctx context.Context, job Job) error {
	sub := submission{job: job, ctx: ctx, done: make(chan error, 1)}

	select {
	case d.queue <- sub:
	default:
		return ErrBusy
	}

	select {
	case err := <-sub.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop shuts the workers down after their current jobs finish. Queued but
// unstarted jobs are abandoned; their submitters' contexts unblock them.
func (d *Dispatcher) Stop() {
	close(d.quit)
	d.wg.Wait()
}
