package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

type funcJob struct {
	id string
	fn func(ctx context.Context) error
}

func (j funcJob) ID() string                        { return j.id }
func (j funcJob) Execute(ctx context.Context) error { return j.fn(ctx) }

func TestDispatcher_RunsJobAndReturnsResult(t *testing.T) {
	d := NewDispatcher(1, 4, quietLogger())
	defer d.Stop()

	var ran atomic.Bool
	err := d.SubmitWait(context.Background(), funcJob{id: "a", fn: func(context.Context) error {
		ran.Store(true)
		return nil
	}})
	if err != nil {
		t.Fatalf("SubmitWait: %v", err)
	}
	if !ran.Load() {
		t.Error("job did not run")
	}
}

func TestDispatcher_PropagatesJobError(t *testing.T) {
	d := NewDispatcher(1, 4, quietLogger())
	defer d.Stop()

	boom := errors.New("engine exploded")
	err := d.SubmitWait(context.Background(), funcJob{id: "b", fn: func(context.Context) error {
		return boom
	}})
	if !errors.Is(err, boom) {
		t.Errorf("SubmitWait = %v, want %v", err, boom)
	}
}

func TestDispatcher_FullQueueIsBusy(t *testing.T) {
	d := NewDispatcher(1, 1, quietLogger())
	defer d.Stop()

	release := make(chan struct{})
	started := make(chan struct{})
	go d.SubmitWait(context.Background(), funcJob{id: "blocker", fn: func(context.Context) error {
		close(started)
		<-release
		return nil
	}})
	<-started

	// Fill the single queue slot: the submission enqueues, then its context
	// expires, abandoning the job in the queue.
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := d.SubmitWait(ctx, funcJob{id: "queued", fn: func(context.Context) error {
		return nil
	}}); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("queued submission = %v, want deadline exceeded", err)
	}

	err := d.SubmitWait(context.Background(), funcJob{id: "overflow", fn: func(context.Context) error {
		return nil
	}})
	if !errors.Is(err, ErrBusy) {
		t.Errorf("overflow submission = %v, want ErrBusy", err)
	}
	close(release)
}

func TestDispatcher_CanceledContextUnblocksCaller(t *testing.T) {
	d := NewDispatcher(1, 1, quietLogger())
	defer d.Stop()

	release := make(chan struct{})
	started := make(chan struct{})
	go d.SubmitWait(context.Background(), funcJob{id: "blocker", fn: func(context.Context) error {
		close(started)
		<-release
		return nil
	}})
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- d.SubmitWait(ctx, funcJob{id: "waiting", fn: func(context.Context) error {
			return nil
		}})
	}()

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("SubmitWait = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("canceled submitter never unblocked")
	}
	close(release)
}
