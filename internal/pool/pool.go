// Package pool runs parse jobs concurrently, one goroutine per file,
// with strictly sequential processing within a file and cooperative
// cancellation, per the job-pool component's contract.
package pool

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"

	"github.com/logtt/logtt/internal/headerparser"
	"github.com/logtt/logtt/internal/logconfig"
	"github.com/logtt/logtt/internal/logline"
	"github.com/logtt/logtt/internal/masker"
	"github.com/logtt/logtt/internal/materializer"
	"github.com/logtt/logtt/internal/miner"
	"github.com/logtt/logtt/internal/reader"
	"github.com/logtt/logtt/internal/storage"
	"github.com/logtt/logtt/internal/tokenizer"
)

// Job is one unit of work submitted to the pool: a file to mine with a
// named algorithm and config, publishing to two named output tables.
type Job struct {
	FilePath        string
	Algorithm       string
	Config          logconfig.LogParserConfig
	StructuredTable string
	TemplatesTable  string
	KeepParams      bool
	Overwrite       bool
}

// EventKind distinguishes a job's terminal outcomes.
type EventKind int

const (
	EventFinished EventKind = iota
	EventError
)

// Event reports a job's outcome to whoever is consuming Pool.Events.
type Event struct {
	JobID     string
	Kind      EventKind
	LineCount int
	Err       error
}

// Pool runs parse jobs with a bounded number of concurrent workers.
// Each job gets its own miner instance, so no locks are shared between
// concurrently running files.
type Pool struct {
	publisher storage.Publisher
	events    chan Event

	p *pool.Pool

	mu      sync.Mutex
	cancels map[string]*atomic.Bool
	killed  atomic.Bool
}

// New builds a Pool bounded to maxWorkers concurrent file jobs,
// publishing every job's output through publisher.
func New(maxWorkers int, publisher storage.Publisher) *Pool {
	return &Pool{
		publisher: publisher,
		events:    make(chan Event, 64),
		p:         pool.New().WithMaxGoroutines(maxWorkers),
		cancels:   make(map[string]*atomic.Bool),
	}
}

// Events returns the channel Submit's results are reported on.
func (p *Pool) Events() <-chan Event {
	return p.events
}

// Submit queues a job and returns its id immediately. The job itself
// runs on a pool worker goroutine.
func (p *Pool) Submit(job Job) (string, error) {
	if p.killed.Load() {
		return "", fmt.Errorf("pool: killed, refusing new jobs")
	}

	id := uuid.NewString()
	stop := &atomic.Bool{}

	p.mu.Lock()
	p.cancels[id] = stop
	p.mu.Unlock()

	p.p.Go(func() {
		lineCount, err := p.run(job, stop)
		if err != nil {
			p.events <- Event{JobID: id, Kind: EventError, Err: err}
			return
		}
		p.events <- Event{JobID: id, Kind: EventFinished, LineCount: lineCount}
	})

	return id, nil
}

// CancelJob requests that a single in-flight job stop at its next
// should_stop poll.
func (p *Pool) CancelJob(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if stop, ok := p.cancels[id]; ok {
		stop.Store(true)
	}
}

// Kill cancels every in-flight job and refuses any further Submit
// calls.
func (p *Pool) Kill() {
	p.killed.Store(true)
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, stop := range p.cancels {
		stop.Store(true)
	}
}

// Wait blocks until every submitted job has finished.
func (p *Pool) Wait() {
	p.p.Wait()
	close(p.events)
}

func (p *Pool) run(job Job, stop *atomic.Bool) (int, error) {
	shouldStop := func() bool { return stop.Load() }

	hp, err := headerparser.Compile(job.Config.LogFormat)
	if err != nil {
		return 0, err
	}

	formatRules, err := job.Config.BuildMaskRules()
	if err != nil {
		return 0, err
	}
	mk := masker.New(formatRules, job.Config.UseBuiltinMasking)
	tk := tokenizer.New(job.Config.Delimiters)

	var lines []logline.LogLine
	acceptedCount := 0
	err = reader.StreamFile(job.FilePath, func(lineNum int, raw string) error {
		if shouldStop() {
			return miner.ErrCancelled
		}
		header, content, ok := hp.Parse(raw)
		if !ok {
			slog.Warn("line skipped: header does not match log format", "file", job.FilePath, "line", lineNum)
			return nil
		}
		masked := mk.Mask(content)
		tokens := tk.Tokenize(masked)
		acceptedCount++
		lines = append(lines, logline.LogLine{
			LineID:        acceptedCount,
			Header:        header,
			RawContent:    content,
			MaskedContent: masked,
			Tokens:        tokens,
		})
		return nil
	})
	if err != nil {
		return 0, err
	}

	m, err := miner.New(job.Algorithm, job.Config.AlgorithmArgs(job.Algorithm))
	if err != nil {
		return 0, err
	}

	assignments, clusters, err := m.Mine(lines, shouldStop, nil)
	if err != nil {
		return 0, err
	}

	structured, templates := materializer.Materialize(lines, assignments, clusters, job.KeepParams)

	if p.publisher != nil {
		err = p.publisher.Publish(storage.Relations{
			LogFile:         job.FilePath,
			StructuredTable: job.StructuredTable,
			TemplatesTable:  job.TemplatesTable,
			Structured:      structured,
			Templates:       templates,
		}, job.Overwrite)
		if err != nil {
			return 0, err
		}
	}

	return len(lines), nil
}
