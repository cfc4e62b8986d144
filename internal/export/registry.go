package export

import (
	"sync"

	"github.com/julien-sobczak/ulysses-export/pkg/oid"
)

// Registry tracks the jobs in flight.
type Registry struct {
	mu   sync.Mutex
	jobs map[oid.OID]*SheetJob
}

func NewRegistry() *Registry {
	return &Registry{
		jobs: make(map[oid.OID]*SheetJob),
	}
}

func (r *Registry) Register(job *SheetJob) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = job
}

func (r *Registry) Deregister(id oid.OID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.jobs, id)
}

// Get returns a job in flight.
func (r *Registry) Get(id oid.OID) (*SheetJob, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	return job, ok
}

// Len returns the number of jobs in flight.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.jobs)
}
