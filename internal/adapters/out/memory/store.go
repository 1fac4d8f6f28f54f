// Package memory is the default storage of the job board: a process-lifetime
// store guarded by a single RW mutex.
//
// A unit of work holds the write lock from Begin until Commit or Rollback, so
// everything a command reads and writes inside it is serialized with every
// other command. Two approvals racing for the same job therefore run one
// after the other and the second one sees the job already filled.
//
// Readers outside a unit of work take the read lock. Every aggregate leaving
// the store is a copy.
package memory

import (
	"context"
	"slices"
	"sync"

	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/model/user"
	"jobboard/internal/pkg/errs"
)

// Store holds all jobs and users.
type Store struct {
	mu sync.RWMutex

	jobs     map[kernel.UUID]*job.Job
	jobOrder []kernel.UUID

	users     map[kernel.UserID]*user.User
	usernames map[string]kernel.UserID
}

func NewStore() *Store {
	return &Store{
		jobs:      make(map[kernel.UUID]*job.Job),
		users:     make(map[kernel.UserID]*user.User),
		usernames: make(map[string]kernel.UserID),
	}
}

// Jobs returns a reader over committed jobs.
func (s *Store) Jobs() *JobReader {
	return &JobReader{store: s}
}

// Users returns a reader over committed users.
func (s *Store) Users() *UserReader {
	return &UserReader{store: s}
}

// JobReader serves queries from committed state.
type JobReader struct {
	store *Store
}

func (r *JobReader) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return newChangeSet(r.store).getJob(id)
}

func (r *JobReader) List(ctx context.Context) ([]*job.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return newChangeSet(r.store).listJobs(), nil
}

// UserReader serves queries from committed state.
type UserReader struct {
	store *Store
}

func (r *UserReader) Get(ctx context.Context, id kernel.UserID) (*user.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return newChangeSet(r.store).getUser(id)
}

func (r *UserReader) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return newChangeSet(r.store).getUserByUsername(username)
}

// changeSet is the pending state of one unit of work layered over the store.
// Its methods assume the caller holds the appropriate lock.
type changeSet struct {
	store *Store

	jobs        map[kernel.UUID]*job.Job
	deletedJobs map[kernel.UUID]struct{}
	addedJobs   []kernel.UUID

	users     map[kernel.UserID]*user.User
	usernames map[string]kernel.UserID
}

func newChangeSet(s *Store) *changeSet {
	return &changeSet{
		store:       s,
		jobs:        make(map[kernel.UUID]*job.Job),
		deletedJobs: make(map[kernel.UUID]struct{}),
		users:       make(map[kernel.UserID]*user.User),
		usernames:   make(map[string]kernel.UserID),
	}
}

func (c *changeSet) lookupJob(id kernel.UUID) (*job.Job, bool) {
	if _, gone := c.deletedJobs[id]; gone {
		return nil, false
	}
	if j, ok := c.jobs[id]; ok {
		return j, true
	}
	j, ok := c.store.jobs[id]
	return j, ok
}

func (c *changeSet) getJob(id kernel.UUID) (*job.Job, error) {
	j, ok := c.lookupJob(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("jobId", id)
	}
	return j.Clone(), nil
}

func (c *changeSet) listJobs() []*job.Job {
	ids := append(slices.Clone(c.store.jobOrder), c.addedJobs...)
	out := make([]*job.Job, 0, len(ids))
	for _, id := range ids {
		if j, ok := c.lookupJob(id); ok {
			out = append(out, j.Clone())
		}
	}
	return out
}

func (c *changeSet) addJob(j *job.Job) error {
	if _, exists := c.lookupJob(j.ID()); exists {
		return errs.NewConflictError("jobId", "already exists")
	}
	if _, wasDeleted := c.deletedJobs[j.ID()]; wasDeleted {
		return errs.NewConflictError("jobId", "was deleted in this transaction")
	}
	c.jobs[j.ID()] = j.Clone()
	c.addedJobs = append(c.addedJobs, j.ID())
	return nil
}

func (c *changeSet) updateJob(j *job.Job) error {
	if _, exists := c.lookupJob(j.ID()); !exists {
		return errs.NewObjectNotFoundError("jobId", j.ID())
	}
	c.jobs[j.ID()] = j.Clone()
	return nil
}

func (c *changeSet) deleteJob(id kernel.UUID) error {
	if _, exists := c.lookupJob(id); !exists {
		return errs.NewObjectNotFoundError("jobId", id)
	}
	delete(c.jobs, id)
	c.addedJobs = slices.DeleteFunc(c.addedJobs, func(added kernel.UUID) bool { return added.IsEqual(id) })
	c.deletedJobs[id] = struct{}{}
	return nil
}

func (c *changeSet) lookupUser(id kernel.UserID) (*user.User, bool) {
	if u, ok := c.users[id]; ok {
		return u, true
	}
	u, ok := c.store.users[id]
	return u, ok
}

func (c *changeSet) getUser(id kernel.UserID) (*user.User, error) {
	u, ok := c.lookupUser(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("userId", id)
	}
	return u.Clone(), nil
}

func (c *changeSet) getUserByUsername(username string) (*user.User, error) {
	id, ok := c.usernames[username]
	if !ok {
		id, ok = c.store.usernames[username]
	}
	if !ok {
		return nil, errs.NewObjectNotFoundError("username", username)
	}
	return c.getUser(id)
}

func (c *changeSet) addUser(u *user.User) error {
	if _, exists := c.lookupUser(u.ID()); exists {
		return errs.NewConflictError("userId", "already exists")
	}
	if _, err := c.getUserByUsername(u.Username()); err == nil {
		return errs.NewConflictError("username", "is already taken")
	}
	c.users[u.ID()] = u.Clone()
	c.usernames[u.Username()] = u.ID()
	return nil
}

func (c *changeSet) updateUser(u *user.User) error {
	current, exists := c.lookupUser(u.ID())
	if !exists {
		return errs.NewObjectNotFoundError("userId", u.ID())
	}
	if current.Username() != u.Username() {
		return errs.NewConflictError("username", "cannot be changed")
	}
	c.users[u.ID()] = u.Clone()
	return nil
}

// apply writes the pending state into the store. The caller holds the write lock.
func (c *changeSet) apply() {
	s := c.store

	for id := range c.deletedJobs {
		delete(s.jobs, id)
	}
	if len(c.deletedJobs) > 0 {
		s.jobOrder = slices.DeleteFunc(s.jobOrder, func(id kernel.UUID) bool {
			_, gone := c.deletedJobs[id]
			return gone
		})
	}
	for id, j := range c.jobs {
		s.jobs[id] = j
	}
	s.jobOrder = append(s.jobOrder, c.addedJobs...)

	for id, u := range c.users {
		s.users[id] = u
	}
	for name, id := range c.usernames {
		s.usernames[name] = id
	}
}
