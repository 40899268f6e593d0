// Package memory keeps every aggregate in process memory. It backs the
// application tests and STORAGE_DRIVER=memory.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/oksasatya/job-recruitment/internal/domain/entity"
	"github.com/oksasatya/job-recruitment/internal/domain/errs"
	"github.com/oksasatya/job-recruitment/internal/domain/repository"
)

// Store holds one table per aggregate. Values are cloned on the way in and out
// so callers never share pointers with the store.
type Store struct {
	mu           sync.RWMutex
	txMu         sync.Mutex
	users        map[string]entity.User
	teams        map[string]entity.Team
	resumes      map[string]entity.Resume
	recruitments map[string]entity.Recruitment
	processes    map[string]entity.RecruitmentProcess
	reviews      map[string]entity.Review
}

func NewStore() *Store {
	return &Store{
		users:        map[string]entity.User{},
		teams:        map[string]entity.Team{},
		resumes:      map[string]entity.Resume{},
		recruitments: map[string]entity.Recruitment{},
		processes:    map[string]entity.RecruitmentProcess{},
		reviews:      map[string]entity.Review{},
	}
}

type snapshot struct {
	users        map[string]entity.User
	teams        map[string]entity.Team
	resumes      map[string]entity.Resume
	recruitments map[string]entity.Recruitment
	processes    map[string]entity.RecruitmentProcess
	reviews      map[string]entity.Review
}

func copyMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{
		users:        copyMap(s.users),
		teams:        copyMap(s.teams),
		resumes:      copyMap(s.resumes),
		recruitments: copyMap(s.recruitments),
		processes:    copyMap(s.processes),
		reviews:      copyMap(s.reviews),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = snap.users
	s.teams = snap.teams
	s.resumes = snap.resumes
	s.recruitments = snap.recruitments
	s.processes = snap.processes
	s.reviews = snap.reviews
}

type txKey struct{}

// WithinTx serializes units of work and restores the pre-call state when fn fails.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }

func (s *Store) Teams() *TeamRepository { return &TeamRepository{s: s} }

func (s *Store) Resumes() *ResumeRepository { return &ResumeRepository{s: s} }

func (s *Store) Recruitments() *RecruitmentRepository { return &RecruitmentRepository{s: s} }

func (s *Store) RecruitmentProcesses() *RecruitmentProcessRepository {
	return &RecruitmentProcessRepository{s: s}
}

func (s *Store) Reviews() *ReviewRepository { return &ReviewRepository{s: s} }

func newID() string { return uuid.NewString() }

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// --- users ---

type UserRepository struct{ s *Store }

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return errs.WithCode(errs.KindInvalidArgument, errs.CodeAlreadyUsedEmail, "email "+u.Email+" is already used")
		}
	}
	u.ID = newID()
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, errs.NotFound("user", id)
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			c := u
			return &c, nil
		}
	}
	return nil, errs.NotFound("user", email)
}

func (r *UserRepository) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; !ok {
		return errs.NotFound("user", u.ID)
	}
	r.s.users[u.ID] = *u
	return nil
}

// --- teams ---

type TeamRepository struct{ s *Store }

func (r *TeamRepository) Create(_ context.Context, t *entity.Team) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t.ID = newID()
	r.s.teams[t.ID] = *t
	return nil
}

func (r *TeamRepository) GetByID(_ context.Context, id string) (*entity.Team, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.teams[id]
	if !ok {
		return nil, errs.NotFound("team", id)
	}
	return &t, nil
}

func (r *TeamRepository) Update(_ context.Context, t *entity.Team) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.teams[t.ID]; !ok {
		return errs.NotFound("team", t.ID)
	}
	r.s.teams[t.ID] = *t
	return nil
}

// --- resumes ---

type ResumeRepository struct{ s *Store }

func (r *ResumeRepository) Create(_ context.Context, res *entity.Resume) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	res.ID = newID()
	r.s.resumes[res.ID] = *res
	return nil
}

func (r *ResumeRepository) GetByID(_ context.Context, id string) (*entity.Resume, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	res, ok := r.s.resumes[id]
	if !ok {
		return nil, errs.NotFound("resume", id)
	}
	return &res, nil
}

func (r *ResumeRepository) Update(_ context.Context, res *entity.Resume) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.resumes[res.ID]; !ok {
		return errs.NotFound("resume", res.ID)
	}
	r.s.resumes[res.ID] = *res
	return nil
}

func (r *ResumeRepository) ListByUser(_ context.Context, userID string) ([]*entity.Resume, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Resume, 0)
	for _, res := range r.s.resumes {
		if res.UserID == userID {
			c := res
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// --- recruitments ---

type RecruitmentRepository struct{ s *Store }

func (r *RecruitmentRepository) Create(_ context.Context, rec *entity.Recruitment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec.ID = newID()
	c := *rec
	c.ClosedAt = clonePtr(rec.ClosedAt)
	r.s.recruitments[rec.ID] = c
	return nil
}

func (r *RecruitmentRepository) GetByID(_ context.Context, id string) (*entity.Recruitment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.s.recruitments[id]
	if !ok {
		return nil, errs.NotFound("recruitment", id)
	}
	rec.ClosedAt = clonePtr(rec.ClosedAt)
	return &rec, nil
}

func (r *RecruitmentRepository) Update(_ context.Context, rec *entity.Recruitment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.recruitments[rec.ID]; !ok {
		return errs.NotFound("recruitment", rec.ID)
	}
	c := *rec
	c.ClosedAt = clonePtr(rec.ClosedAt)
	r.s.recruitments[rec.ID] = c
	return nil
}

func (r *RecruitmentRepository) ListByTeam(_ context.Context, teamID string) ([]*entity.Recruitment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Recruitment, 0)
	for _, rec := range r.s.recruitments {
		if rec.TeamID == teamID && rec.Status != entity.RecruitmentDeleted {
			c := rec
			c.ClosedAt = clonePtr(rec.ClosedAt)
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// --- recruitment processes ---

type RecruitmentProcessRepository struct{ s *Store }

func (r *RecruitmentProcessRepository) Create(_ context.Context, p *entity.RecruitmentProcess) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = newID()
	c := *p
	c.ClosedAt = clonePtr(p.ClosedAt)
	r.s.processes[p.ID] = c
	return nil
}

func (r *RecruitmentProcessRepository) GetByID(_ context.Context, id string) (*entity.RecruitmentProcess, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.processes[id]
	if !ok {
		return nil, errs.NotFound("recruitment process", id)
	}
	p.ClosedAt = clonePtr(p.ClosedAt)
	return &p, nil
}

func (r *RecruitmentProcessRepository) Update(_ context.Context, p *entity.RecruitmentProcess) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.processes[p.ID]; !ok {
		return errs.NotFound("recruitment process", p.ID)
	}
	c := *p
	c.ClosedAt = clonePtr(p.ClosedAt)
	r.s.processes[p.ID] = c
	return nil
}

func (r *RecruitmentProcessRepository) ListByRecruitment(_ context.Context, recruitmentID string) ([]*entity.RecruitmentProcess, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.RecruitmentProcess, 0)
	for _, p := range r.s.processes {
		if p.RecruitmentID == recruitmentID {
			c := p
			c.ClosedAt = clonePtr(p.ClosedAt)
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// --- reviews ---

type ReviewRepository struct{ s *Store }

func (r *ReviewRepository) Create(_ context.Context, rv *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rv.ID = newID()
	r.s.reviews[rv.ID] = *rv
	return nil
}

func (r *ReviewRepository) GetByID(_ context.Context, id string) (*entity.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rv, ok := r.s.reviews[id]
	if !ok {
		return nil, errs.NotFound("review", id)
	}
	return &rv, nil
}

func (r *ReviewRepository) Update(_ context.Context, rv *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.reviews[rv.ID]; !ok {
		return errs.NotFound("review", rv.ID)
	}
	r.s.reviews[rv.ID] = *rv
	return nil
}

func (r *ReviewRepository) ListByTeamAndStatus(_ context.Context, teamID string, status entity.ActivationStatus) ([]*entity.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Review, 0)
	for _, rv := range r.s.reviews {
		if rv.TeamID == teamID && rv.Status == status {
			c := rv
			out = append(out, &c)
		}
	}
	return out, nil
}

var (
	_ repository.UserRepository               = (*UserRepository)(nil)
	_ repository.TeamRepository               = (*TeamRepository)(nil)
	_ repository.ResumeRepository             = (*ResumeRepository)(nil)
	_ repository.RecruitmentRepository        = (*RecruitmentRepository)(nil)
	_ repository.RecruitmentProcessRepository = (*RecruitmentProcessRepository)(nil)
	_ repository.ReviewRepository             = (*ReviewRepository)(nil)
	_ repository.Transactor                   = (*Store)(nil)
)
