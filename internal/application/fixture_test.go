package application

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/job-recruitment/internal/domain/entity"
	"github.com/oksasatya/job-recruitment/internal/domain/event"
	"github.com/oksasatya/job-recruitment/internal/infrastructure/memory"
	"github.com/oksasatya/job-recruitment/pkg/helpers"
)

var clock = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

type recordingDispatcher struct {
	mu     sync.Mutex
	events []event.Event
	err    error
}

func (d *recordingDispatcher) Dispatch(_ context.Context, events ...event.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, events...)
	return d.err
}

type fakeIndex struct {
	docs    map[string]*entity.Recruitment
	deleted []string
	err     error
}

func (f *fakeIndex) Index(_ context.Context, r *entity.Recruitment) error {
	if f.err != nil {
		return f.err
	}
	f.docs[r.ID] = r
	return nil
}

func (f *fakeIndex) Delete(_ context.Context, id string) error {
	delete(f.docs, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeIndex) Search(_ context.Context, query string, size int) ([]string, error) {
	ids := make([]string, 0)
	for id, r := range f.docs {
		if strings.Contains(r.Title, query) || strings.Contains(r.Content, query) {
			ids = append(ids, id)
		}
	}
	if len(ids) > size {
		ids = ids[:size]
	}
	return ids, nil
}

type fakeUploader struct {
	paths []string
	body  string
	err   error
}

func (f *fakeUploader) Upload(_ context.Context, objectPath, _ string, r io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.body = string(b)
	f.paths = append(f.paths, objectPath)
	return "https://storage.example/" + objectPath, nil
}

type fixture struct {
	store     *memory.Store
	logs      *logtest.Hook
	events    *recordingDispatcher
	index     *fakeIndex
	uploader  *fakeUploader
	users     *UserService
	teams     *TeamService
	resumes   *ResumeService
	recruits  *RecruitmentService
	processes *RecruitmentProcessService
	reviews   *ReviewService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	store := memory.NewStore()
	f := &fixture{
		store:    store,
		logs:     hook,
		events:   &recordingDispatcher{},
		index:    &fakeIndex{docs: map[string]*entity.Recruitment{}},
		uploader: &fakeUploader{},
	}
	jwt := helpers.NewJWTManager("access", "refresh", time.Minute, time.Hour)

	f.users = NewUserService(store.Users(), store, jwt, nil, logger)
	f.teams = NewTeamService(store.Teams(), store.Users(), store, f.uploader, logger)
	f.resumes = NewResumeService(store.Resumes(), store.Users(), store, logger)
	f.recruits = NewRecruitmentService(store.Recruitments(), store.Teams(), store, f.index, logger)
	f.processes = NewRecruitmentProcessService(store.RecruitmentProcesses(), store.Recruitments(), store.Teams(), store.Users(), store.Resumes(), store, f.events, logger)
	f.reviews = NewReviewService(store.Reviews(), store.Teams(), store.Users(), store, logger)

	now := func() time.Time { return clock }
	for _, b := range []*base{&f.users.base, &f.teams.base, &f.resumes.base, &f.recruits.base, &f.processes.base, &f.reviews.base} {
		b.Now = now
	}
	return f
}

func (f *fixture) user(t *testing.T, email string) *entity.User {
	t.Helper()
	u, err := f.users.Create(context.Background(), CreateUserInput{
		Email: email, Password: "password", Nickname: "nick", Interest: "go", Age: 30,
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) team(t *testing.T, leader *entity.User) *entity.Team {
	t.Helper()
	tm, err := f.teams.Create(context.Background(), leader.ID, TeamInput{Name: "team", Description: "desc", MemberNum: 5})
	require.NoError(t, err)
	return tm
}

func (f *fixture) resume(t *testing.T, owner *entity.User) *entity.Resume {
	t.Helper()
	r, err := f.resumes.Create(context.Background(), owner.ID, ResumeInput{Title: "title", Content: "content"})
	require.NoError(t, err)
	return r
}

func (f *fixture) recruitment(t *testing.T, team *entity.Team) *entity.Recruitment {
	t.Helper()
	r, err := f.recruits.Create(context.Background(), team.ID, team.LeaderID, "backend engineer", "write go")
	require.NoError(t, err)
	return r
}

var errBoom = errors.New("boom")
