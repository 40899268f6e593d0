package container

import (
	"sync"

	repo "github.com/oksasatya/job-recruitment/internal/domain/repository"
	"github.com/oksasatya/job-recruitment/internal/infrastructure/memory"
	pginfra "github.com/oksasatya/job-recruitment/internal/infrastructure/postgres"
)

// Stores is the repository set every module shares, plus the transactor that
// spans them.
type Stores struct {
	Users        repo.UserRepository
	Teams        repo.TeamRepository
	Resumes      repo.ResumeRepository
	Recruitments repo.RecruitmentRepository
	Processes    repo.RecruitmentProcessRepository
	Reviews      repo.ReviewRepository
	Tx           repo.Transactor
}

var (
	storesOnce sync.Once
	stores     Stores
)

// GetStores builds the repositories once, backed by Postgres or, when
// STORAGE_DRIVER=memory, by a process-local store.
func GetStores() Stores {
	storesOnce.Do(func() {
		if cfg != nil && cfg.UsesMemoryStorage() {
			stores = MemoryStores(memory.NewStore())
			return
		}
		pool := GetPGPool()
		stores = Stores{
			Users:        pginfra.NewUserRepository(pool),
			Teams:        pginfra.NewTeamRepository(pool),
			Resumes:      pginfra.NewResumeRepository(pool),
			Recruitments: pginfra.NewRecruitmentRepository(pool),
			Processes:    pginfra.NewRecruitmentProcessRepository(pool),
			Reviews:      pginfra.NewReviewRepository(pool),
			Tx:           pginfra.NewTransactor(pool),
		}
	})
	return stores
}

func MemoryStores(s *memory.Store) Stores {
	return Stores{
		Users:        s.Users(),
		Teams:        s.Teams(),
		Resumes:      s.Resumes(),
		Recruitments: s.Recruitments(),
		Processes:    s.RecruitmentProcesses(),
		Reviews:      s.Reviews(),
		Tx:           s,
	}
}
