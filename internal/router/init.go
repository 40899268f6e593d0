package router

import (
	"github.com/oksasatya/job-recruitment/internal/application"
	"github.com/oksasatya/job-recruitment/internal/container"
	"github.com/oksasatya/job-recruitment/internal/domain/event"
	"github.com/oksasatya/job-recruitment/internal/infrastructure/messaging"
	"github.com/oksasatya/job-recruitment/internal/infrastructure/search"
	handlers "github.com/oksasatya/job-recruitment/internal/interface/http"
	"github.com/oksasatya/job-recruitment/internal/router/modules"
	"github.com/oksasatya/job-recruitment/pkg/helpers"
)

// Services are the application services behind the HTTP modules.
type Services struct {
	Users        *application.UserService
	Teams        *application.TeamService
	Resumes      *application.ResumeService
	Recruitments *application.RecruitmentService
	Processes    *application.RecruitmentProcessService
	Reviews      *application.ReviewService
}

// BuildServices wires services from the container. Optional integrations
// (Elasticsearch, GCS, RabbitMQ) degrade to no search, no logo uploads and
// log-only events when their clients are absent.
func BuildServices(st container.Stores) Services {
	logger := container.GetLogger()
	cfg := container.GetConfig()

	var index application.RecruitmentIndex
	if es := container.GetES(); es != nil {
		index = search.NewRecruitmentIndex(es, cfg.ESRecruitmentsIndex)
	}

	var uploader application.ObjectUploader
	if gcs := container.GetGCS(); gcs != nil && cfg.GCSBucket != "" {
		uploader = &helpers.GCSUploader{Client: gcs, Bucket: cfg.GCSBucket}
	}

	var events event.Dispatcher = messaging.LogDispatcher{Logger: logger}
	if pub := container.GetRabbitPub(); pub != nil {
		events = messaging.NewRabbitDispatcher(pub, logger)
	}

	return Services{
		Users:        application.NewUserService(st.Users, st.Tx, container.GetJWT(), container.GetRedis(), logger),
		Teams:        application.NewTeamService(st.Teams, st.Users, st.Tx, uploader, logger),
		Resumes:      application.NewResumeService(st.Resumes, st.Users, st.Tx, logger),
		Recruitments: application.NewRecruitmentService(st.Recruitments, st.Teams, st.Tx, index, logger),
		Processes: application.NewRecruitmentProcessService(
			st.Processes, st.Recruitments, st.Teams, st.Users, st.Resumes, st.Tx, events, logger,
		),
		Reviews: application.NewReviewService(st.Reviews, st.Teams, st.Users, st.Tx, logger),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	svc := BuildServices(container.GetStores())
	RegisterModules(r, svc)
}

func RegisterModules(r *Registry, svc Services) {
	logger := container.GetLogger()
	cfg := container.GetConfig()
	guard := modules.Guard{JWT: container.GetJWT(), Sessions: svc.Users}

	r.Add(modules.NewUserModule(handlers.NewUserHandler(svc.Users, logger, cfg.CookieDomain, cfg.CookieSecure), guard))
	r.Add(modules.NewTeamModule(handlers.NewTeamHandler(svc.Teams, logger), guard))
	r.Add(modules.NewResumeModule(handlers.NewResumeHandler(svc.Resumes, logger), guard))
	r.Add(modules.NewRecruitmentModule(handlers.NewRecruitmentHandler(svc.Recruitments, logger), guard))
	r.Add(modules.NewRecruitmentProcessModule(handlers.NewRecruitmentProcessHandler(svc.Processes, logger), guard))
	r.Add(modules.NewReviewModule(handlers.NewReviewHandler(svc.Reviews, logger), guard))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
