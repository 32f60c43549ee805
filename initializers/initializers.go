package initializers

import (
	"context"
	"time"

	"ats-backend/config"
	"ats-backend/fiberlog"
	applicationhandler "ats-backend/lib/application"
	candidatehandler "ats-backend/lib/candidate"
	companyhandler "ats-backend/lib/company"
	xlsexport "ats-backend/lib/export/xls"
	interviewhandler "ats-backend/lib/interview"
	jobhandler "ats-backend/lib/job"
	"ats-backend/lib/meet/teams"
	"ats-backend/lib/notify"
	notifyworker "ats-backend/lib/notify/worker"
	"ats-backend/lib/offer"
	"ats-backend/lib/portal"
	portalworker "ats-backend/lib/portal/worker"
	"ats-backend/lib/workflow"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	teams.NewProvider(config.Conf.Teams.TenantID, config.Conf.Teams.ClientID, config.Conf.Teams.ClientSecret,
		time.Second*time.Duration(config.Conf.Teams.TimeoutInSec))
	xlsexport.NewHandler()
	notify.NewHandler()
	portal.NewHandler()
	workflow.NewHandler()
	jobhandler.NewHandler()
	candidatehandler.NewHandler()
	applicationhandler.NewHandler()
	interviewhandler.NewHandler()
	offer.NewHandler()
	companyhandler.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// outbox drain
	notifyworker.StartWorker(ctx)

	// expired portal session cleanup
	portalworker.StartWorker(ctx)
}
