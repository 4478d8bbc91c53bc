// File: cmd/server/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"gitmeet_backend/internal/app"
	"gitmeet_backend/internal/auth"
	"gitmeet_backend/internal/config"
	"gitmeet_backend/internal/github"
	"gitmeet_backend/internal/jobs"
	"gitmeet_backend/internal/meeting"
	"gitmeet_backend/internal/platform/cassandra"
	"gitmeet_backend/internal/platform/logger"
	"gitmeet_backend/internal/project"
	"gitmeet_backend/internal/user"

	"github.com/google/wire"
)

// initializeServer is the main Wire injector.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		// Platform Layer
		logger.New,
		cassandra.New,
		wire.Bind(new(cassandra.Store), new(*cassandra.Session)),

		// External gateway
		github.NewService,
		wire.Bind(new(project.Gateway), new(*github.Service)),
		wire.Bind(new(auth.ProfileGateway), new(*github.Service)),

		// User module
		user.NewCassandraRepository,
		user.NewService,
		user.NewHandler,
		wire.Bind(new(auth.UserService), new(*user.Service)),
		wire.Bind(new(meeting.ScheduleAppender), new(*user.Service)),
		wire.Bind(new(jobs.IdentityLister), new(user.Repository)),

		// Auth module
		auth.NewService,
		auth.NewHandler,

		// Project module
		project.NewCassandraRepository,
		project.NewService,
		project.NewHandler,

		// Meeting module
		meeting.NewCassandraRepository,
		meeting.NewService,
		meeting.NewHandler,

		// Jobs
		jobs.NewIdentitySweepJob,

		// Application Layer
		app.NewServer,
	)
	return nil, nil, nil
}
