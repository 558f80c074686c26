package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/iota-uz/projects-export/modules/projects/infrastructure/persistence"
	"github.com/iota-uz/projects-export/modules/projects/services"
	"github.com/iota-uz/projects-export/pkg/configuration"
	"github.com/iota-uz/projects-export/pkg/database"
	"github.com/iota-uz/projects-export/pkg/logging"
)

const usageLine = "Usage: projects-export <connection-string> <username> <password>"

type connectFunc func(ctx context.Context, creds database.Credentials, timeout time.Duration, logger logrus.FieldLogger) (*sqlx.DB, error)

type env struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig func() (*configuration.Configuration, error)
	connect    connectFunc
}

func defaultEnv() env {
	return env{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		loadConfig: configuration.Use,
		connect:    database.Open,
	}
}

func newRootCmd(e env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects-export <connection-string> <username> <password>",
		Short: "Export the projects table as one JSON array on stdout",
		// All inputs are positional; a password may start with '-'.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 3 {
				return fail(statusUsage, errors.New(usageLine))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), e, database.Credentials{
				ConnString: args[0],
				User:       args[1],
				Password:   args[2],
			})
		},
	}
	cmd.SetOut(e.stdout)
	cmd.SetErr(e.stderr)
	return cmd
}

func runExport(ctx context.Context, e env, creds database.Credentials) error {
	conf, err := e.loadConfig()
	if err != nil {
		return fail(statusConfig, errors.Wrap(err, "configuration"))
	}

	logger := logging.ConsoleLogger(conf.LogrusLogLevel(), e.stderr).WithFields(logrus.Fields{
		"run_id": uuid.NewString(),
		"env":    conf.GoAppEnvironment,
	})
	logger.WithFields(logrus.Fields{
		"env_files": conf.EnvFilesLoaded(),
		"table":     conf.Database.ProjectsTable,
	}).Debug("configuration loaded")

	db, err := e.connect(ctx, creds, conf.Database.ConnectTimeout, logger)
	if err != nil {
		return fail(statusDatabase, err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.WithError(err).Warn("failed to close database")
		}
	}()

	repo, err := persistence.NewProjectRepository(db, conf.Database.ProjectsTable)
	if err != nil {
		return fail(statusConfig, err)
	}
	doc, err := services.NewExportService(repo, logger).Export(ctx)
	if err != nil {
		return fail(statusDatabase, err)
	}
	return writeDocument(e.stdout, doc)
}

func execute(e env, args []string) int {
	if args == nil {
		args = []string{}
	}
	cmd := newRootCmd(e)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(e.stderr, err.Error())
		return int(statusOf(err))
	}
	return int(statusSuccess)
}

func Execute() {
	os.Exit(execute(defaultEnv(), os.Args[1:]))
}
