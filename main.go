package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/labelkit/label-console/internal/config"
	"github.com/labelkit/label-console/internal/labelapi"
	"github.com/labelkit/label-console/internal/logging"
	"github.com/labelkit/label-console/internal/platform"
	"github.com/labelkit/label-console/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.labelkit.label-console"
	AppName = "Label Console"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := logging.New(env.LogLevel, env.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting", zap.String("app", AppName), zap.String("version", version))

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCounterTheme())

	settings := config.NewSettings(myApp)
	settings.ApplyEnv(env)

	if err := platform.CreateDirectoryIfNotExists(settings.GetSaveDirectory()); err != nil {
		logger.Warn("failed to ensure preview directory", zap.Error(err))
	}

	client, err := labelapi.NewClient(settings.GetServerURL(),
		labelapi.WithTimeout(settings.GetRequestTimeout()),
		labelapi.WithLogger(logger.Named("labelapi")))
	if err != nil {
		// a bad saved URL must not lock the user out of the settings dialog
		logger.Error("invalid label server url, using default", zap.String("url", settings.GetServerURL()), zap.Error(err))
		client, err = labelapi.NewClient(config.DefaultServerURL,
			labelapi.WithTimeout(settings.GetRequestTimeout()),
			labelapi.WithLogger(logger.Named("labelapi")))
		if err != nil {
			logger.Fatal("label server client", zap.Error(err))
		}
	}
	logger.Info("label server", zap.String("url", client.BaseURL()))

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	ui.NewRootUI(myWindow, client, settings, logger)

	myWindow.ShowAndRun()
}
