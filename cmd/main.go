package main

import (
	"context"
	"os"

	"rutasapp/api/linkserver"
	"rutasapp/config"
	"rutasapp/internal/app"
	"rutasapp/internal/deeplink"
	"rutasapp/internal/dto"
	"rutasapp/internal/flow"
	"rutasapp/internal/password"
	"rutasapp/internal/remote"
	"rutasapp/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("configuration")
	}

	validate := validator.New()
	if err := dto.RegisterEmailShape(validate); err != nil {
		logger.WithError(err).Fatal("validator setup")
	}

	sessions := session.NewStore(cfg.SessionFile, logger)
	core := remote.NewClient(cfg.ServiceURL, cfg.ServiceKey, sessions, logger)
	authAPI := remote.NewAuthClient(core)
	dataAPI := remote.NewDataClient(core)

	links := deeplink.NewInterpreter(cfg.AppScheme)
	nav := app.NewStackNavigator(deeplink.ScreenLogin, logger)
	launch := &app.LaunchState{}

	recovery := flow.NewRecoveryCoordinator(links, launch, authAPI, sessions, nav, logger)
	client := &app.App{
		Navigator:    nav,
		Dispatcher:   app.NewDispatcher(links, nav, launch, logger),
		Launch:       launch,
		Recovery:     recovery,
		Reset:        flow.NewPasswordUpdateFlow(recovery, authAPI, password.ResetPolicy, nav, nil, logger),
		Registration: flow.NewRegistrationFlow(authAPI, validate, password.RegistrationPolicy, nav, cfg.AppScheme, nil, logger),
		Login:        flow.NewLoginFlow(authAPI, dataAPI, sessions, validate, nav, nil, logger),
		Forgot:       flow.NewForgotPasswordFlow(authAPI, validate, nav, cfg.AppScheme, nil, logger),
		Browse:       flow.NewBrowseFlow(dataAPI, logger),
	}

	ctx := context.Background()
	nav.Handle(deeplink.ScreenResetPassword, func() {
		if client.Recovery.Activate(ctx) == flow.StateReady {
			logger.Info("reset link verified, password form ready")
		}
	})
	nav.Handle(deeplink.ScreenHome, func() {
		routes := client.Browse.Load(ctx)
		logger.WithField("routes", len(routes)).Info("feed loaded")
	})

	server := linkserver.New(cfg.LinkAddr, client.Dispatcher.HandleLink, logger)
	logger.WithField("addr", cfg.LinkAddr).Info("link listener started")
	if err := server.Start(); err != nil {
		logger.WithError(err).Fatal("link listener stopped")
	}
}
