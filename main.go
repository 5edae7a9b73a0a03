package main

import (
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Financial-Times/go-logger/v2"
	"github.com/Financial-Times/kos-utils/scheme"
	"github.com/Financial-Times/kos-utils/service"
	"github.com/Financial-Times/kos-utils/utils"
	"github.com/gorilla/mux"
	cli "github.com/jawher/mow.cli"
	metrics "github.com/rcrowley/go-metrics"
)

const appDescription = "Service which renders labels, definitions, notations and dates of knowledge organization data for front-end clients"

func main() {
	app := cli.App("kos-utils", appDescription)

	appSystemCode := app.String(cli.StringOpt{
		Name:   "app-system-code",
		Value:  "kos-utils",
		Desc:   "System Code of the application",
		EnvVar: "APP_SYSTEM_CODE",
	})
	appName := app.String(cli.StringOpt{
		Name:   "app-name",
		Value:  "KOS Utils",
		Desc:   "Application name",
		EnvVar: "APP_NAME",
	})
	port := app.String(cli.StringOpt{
		Name:   "port",
		Value:  "8080",
		Desc:   "Port to listen on",
		EnvVar: "APP_PORT",
	})
	logLevel := app.String(cli.StringOpt{
		Name:   "logLevel",
		Value:  "INFO",
		Desc:   "Log level",
		EnvVar: "LOG_LEVEL",
	})
	languages := app.String(cli.StringOpt{
		Name:   "languages",
		Value:  "",
		Desc:   "Comma separated preferred languages, overriding the defaults",
		EnvVar: "LANGUAGES",
	})

	log := logger.NewUPPLogger(*appName, *logLevel)

	app.Action = func() {
		log.WithFields(map[string]interface{}{
			"LANGUAGES": *languages,
		}).Infof("[Startup] %s is starting", *appName)

		log.Infof("System code: %s, App Name: %s, Port: %s", *appSystemCode, *appName, *port)

		displayService := service.NewDisplayService(
			utils.NewOptions(),
			utils.NewNotationFormatter(scheme.Matcher{}, scheme.PatternDeriver{}),
			utils.DateFormatter{Locale: utils.SystemLocale(), Location: time.Local},
			metrics.DefaultRegistry,
			log,
		)
		if *languages != "" {
			if err := displayService.SetLanguages(splitLanguages(*languages), "startup"); err != nil {
				log.WithError(err).Fatal("Invalid LANGUAGES")
			}
		}

		handler := service.NewHandler(displayService, log)

		router := mux.NewRouter()
		handler.RegisterHandlers(router)
		handler.RegisterAdminHandlers(http.DefaultServeMux, router, *appSystemCode, *appName, appDescription)

		go func() {
			if err := http.ListenAndServe(":"+*port, nil); err != nil {
				log.WithError(err).Fatal("Unable to start server")
			}
		}()

		waitForSignal()
		log.Info("Stopping application")
	}

	if runErr := app.Run(os.Args); runErr != nil {
		log.Errorf("App could not start, error=[%s]\n", runErr)
		return
	}
}

func splitLanguages(value string) []string {
	var languages []string
	for _, tag := range strings.Split(value, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			languages = append(languages, tag)
		}
	}
	return languages
}

func waitForSignal() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
}
