package service

import (
	"net/http"
	"time"

	fthealth "github.com/Financial-Times/go-fthealth/v1_1"
	"github.com/Financial-Times/http-handlers-go/httphandlers"
	"github.com/Financial-Times/service-status-go/gtg"
	serviceStatus "github.com/Financial-Times/service-status-go/httphandlers"
	"github.com/gorilla/mux"
	metrics "github.com/rcrowley/go-metrics"
	log "github.com/sirupsen/logrus"
)

const (
	panicGuideURL  = "https://runbooks.ftops.tech/kos-utils"
	businessImpact = "Front-end clients will show concept URIs instead of preferred labels and definitions in the reader's language"
)

// RegisterAdminHandlers mounts health, gtg and build-info on serveMux and serves router for
// everything else, wrapped in request logging and metrics.
func (h *DisplayHandler) RegisterAdminHandlers(serveMux *http.ServeMux, router *mux.Router, appSystemCode string, appName string, appDescription string) {
	h.log.Info("Registering admin handlers")

	var monitoringRouter http.Handler = router
	monitoringRouter = httphandlers.TransactionAwareRequestLoggingHandler(log.StandardLogger(), monitoringRouter)
	monitoringRouter = httphandlers.HTTPMetricsHandler(metrics.DefaultRegistry, monitoringRouter)

	timedHC := fthealth.TimedHealthCheck{
		HealthCheck: fthealth.HealthCheck{
			SystemCode:  appSystemCode,
			Description: appDescription,
			Name:        appName,
			Checks:      []fthealth.Check{h.languagesHealthCheck()},
		},
		Timeout: 10 * time.Second,
	}

	serveMux.HandleFunc("/__health", fthealth.Handler(&timedHC))
	serveMux.HandleFunc(serviceStatus.GTGPath, serviceStatus.NewGoodToGoHandler(gtg.StatusChecker(h.gtg)))
	serveMux.HandleFunc(serviceStatus.BuildInfoPath, serviceStatus.BuildInfoHandler)

	serveMux.Handle("/", monitoringRouter)
}

func (h *DisplayHandler) gtg() gtg.Status {
	languagesCheck := func() gtg.Status {
		return gtgCheck(h.service.checkLanguages)
	}

	return gtg.FailFastParallelCheck([]gtg.StatusChecker{
		languagesCheck,
	})()
}

func gtgCheck(handler func() (string, error)) gtg.Status {
	if _, err := handler(); err != nil {
		return gtg.Status{GoodToGo: false, Message: err.Error()}
	}
	return gtg.Status{GoodToGo: true}
}

func (h *DisplayHandler) languagesHealthCheck() fthealth.Check {
	return fthealth.Check{
		BusinessImpact:   businessImpact,
		Name:             "Check preferred label languages are valid",
		PanicGuide:       panicGuideURL,
		Severity:         2,
		TechnicalSummary: `prefLabel and definition lookups fall back through the preferred language list, which is empty or holds a tag that is not BCP 47. Reset it with LANGUAGES or PUT /options/languages`,
		Checker:          h.service.checkLanguages,
	}
}
