package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Financial-Times/go-logger/v2"
	"github.com/Financial-Times/kos-utils/annotations"
	"github.com/Financial-Times/kos-utils/utils"
	transactionidutils "github.com/Financial-Times/transactionid-utils-go"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type DisplayHandler struct {
	service *DisplayService
	log     *logger.UPPLogger
}

func NewHandler(service *DisplayService, log *logger.UPPLogger) DisplayHandler {
	return DisplayHandler{
		service: service,
		log:     log,
	}
}

type creatorRequest struct {
	Annotation *annotations.Annotation `json:"annotation"`
	URIs       []string                `json:"uris"`
}

type ownershipRequest struct {
	User    *utils.User    `json:"user"`
	Mapping *utils.Mapping `json:"mapping"`
}

type languagesBody struct {
	Languages []string `json:"languages"`
}

func (h *DisplayHandler) ItemHandler(rw http.ResponseWriter, req *http.Request) {
	tid := startResponse(rw, req)
	defer req.Body.Close()

	item := &utils.Item{}
	if err := json.NewDecoder(req.Body).Decode(item); err != nil {
		h.badRequest(rw, tid, err)
		return
	}

	query := req.URL.Query()
	adjust, _ := strconv.ParseBool(query.Get("adjust"))
	display := h.service.Display(item, query.Get("language"), query.Get("type"), adjust, tid)
	h.writeJSON(rw, tid, display)
}

func (h *DisplayHandler) HashHandler(rw http.ResponseWriter, req *http.Request) {
	tid := startResponse(rw, req)
	h.writeJSON(rw, tid, map[string]string{"hash": utils.Hash(req.URL.Query().Get("text"))})
}

func (h *DisplayHandler) IDHandler(rw http.ResponseWriter, req *http.Request) {
	tid := startResponse(rw, req)
	h.writeJSON(rw, tid, map[string]string{"id": utils.GenerateID()})
}

func (h *DisplayHandler) DateHandler(rw http.ResponseWriter, req *http.Request) {
	tid := startResponse(rw, req)
	query := req.URL.Query()
	onlyDate, _ := strconv.ParseBool(query.Get("onlyDate"))
	h.writeJSON(rw, tid, map[string]string{"date": h.service.FormatDate(query.Get("value"), onlyDate)})
}

func (h *DisplayHandler) GetLanguagesHandler(rw http.ResponseWriter, req *http.Request) {
	tid := startResponse(rw, req)
	h.writeJSON(rw, tid, languagesBody{Languages: h.service.Languages()})
}

func (h *DisplayHandler) PutLanguagesHandler(rw http.ResponseWriter, req *http.Request) {
	tid := startResponse(rw, req)
	defer req.Body.Close()

	body := languagesBody{}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		h.badRequest(rw, tid, err)
		return
	}
	if err := h.service.SetLanguages(body.Languages, tid); err != nil {
		h.log.WithError(err).WithField("transaction_id", tid).Warn("Rejected preferred languages")
		writeJSONError(rw, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	h.writeJSON(rw, tid, languagesBody{Languages: h.service.Languages()})
}

func (h *DisplayHandler) CreatorHandler(rw http.ResponseWriter, req *http.Request) {
	tid := startResponse(rw, req)
	defer req.Body.Close()

	body := creatorRequest{}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		h.badRequest(rw, tid, err)
		return
	}
	h.writeJSON(rw, tid, h.service.Creator(body.Annotation, body.URIs))
}

func (h *DisplayHandler) OwnershipHandler(rw http.ResponseWriter, req *http.Request) {
	tid := startResponse(rw, req)
	defer req.Body.Close()

	body := ownershipRequest{}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		h.badRequest(rw, tid, err)
		return
	}
	h.writeJSON(rw, tid, map[string]bool{"owns": utils.UserOwnsMapping(body.User, body.Mapping)})
}

func (h *DisplayHandler) StoredHandler(rw http.ResponseWriter, req *http.Request) {
	tid := startResponse(rw, req)
	defer req.Body.Close()

	registry := &utils.Registry{}
	if err := json.NewDecoder(req.Body).Decode(registry); err != nil {
		h.badRequest(rw, tid, err)
		return
	}
	h.writeJSON(rw, tid, map[string]bool{"stored": utils.RegistryStored(registry)})
}

func (h *DisplayHandler) RegisterHandlers(router *mux.Router) {
	h.log.Info("Registering handlers")
	post := func(f http.HandlerFunc) http.Handler {
		return handlers.MethodHandler{"POST": f}
	}
	get := func(f http.HandlerFunc) http.Handler {
		return handlers.MethodHandler{"GET": f}
	}

	router.Handle("/items/display", post(h.ItemHandler))
	router.Handle("/hash", get(h.HashHandler))
	router.Handle("/id", get(h.IDHandler))
	router.Handle("/date", get(h.DateHandler))
	router.Handle("/options/languages", handlers.MethodHandler{
		"GET": http.HandlerFunc(h.GetLanguagesHandler),
		"PUT": http.HandlerFunc(h.PutLanguagesHandler),
	})
	router.Handle("/annotations/creator", post(h.CreatorHandler))
	router.Handle("/mappings/ownership", post(h.OwnershipHandler))
	router.Handle("/registries/stored", post(h.StoredHandler))
}

func startResponse(rw http.ResponseWriter, req *http.Request) string {
	tid := transactionidutils.GetTransactionIDFromRequest(req)
	rw.Header().Set("Content-Type", "application/json")
	rw.Header().Set("X-Request-Id", tid)
	return tid
}

func (h *DisplayHandler) badRequest(rw http.ResponseWriter, tid string, err error) {
	h.log.WithError(err).WithField("transaction_id", tid).Error("Error whilst processing request body")
	writeJSONError(rw, "Error whilst processing request body: "+err.Error(), http.StatusBadRequest)
}

func (h *DisplayHandler) writeJSON(rw http.ResponseWriter, tid string, body interface{}) {
	rw.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(rw).Encode(body); err != nil {
		h.log.WithError(err).WithField("transaction_id", tid).Error("Could not write response")
	}
}

func writeJSONError(rw http.ResponseWriter, errorMsg string, statusCode int) {
	rw.WriteHeader(statusCode)
	msg, _ := json.Marshal(errorMsg)
	fmt.Fprintf(rw, "{\"message\": %s}\n", msg)
}
