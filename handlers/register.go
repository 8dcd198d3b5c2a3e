package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/url"

	"github.com/kscout/credential-intake-api/metrics"
	"github.com/kscout/credential-intake-api/models"
	"github.com/kscout/credential-intake-api/req"
	"github.com/kscout/credential-intake-api/validation"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RegisterHandler stores a submitted user name and password.
//
// Request: `user` and `password` fields, either as a JSON object or as form
// values.
//
// Response: `201` with `{"id": "<record id>", "username": "<user>"}`.
//
// Retrying a request stores the record again.
type RegisterHandler struct {
	BaseHandler

	// Validator checks decoded requests
	Validator validation.CredentialValidator
}

// ServeHTTP implements http.Handler
func (h RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// {{{1 Decode
	regReq, apiErr := h.decode(r)
	if apiErr != nil {
		h.respondFailure(w, metrics.ResultInvalid, *apiErr)
		return
	}

	// {{{1 Validate
	if fieldErrs := h.Validator.Validate(regReq); len(fieldErrs) > 0 {
		h.respondFailure(w, metrics.ResultInvalid,
			ValidationError("user and password are required", fieldErrs))
		return
	}

	h.Logger.Debugf("registering user %s", regReq.User)

	// {{{1 Get collection
	// Storage calls end when either the client or the application goes away
	storeCtx, cancelStore := h.requestCtx(r)
	defer cancelStore()

	// Waits for a pending connection attempt, at most DbWaitTimeout
	waitCtx, cancelWait := context.WithTimeout(storeCtx, h.Cfg.DbWaitTimeout)
	coll, err := h.Store.AwaitCollection(waitCtx, models.CredentialsCollection)
	cancelWait()

	if err != nil {
		h.Logger.Errorf("failed to get %s collection: %s",
			models.CredentialsCollection, err.Error())
		h.respondFailure(w, metrics.ResultUnavailable, StorageAPIError(err))
		return
	}

	// {{{1 Insert
	credential := regReq.Credential()

	insertedID, err := coll.InsertOne(storeCtx, credential)
	if err != nil {
		h.Logger.Errorf("failed to insert credential for user %s: %s",
			credential.Username, err.Error())
		h.respondFailure(w, metrics.ResultError, StorageAPIError(err))
		return
	}

	h.Metrics.CredentialsTotal.WithLabelValues(metrics.ResultStored).Inc()

	h.RespondJSON(w, http.StatusCreated, models.CreatedCredential{
		ID:       formatInsertedID(insertedID),
		Username: credential.Username,
	})
}

// requestCtx returns a context canceled when the request's or the application's
// context is done
func (h RegisterHandler) requestCtx(r *http.Request) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(r.Context())
	if h.Ctx == nil {
		return ctx, cancel
	}

	stop := context.AfterFunc(h.Ctx, cancel)

	return ctx, func() {
		stop()
		cancel()
	}
}

// respondFailure counts a failed registration and sends apiErr
func (h RegisterHandler) respondFailure(w http.ResponseWriter, result string, apiErr APIError) {
	h.Metrics.CredentialsTotal.WithLabelValues(result).Inc()
	h.RespondError(w, apiErr)
}

// decode reads the request body as JSON or form values depending on the
// Content-Type header. Without a Content-Type JSON is tried first.
func (h RegisterHandler) decode(r *http.Request) (models.RegistrationRequest, *APIError) {
	var regReq models.RegistrationRequest

	bodyBytes, err := req.ReadBody(r, h.Cfg.MaxBodyBytes)
	if err == req.ErrBodyTooLarge {
		apiErr := PayloadTooLargeError(h.Cfg.MaxBodyBytes)
		return regReq, &apiErr
	} else if err != nil {
		apiErr := ValidationError("failed to read request body", nil)
		return regReq, &apiErr
	}

	mediaType := ""
	if contentType := r.Header.Get("Content-Type"); contentType != "" {
		mediaType, _, err = mime.ParseMediaType(contentType)
		if err != nil {
			apiErr := ValidationError("malformed Content-Type header", nil)
			return regReq, &apiErr
		}
	}

	switch mediaType {
	case "application/json":
		err = decodeJSON(bodyBytes, &regReq)
	case "application/x-www-form-urlencoded":
		err = decodeURLEncoded(bodyBytes, &regReq)
	case "multipart/form-data":
		err = h.decodeMultipart(r, &regReq)
	case "":
		if json.Valid(bodyBytes) {
			err = decodeJSON(bodyBytes, &regReq)
		} else {
			err = decodeURLEncoded(bodyBytes, &regReq)
		}
	default:
		apiErr := ValidationError(fmt.Sprintf("unsupported content type %s", mediaType), nil)
		return regReq, &apiErr
	}

	if err != nil {
		apiErr := ValidationError(err.Error(), nil)
		return regReq, &apiErr
	}

	return regReq, nil
}

// decodeJSON decodes a JSON object body. An empty body decodes to an empty request.
func decodeJSON(bodyBytes []byte, dest *models.RegistrationRequest) error {
	if len(bytes.TrimSpace(bodyBytes)) == 0 {
		return nil
	}

	if err := json.Unmarshal(bodyBytes, dest); err != nil {
		return fmt.Errorf("failed to decode request body as JSON: %s", err.Error())
	}

	return nil
}

// decodeURLEncoded decodes a form encoded body
func decodeURLEncoded(bodyBytes []byte, dest *models.RegistrationRequest) error {
	values, err := url.ParseQuery(string(bodyBytes))
	if err != nil {
		return fmt.Errorf("failed to decode request body as form values: %s", err.Error())
	}

	dest.User = values.Get("user")
	dest.Password = values.Get("password")

	return nil
}

// decodeMultipart decodes a multipart form body. r.Body must still be readable.
func (h RegisterHandler) decodeMultipart(r *http.Request, dest *models.RegistrationRequest) error {
	if err := r.ParseMultipartForm(h.Cfg.MaxBodyBytes); err != nil {
		return fmt.Errorf("failed to decode request body as multipart form: %s", err.Error())
	}

	dest.User = r.PostForm.Get("user")
	dest.Password = r.PostForm.Get("password")

	return nil
}

// formatInsertedID converts a datastore assigned ID to a string
func formatInsertedID(id interface{}) string {
	if objectID, ok := id.(primitive.ObjectID); ok {
		return objectID.Hex()
	}

	return fmt.Sprintf("%v", id)
}
