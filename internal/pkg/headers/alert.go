// Package headers builds the alert headers that tell a client UI which entity a
// request touched and how, e.g. X-crownApp-alert: crownApp.delivery.created.
package headers

import (
	"fmt"
	"net/http"
	"net/url"
)

// Alert builds alert headers for one application.
type Alert struct {
	applicationName   string
	enableTranslation bool
}

func NewAlert(applicationName string, enableTranslation bool) Alert {
	return Alert{
		applicationName:   applicationName,
		enableTranslation: enableTranslation,
	}
}

func (a Alert) alertHeader() string { return "X-" + a.applicationName + "-alert" }
func (a Alert) errorHeader() string { return "X-" + a.applicationName + "-error" }
func (a Alert) paramsHeader() string { return "X-" + a.applicationName + "-params" }

// Create returns an alert carrying message, with param query-escaped.
func (a Alert) Create(message, param string) http.Header {
	h := http.Header{}
	h.Set(a.alertHeader(), message)
	h.Set(a.paramsHeader(), url.QueryEscape(param))
	return h
}

func (a Alert) EntityCreation(entityName, id string) http.Header {
	return a.entityAlert(entityName, id, "created", "A new %s is created with identifier %s")
}

func (a Alert) EntityUpdate(entityName, id string) http.Header {
	return a.entityAlert(entityName, id, "updated", "A %s is updated with identifier %s")
}

func (a Alert) EntityDeletion(entityName, id string) http.Header {
	return a.entityAlert(entityName, id, "deleted", "A %s is deleted with identifier %s")
}

// Failure returns the error alert for errorKey, falling back to defaultMessage when
// translation is disabled.
func (a Alert) Failure(entityName, errorKey, defaultMessage string) http.Header {
	message := defaultMessage
	if a.enableTranslation {
		message = "error." + errorKey
	}

	h := http.Header{}
	h.Set(a.errorHeader(), message)
	h.Set(a.paramsHeader(), entityName)
	return h
}

func (a Alert) entityAlert(entityName, id, event, sentence string) http.Header {
	message := fmt.Sprintf(sentence, entityName, id)
	if a.enableTranslation {
		message = a.applicationName + "." + entityName + "." + event
	}
	return a.Create(message, id)
}

// Copy adds every value of src to dst.
func Copy(dst, src http.Header) {
	for key, values := range src {
		for _, v := range values {
			dst.Add(key, v)
		}
	}
}
