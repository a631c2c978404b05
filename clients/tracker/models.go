package tracker

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNoData       = errors.New("no data received")
)

type APIError struct {
	Response  *http.Response `json:"-"`
	ErrorCode string         `json:"error"`
	Message   string         `json:"message"`
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.ErrorCode
	}
	return fmt.Sprintf("%v %v: %d %v",
		e.Response.Request.Method, e.Response.Request.URL,
		e.Response.StatusCode, msg)
}

func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.Response.StatusCode == http.StatusUnauthorized
}

type EntryFilterOptions struct {
	StartDate string `url:"startDate,omitempty"`
	EndDate   string `url:"endDate,omitempty"`
}

type markEntryRequest struct {
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

type awardBadgeRequest struct {
	BadgeID string `json:"badgeId"`
}
