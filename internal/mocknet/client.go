// Package mocknet emulates a request/response cycle without a real network.
// Every call waits a fixed latency before resolving, which is how the UI's
// loading states get exercised. There is no retry, caching or cancellation.
package mocknet

import (
	"regexp"
	"time"

	"github.com/Sill-Liu/test-platform/internal/models"
)

const (
	CodeOK       = 200
	CodeNotFound = 404
	CodeError    = 500
)

// Response is the envelope every route resolves to.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

var requirementDetailPattern = regexp.MustCompile(`^/api/requirements/(\w+)$`)

// Client dispatches URLs to canned payloads after a fixed delay.
type Client struct {
	latency time.Duration
	routes  map[string]func() any
	details map[string]models.Requirement
}

// NewClient builds a client with the standard canned routes installed.
func NewClient(latency time.Duration) *Client {
	c := &Client{
		latency: latency,
		routes:  make(map[string]func() any),
		details: requirementDetails(),
	}
	c.routes["/api/dashboard"] = func() any { return dashboardData() }
	c.routes["/api/projects"] = func() any { return projectOverviews() }
	c.routes["/api/requirements"] = func() any { return requirementList() }
	return c
}

// Get resolves url after the configured latency. Unknown URLs produce a 404
// envelope; a panic during dispatch is converted to a 500 envelope.
func (c *Client) Get(url string) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			resp = Response{Code: CodeError, Message: "request failed"}
		}
	}()

	time.Sleep(c.latency)

	if m := requirementDetailPattern.FindStringSubmatch(url); m != nil {
		detail, ok := c.details[m[1]]
		if !ok {
			return Response{Code: CodeNotFound, Message: "requirement not found"}
		}
		return Response{Code: CodeOK, Message: "success", Data: detail}
	}

	route, ok := c.routes[url]
	if !ok {
		return Response{Code: CodeNotFound, Message: "route not found"}
	}
	return Response{Code: CodeOK, Message: "success", Data: route()}
}
