package core

import "net/http"

type RouteAction int

const (
	ActionRenderPage RouteAction = iota
	ActionNotFound
	ActionMethodNotAllowed
)

func (a RouteAction) String() string {
	switch a {
	case ActionRenderPage:
		return "render"
	case ActionNotFound:
		return "not_found"
	case ActionMethodNotAllowed:
		return "method_not_allowed"
	default:
		return "unknown"
	}
}

// AllowedMethods are the only methods a page answers to.
var AllowedMethods = []string{http.MethodGet, http.MethodHead}

type RouteRequest struct {
	Method string
	Path   string
}

type RouteDecision struct {
	Action RouteAction
	Entry  RouteEntry
	Status int
}

func DecideRoute(table *RouteTable, req RouteRequest) RouteDecision {
	entry, ok := table.Match(req.Path)
	if !ok {
		return RouteDecision{Action: ActionNotFound, Status: http.StatusNotFound}
	}

	if !isAllowedMethod(req.Method) {
		return RouteDecision{Action: ActionMethodNotAllowed, Entry: entry, Status: http.StatusMethodNotAllowed}
	}

	return RouteDecision{Action: ActionRenderPage, Entry: entry, Status: http.StatusOK}
}

func isAllowedMethod(method string) bool {
	if method == "" {
		return true
	}
	for _, m := range AllowedMethods {
		if m == method {
			return true
		}
	}
	return false
}
