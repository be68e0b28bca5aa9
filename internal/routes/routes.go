// Package routes maps paths to the application's pages.
//
// There are two pages, [Home] and [Contact]. Any path that does not name one of them resolves to [Home],
// and [Redirects] tells HTTP callers when to send the client there.
package routes

import "strings"

// Route identifies a page.
type Route int

const (
	Home Route = iota
	Contact
)

// All lists every route in navigation order.
var All = []Route{Home, Contact}

// Default is the page unknown paths resolve to.
const Default = Home

func (r Route) String() string {
	switch r {
	case Contact:
		return "contact"
	default:
		return "home"
	}
}

// Path returns the canonical URL path for the route.
func (r Route) Path() string {
	return "/" + r.String()
}

// Resolve returns the route named by path; unknown, empty and root paths resolve to [Default].
func Resolve(path string) Route {
	name := strings.Trim(path, "/")
	for _, r := range All {
		if r.String() == name {
			return r
		}
	}
	return Default
}

// Redirects reports whether path is anything other than a canonical route path.
func Redirects(path string) bool {
	return Resolve(path).Path() != path
}

// Next returns the route after r, wrapping around.
func Next(r Route) Route {
	for i, route := range All {
		if route == r {
			return All[(i+1)%len(All)]
		}
	}
	return Default
}
