// Package router maps client paths to views and applies the access guards.
// Guards are evaluated here and nowhere else: a view that is rendered has
// already been allowed.
package router

import (
	"strconv"
	"strings"
)

const (
	PathHome      = "/"
	PathSearch    = "/search"
	PathFavorites = "/favorites"
	PathProfile   = "/profile"
	PathAdmin     = "/admin"
	PathLogin     = "/login"
	PathSignup    = "/signup"
	PathVerifyOtp = "/verify-otp"

	exoplanetPrefix = "/exoplanet/"
)

// maxRedirects bounds guard chains such as /admin -> / -> /admin.
const maxRedirects = 4

// View identifies a page of the client.
type View int

const (
	ViewNotFound View = iota
	ViewHome
	ViewSearch
	ViewExoplanet
	ViewFavorites
	ViewProfile
	ViewAdmin
	ViewLogin
	ViewSignup
	ViewVerifyOtp
)

var viewNames = map[View]string{
	ViewNotFound:  "not-found",
	ViewHome:      "home",
	ViewSearch:    "search",
	ViewExoplanet: "exoplanet",
	ViewFavorites: "favorites",
	ViewProfile:   "profile",
	ViewAdmin:     "admin",
	ViewLogin:     "login",
	ViewSignup:    "signup",
	ViewVerifyOtp: "verify-otp",
}

func (v View) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return "view(" + strconv.Itoa(int(v)) + ")"
}

var staticRoutes = map[string]View{
	PathHome:      ViewHome,
	PathSearch:    ViewSearch,
	PathFavorites: ViewFavorites,
	PathProfile:   ViewProfile,
	PathAdmin:     ViewAdmin,
	PathLogin:     ViewLogin,
	PathSignup:    ViewSignup,
	PathVerifyOtp: ViewVerifyOtp,
}

// Capabilities is what the session allows at the moment of navigation.
type Capabilities struct {
	Authenticated       bool
	Admin               bool
	PendingSecondFactor bool
}

// Route is a matched path.
type Route struct {
	Path string
	View View

	// ExoplanetID is set for ViewExoplanet.
	ExoplanetID int64
}

// Decision is the outcome of Resolve. Route is the view to render; when a
// guard fired, Redirected is true and Requested holds the original path.
type Decision struct {
	Route      Route
	Requested  string
	Redirected bool
}

// ExoplanetPath returns the detail path of an exoplanet.
func ExoplanetPath(id int64) string {
	return exoplanetPrefix + strconv.FormatInt(id, 10)
}

// Match maps path to a route without applying guards. Query strings and a
// trailing slash are ignored.
func Match(path string) Route {
	clean := normalize(path)

	if view, ok := staticRoutes[clean]; ok {
		return Route{Path: clean, View: view}
	}

	if rest, ok := strings.CutPrefix(clean, exoplanetPrefix); ok && !strings.Contains(rest, "/") {
		if id, err := strconv.ParseInt(rest, 10, 64); err == nil && id > 0 {
			return Route{Path: clean, View: ViewExoplanet, ExoplanetID: id}
		}
	}

	return Route{Path: clean, View: ViewNotFound}
}

// Resolve matches path and applies the guards for caps.
func Resolve(path string, caps Capabilities) Decision {
	d := Decision{Requested: path, Route: Match(path)}

	for range maxRedirects {
		target, redirect := guard(d.Route, caps)
		if !redirect {
			return d
		}
		d.Redirected = true
		d.Route = Match(target)
	}

	return d
}

func guard(r Route, caps Capabilities) (string, bool) {
	switch r.View {
	case ViewAdmin:
		if !caps.Admin {
			return PathHome, true
		}
	case ViewHome:
		if caps.Admin {
			return PathAdmin, true
		}
	case ViewFavorites, ViewProfile:
		if !caps.Authenticated {
			return PathLogin, true
		}
	case ViewVerifyOtp:
		if !caps.PendingSecondFactor {
			return PathLogin, true
		}
	}
	return "", false
}

func normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return PathHome
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = PathHome
		}
	}
	return path
}
