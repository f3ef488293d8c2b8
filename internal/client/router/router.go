// Package router maps client paths to screens and builds links between them.
package router

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
)

// Screen names a view the client can show.
type Screen string

const (
	ScreenMarketplace Screen = "marketplace"
	ScreenUsers       Screen = "users"
	ScreenUserProfile Screen = "user-profile"
)

var ErrNoRoute = errors.New("no route")

// Match is the result of resolving a path.
type Match struct {
	Screen Screen
	Params map[string]string
}

type Router struct {
	mux     *mux.Router
	screens map[string]Screen
}

func New() *Router {
	r := &Router{
		mux:     mux.NewRouter().StrictSlash(true),
		screens: map[string]Screen{},
	}

	r.add("/", "home", ScreenMarketplace)
	r.add("/skills", "skills", ScreenMarketplace)
	r.add("/users", string(ScreenUsers), ScreenUsers)
	r.add("/users/{id}", string(ScreenUserProfile), ScreenUserProfile)

	return r
}

func (r *Router) add(path, name string, screen Screen) {
	r.mux.Path(path).Methods(http.MethodGet).Name(name)
	r.screens[name] = screen
}

// Resolve finds the screen for path. Query strings are ignored.
func (r *Router) Resolve(path string) (Match, error) {
	u, err := url.Parse(path)
	if err != nil {
		return Match{}, fmt.Errorf("parse path %q: %w", path, err)
	}
	if u.Path == "" {
		u.Path = "/"
	}

	req := &http.Request{Method: http.MethodGet, URL: u}

	var m mux.RouteMatch
	if !r.mux.Match(req, &m) || m.Route == nil {
		return Match{}, fmt.Errorf("%w for %q", ErrNoRoute, path)
	}

	params := m.Vars
	if params == nil {
		params = map[string]string{}
	}
	return Match{Screen: r.screens[m.Route.GetName()], Params: params}, nil
}

// URL builds the path for a named route, e.g. URL("user-profile", "id", "42").
func (r *Router) URL(name string, pairs ...string) (string, error) {
	route := r.mux.Get(name)
	if route == nil {
		return "", fmt.Errorf("%w named %q", ErrNoRoute, name)
	}
	u, err := route.URL(pairs...)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// UserProfileURL is the link to a user's profile.
func (r *Router) UserProfileURL(id int64) string {
	u, err := r.URL(string(ScreenUserProfile), "id", strconv.FormatInt(id, 10))
	if err != nil {
		// the route is registered in New and the id always matches it
		panic(err)
	}
	return u
}
