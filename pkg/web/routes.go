// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"errors"
	"fmt"

	"github.com/canonical/business-service/internal/http/types"
)

var (
	ErrDuplicateRoute = errors.New("duplicate route")
	ErrInvalidRoute   = errors.New("invalid route")
)

type routeKey struct {
	method  string
	pattern string
}

// BuildRoutes collects the routes of every api, rejecting a second descriptor for the
// same method and pattern
func BuildRoutes(apis ...types.RouterInterface) ([]types.Route, error) {
	seen := make(map[routeKey]struct{})
	routes := make([]types.Route, 0)

	for _, api := range apis {
		for _, route := range api.Routes() {
			if route.Method == "" || route.Pattern == "" || route.Handler == nil {
				return nil, fmt.Errorf("%w: %s %s", ErrInvalidRoute, route.Method, route.Pattern)
			}

			if len(route.Permissions) > 0 && !route.RequireAuth {
				return nil, fmt.Errorf("%w: %s %s declares permissions without authentication", ErrInvalidRoute, route.Method, route.Pattern)
			}

			key := routeKey{method: route.Method, pattern: route.Pattern}
			if _, ok := seen[key]; ok {
				return nil, fmt.Errorf("%w: %s %s", ErrDuplicateRoute, route.Method, route.Pattern)
			}
			seen[key] = struct{}{}

			routes = append(routes, route)
		}
	}

	return routes, nil
}
