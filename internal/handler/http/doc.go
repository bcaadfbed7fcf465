// Package http exposes the catalog services over a JSON HTTP API.
//
// Every route is a fixed path; input comes from the query string, a JSON
// body or the access_token header. Failures are answered with
// {"error": "..."} and a status taken from errorStatusMap, so the mapping
// from domain errors to status codes lives in one place.
package http
