// Package http implements the snapshot server's REST API.
//
// Every request must carry the shared X-API-Key. Registration, login and
// the ping endpoint are otherwise public; the snapshot routes additionally
// require a bearer token whose subject matches the {userID} path segment.
package http
