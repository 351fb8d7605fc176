// Package client implements the gateway to the POS backend REST API.
//
// All outbound traffic goes through a single RESTClient. The current bearer
// token is read from a TokenSource at the moment each request is built, so a
// login or logout between two calls is always reflected in the next request.
// When an authenticated request comes back with 401 the client fires the
// configured auth-lost hook and surfaces common.ErrAuthorizationLost; it never
// touches session state itself.
package client
