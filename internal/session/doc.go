// Package session owns the client-side authentication lifecycle: the durable
// token store, token claims inspection, the auth state machine, and the
// role-based screen authorization gate.
//
// The Manager is the single writer of the token and identity. The transport
// layer only reads the token (through a TokenSource wired to the Store) and
// reports authorization loss back through Manager.AuthorizationLost; it never
// mutates session state itself.
package session
