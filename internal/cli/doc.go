// Package cli implements the interactive terminal client: a REPL whose
// commands correspond to the admin screens (dashboard, orders, kitchen,
// cashier, products, categories, tables, users).
//
// Every screen command is gated through the session manager before it runs;
// nothing is dispatched until the startup session restore has resolved.
package cli
