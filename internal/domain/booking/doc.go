// Package booking holds the photographer booking and order-consolidation
// rules: catalog lookups, availability filtering, line-item pricing, travel
// fee consolidation, order building and the scheduled-service state machine.
//
// Everything here is pure and synchronous. Callers load records through the
// repositories and pass them in; nothing in this package performs I/O.
package booking
