// Package httpapi is the HTTP transport adapter (ports/adapters "delivery" layer).
//
// It serves the HTML pages under /ptas and the JSON API under /api/ptas, and
// depends only on the application layer (internal/app/ptas) and domain types.
// It should NOT be imported by internal/app or internal/domain.
package httpapi
