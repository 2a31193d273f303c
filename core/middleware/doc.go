// Package middleware groups the HTTP middleware of the serve command.
//
//   - rayid: assigns or propagates X-Ray-ID and stores it in locals for logging.
//   - auth: accepts an X-API-Key (admin) or an HS256 bearer token with a role
//     claim. RequireRole guards admin-only routes such as image listing.
package middleware
