/*
Package middleware provides HTTP middleware and helper functions.

# Auth Guard

Wrap protected handlers with RequireAuth:

	mux.HandleFunc("GET /anime", middleware.RequireAuth(cfg, handler))

The guard accepts the session token from the session cookie or an
Authorization Bearer header, validates it, and stores the caller's
identity in the request context. Handlers read it back:

	ident, ok := middleware.IdentityFrom(r.Context())

Requests without a valid session get a 401 JSON error.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PATCH, DELETE, OPTIONS with headers
Content-Type, Authorization.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.AnimeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
