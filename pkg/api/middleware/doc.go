// Package middleware provides HTTP middleware for the API's cross-cutting
// concerns: request IDs, access logging, panic recovery, security headers,
// CORS and error-to-JSON rendering.
//
// # Middleware Chain
//
// The server composes the chain with Chain, outermost first:
//
//	Chain(mux,
//	    collector.Middleware,        // request metrics, always first
//	    RequestIDMiddleware,
//	    LoggingMiddleware(logger),
//	    RecoveryMiddleware(logger),
//	    SecurityHeadersMiddleware,
//	    CORSMiddleware(cfg.Server.CORS),
//	)
//
// Request metrics sit outside recovery so that a panic rendered as a JSON
// 500 is observed with status 500.
//
// # Errors
//
// Handlers written as HandlerFunc return errors instead of writing them.
// ErrorHandler renders them as JSON:
//
//	{"error":"Validation Error","message":"...","errors":[...],"timestamp":"..."}
//
// ValidationError maps to 400, APIError to its own status and any other
// error to 500 with a generic message.
package middleware
