// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server implements the HTTP chassis for the work order API.
//
// # Architecture
//
// The server wires registered handlers into a net/http mux with a standard
// middleware chain:
//
//   - Prometheus RED metrics (rate, errors, duration)
//   - Request ID tracking via X-Request-Id (google/uuid)
//   - Panic recovery for resilience
//   - Rate limiting using a token bucket (golang.org/x/time/rate)
//   - Debug request logging
//
// plus /health and /ready probes, a /metrics endpoint, and graceful
// shutdown driven by context cancellation.
//
// # Usage
//
//	routes := map[string]http.HandlerFunc{
//	    "/workorders": h.Collection,
//	}
//
//	s := server.New(
//	    server.WithName("workorder-api"),
//	    server.WithVersion(version),
//	    server.WithHandler(routes),
//	)
//	if err := s.Run(ctx); err != nil {
//	    // only fatal startup conditions (e.g. port bind failure) reach here
//	}
//
// # Error responses
//
// All failure responses share one envelope so clients parse failures
// uniformly:
//
//	{"message":"<category>","detail":"<specific reason>","path":"<request path>"}
//
// WriteError, WriteStructuredError, and WriteMethodNotAllowed produce the
// envelope; HTTPStatusFromCode maps pkg/errors codes to HTTP statuses.
//
// # Observability
//
// Requests accept an optional X-Request-Id header (UUID format). If absent
// or invalid, the server generates one. The id is echoed in the response
// header and available to handlers via the request context. When rate
// limited, responses carry Retry-After and X-RateLimit-* headers.
package server
