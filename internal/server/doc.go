// Package server wires the workspace service into an HTTP API.
//
// Lifecycle:
//  1. Load configuration from environment/flags
//  2. Initialize logger (production or development)
//  3. Open the workspace at the configured root
//  4. Register service providers
//  5. Setup HTTP routes and middleware
//  6. Start HTTP server, graceful shutdown on signal
package server
