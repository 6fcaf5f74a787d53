// Package config provides configuration loading, merging, and validation
// for the task-tracker server and command-line client.
//
// Server configuration is assembled from multiple sources. From highest to
// lowest priority:
//  1. Command-line flags
//  2. Environment variables, optionally preloaded from a .env file
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
