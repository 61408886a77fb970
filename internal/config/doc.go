// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (a .env file, when present, is loaded first and
//     never overrides variables already set in the process)
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetServerConfig] for the snapshot server and
// [GetClientConfig] for the reading client.
package config
