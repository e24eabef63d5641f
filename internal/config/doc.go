// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults (~/.easyotp/secrets.enc, Fernet, info level)
//  2. JSON config file
//  3. Environment variables and a .env file
//  4. Command-line flags
//
// The main entry point is [GetStructuredConfig].
package config
