// Package config handles loading and parsing of configuration from YAML files
// and environment variables. It defines the proxy configuration structure
// including the server address, upstream backend addresses, the gradual
// migration toggle and percentage, and health check intervals.
package config
