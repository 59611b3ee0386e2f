package config

// Version is the pipelined binary version.
// Set at build time via: -ldflags "-X github.com/persistorai/pipelinecheck/internal/config.Version=<tag>"
var Version = "dev"
