// Package config reads the process configuration from the environment.
//
// [Load] first merges a .env file into the environment with godotenv, then
// builds an explicit [Config] value. Nothing is stored globally; callers pass
// the Config to the provider, the sinks and the middleware they construct.
package config
