// Package config manages user-level settings stored at ~/.impero/config.yaml.
// The settings pre-fill the generator's prompt defaults and pick the package
// manager used to install dependencies. Every key can also be supplied through
// an IMPERO_-prefixed environment variable.
package config
