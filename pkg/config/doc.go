// Package config loads the state layer's configuration from environment
// variables, with an optional .env file for local development.
//
// Client holds every knob the layer exposes: the API base URL (defaulting
// to the production ShopHub endpoint), the HTTP timeout, the durable storage
// backend selection, and logging preferences.
//
// # Usage
//
//	var cfg config.Client
//	if err := config.Load(&cfg); err != nil {
//	    // Handle error
//	}
package config
