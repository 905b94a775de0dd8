// Package config provides the layered configuration of the showcase.
//
// Values come from three layers merged in order of increasing priority:
//
//  1. Built-in defaults
//  2. The TOML config file
//  3. Environment variables prefixed with RIMIKO_
//
// The merged map is decoded into a typed Config and validated. A Watcher
// reloads the file when it changes on disk.
//
// Example config.toml:
//
//	[carousel]
//	friction = 0.9
//	smoothing = 0.8
//
//	[chat]
//	provider = "anthropic"
//
//	[log]
//	level = "debug"
//	file = "/tmp/rimiko.log"
//
// Environment variables map to keys by lower-casing and splitting off the
// section: RIMIKO_CAROUSEL_STOP_VELOCITY sets carousel.stop_velocity.
package config
