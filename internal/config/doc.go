// Package config provides the configuration system for Kite.
//
// # Architecture
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  5. Command Line Flags      │  ← Highest priority (Config.Set)
//	├─────────────────────────────┤
//	│  4. Environment Variables   │  ← KITE_TAB_STOP, KITE_LOG_LEVEL, ...
//	├─────────────────────────────┤
//	│  3. Explicit Config File    │  ← --config path
//	├─────────────────────────────┤
//	│  2. User Settings           │  ← ~/.config/kite/config.{toml,yaml,yml}
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Sub-packages
//
//   - loader: Configuration file loading (TOML, YAML, environment variables)
//
// # Usage
//
//	cfg := config.New(config.WithConfigFile(path))
//	if err := cfg.Load(ctx); err != nil {
//		return err
//	}
//	tabStop := cfg.Editor().TabStop
package config
