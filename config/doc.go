// Package config holds application settings for QPU comparison runs.
//
// Configuration is explicit: Default() gives the built-in values, Load reads a
// YAML file over them, and Resolve queries a solver catalog once at start-up
// to produce Settings (available solvers, selected defaults, anneal-time
// bounds). Nothing is initialized at import time.
//
//	default_advantage:  Advantage_system4.1
//	default_advantage2: Advantage2_system1.2
//	precision_options:  [1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024]
//	precision_default:  128
//	num_reads:          1000
//	bins:               50
//	solver_dir:         ./solvers
//	log_level:          info
package config
