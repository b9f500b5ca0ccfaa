// Package hcl_adapter loads run settings from an HCL file into the
// format-agnostic config.Model.
//
// A configuration file looks like:
//
//	input      = "${env.HOME}/aoc/day6.txt"
//	log_level  = "debug"
//
//	labels {
//	  root   = "COM"
//	  source = "YOU"
//	  target = "SAN"
//	}
//
// Every attribute is optional. Expressions can read environment variables
// through the `env` object.
package hcl_adapter
