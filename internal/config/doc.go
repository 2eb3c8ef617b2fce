// Package config loads gee project configuration.
//
// Configuration comes from, in increasing precedence:
//
//  1. Built-in defaults (see New)
//  2. gee.json, gee.yaml or gee.yml in the project directory
//  3. GEE_* environment variables
//
// # Example gee.yaml
//
//	builder:
//	  mode: strict
//	  defaultTag: section
//	render:
//	  pretty: true
//	serve:
//	  addr: localhost:4000
//	  metrics: true
//	output:
//	  s3:
//	    bucket: my-site
//	    prefix: pages/
//	    region: eu-west-1
package config
