// Command hjarta-config loads configuration files the way the config package
// does and prints the merged tree.
//
//	hjarta-config dump config/ '?config/local.yaml'
//	hjarta-config get database.host config/
//	hjarta-config keys config/app.json.dist
//	hjarta-config formats --with-extras
//
// Several path arguments form a group; a leading "?" marks a path that may
// be missing.
package main
