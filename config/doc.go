// Package config loads configuration files of several formats into one tree.
//
// A Spec says where the files are. It is a Path (a file or a directory) or a
// Group of specs. Inside a group, a path may be optional: when it does not
// exist it is skipped instead of failing the load.
//
//	spec := config.Group{
//	    config.File("/etc/app/app.yaml"),
//	    config.Optional("/etc/app/conf.d"),
//	}
//
// Raw input can be normalized with ParseSpec, where a leading "?" marks an
// optional group element:
//
//	spec, err := config.ParseSpec([]string{"config/app.json", "?config/local.ini"})
//
// # Resolution
//
// A directory expands to the files it contains whose names have an
// extension. An empty directory is always an error, even when optional.
//
// # Parsing
//
// Each file's parser is picked by its extension. A trailing ".dist" is
// ignored, so "app.json.dist" is read as JSON. The default Registry knows
// native Go literals (.go), INI, XML, JSON and YAML, tried in that order.
// More parsers can be appended with WithParsers.
//
// # Merging
//
// When a Spec resolves to a single file, its contents become the tree.
// With several files, each is stored under its stem ("app" for
// "conf.d/app.yaml"); a later file with the same stem replaces an earlier one.
//
// # Access
//
// Config reads and writes the tree with dotted keys and decodes sections into
// structs:
//
//	cfg, err := config.New(spec)
//	port := cfg.Get("server.port", 8080)
//
//	db, err := config.Provider(new(DatabaseConfig), "database")(cfg)
package config
