// Package hjarta bootstraps Fx applications around a configuration tree
// loaded by the config package.
//
//	app := hjarta.NewApp(
//	    hjarta.WithLogLevel("info"),
//	    hjarta.WithConfig(config.MustParseSpec([]string{"config", "?config/local.yaml"})),
//	    hjarta.WithConfigSection[DatabaseConfig]("database"),
//	    hjarta.WithModules(serviceModule),
//	)
//	app.Run()
package hjarta
