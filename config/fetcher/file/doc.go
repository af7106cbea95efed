// Package file reads resolved configuration files from the local filesystem.
//
// The loader in the config package resolves a path spec into a list of files
// and hands each one to this package before parsing. A Fetcher reads its file
// once, at construction time, and returns copies of the cached bytes.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/etc/app/database.yaml")()
//	if err != nil {
//	    // file not found, permission denied, path is a directory, etc.
//	}
//	data, err := fetcher.Fetch()
//
// Error Handling:
//   - Construction returns an error if the file cannot be read or the path is a directory
//   - Errors include the file path
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
package file
