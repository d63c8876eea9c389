// Package file provides a file-based DataFetcher implementation for the config package.
//
// The fetcher returns raw bytes for a parser to decode. Unlike a cached
// reader, it reads the file on every Fetch, so a later Load observes edits
// made to the document on disk.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/path/to/config.json")
//	if err != nil {
//	    // Handle error: empty path
//	}
//	data, err := fetcher.Fetch()
//
// Error Handling:
//   - Fetch returns an error if the file cannot be read or the path is a directory
//   - Errors include the filepath for easier debugging
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
package file
