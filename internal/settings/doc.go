// Package settings provides the start-up settings record of the web application.
//
// The record is built once from the process environment and handed by value to
// whatever initializes the application. It never changes after construction,
// so it can be read from any number of goroutines.
//
//	s := settings.FromEnv()
//	if uri, ok := s.DatabaseURI(); ok {
//		// hand uri to the database client
//	}
package settings
