// Package main provides the entry point of appsettings.
// It builds the start-up settings record of the web application from the
// environment (DATABASE_URL, optionally seeded from dotenv files) and prints
// it under the keys the host framework reads: SQLALCHEMY_DATABASE_URI,
// CACHE_TYPE and DEBUG.
package main
