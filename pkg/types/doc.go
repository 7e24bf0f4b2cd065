// Package types defines the Store and table interfaces, entity types, and
// standard error types for the atelier content backend.
// Implements: prd001-store-core (Config, Store, table interfaces, error types);
//
//	docs/ARCHITECTURE § Main Interface.
package types
