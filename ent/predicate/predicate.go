// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// APICredential is the predicate function for apicredential builders.
type APICredential func(*sql.Selector)

// Dependency is the predicate function for dependency builders.
type Dependency func(*sql.Selector)

// Feature is the predicate function for feature builders.
type Feature func(*sql.Selector)

// GraphRun is the predicate function for graphrun builders.
type GraphRun func(*sql.Selector)

// PRD is the predicate function for prd builders.
type PRD func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
