// Package models contains GORM database models for infrastructure layer.
// Arbitrary-precision integers are stored as decimal text so that sqlite and
// postgres hold them without loss.
package models
