// Package models contains the data structures returned by the objects feature.
package models
