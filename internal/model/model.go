// Package model holds the persisted entities and their JSON shapes.
package model
