package database

import (
	"github.com/mandelsoft/meshmodel/pkg/events"
)

// Databases trigger an event for every stored or deleted record.
// The event id is the ObjectId of the record.

type ObjectLister = events.ObjectLister[ObjectId]
type EventHandler = events.EventHandler[ObjectId]
type HandlerRegistration = events.HandlerRegistration[ObjectId]
type HandlerRegistrationTest = events.HandlerRegistrationTest[ObjectId]
type HandlerRegistry = events.HandlerRegistry[ObjectId]

// NewHandlerRegistry provides a registry whose handlers
// are initially fed with the records provided by the lister.
func NewHandlerRegistry(l ObjectLister) HandlerRegistry {
	return events.NewHandlerRegistry[ObjectId](l, NewObjectIdFor)
}
