package database

// Specification describes a database implementation together with its
// location, for example a directory or an sqlite DSN. It is used to select
// the store of a mesh base by configuration.
type Specification[O Object] interface {
	Create(enc Encoding[O]) (Database[O], error)
}
