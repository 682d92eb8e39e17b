package runtime

// TypeAccessor provides the type name an object is registered with
// in a Scheme.
type TypeAccessor interface {
	GetType() string
}

// Object is a serializable object carrying its own type name.
// The type name is used to select the Go type when decoding.
type Object interface {
	TypeAccessor
	SetType(string)
}

// ObjectMeta is the inline type field of serialized objects.
type ObjectMeta struct {
	Type string `json:"type"`
}

var _ Object = (*ObjectMeta)(nil)

func (o *ObjectMeta) GetType() string { return o.Type }

func (o *ObjectMeta) SetType(t string) { o.Type = t }
