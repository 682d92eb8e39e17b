// Package testtypes provides database records used to test
// database implementations and services.
package testtypes

import (
	"github.com/mandelsoft/meshmodel/pkg/database"
)

type Object interface {
	database.Object
	database.GenerationAccess

	GetData() string
}

var Scheme = database.NewScheme[Object]()

func init() {
	database.MustRegisterType[Link, Object](Scheme)
	database.MustRegisterType[Note, Object](Scheme)
}

const TYPE_LINK = "Link"

// Link is a record with an url.
type Link struct {
	database.GenerationObjectMeta

	URL string `json:"url,omitempty"`
}

var _ Object = (*Link)(nil)

func NewLink(ns, name string, url string) *Link {
	return &Link{database.NewGenerationObjectMeta(TYPE_LINK, ns, name), url}
}

func (l *Link) GetData() string { return l.URL }

const TYPE_NOTE = "Note"

// Note is a record with a text.
type Note struct {
	database.GenerationObjectMeta

	Text string `json:"text,omitempty"`
}

var _ Object = (*Note)(nil)

func NewNote(ns, name string, text string) *Note {
	return &Note{database.NewGenerationObjectMeta(TYPE_NOTE, ns, name), text}
}

func (n *Note) GetData() string { return n.Text }
