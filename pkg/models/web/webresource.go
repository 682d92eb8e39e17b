package web

import (
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

// WebResource is the facade for org.infogrid.model.Web/WebResource: a resource identified by a URL.
type WebResource struct {
	mesh.Facade
}

var WebResource_TYPE = lookup[modelbase.EntityType]("WebResource")

var (
	WebResource_HasLinkTo_SOURCE      = HasLinkTo_SOURCE
	WebResource_HasLinkTo_DESTINATION = HasLinkTo_DESTINATION
)

// WebResource_HttpStatusCode is the property type HttpStatusCode. The status code of the last access.
const WebResource_HttpStatusCode_NAME = "HttpStatusCode"

var (
	WebResource_HttpStatusCode      = lookup[modelbase.PropertyType]("WebResource_HttpStatusCode")
	WebResource_HttpStatusCode_TYPE = WebResource_HttpStatusCode.DataType()
)

const WebResource_MimeType_NAME = "MimeType"

var (
	WebResource_MimeType      = lookup[modelbase.PropertyType]("WebResource_MimeType")
	WebResource_MimeType_TYPE = WebResource_MimeType.DataType()
)

const WebResource_LastRead_NAME = "LastRead"

var (
	WebResource_LastRead      = lookup[modelbase.PropertyType]("WebResource_LastRead")
	WebResource_LastRead_TYPE = WebResource_LastRead.DataType()
)

func NewWebResource(obj mesh.MeshObject) *WebResource {
	return &WebResource{mesh.NewFacade(obj)}
}

// AsWebResource provides the facade for an object blessed with WebResource or a subtype.
func AsWebResource(obj mesh.MeshObject) (*WebResource, error) {
	return mesh.As(obj, WebResource_TYPE, NewWebResource)
}

// CreateWebResource creates a new object blessed with WebResource.
func CreateWebResource(f mesh.MeshObjectFactory) (*WebResource, error) {
	return mesh.Create(f, WebResource_TYPE, NewWebResource)
}

// HttpStatusCode provides the http status code.
func (o *WebResource) HttpStatusCode() (*primitives.IntegerValue, error) {
	return mesh.Get[*primitives.IntegerValue](o, WebResource_HttpStatusCode)
}

func (o *WebResource) SetHttpStatusCode(v *primitives.IntegerValue) error {
	return mesh.Set(o, WebResource_HttpStatusCode, v)
}

func (o *WebResource) MimeType() (*primitives.StringValue, error) {
	return mesh.Get[*primitives.StringValue](o, WebResource_MimeType)
}

func (o *WebResource) SetMimeType(v *primitives.StringValue) error {
	return mesh.Set(o, WebResource_MimeType, v)
}

func (o *WebResource) LastRead() (*primitives.TimeStampValue, error) {
	return mesh.Get[*primitives.TimeStampValue](o, WebResource_LastRead)
}

func (o *WebResource) SetLastRead(v *primitives.TimeStampValue) error {
	return mesh.Set(o, WebResource_LastRead, v)
}
