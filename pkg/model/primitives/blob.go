package primitives

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

const BLOB = "Blob"

const (
	MIME_TEXT_PLAIN = "text/plain"
	MIME_TEXT_HTML  = "text/html"
	MIME_GIF        = "image/gif"
	MIME_JPG        = "image/jpeg"
	MIME_PNG        = "image/png"
)

// BlobValue is a sequence of bytes with a MIME type.
type BlobValue struct {
	mimeType string
	data     []byte
}

var _ PropertyValue = (*BlobValue)(nil)

func NewBlob(mime string, data []byte) *BlobValue {
	return &BlobValue{mime, slices.Clone(data)}
}

func NewTextBlob(mime string, s string) *BlobValue {
	return &BlobValue{mime, []byte(s)}
}

func (v *BlobValue) MimeType() string {
	return v.mimeType
}

func (v *BlobValue) Data() []byte {
	return slices.Clone(v.data)
}

func (v *BlobValue) AsString() string {
	return string(v.data)
}

func (v *BlobValue) HasTextMimeType() bool {
	return strings.HasPrefix(v.mimeType, "text/")
}

// String provides a data URL.
func (v *BlobValue) String() string {
	return fmt.Sprintf("data:%s;base64,%s", v.mimeType, base64.StdEncoding.EncodeToString(v.data))
}

func (v *BlobValue) DataTypeName() string {
	return BLOB
}

func (v *BlobValue) Equals(o PropertyValue) bool {
	if b, ok := o.(*BlobValue); ok && b != nil {
		return v.mimeType == b.mimeType && bytes.Equal(v.data, b.data)
	}
	return false
}

////////////////////////////////////////////////////////////////////////////////

// BlobDataType restricts blobs to a set of MIME types. A MIME type
// pattern may use * as subtype or type/subtype.
type BlobDataType struct {
	dataType[*BlobValue]
	mimeTypes []string
}

var _ DataType = (*BlobDataType)(nil)

var (
	TheAnyType                = NewBlobDataType(nil, "*/*")
	TheTextAnyType            = NewBlobDataType(TheAnyType, "text/*")
	TheTextPlainType          = NewBlobDataType(TheTextAnyType, MIME_TEXT_PLAIN)
	TheTextHtmlType           = NewBlobDataType(TheTextAnyType, MIME_TEXT_HTML)
	TheJdkSupportedBitmapType = NewBlobDataType(TheAnyType, MIME_GIF, MIME_JPG, MIME_PNG)
	TheGifType                = NewBlobDataType(TheJdkSupportedBitmapType, MIME_GIF)
	TheJpgType                = NewBlobDataType(TheJdkSupportedBitmapType, MIME_JPG)
	ThePngType                = NewBlobDataType(TheJdkSupportedBitmapType, MIME_PNG)
)

var blobPresets = map[string]*BlobDataType{
	"Any":                TheAnyType,
	"TextAny":            TheTextAnyType,
	"TextPlain":          TheTextPlainType,
	"TextHtml":           TheTextHtmlType,
	"Gif":                TheGifType,
	"Jpg":                TheJpgType,
	"Png":                ThePngType,
	"JdkSupportedBitmap": TheJdkSupportedBitmapType,
}

func NewBlobDataType(super *BlobDataType, mimeTypes ...string) *BlobDataType {
	d := &BlobDataType{
		dataType:  dataType[*BlobValue]{name: BLOB},
		mimeTypes: mimeTypes,
	}
	if super != nil {
		d.super = super
	}
	return d
}

func (d *BlobDataType) MimeTypes() []string {
	return slices.Clone(d.mimeTypes)
}

// DefaultMimeType is the first concrete MIME type accepted
// by the data type.
func (d *BlobDataType) DefaultMimeType() string {
	for _, m := range d.mimeTypes {
		if !strings.Contains(m, "*") {
			return m
		}
	}
	return MIME_TEXT_PLAIN
}

func (d *BlobDataType) DefaultValue() PropertyValue {
	return NewBlob(d.DefaultMimeType(), nil)
}

func (d *BlobDataType) Accepts(mime string) bool {
	for _, m := range d.mimeTypes {
		if m == "*/*" || m == mime {
			return true
		}
		if strings.HasSuffix(m, "/*") && strings.HasPrefix(mime, m[:len(m)-1]) {
			return true
		}
	}
	return false
}

func (d *BlobDataType) Conforms(v PropertyValue) error {
	b, ok, err := d.cast(v)
	if !ok || err != nil {
		return err
	}
	if !d.Accepts(b.mimeType) {
		return nonConforming(d, b, "MIME type %s not allowed", b.mimeType)
	}
	return nil
}

// Parse accepts data URLs. Other strings are taken as text with
// the default MIME type of the data type.
func (d *BlobDataType) Parse(s string) (PropertyValue, error) {
	if !strings.HasPrefix(s, "data:") {
		return NewTextBlob(d.DefaultMimeType(), s), nil
	}
	header, payload, found := strings.Cut(s[5:], ",")
	if !found {
		return nil, d.parseError(s, fmt.Errorf("missing data separator"))
	}
	mime, encoded := strings.CutSuffix(header, ";base64")
	if mime == "" {
		mime = MIME_TEXT_PLAIN
	}
	if encoded {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, d.parseError(s, err)
		}
		return NewBlob(mime, data), nil
	}
	text, err := url.PathUnescape(payload)
	if err != nil {
		return nil, d.parseError(s, err)
	}
	return NewTextBlob(mime, text), nil
}

func (d *BlobDataType) String() string {
	return fmt.Sprintf("%s(%s)", d.name, strings.Join(d.mimeTypes, ","))
}
