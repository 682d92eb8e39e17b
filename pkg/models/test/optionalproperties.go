package test

import (
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

// OptionalProperties is the facade for org.infogrid.model.Test/OptionalProperties: has an optional property of each data type.
type OptionalProperties struct {
	mesh.Facade
}

var OptionalProperties_TYPE = lookup[modelbase.EntityType]("OptionalProperties")

const OptionalProperties_OptionalBlobDataTypeAny_NAME = "OptionalBlobDataTypeAny"

var (
	OptionalProperties_OptionalBlobDataTypeAny      = lookup[modelbase.PropertyType]("OptionalProperties_OptionalBlobDataTypeAny")
	OptionalProperties_OptionalBlobDataTypeAny_TYPE = OptionalProperties_OptionalBlobDataTypeAny.DataType().(*primitives.BlobDataType)
)

const OptionalProperties_OptionalBlobDataTypePlainOrHtml_NAME = "OptionalBlobDataTypePlainOrHtml"

var (
	OptionalProperties_OptionalBlobDataTypePlainOrHtml      = lookup[modelbase.PropertyType]("OptionalProperties_OptionalBlobDataTypePlainOrHtml")
	OptionalProperties_OptionalBlobDataTypePlainOrHtml_TYPE = OptionalProperties_OptionalBlobDataTypePlainOrHtml.DataType().(*primitives.BlobDataType)
)

const OptionalProperties_OptionalBlobDataTypePlain_NAME = "OptionalBlobDataTypePlain"

var (
	OptionalProperties_OptionalBlobDataTypePlain      = lookup[modelbase.PropertyType]("OptionalProperties_OptionalBlobDataTypePlain")
	OptionalProperties_OptionalBlobDataTypePlain_TYPE = OptionalProperties_OptionalBlobDataTypePlain.DataType().(*primitives.BlobDataType)
)

const OptionalProperties_OptionalBlobDataHtml_NAME = "OptionalBlobDataHtml"

var (
	OptionalProperties_OptionalBlobDataHtml      = lookup[modelbase.PropertyType]("OptionalProperties_OptionalBlobDataHtml")
	OptionalProperties_OptionalBlobDataHtml_TYPE = OptionalProperties_OptionalBlobDataHtml.DataType().(*primitives.BlobDataType)
)

const OptionalProperties_OptionalBlobDataTypeImage_NAME = "OptionalBlobDataTypeImage"

var (
	OptionalProperties_OptionalBlobDataTypeImage      = lookup[modelbase.PropertyType]("OptionalProperties_OptionalBlobDataTypeImage")
	OptionalProperties_OptionalBlobDataTypeImage_TYPE = OptionalProperties_OptionalBlobDataTypeImage.DataType().(*primitives.BlobDataType)
)

const OptionalProperties_OptionalBlobDataTypeJpg_NAME = "OptionalBlobDataTypeJpg"

var (
	OptionalProperties_OptionalBlobDataTypeJpg      = lookup[modelbase.PropertyType]("OptionalProperties_OptionalBlobDataTypeJpg")
	OptionalProperties_OptionalBlobDataTypeJpg_TYPE = OptionalProperties_OptionalBlobDataTypeJpg.DataType().(*primitives.BlobDataType)
)

const OptionalProperties_OptionalBooleanDataType_NAME = "OptionalBooleanDataType"

var (
	OptionalProperties_OptionalBooleanDataType      = lookup[modelbase.PropertyType]("OptionalProperties_OptionalBooleanDataType")
	OptionalProperties_OptionalBooleanDataType_TYPE = OptionalProperties_OptionalBooleanDataType.DataType()
)

const OptionalProperties_OptionalColorDataType_NAME = "OptionalColorDataType"

var (
	OptionalProperties_OptionalColorDataType      = lookup[modelbase.PropertyType]("OptionalProperties_OptionalColorDataType")
	OptionalProperties_OptionalColorDataType_TYPE = OptionalProperties_OptionalColorDataType.DataType()
)

const OptionalProperties_OptionalCurrencyDataType_NAME = "OptionalCurrencyDataType"

var (
	OptionalProperties_OptionalCurrencyDataType      = lookup[modelbase.PropertyType]("OptionalProperties_OptionalCurrencyDataType")
	OptionalProperties_OptionalCurrencyDataType_TYPE = OptionalProperties_OptionalCurrencyDataType.DataType()
)

const OptionalProperties_OptionalEnumeratedDataType_NAME = "OptionalEnumeratedDataType"

var (
	OptionalProperties_OptionalEnumeratedDataType        = lookup[modelbase.PropertyType]("OptionalProperties_OptionalEnumeratedDataType")
	OptionalProperties_OptionalEnumeratedDataType_TYPE   = OptionalProperties_OptionalEnumeratedDataType.DataType().(*primitives.EnumeratedDataType)
	OptionalProperties_OptionalEnumeratedDataType_Value1 = OptionalProperties_OptionalEnumeratedDataType_TYPE.Select("Value1")
	OptionalProperties_OptionalEnumeratedDataType_Value2 = OptionalProperties_OptionalEnumeratedDataType_TYPE.Select("Value2")
	OptionalProperties_OptionalEnumeratedDataType_Value3 = OptionalProperties_OptionalEnumeratedDataType_TYPE.Select("Value3")
)

const OptionalProperties_OptionalExtentDataType_NAME = "OptionalExtentDataType"

var (
	OptionalProperties_OptionalExtentDataType      = lookup[modelbase.PropertyType]("OptionalProperties_OptionalExtentDataType")
	OptionalProperties_OptionalExtentDataType_TYPE = OptionalProperties_OptionalExtentDataType.DataType()
)

const OptionalProperties_OptionalFloatDataType_NAME = "OptionalFloatDataType"

var (
	OptionalProperties_OptionalFloatDataType      = lookup[modelbase.PropertyType]("OptionalProperties_OptionalFloatDataType")
	OptionalProperties_OptionalFloatDataType_TYPE = OptionalProperties_OptionalFloatDataType.DataType()
)

const OptionalProperties_OptionalIntegerDataType_NAME = "OptionalIntegerDataType"

var (
	OptionalProperties_OptionalIntegerDataType      = lookup[modelbase.PropertyType]("OptionalProperties_OptionalIntegerDataType")
	OptionalProperties_OptionalIntegerDataType_TYPE = OptionalProperties_OptionalIntegerDataType.DataType()
)

const OptionalProperties_OptionalMultiplicityDataType_NAME = "OptionalMultiplicityDataType"

var (
	OptionalProperties_OptionalMultiplicityDataType      = lookup[modelbase.PropertyType]("OptionalProperties_OptionalMultiplicityDataType")
	OptionalProperties_OptionalMultiplicityDataType_TYPE = OptionalProperties_OptionalMultiplicityDataType.DataType()
)

const OptionalProperties_OptionalPointDataType_NAME = "OptionalPointDataType"

var (
	OptionalProperties_OptionalPointDataType      = lookup[modelbase.PropertyType]("OptionalProperties_OptionalPointDataType")
	OptionalProperties_OptionalPointDataType_TYPE = OptionalProperties_OptionalPointDataType.DataType()
)

const OptionalProperties_OptionalStringDataType_NAME = "OptionalStringDataType"

var (
	OptionalProperties_OptionalStringDataType      = lookup[modelbase.PropertyType]("OptionalProperties_OptionalStringDataType")
	OptionalProperties_OptionalStringDataType_TYPE = OptionalProperties_OptionalStringDataType.DataType()
)

const OptionalProperties_OptionalStringRegexDataType_NAME = "OptionalStringRegexDataType"

var (
	OptionalProperties_OptionalStringRegexDataType      = lookup[modelbase.PropertyType]("OptionalProperties_OptionalStringRegexDataType")
	OptionalProperties_OptionalStringRegexDataType_TYPE = OptionalProperties_OptionalStringRegexDataType.DataType()
)

const OptionalProperties_OptionalTimePeriodDataType_NAME = "OptionalTimePeriodDataType"

var (
	OptionalProperties_OptionalTimePeriodDataType      = lookup[modelbase.PropertyType]("OptionalProperties_OptionalTimePeriodDataType")
	OptionalProperties_OptionalTimePeriodDataType_TYPE = OptionalProperties_OptionalTimePeriodDataType.DataType()
)

const OptionalProperties_OptionalTimeStampDataType_NAME = "OptionalTimeStampDataType"

var (
	OptionalProperties_OptionalTimeStampDataType      = lookup[modelbase.PropertyType]("OptionalProperties_OptionalTimeStampDataType")
	OptionalProperties_OptionalTimeStampDataType_TYPE = OptionalProperties_OptionalTimeStampDataType.DataType()
)

func NewOptionalProperties(obj mesh.MeshObject) *OptionalProperties {
	return &OptionalProperties{mesh.NewFacade(obj)}
}

func AsOptionalProperties(obj mesh.MeshObject) (*OptionalProperties, error) {
	return mesh.As(obj, OptionalProperties_TYPE, NewOptionalProperties)
}

func CreateOptionalProperties(f mesh.MeshObjectFactory) (*OptionalProperties, error) {
	return mesh.Create(f, OptionalProperties_TYPE, NewOptionalProperties)
}

func (o *OptionalProperties) OptionalBlobDataTypeAny() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, OptionalProperties_OptionalBlobDataTypeAny)
}

func (o *OptionalProperties) SetOptionalBlobDataTypeAny(v *primitives.BlobValue) error {
	return mesh.Set(o, OptionalProperties_OptionalBlobDataTypeAny, v)
}

func (o *OptionalProperties) OptionalBlobDataTypePlainOrHtml() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, OptionalProperties_OptionalBlobDataTypePlainOrHtml)
}

func (o *OptionalProperties) SetOptionalBlobDataTypePlainOrHtml(v *primitives.BlobValue) error {
	return mesh.Set(o, OptionalProperties_OptionalBlobDataTypePlainOrHtml, v)
}

func (o *OptionalProperties) OptionalBlobDataTypePlain() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, OptionalProperties_OptionalBlobDataTypePlain)
}

func (o *OptionalProperties) SetOptionalBlobDataTypePlain(v *primitives.BlobValue) error {
	return mesh.Set(o, OptionalProperties_OptionalBlobDataTypePlain, v)
}

func (o *OptionalProperties) OptionalBlobDataHtml() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, OptionalProperties_OptionalBlobDataHtml)
}

func (o *OptionalProperties) SetOptionalBlobDataHtml(v *primitives.BlobValue) error {
	return mesh.Set(o, OptionalProperties_OptionalBlobDataHtml, v)
}

func (o *OptionalProperties) OptionalBlobDataTypeImage() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, OptionalProperties_OptionalBlobDataTypeImage)
}

func (o *OptionalProperties) SetOptionalBlobDataTypeImage(v *primitives.BlobValue) error {
	return mesh.Set(o, OptionalProperties_OptionalBlobDataTypeImage, v)
}

func (o *OptionalProperties) OptionalBlobDataTypeJpg() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, OptionalProperties_OptionalBlobDataTypeJpg)
}

func (o *OptionalProperties) SetOptionalBlobDataTypeJpg(v *primitives.BlobValue) error {
	return mesh.Set(o, OptionalProperties_OptionalBlobDataTypeJpg, v)
}

func (o *OptionalProperties) OptionalBooleanDataType() (*primitives.BooleanValue, error) {
	return mesh.Get[*primitives.BooleanValue](o, OptionalProperties_OptionalBooleanDataType)
}

func (o *OptionalProperties) SetOptionalBooleanDataType(v *primitives.BooleanValue) error {
	return mesh.Set(o, OptionalProperties_OptionalBooleanDataType, v)
}

func (o *OptionalProperties) OptionalColorDataType() (*primitives.ColorValue, error) {
	return mesh.Get[*primitives.ColorValue](o, OptionalProperties_OptionalColorDataType)
}

func (o *OptionalProperties) SetOptionalColorDataType(v *primitives.ColorValue) error {
	return mesh.Set(o, OptionalProperties_OptionalColorDataType, v)
}

func (o *OptionalProperties) OptionalCurrencyDataType() (*primitives.CurrencyValue, error) {
	return mesh.Get[*primitives.CurrencyValue](o, OptionalProperties_OptionalCurrencyDataType)
}

func (o *OptionalProperties) SetOptionalCurrencyDataType(v *primitives.CurrencyValue) error {
	return mesh.Set(o, OptionalProperties_OptionalCurrencyDataType, v)
}

func (o *OptionalProperties) OptionalEnumeratedDataType() (*primitives.EnumeratedValue, error) {
	return mesh.Get[*primitives.EnumeratedValue](o, OptionalProperties_OptionalEnumeratedDataType)
}

func (o *OptionalProperties) SetOptionalEnumeratedDataType(v *primitives.EnumeratedValue) error {
	return mesh.Set(o, OptionalProperties_OptionalEnumeratedDataType, v)
}

func (o *OptionalProperties) OptionalExtentDataType() (*primitives.ExtentValue, error) {
	return mesh.Get[*primitives.ExtentValue](o, OptionalProperties_OptionalExtentDataType)
}

func (o *OptionalProperties) SetOptionalExtentDataType(v *primitives.ExtentValue) error {
	return mesh.Set(o, OptionalProperties_OptionalExtentDataType, v)
}

func (o *OptionalProperties) OptionalFloatDataType() (*primitives.FloatValue, error) {
	return mesh.Get[*primitives.FloatValue](o, OptionalProperties_OptionalFloatDataType)
}

func (o *OptionalProperties) SetOptionalFloatDataType(v *primitives.FloatValue) error {
	return mesh.Set(o, OptionalProperties_OptionalFloatDataType, v)
}

func (o *OptionalProperties) OptionalIntegerDataType() (*primitives.IntegerValue, error) {
	return mesh.Get[*primitives.IntegerValue](o, OptionalProperties_OptionalIntegerDataType)
}

func (o *OptionalProperties) SetOptionalIntegerDataType(v *primitives.IntegerValue) error {
	return mesh.Set(o, OptionalProperties_OptionalIntegerDataType, v)
}

func (o *OptionalProperties) OptionalMultiplicityDataType() (*primitives.MultiplicityValue, error) {
	return mesh.Get[*primitives.MultiplicityValue](o, OptionalProperties_OptionalMultiplicityDataType)
}

func (o *OptionalProperties) SetOptionalMultiplicityDataType(v *primitives.MultiplicityValue) error {
	return mesh.Set(o, OptionalProperties_OptionalMultiplicityDataType, v)
}

func (o *OptionalProperties) OptionalPointDataType() (*primitives.PointValue, error) {
	return mesh.Get[*primitives.PointValue](o, OptionalProperties_OptionalPointDataType)
}

func (o *OptionalProperties) SetOptionalPointDataType(v *primitives.PointValue) error {
	return mesh.Set(o, OptionalProperties_OptionalPointDataType, v)
}

func (o *OptionalProperties) OptionalStringDataType() (*primitives.StringValue, error) {
	return mesh.Get[*primitives.StringValue](o, OptionalProperties_OptionalStringDataType)
}

func (o *OptionalProperties) SetOptionalStringDataType(v *primitives.StringValue) error {
	return mesh.Set(o, OptionalProperties_OptionalStringDataType, v)
}

func (o *OptionalProperties) OptionalStringRegexDataType() (*primitives.StringValue, error) {
	return mesh.Get[*primitives.StringValue](o, OptionalProperties_OptionalStringRegexDataType)
}

func (o *OptionalProperties) SetOptionalStringRegexDataType(v *primitives.StringValue) error {
	return mesh.Set(o, OptionalProperties_OptionalStringRegexDataType, v)
}

func (o *OptionalProperties) OptionalTimePeriodDataType() (*primitives.TimePeriodValue, error) {
	return mesh.Get[*primitives.TimePeriodValue](o, OptionalProperties_OptionalTimePeriodDataType)
}

func (o *OptionalProperties) SetOptionalTimePeriodDataType(v *primitives.TimePeriodValue) error {
	return mesh.Set(o, OptionalProperties_OptionalTimePeriodDataType, v)
}

func (o *OptionalProperties) OptionalTimeStampDataType() (*primitives.TimeStampValue, error) {
	return mesh.Get[*primitives.TimeStampValue](o, OptionalProperties_OptionalTimeStampDataType)
}

func (o *OptionalProperties) SetOptionalTimeStampDataType(v *primitives.TimeStampValue) error {
	return mesh.Set(o, OptionalProperties_OptionalTimeStampDataType, v)
}
