package test

import (
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

// AllProperties is the facade for objects blessed with org.infogrid.model.Test/AllProperties.
type AllProperties struct {
	mesh.Facade
}

var AllProperties_TYPE = lookup[modelbase.EntityType]("AllProperties")

func NewAllProperties(obj mesh.MeshObject) *AllProperties {
	return &AllProperties{mesh.NewFacade(obj)}
}

func AsAllProperties(obj mesh.MeshObject) (*AllProperties, error) {
	return mesh.As(obj, AllProperties_TYPE, NewAllProperties)
}

func CreateAllProperties(f mesh.MeshObjectFactory) (*AllProperties, error) {
	return mesh.Create(f, AllProperties_TYPE, NewAllProperties)
}

func (o *AllProperties) OptionalProperties() *OptionalProperties {
	return NewOptionalProperties(o.MeshObject)
}

func (o *AllProperties) MandatoryProperties() *MandatoryProperties {
	return NewMandatoryProperties(o.MeshObject)
}

func (o *AllProperties) OptionalBlobDataTypeAny() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, OptionalProperties_OptionalBlobDataTypeAny)
}

func (o *AllProperties) SetOptionalBlobDataTypeAny(v *primitives.BlobValue) error {
	return mesh.Set(o, OptionalProperties_OptionalBlobDataTypeAny, v)
}

func (o *AllProperties) OptionalBlobDataTypePlainOrHtml() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, OptionalProperties_OptionalBlobDataTypePlainOrHtml)
}

func (o *AllProperties) SetOptionalBlobDataTypePlainOrHtml(v *primitives.BlobValue) error {
	return mesh.Set(o, OptionalProperties_OptionalBlobDataTypePlainOrHtml, v)
}

func (o *AllProperties) OptionalBlobDataTypePlain() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, OptionalProperties_OptionalBlobDataTypePlain)
}

func (o *AllProperties) SetOptionalBlobDataTypePlain(v *primitives.BlobValue) error {
	return mesh.Set(o, OptionalProperties_OptionalBlobDataTypePlain, v)
}

func (o *AllProperties) OptionalBlobDataHtml() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, OptionalProperties_OptionalBlobDataHtml)
}

func (o *AllProperties) SetOptionalBlobDataHtml(v *primitives.BlobValue) error {
	return mesh.Set(o, OptionalProperties_OptionalBlobDataHtml, v)
}

func (o *AllProperties) OptionalBlobDataTypeImage() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, OptionalProperties_OptionalBlobDataTypeImage)
}

func (o *AllProperties) SetOptionalBlobDataTypeImage(v *primitives.BlobValue) error {
	return mesh.Set(o, OptionalProperties_OptionalBlobDataTypeImage, v)
}

func (o *AllProperties) OptionalBlobDataTypeJpg() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, OptionalProperties_OptionalBlobDataTypeJpg)
}

func (o *AllProperties) SetOptionalBlobDataTypeJpg(v *primitives.BlobValue) error {
	return mesh.Set(o, OptionalProperties_OptionalBlobDataTypeJpg, v)
}

func (o *AllProperties) OptionalBooleanDataType() (*primitives.BooleanValue, error) {
	return mesh.Get[*primitives.BooleanValue](o, OptionalProperties_OptionalBooleanDataType)
}

func (o *AllProperties) SetOptionalBooleanDataType(v *primitives.BooleanValue) error {
	return mesh.Set(o, OptionalProperties_OptionalBooleanDataType, v)
}

func (o *AllProperties) OptionalColorDataType() (*primitives.ColorValue, error) {
	return mesh.Get[*primitives.ColorValue](o, OptionalProperties_OptionalColorDataType)
}

func (o *AllProperties) SetOptionalColorDataType(v *primitives.ColorValue) error {
	return mesh.Set(o, OptionalProperties_OptionalColorDataType, v)
}

func (o *AllProperties) OptionalCurrencyDataType() (*primitives.CurrencyValue, error) {
	return mesh.Get[*primitives.CurrencyValue](o, OptionalProperties_OptionalCurrencyDataType)
}

func (o *AllProperties) SetOptionalCurrencyDataType(v *primitives.CurrencyValue) error {
	return mesh.Set(o, OptionalProperties_OptionalCurrencyDataType, v)
}

func (o *AllProperties) OptionalEnumeratedDataType() (*primitives.EnumeratedValue, error) {
	return mesh.Get[*primitives.EnumeratedValue](o, OptionalProperties_OptionalEnumeratedDataType)
}

func (o *AllProperties) SetOptionalEnumeratedDataType(v *primitives.EnumeratedValue) error {
	return mesh.Set(o, OptionalProperties_OptionalEnumeratedDataType, v)
}

func (o *AllProperties) OptionalExtentDataType() (*primitives.ExtentValue, error) {
	return mesh.Get[*primitives.ExtentValue](o, OptionalProperties_OptionalExtentDataType)
}

func (o *AllProperties) SetOptionalExtentDataType(v *primitives.ExtentValue) error {
	return mesh.Set(o, OptionalProperties_OptionalExtentDataType, v)
}

func (o *AllProperties) OptionalFloatDataType() (*primitives.FloatValue, error) {
	return mesh.Get[*primitives.FloatValue](o, OptionalProperties_OptionalFloatDataType)
}

func (o *AllProperties) SetOptionalFloatDataType(v *primitives.FloatValue) error {
	return mesh.Set(o, OptionalProperties_OptionalFloatDataType, v)
}

func (o *AllProperties) OptionalIntegerDataType() (*primitives.IntegerValue, error) {
	return mesh.Get[*primitives.IntegerValue](o, OptionalProperties_OptionalIntegerDataType)
}

func (o *AllProperties) SetOptionalIntegerDataType(v *primitives.IntegerValue) error {
	return mesh.Set(o, OptionalProperties_OptionalIntegerDataType, v)
}

func (o *AllProperties) OptionalMultiplicityDataType() (*primitives.MultiplicityValue, error) {
	return mesh.Get[*primitives.MultiplicityValue](o, OptionalProperties_OptionalMultiplicityDataType)
}

func (o *AllProperties) SetOptionalMultiplicityDataType(v *primitives.MultiplicityValue) error {
	return mesh.Set(o, OptionalProperties_OptionalMultiplicityDataType, v)
}

func (o *AllProperties) OptionalPointDataType() (*primitives.PointValue, error) {
	return mesh.Get[*primitives.PointValue](o, OptionalProperties_OptionalPointDataType)
}

func (o *AllProperties) SetOptionalPointDataType(v *primitives.PointValue) error {
	return mesh.Set(o, OptionalProperties_OptionalPointDataType, v)
}

func (o *AllProperties) OptionalStringDataType() (*primitives.StringValue, error) {
	return mesh.Get[*primitives.StringValue](o, OptionalProperties_OptionalStringDataType)
}

func (o *AllProperties) SetOptionalStringDataType(v *primitives.StringValue) error {
	return mesh.Set(o, OptionalProperties_OptionalStringDataType, v)
}

func (o *AllProperties) OptionalStringRegexDataType() (*primitives.StringValue, error) {
	return mesh.Get[*primitives.StringValue](o, OptionalProperties_OptionalStringRegexDataType)
}

func (o *AllProperties) SetOptionalStringRegexDataType(v *primitives.StringValue) error {
	return mesh.Set(o, OptionalProperties_OptionalStringRegexDataType, v)
}

func (o *AllProperties) OptionalTimePeriodDataType() (*primitives.TimePeriodValue, error) {
	return mesh.Get[*primitives.TimePeriodValue](o, OptionalProperties_OptionalTimePeriodDataType)
}

func (o *AllProperties) SetOptionalTimePeriodDataType(v *primitives.TimePeriodValue) error {
	return mesh.Set(o, OptionalProperties_OptionalTimePeriodDataType, v)
}

func (o *AllProperties) OptionalTimeStampDataType() (*primitives.TimeStampValue, error) {
	return mesh.Get[*primitives.TimeStampValue](o, OptionalProperties_OptionalTimeStampDataType)
}

func (o *AllProperties) SetOptionalTimeStampDataType(v *primitives.TimeStampValue) error {
	return mesh.Set(o, OptionalProperties_OptionalTimeStampDataType, v)
}

func (o *AllProperties) MandatoryBlobDataTypeAny() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, MandatoryProperties_MandatoryBlobDataTypeAny)
}

func (o *AllProperties) SetMandatoryBlobDataTypeAny(v *primitives.BlobValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryBlobDataTypeAny, v)
}

func (o *AllProperties) MandatoryBlobDataTypePlainOrHtml() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, MandatoryProperties_MandatoryBlobDataTypePlainOrHtml)
}

func (o *AllProperties) SetMandatoryBlobDataTypePlainOrHtml(v *primitives.BlobValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryBlobDataTypePlainOrHtml, v)
}

func (o *AllProperties) MandatoryBlobDataTypePlain() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, MandatoryProperties_MandatoryBlobDataTypePlain)
}

func (o *AllProperties) SetMandatoryBlobDataTypePlain(v *primitives.BlobValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryBlobDataTypePlain, v)
}

func (o *AllProperties) MandatoryBlobDataHtml() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, MandatoryProperties_MandatoryBlobDataHtml)
}

func (o *AllProperties) SetMandatoryBlobDataHtml(v *primitives.BlobValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryBlobDataHtml, v)
}

func (o *AllProperties) MandatoryBlobDataTypeImage() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, MandatoryProperties_MandatoryBlobDataTypeImage)
}

func (o *AllProperties) SetMandatoryBlobDataTypeImage(v *primitives.BlobValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryBlobDataTypeImage, v)
}

func (o *AllProperties) MandatoryBlobDataTypeJpg() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, MandatoryProperties_MandatoryBlobDataTypeJpg)
}

func (o *AllProperties) SetMandatoryBlobDataTypeJpg(v *primitives.BlobValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryBlobDataTypeJpg, v)
}

func (o *AllProperties) MandatoryBooleanDataType() (*primitives.BooleanValue, error) {
	return mesh.Get[*primitives.BooleanValue](o, MandatoryProperties_MandatoryBooleanDataType)
}

func (o *AllProperties) SetMandatoryBooleanDataType(v *primitives.BooleanValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryBooleanDataType, v)
}

func (o *AllProperties) MandatoryColorDataType() (*primitives.ColorValue, error) {
	return mesh.Get[*primitives.ColorValue](o, MandatoryProperties_MandatoryColorDataType)
}

func (o *AllProperties) SetMandatoryColorDataType(v *primitives.ColorValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryColorDataType, v)
}

func (o *AllProperties) MandatoryCurrencyDataType() (*primitives.CurrencyValue, error) {
	return mesh.Get[*primitives.CurrencyValue](o, MandatoryProperties_MandatoryCurrencyDataType)
}

func (o *AllProperties) SetMandatoryCurrencyDataType(v *primitives.CurrencyValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryCurrencyDataType, v)
}

func (o *AllProperties) MandatoryEnumeratedDataType() (*primitives.EnumeratedValue, error) {
	return mesh.Get[*primitives.EnumeratedValue](o, MandatoryProperties_MandatoryEnumeratedDataType)
}

func (o *AllProperties) SetMandatoryEnumeratedDataType(v *primitives.EnumeratedValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryEnumeratedDataType, v)
}

func (o *AllProperties) MandatoryExtentDataType() (*primitives.ExtentValue, error) {
	return mesh.Get[*primitives.ExtentValue](o, MandatoryProperties_MandatoryExtentDataType)
}

func (o *AllProperties) SetMandatoryExtentDataType(v *primitives.ExtentValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryExtentDataType, v)
}

func (o *AllProperties) MandatoryFloatDataType() (*primitives.FloatValue, error) {
	return mesh.Get[*primitives.FloatValue](o, MandatoryProperties_MandatoryFloatDataType)
}

func (o *AllProperties) SetMandatoryFloatDataType(v *primitives.FloatValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryFloatDataType, v)
}

func (o *AllProperties) MandatoryIntegerDataType() (*primitives.IntegerValue, error) {
	return mesh.Get[*primitives.IntegerValue](o, MandatoryProperties_MandatoryIntegerDataType)
}

func (o *AllProperties) SetMandatoryIntegerDataType(v *primitives.IntegerValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryIntegerDataType, v)
}

func (o *AllProperties) MandatoryMultiplicityDataType() (*primitives.MultiplicityValue, error) {
	return mesh.Get[*primitives.MultiplicityValue](o, MandatoryProperties_MandatoryMultiplicityDataType)
}

func (o *AllProperties) SetMandatoryMultiplicityDataType(v *primitives.MultiplicityValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryMultiplicityDataType, v)
}

func (o *AllProperties) MandatoryPointDataType() (*primitives.PointValue, error) {
	return mesh.Get[*primitives.PointValue](o, MandatoryProperties_MandatoryPointDataType)
}

func (o *AllProperties) SetMandatoryPointDataType(v *primitives.PointValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryPointDataType, v)
}

func (o *AllProperties) MandatoryStringDataType() (*primitives.StringValue, error) {
	return mesh.Get[*primitives.StringValue](o, MandatoryProperties_MandatoryStringDataType)
}

func (o *AllProperties) SetMandatoryStringDataType(v *primitives.StringValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryStringDataType, v)
}

func (o *AllProperties) MandatoryStringRegexDataType() (*primitives.StringValue, error) {
	return mesh.Get[*primitives.StringValue](o, MandatoryProperties_MandatoryStringRegexDataType)
}

func (o *AllProperties) SetMandatoryStringRegexDataType(v *primitives.StringValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryStringRegexDataType, v)
}

func (o *AllProperties) MandatoryTimePeriodDataType() (*primitives.TimePeriodValue, error) {
	return mesh.Get[*primitives.TimePeriodValue](o, MandatoryProperties_MandatoryTimePeriodDataType)
}

func (o *AllProperties) SetMandatoryTimePeriodDataType(v *primitives.TimePeriodValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryTimePeriodDataType, v)
}

func (o *AllProperties) MandatoryTimeStampDataType() (*primitives.TimeStampValue, error) {
	return mesh.Get[*primitives.TimeStampValue](o, MandatoryProperties_MandatoryTimeStampDataType)
}

func (o *AllProperties) SetMandatoryTimeStampDataType(v *primitives.TimeStampValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryTimeStampDataType, v)
}
