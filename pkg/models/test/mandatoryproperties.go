package test

import (
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

// MandatoryProperties is the facade for org.infogrid.model.Test/MandatoryProperties: has a mandatory property of each data type.
type MandatoryProperties struct {
	mesh.Facade
}

var MandatoryProperties_TYPE = lookup[modelbase.EntityType]("MandatoryProperties")

const MandatoryProperties_MandatoryBlobDataTypeAny_NAME = "MandatoryBlobDataTypeAny"

var (
	MandatoryProperties_MandatoryBlobDataTypeAny      = lookup[modelbase.PropertyType]("MandatoryProperties_MandatoryBlobDataTypeAny")
	MandatoryProperties_MandatoryBlobDataTypeAny_TYPE = MandatoryProperties_MandatoryBlobDataTypeAny.DataType().(*primitives.BlobDataType)
)

const MandatoryProperties_MandatoryBlobDataTypePlainOrHtml_NAME = "MandatoryBlobDataTypePlainOrHtml"

var (
	MandatoryProperties_MandatoryBlobDataTypePlainOrHtml      = lookup[modelbase.PropertyType]("MandatoryProperties_MandatoryBlobDataTypePlainOrHtml")
	MandatoryProperties_MandatoryBlobDataTypePlainOrHtml_TYPE = MandatoryProperties_MandatoryBlobDataTypePlainOrHtml.DataType().(*primitives.BlobDataType)
)

const MandatoryProperties_MandatoryBlobDataTypePlain_NAME = "MandatoryBlobDataTypePlain"

var (
	MandatoryProperties_MandatoryBlobDataTypePlain      = lookup[modelbase.PropertyType]("MandatoryProperties_MandatoryBlobDataTypePlain")
	MandatoryProperties_MandatoryBlobDataTypePlain_TYPE = MandatoryProperties_MandatoryBlobDataTypePlain.DataType().(*primitives.BlobDataType)
)

const MandatoryProperties_MandatoryBlobDataHtml_NAME = "MandatoryBlobDataHtml"

var (
	MandatoryProperties_MandatoryBlobDataHtml      = lookup[modelbase.PropertyType]("MandatoryProperties_MandatoryBlobDataHtml")
	MandatoryProperties_MandatoryBlobDataHtml_TYPE = MandatoryProperties_MandatoryBlobDataHtml.DataType().(*primitives.BlobDataType)
)

const MandatoryProperties_MandatoryBlobDataTypeImage_NAME = "MandatoryBlobDataTypeImage"

var (
	MandatoryProperties_MandatoryBlobDataTypeImage      = lookup[modelbase.PropertyType]("MandatoryProperties_MandatoryBlobDataTypeImage")
	MandatoryProperties_MandatoryBlobDataTypeImage_TYPE = MandatoryProperties_MandatoryBlobDataTypeImage.DataType().(*primitives.BlobDataType)
)

const MandatoryProperties_MandatoryBlobDataTypeJpg_NAME = "MandatoryBlobDataTypeJpg"

var (
	MandatoryProperties_MandatoryBlobDataTypeJpg      = lookup[modelbase.PropertyType]("MandatoryProperties_MandatoryBlobDataTypeJpg")
	MandatoryProperties_MandatoryBlobDataTypeJpg_TYPE = MandatoryProperties_MandatoryBlobDataTypeJpg.DataType().(*primitives.BlobDataType)
)

const MandatoryProperties_MandatoryBooleanDataType_NAME = "MandatoryBooleanDataType"

var (
	MandatoryProperties_MandatoryBooleanDataType      = lookup[modelbase.PropertyType]("MandatoryProperties_MandatoryBooleanDataType")
	MandatoryProperties_MandatoryBooleanDataType_TYPE = MandatoryProperties_MandatoryBooleanDataType.DataType()
)

const MandatoryProperties_MandatoryColorDataType_NAME = "MandatoryColorDataType"

var (
	MandatoryProperties_MandatoryColorDataType      = lookup[modelbase.PropertyType]("MandatoryProperties_MandatoryColorDataType")
	MandatoryProperties_MandatoryColorDataType_TYPE = MandatoryProperties_MandatoryColorDataType.DataType()
)

const MandatoryProperties_MandatoryCurrencyDataType_NAME = "MandatoryCurrencyDataType"

var (
	MandatoryProperties_MandatoryCurrencyDataType      = lookup[modelbase.PropertyType]("MandatoryProperties_MandatoryCurrencyDataType")
	MandatoryProperties_MandatoryCurrencyDataType_TYPE = MandatoryProperties_MandatoryCurrencyDataType.DataType()
)

const MandatoryProperties_MandatoryEnumeratedDataType_NAME = "MandatoryEnumeratedDataType"

var (
	MandatoryProperties_MandatoryEnumeratedDataType        = lookup[modelbase.PropertyType]("MandatoryProperties_MandatoryEnumeratedDataType")
	MandatoryProperties_MandatoryEnumeratedDataType_TYPE   = MandatoryProperties_MandatoryEnumeratedDataType.DataType().(*primitives.EnumeratedDataType)
	MandatoryProperties_MandatoryEnumeratedDataType_Value1 = MandatoryProperties_MandatoryEnumeratedDataType_TYPE.Select("Value1")
	MandatoryProperties_MandatoryEnumeratedDataType_Value2 = MandatoryProperties_MandatoryEnumeratedDataType_TYPE.Select("Value2")
	MandatoryProperties_MandatoryEnumeratedDataType_Value3 = MandatoryProperties_MandatoryEnumeratedDataType_TYPE.Select("Value3")
)

const MandatoryProperties_MandatoryExtentDataType_NAME = "MandatoryExtentDataType"

var (
	MandatoryProperties_MandatoryExtentDataType      = lookup[modelbase.PropertyType]("MandatoryProperties_MandatoryExtentDataType")
	MandatoryProperties_MandatoryExtentDataType_TYPE = MandatoryProperties_MandatoryExtentDataType.DataType()
)

const MandatoryProperties_MandatoryFloatDataType_NAME = "MandatoryFloatDataType"

var (
	MandatoryProperties_MandatoryFloatDataType      = lookup[modelbase.PropertyType]("MandatoryProperties_MandatoryFloatDataType")
	MandatoryProperties_MandatoryFloatDataType_TYPE = MandatoryProperties_MandatoryFloatDataType.DataType()
)

const MandatoryProperties_MandatoryIntegerDataType_NAME = "MandatoryIntegerDataType"

var (
	MandatoryProperties_MandatoryIntegerDataType      = lookup[modelbase.PropertyType]("MandatoryProperties_MandatoryIntegerDataType")
	MandatoryProperties_MandatoryIntegerDataType_TYPE = MandatoryProperties_MandatoryIntegerDataType.DataType()
)

const MandatoryProperties_MandatoryMultiplicityDataType_NAME = "MandatoryMultiplicityDataType"

var (
	MandatoryProperties_MandatoryMultiplicityDataType      = lookup[modelbase.PropertyType]("MandatoryProperties_MandatoryMultiplicityDataType")
	MandatoryProperties_MandatoryMultiplicityDataType_TYPE = MandatoryProperties_MandatoryMultiplicityDataType.DataType()
)

const MandatoryProperties_MandatoryPointDataType_NAME = "MandatoryPointDataType"

var (
	MandatoryProperties_MandatoryPointDataType      = lookup[modelbase.PropertyType]("MandatoryProperties_MandatoryPointDataType")
	MandatoryProperties_MandatoryPointDataType_TYPE = MandatoryProperties_MandatoryPointDataType.DataType()
)

const MandatoryProperties_MandatoryStringDataType_NAME = "MandatoryStringDataType"

var (
	MandatoryProperties_MandatoryStringDataType      = lookup[modelbase.PropertyType]("MandatoryProperties_MandatoryStringDataType")
	MandatoryProperties_MandatoryStringDataType_TYPE = MandatoryProperties_MandatoryStringDataType.DataType()
)

const MandatoryProperties_MandatoryStringRegexDataType_NAME = "MandatoryStringRegexDataType"

var (
	MandatoryProperties_MandatoryStringRegexDataType      = lookup[modelbase.PropertyType]("MandatoryProperties_MandatoryStringRegexDataType")
	MandatoryProperties_MandatoryStringRegexDataType_TYPE = MandatoryProperties_MandatoryStringRegexDataType.DataType()
)

const MandatoryProperties_MandatoryTimePeriodDataType_NAME = "MandatoryTimePeriodDataType"

var (
	MandatoryProperties_MandatoryTimePeriodDataType      = lookup[modelbase.PropertyType]("MandatoryProperties_MandatoryTimePeriodDataType")
	MandatoryProperties_MandatoryTimePeriodDataType_TYPE = MandatoryProperties_MandatoryTimePeriodDataType.DataType()
)

const MandatoryProperties_MandatoryTimeStampDataType_NAME = "MandatoryTimeStampDataType"

var (
	MandatoryProperties_MandatoryTimeStampDataType      = lookup[modelbase.PropertyType]("MandatoryProperties_MandatoryTimeStampDataType")
	MandatoryProperties_MandatoryTimeStampDataType_TYPE = MandatoryProperties_MandatoryTimeStampDataType.DataType()
)

func NewMandatoryProperties(obj mesh.MeshObject) *MandatoryProperties {
	return &MandatoryProperties{mesh.NewFacade(obj)}
}

func AsMandatoryProperties(obj mesh.MeshObject) (*MandatoryProperties, error) {
	return mesh.As(obj, MandatoryProperties_TYPE, NewMandatoryProperties)
}

func CreateMandatoryProperties(f mesh.MeshObjectFactory) (*MandatoryProperties, error) {
	return mesh.Create(f, MandatoryProperties_TYPE, NewMandatoryProperties)
}

func (o *MandatoryProperties) MandatoryBlobDataTypeAny() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, MandatoryProperties_MandatoryBlobDataTypeAny)
}

func (o *MandatoryProperties) SetMandatoryBlobDataTypeAny(v *primitives.BlobValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryBlobDataTypeAny, v)
}

func (o *MandatoryProperties) MandatoryBlobDataTypePlainOrHtml() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, MandatoryProperties_MandatoryBlobDataTypePlainOrHtml)
}

func (o *MandatoryProperties) SetMandatoryBlobDataTypePlainOrHtml(v *primitives.BlobValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryBlobDataTypePlainOrHtml, v)
}

func (o *MandatoryProperties) MandatoryBlobDataTypePlain() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, MandatoryProperties_MandatoryBlobDataTypePlain)
}

func (o *MandatoryProperties) SetMandatoryBlobDataTypePlain(v *primitives.BlobValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryBlobDataTypePlain, v)
}

func (o *MandatoryProperties) MandatoryBlobDataHtml() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, MandatoryProperties_MandatoryBlobDataHtml)
}

func (o *MandatoryProperties) SetMandatoryBlobDataHtml(v *primitives.BlobValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryBlobDataHtml, v)
}

func (o *MandatoryProperties) MandatoryBlobDataTypeImage() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, MandatoryProperties_MandatoryBlobDataTypeImage)
}

func (o *MandatoryProperties) SetMandatoryBlobDataTypeImage(v *primitives.BlobValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryBlobDataTypeImage, v)
}

func (o *MandatoryProperties) MandatoryBlobDataTypeJpg() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, MandatoryProperties_MandatoryBlobDataTypeJpg)
}

func (o *MandatoryProperties) SetMandatoryBlobDataTypeJpg(v *primitives.BlobValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryBlobDataTypeJpg, v)
}

func (o *MandatoryProperties) MandatoryBooleanDataType() (*primitives.BooleanValue, error) {
	return mesh.Get[*primitives.BooleanValue](o, MandatoryProperties_MandatoryBooleanDataType)
}

func (o *MandatoryProperties) SetMandatoryBooleanDataType(v *primitives.BooleanValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryBooleanDataType, v)
}

func (o *MandatoryProperties) MandatoryColorDataType() (*primitives.ColorValue, error) {
	return mesh.Get[*primitives.ColorValue](o, MandatoryProperties_MandatoryColorDataType)
}

func (o *MandatoryProperties) SetMandatoryColorDataType(v *primitives.ColorValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryColorDataType, v)
}

func (o *MandatoryProperties) MandatoryCurrencyDataType() (*primitives.CurrencyValue, error) {
	return mesh.Get[*primitives.CurrencyValue](o, MandatoryProperties_MandatoryCurrencyDataType)
}

func (o *MandatoryProperties) SetMandatoryCurrencyDataType(v *primitives.CurrencyValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryCurrencyDataType, v)
}

func (o *MandatoryProperties) MandatoryEnumeratedDataType() (*primitives.EnumeratedValue, error) {
	return mesh.Get[*primitives.EnumeratedValue](o, MandatoryProperties_MandatoryEnumeratedDataType)
}

func (o *MandatoryProperties) SetMandatoryEnumeratedDataType(v *primitives.EnumeratedValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryEnumeratedDataType, v)
}

func (o *MandatoryProperties) MandatoryExtentDataType() (*primitives.ExtentValue, error) {
	return mesh.Get[*primitives.ExtentValue](o, MandatoryProperties_MandatoryExtentDataType)
}

func (o *MandatoryProperties) SetMandatoryExtentDataType(v *primitives.ExtentValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryExtentDataType, v)
}

func (o *MandatoryProperties) MandatoryFloatDataType() (*primitives.FloatValue, error) {
	return mesh.Get[*primitives.FloatValue](o, MandatoryProperties_MandatoryFloatDataType)
}

func (o *MandatoryProperties) SetMandatoryFloatDataType(v *primitives.FloatValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryFloatDataType, v)
}

func (o *MandatoryProperties) MandatoryIntegerDataType() (*primitives.IntegerValue, error) {
	return mesh.Get[*primitives.IntegerValue](o, MandatoryProperties_MandatoryIntegerDataType)
}

func (o *MandatoryProperties) SetMandatoryIntegerDataType(v *primitives.IntegerValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryIntegerDataType, v)
}

func (o *MandatoryProperties) MandatoryMultiplicityDataType() (*primitives.MultiplicityValue, error) {
	return mesh.Get[*primitives.MultiplicityValue](o, MandatoryProperties_MandatoryMultiplicityDataType)
}

func (o *MandatoryProperties) SetMandatoryMultiplicityDataType(v *primitives.MultiplicityValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryMultiplicityDataType, v)
}

func (o *MandatoryProperties) MandatoryPointDataType() (*primitives.PointValue, error) {
	return mesh.Get[*primitives.PointValue](o, MandatoryProperties_MandatoryPointDataType)
}

func (o *MandatoryProperties) SetMandatoryPointDataType(v *primitives.PointValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryPointDataType, v)
}

func (o *MandatoryProperties) MandatoryStringDataType() (*primitives.StringValue, error) {
	return mesh.Get[*primitives.StringValue](o, MandatoryProperties_MandatoryStringDataType)
}

func (o *MandatoryProperties) SetMandatoryStringDataType(v *primitives.StringValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryStringDataType, v)
}

func (o *MandatoryProperties) MandatoryStringRegexDataType() (*primitives.StringValue, error) {
	return mesh.Get[*primitives.StringValue](o, MandatoryProperties_MandatoryStringRegexDataType)
}

func (o *MandatoryProperties) SetMandatoryStringRegexDataType(v *primitives.StringValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryStringRegexDataType, v)
}

func (o *MandatoryProperties) MandatoryTimePeriodDataType() (*primitives.TimePeriodValue, error) {
	return mesh.Get[*primitives.TimePeriodValue](o, MandatoryProperties_MandatoryTimePeriodDataType)
}

func (o *MandatoryProperties) SetMandatoryTimePeriodDataType(v *primitives.TimePeriodValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryTimePeriodDataType, v)
}

func (o *MandatoryProperties) MandatoryTimeStampDataType() (*primitives.TimeStampValue, error) {
	return mesh.Get[*primitives.TimeStampValue](o, MandatoryProperties_MandatoryTimeStampDataType)
}

func (o *MandatoryProperties) SetMandatoryTimeStampDataType(v *primitives.TimeStampValue) error {
	return mesh.Set(o, MandatoryProperties_MandatoryTimeStampDataType, v)
}
