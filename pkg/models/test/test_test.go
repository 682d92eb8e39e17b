package test_test

import (
	. "github.com/mandelsoft/meshmodel/pkg/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/vfs/pkg/memoryfs"

	"github.com/mandelsoft/meshmodel/pkg/impl/database/filesystem"
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	me "github.com/mandelsoft/meshmodel/pkg/meshbase"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
	"github.com/mandelsoft/meshmodel/pkg/models/test"
)

var _ = Describe("test subject area", func() {
	var mb *me.MeshBase

	BeforeEach(func() {
		db := Must(filesystem.New[me.Object](me.Scheme, "/db", memoryfs.New()))
		mb = Must(me.New("test", db))
	})

	execute := func(f func(tx *me.Transaction) error) {
		MustBeSuccessful(mb.Execute(f))
	}

	Context("meta types", func() {
		It("resolves identifiers", func() {
			Expect(test.SUBJECTAREA.Identifier()).To(Equal(modelbase.Identifier("org.infogrid.model.Test")))
			Expect(test.A_TYPE.Identifier()).To(Equal(modelbase.Identifier("org.infogrid.model.Test/A")))
			Expect(test.A_X.Identifier()).To(Equal(modelbase.Identifier("org.infogrid.model.Test/A_X")))
			Expect(test.B_U.Identifier()).To(Equal(modelbase.Identifier("org.infogrid.model.Test/A_U")))
			Expect(test.R_TYPE.Identifier()).To(Equal(modelbase.Identifier("org.infogrid.model.Test/R")))
			Expect(test.A_R_SOURCE.Identifier()).To(Equal(modelbase.Identifier("org.infogrid.model.Test/R-S")))
			Expect(test.B_R_DESTINATION.Identifier()).To(Equal(modelbase.Identifier("org.infogrid.model.Test/R-D")))
		})

		It("provides the singleton entries", func() {
			Expect(modelbase.FindEntityType("org.infogrid.model.Test/AA")).To(BeIdenticalTo(test.AA_TYPE))
			Expect(test.AA_TYPE.DirectSupertypes()).To(Equal([]modelbase.EntityType{test.A_TYPE}))
			Expect(test.A_TYPE.IsAbstract()).To(BeTrue())
			Expect(test.AA_TYPE.AllPropertyTypes()).To(ConsistOf(test.A_X, test.A_XX, test.A_ReadOnly, test.AA_Y))
		})

		It("describes property types", func() {
			Expect(test.A_X_NAME).To(Equal("X"))
			Expect(test.A_X_TYPE).To(BeIdenticalTo(primitives.TheStringType))
			Expect(test.A_ReadOnly.IsReadOnly()).To(BeTrue())
			Expect(test.AA_Y.IsOptional()).To(BeTrue())
			Expect(test.AA_Y.DefaultValue()).To(Equal(primitives.NewFloat(12.34)))
			Expect(test.B_Z_Value2.UserVisibleName()).To(Equal("Second value of Z"))
			Expect(primitives.EqualValues(test.B_Z.DefaultValue(), test.B_Z_Value2)).To(BeTrue())
			Expect(test.B_Z_TYPE.Domain()).To(HaveLen(3))
		})

		It("refines roles", func() {
			Expect(test.AA_RR_SOURCE.RefinedRoleTypes()).To(Equal([]modelbase.RoleType{test.R_SOURCE}))
			Expect(test.B_RR_DESTINATION.RefinedRoleTypes()).To(Equal([]modelbase.RoleType{test.R_DESTINATION}))
			Expect(test.ARAny_DESTINATION.EntityType()).To(BeNil())
			Expect(test.A_R_SOURCE.Multiplicity()).To(Equal(primitives.NewMultiplicity(0, primitives.N)))
			Expect(test.B_R_DESTINATION.Multiplicity()).To(Equal(primitives.NewMultiplicity(0, 1)))
		})

		It("combines optional and mandatory properties", func() {
			all := test.AllProperties_TYPE.AllPropertyTypes()
			Expect(all).To(HaveLen(len(test.OptionalProperties_TYPE.LocalPropertyTypes()) + len(test.MandatoryProperties_TYPE.LocalPropertyTypes())))
			for _, pt := range test.OptionalProperties_TYPE.LocalPropertyTypes() {
				Expect(pt.IsOptional()).To(BeTrue())
				Expect(pt.DefaultValue()).To(BeNil())
			}
			Expect(primitives.Families()).To(HaveLen(13))
		})
	})

	Context("facades", func() {
		It("creates objects with defaults", func() {
			var aa *test.AA
			execute(func(tx *me.Transaction) (err error) {
				aa, err = test.CreateAA(tx)
				return err
			})
			Expect(aa.X()).To(BeNil())
			Expect(aa.Y()).To(Equal(primitives.NewFloat(12.34)))
			Expect(aa.ReadOnly()).To(Equal(primitives.TRUE))

			execute(func(tx *me.Transaction) error {
				return Must(test.AsAA(Must(tx.Object(aa)))).SetX(primitives.NewString("value"))
			})
			Expect(aa.X()).To(Equal(primitives.NewString("value")))
			Expect(Must(aa.A().X())).To(Equal(primitives.NewString("value")))

			a := Must(test.AsA(aa.GetMeshObject()))
			Expect(a.Identifier()).To(Equal(aa.Identifier()))
			_, err := test.AsB(aa)
			Expect(err).To(MatchError(mesh.ErrNotBlessed))
		})

		It("rejects modifications without transaction", func() {
			var b *test.B
			execute(func(tx *me.Transaction) (err error) {
				b, err = test.CreateB(tx)
				return err
			})
			Expect(primitives.EqualValues(Must(b.Z()), test.B_Z_Value2)).To(BeTrue())
			Expect(b.SetZ(test.B_Z_Value3)).To(MatchError(mesh.ErrTransaction))
			Expect(Must(test.AsB(Must(mb.FindMeshObject(b.Identifier())))).SetZ(test.B_Z_Value3)).To(MatchError(mesh.ErrNoTransaction))
			execute(func(tx *me.Transaction) error {
				return Must(test.AsB(Must(tx.Object(b)))).SetZ(test.B_Z_Value3)
			})
			Expect(primitives.EqualValues(Must(b.Z()), test.B_Z_Value3)).To(BeTrue())
		})

		It("rejects illegal values", func() {
			var o *test.AllProperties
			execute(func(tx *me.Transaction) (err error) {
				o, err = test.CreateAllProperties(tx)
				return err
			})
			tx := mb.Begin()
			defer tx.Rollback()
			o = Must(test.AsAllProperties(Must(tx.Object(o))))

			err := o.SetMandatoryStringDataType(nil)
			Expect(err).To(MatchError(mesh.ErrIllegalPropertyValue))
			Expect(o.SetOptionalStringDataType(nil)).To(Succeed())

			err = o.SetMandatoryStringRegexDataType(primitives.NewString("localhost"))
			Expect(err).To(MatchError(primitives.ErrNonConforming))
			Expect(err.Error()).To(ContainSubstring("An IP address looks like this"))
			Expect(o.SetMandatoryStringRegexDataType(primitives.NewString("10.0.0.1"))).To(Succeed())

			err = o.SetMandatoryBlobDataTypeImage(primitives.NewTextBlob(primitives.MIME_TEXT_PLAIN, "text"))
			Expect(err).To(MatchError(primitives.ErrNonConforming))
			Expect(o.SetOptionalBlobDataTypePlainOrHtml(primitives.NewTextBlob(primitives.MIME_TEXT_HTML, "<p/>"))).To(Succeed())
		})

		It("provides mandatory defaults", func() {
			var o *test.MandatoryProperties
			execute(func(tx *me.Transaction) (err error) {
				o, err = test.CreateMandatoryProperties(tx)
				return err
			})
			Expect(o.MandatoryIntegerDataType()).To(Equal(primitives.NewInteger(1)))
			Expect(o.MandatoryBooleanDataType()).To(Equal(primitives.TRUE))
			Expect(o.MandatoryColorDataType()).To(Equal(primitives.NewColor(0, 0, 123, 0)))
			Expect(o.MandatoryPointDataType()).To(Equal(primitives.NewPoint(1, 2)))
			Expect(o.MandatoryExtentDataType()).To(Equal(primitives.NewExtent(1, 2)))
			Expect(o.MandatoryMultiplicityDataType()).To(Equal(primitives.NewMultiplicity(1, primitives.N)))
			Expect(o.MandatoryTimeStampDataType()).To(Equal(primitives.NewTimeStamp(978307199999)))
			Expect(Must(o.MandatoryCurrencyDataType()).String()).To(Equal("1.00 USD"))
			Expect(Must(o.MandatoryTimePeriodDataType()).String()).To(Equal("P1Y2M3DT4H5M6S"))
			Expect(Must(o.MandatoryStringRegexDataType())).To(Equal(primitives.NewString("127.0.0.1")))

			img := Must(o.MandatoryBlobDataTypeImage())
			Expect(img.MimeType()).To(Equal(primitives.MIME_GIF))
			Expect(img.AsString()).To(Equal("DEFAULT VALUE"))
		})

		It("traverses relationships", func() {
			var aa *test.AA
			var b *test.B
			execute(func(tx *me.Transaction) (err error) {
				aa = Must(test.CreateAA(tx))
				b = Must(test.CreateB(tx))
				return aa.A().RelateR(b)
			})
			related := Must(aa.A().R())
			Expect(related).To(HaveLen(1))
			Expect(related[0].Identifier()).To(Equal(b.Identifier()))
			sources := Must(b.RSources())
			Expect(sources).To(HaveLen(1))
			Expect(sources[0].Identifier()).To(Equal(aa.Identifier()))

			tx := mb.Begin()
			defer tx.Rollback()
			other := Must(test.CreateAA(tx))
			err := other.A().RelateR(Must(test.AsB(Must(tx.Object(b)))))
			Expect(err).To(MatchError(mesh.ErrMultiplicity))
			Expect(Must(other.A().R())).To(BeEmpty())
			Expect(Must(aa.RoleTypes(b))).To(Equal([]modelbase.RoleType{test.A_R_SOURCE}))
		})
	})
})
