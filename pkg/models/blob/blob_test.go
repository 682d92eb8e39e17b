package blob_test

import (
	. "github.com/mandelsoft/meshmodel/pkg/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/meshmodel/pkg/impl/database/sqlite"
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	me "github.com/mandelsoft/meshmodel/pkg/meshbase"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
	"github.com/mandelsoft/meshmodel/pkg/models/blob"
	"github.com/mandelsoft/meshmodel/pkg/models/common"
)

var _ = Describe("blob subject area", func() {
	var mb *me.MeshBase

	BeforeEach(func() {
		db := Must(sqlite.New[me.Object](me.Scheme, sqlite.InMemoryDSN))
		mb = Must(me.New("blobs", db))
	})

	It("depends on the common subject area", func() {
		Expect(blob.SUBJECTAREA.Dependencies()).To(Equal([]modelbase.SubjectArea{common.SUBJECTAREA}))
		Expect(blob.File_TYPE.IsSubtypeOfOrEquals(common.ComponentObject_TYPE)).To(BeTrue())
		Expect(blob.File_TYPE.IsSubtypeOfOrEquals(common.DefinitionObject_TYPE)).To(BeTrue())
		Expect(blob.Image_Content_TYPE.Accepts(primitives.MIME_PNG)).To(BeTrue())
		Expect(blob.Image_Content_TYPE.Accepts(primitives.MIME_TEXT_PLAIN)).To(BeFalse())
	})

	It("handles inherited properties", func() {
		var file *blob.File
		MustBeSuccessful(mb.Execute(func(tx *me.Transaction) error {
			var err error
			file, err = blob.CreateFile(tx)
			if err != nil {
				return err
			}
			err = file.SetContent(primitives.NewTextBlob(primitives.MIME_TEXT_PLAIN, "hello"))
			if err != nil {
				return err
			}
			return file.SetSequenceNumber(primitives.NewFloat(2))
		}))

		Expect(Must(file.ComponentObject().SequenceNumber())).To(Equal(primitives.NewFloat(2)))
		Expect(Must(file.BlobObject().Content()).AsString()).To(Equal("hello"))

		obj := Must(mb.FindMeshObject(file.Identifier()))
		component := Must(common.AsComponentObject(obj))
		Expect(component.SequenceNumber()).To(Equal(primitives.NewFloat(2)))
	})

	It("restricts image content", func() {
		var img *blob.Image
		MustBeSuccessful(mb.Execute(func(tx *me.Transaction) (err error) {
			img, err = blob.CreateImage(tx)
			return err
		}))
		tx := mb.Begin()
		defer tx.Rollback()
		img = Must(blob.AsImage(Must(tx.Object(img))))
		Expect(img.SetContent(primitives.NewTextBlob(primitives.MIME_TEXT_HTML, "<p/>"))).To(MatchError(mesh.ErrIllegalPropertyValue))
		Expect(img.SetContent(primitives.NewBlob(primitives.MIME_PNG, []byte{0x89, 'P', 'N', 'G'}))).To(Succeed())
	})
})
