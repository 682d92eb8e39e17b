package random_test

import (
	. "github.com/mandelsoft/meshmodel/pkg/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/meshmodel/cmds/meshctl/app/random"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/utils"
)

var _ = Describe("random values", func() {
	var gen *random.Generator

	BeforeEach(func() {
		gen = random.New(4711)
	})

	It("generates conforming values for all families", func() {
		for _, f := range primitives.Families() {
			spec := primitives.DataTypeSpecification{Type: f}
			if f == primitives.ENUMERATED {
				spec.Values = []primitives.EnumeratedEntry{{Key: "a"}, {Key: "b"}}
			}
			dt := Must(spec.Create())
			for i := 0; i < 20; i++ {
				v, ok := gen.Value(dt)
				if f == primitives.BLOB {
					// the default MIME type of any blob is text/plain
					Expect(ok).To(BeTrue())
				}
				if ok {
					Expect(dt.Conforms(v)).To(Succeed(), "%s", f)
					Expect(v.DataTypeName()).To(Equal(f))
				}
			}
		}
	})

	It("respects ranges", func() {
		dt := primitives.NewIntegerDataType(utils.Pointer(int64(5)), utils.Pointer(int64(7)))
		for i := 0; i < 50; i++ {
			v, ok := gen.Value(dt)
			Expect(ok).To(BeTrue())
			Expect(v.(*primitives.IntegerValue).Value()).To(And(BeNumerically(">=", 5), BeNumerically("<=", 7)))
		}
		ft := primitives.NewFloatDataType(utils.Pointer(0.0), nil)
		for i := 0; i < 50; i++ {
			v, ok := gen.Value(ft)
			Expect(ok).To(BeTrue())
			Expect(v.(*primitives.FloatValue).Value()).To(BeNumerically(">=", 0))
		}
	})

	It("rejects non-text blobs and non-matching strings", func() {
		_, ok := gen.Value(primitives.TheGifType)
		Expect(ok).To(BeFalse())

		dt := Must(primitives.NewRegexStringDataType(`\d+`, ""))
		_, ok = gen.Value(dt)
		Expect(ok).To(BeFalse())
	})
})
