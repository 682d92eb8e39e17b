package runtime_test

import (
	. "github.com/mandelsoft/meshmodel/pkg/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/meshmodel/pkg/runtime"
)

type Record struct {
	runtime.ObjectMeta `json:",inline"`
	Value              string `json:"value"`
}

type Other struct {
	runtime.ObjectMeta `json:",inline"`
}

var _ = Describe("scheme", func() {
	var scheme runtime.Scheme[runtime.Object]

	BeforeEach(func() {
		scheme = runtime.NewYAMLScheme[runtime.Object](runtime.TypeExtractorFor[runtime.ObjectMeta]())
		runtime.MustRegister[Record, *Record, runtime.Object](scheme, "Record")
	})

	It("creates objects by type name", func() {
		o := Must(scheme.CreateObject("Record"))
		Expect(o).To(BeAssignableToTypeOf(&Record{}))
		Expect(o.GetType()).To(Equal("Record"))
	})

	It("rejects unknown types", func() {
		_, err := scheme.CreateObject("Unknown")
		Expect(err).To(MatchError(`unknown object type "Unknown"`))
	})

	It("rejects conflicting registrations", func() {
		MustBeSuccessful(runtime.Register[Record, *Record, runtime.Object](scheme, "Record"))
		err := runtime.Register[Other, *Other, runtime.Object](scheme, "Record")
		Expect(err).To(MatchError(ContainSubstring(`type name "Record" already used`)))
	})

	It("encodes and decodes YAML and JSON", func() {
		data := Must(scheme.Encode(&Record{runtime.ObjectMeta{Type: "Record"}, "v"}))
		Expect(string(data)).To(Equal("type: Record\nvalue: v\n"))

		o := Must(scheme.Decode([]byte(`{"type":"Record","value":"json"}`)))
		Expect(o.(*Record).Value).To(Equal("json"))
	})

	It("requires a type", func() {
		_, err := scheme.Decode([]byte("value: v\n"))
		Expect(err).To(MatchError("serialized object has no type"))
	})
})
