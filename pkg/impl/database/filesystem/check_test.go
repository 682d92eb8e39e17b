package filesystem_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/meshmodel/pkg/impl/database/filesystem"
)

var _ = Describe("path elements", func() {
	DescribeTable("object names",
		func(name string, valid bool) {
			Expect(filesystem.CheckName(name)).To(Equal(valid))
		},
		Entry("simple", "A", true),
		Entry("digits", "A12", true),
		Entry("separators", "A-_12-", true),
		Entry("mesh object id", "0f8fad5b-d9cb-469f-a165-70867728950e", true),
		Entry("leading dash", "-A", false),
		Entry("parent dir", "..", false),
		Entry("path", "a/b", false),
		Entry("empty", "", false),
	)

	DescribeTable("namespaces",
		func(ns string, valid bool) {
			Expect(filesystem.CheckNamespace(ns)).To(Equal(valid))
		},
		Entry("root", "", true),
		Entry("simple", "mesh", true),
		Entry("nested", "mesh/base/sub", true),
		Entry("leading dash", "-mesh", false),
		Entry("nested leading dash", "mesh/-base", false),
		Entry("empty element", "mesh//base", false),
	)
})
