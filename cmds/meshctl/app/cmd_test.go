package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	. "github.com/mandelsoft/meshmodel/pkg/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/mandelsoft/meshmodel/cmds/meshctl/app"
	"github.com/mandelsoft/meshmodel/pkg/impl/database/sqlite"
	"github.com/mandelsoft/meshmodel/pkg/meshbase"
	"github.com/mandelsoft/meshmodel/pkg/meshbase/service"
	"github.com/mandelsoft/meshmodel/pkg/server"
)

type syncBuffer struct {
	lock sync.Mutex
	buf  bytes.Buffer
}

func (b *syncBuffer) Write(data []byte) (int, error) {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.buf.Write(data)
}

func (b *syncBuffer) String() string {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.buf.String()
}

const EXTRA = `
name: org.example.extra
dependencies: [ org.infogrid.model.Common ]
entityTypes:
  - name: Note
    supertypes: [ org.infogrid.model.Common/ComponentObject ]
    properties:
      - name: Text
        type: String
        default: ""
`

var _ = Describe("meshctl", func() {
	var cancel context.CancelFunc
	var srv *server.Server
	var fs vfs.FileSystem
	var base string

	run := func(args ...string) (string, error) {
		buf := &bytes.Buffer{}
		cmd := app.New(fs)
		cmd.SetOut(buf)
		cmd.SetErr(buf)
		cmd.SetArgs(append([]string{"-s", base}, args...))
		err := cmd.Execute()
		return buf.String(), err
	}

	create := func(args ...string) *service.ObjectView {
		out := Must(run(append([]string{"create", "-o", "json"}, args...)...))
		var v service.ObjectView
		MustBeSuccessful(json.Unmarshal([]byte(out), &v))
		return &v
	}

	BeforeEach(func() {
		var ctx context.Context
		ctx, cancel = context.WithCancel(context.Background())

		fs = Must(FileSystemWith(map[string]string{"models/extra.yaml": EXTRA}))

		db := Must(sqlite.New[meshbase.Object](meshbase.Scheme, sqlite.InMemoryDSN))
		mb := Must(meshbase.New("test", db))
		srv = server.NewServer(0, false, time.Second)
		access := service.New(mb, "/mesh")
		access.RegisterHandler(srv)
		DeferCleanup(access.Close)

		ready, _ := Must2(srv.Start(ctx))
		MustBeSuccessful(ready.Wait())
		base = fmt.Sprintf("http://%s", srv.ListenAddr())
	})

	AfterEach(func() {
		cancel()
		MustBeSuccessful(srv.Wait())
	})

	Context("objects", func() {
		It("creates and gets objects", func() {
			v := create("org.infogrid.model.Test/B", "-p", "U=hello")
			Expect(v.Types).To(ConsistOf(BeEquivalentTo("org.infogrid.model.Test/B")))
			Expect(*v.Properties["org.infogrid.model.Test/A_U"]).To(Equal("hello"))
			Expect(*v.Properties["org.infogrid.model.Test/B_Z"]).To(Equal("Value2"))

			out := Must(run("get", string(v.Identifier), "-o", "yaml"))
			Expect(out).To(ContainSubstring("org.infogrid.model.Test/A_U: hello"))

			out = Must(run("get"))
			lines := strings.Split(strings.TrimSpace(out), "\n")
			Expect(lines).To(HaveLen(2))
			Expect(lines[0]).To(HavePrefix("IDENTIFIER"))
			Expect(lines[1]).To(ContainSubstring(string(v.Identifier) + " "))
			Expect(lines[1]).To(ContainSubstring("org.infogrid.model.Test/B"))
		})

		It("modifies objects", func() {
			v := create("org.infogrid.model.Test/B", "-p", "U=hello")

			out := Must(run("set", string(v.Identifier), "U", "Z=Value3", "--bless", "org.infogrid.model.Test/C", "-o", "wide"))
			Expect(out).To(ContainSubstring("org.infogrid.model.Test/A_U: <null>"))
			Expect(out).To(ContainSubstring(`org.infogrid.model.Test/B_Z: "Value3"`))
			Expect(out).To(ContainSubstring("org.infogrid.model.Test/B,org.infogrid.model.Test/C"))

			_, err := run("set", string(v.Identifier), "Z=Value4")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(string(v.Identifier)))
		})

		It("relates objects", func() {
			aa := create("org.infogrid.model.Test/AA")
			b := create("org.infogrid.model.Test/B")

			out := Must(run("set", string(aa.Identifier), "--relate", string(b.Identifier)+"=org.infogrid.model.Test/R-S", "-o", "json"))
			var v service.ObjectView
			MustBeSuccessful(json.Unmarshal([]byte(out), &v))
			Expect(v.Neighbors).To(HaveKeyWithValue(b.Identifier, ConsistOf(BeEquivalentTo("org.infogrid.model.Test/R-S"))))

			other := create("org.infogrid.model.Test/AA")
			_, err := run("set", string(other.Identifier), "-r", string(b.Identifier)+"=org.infogrid.model.Test/R-S")
			Expect(err).To(MatchError(ContainSubstring("multiplicity")))

			out = Must(run("set", string(aa.Identifier), "--unrelate", string(b.Identifier), "-o", "json"))
			v = service.ObjectView{}
			MustBeSuccessful(json.Unmarshal([]byte(out), &v))
			Expect(v.Neighbors).To(BeEmpty())
		})

		It("parses relations", func() {
			Expect(app.ParseRelation("o1")).To(Equal(service.Relation{Neighbor: "o1"}))
			Expect(app.ParseRelation("o1=a/R-S,a/T-D").Roles).To(HaveLen(2))
		})

		It("reports illegal values", func() {
			_, err := run("create", "org.infogrid.model.Test/AllProperties", "-p", "MandatoryStringRegexDataType=localhost")
			Expect(err).To(MatchError(ContainSubstring("An IP address looks like this")))

			_, err = run("create", "org.infogrid.model.Test/A")
			Expect(err).To(MatchError(ContainSubstring("abstract")))
		})

		It("deletes objects", func() {
			v := create("org.infogrid.model.Test/C")
			out := Must(run("delete", string(v.Identifier)))
			Expect(out).To(Equal(string(v.Identifier) + " deleted\n"))

			_, err := run("get", string(v.Identifier))
			Expect(err).To(HaveOccurred())
			Expect(Must(run("get"))).To(Equal("no object found\n"))
		})

		It("creates fake objects", func() {
			out := Must(run("fake", "org.infogrid.model.Test/AllProperties", "3", "--seed", "1"))
			Expect(strings.Count(out, " created\n")).To(Equal(3))

			out = Must(run("get", "-o", "json"))
			var items service.Items[*service.ObjectView]
			MustBeSuccessful(json.Unmarshal([]byte(out), &items))
			Expect(items.Items).To(HaveLen(3))

			_, err := run("fake", "org.infogrid.model.Test/A", "1")
			Expect(err).To(MatchError(ContainSubstring("abstract")))
		})

		It("watches changes", func() {
			ctx, stop := context.WithCancel(context.Background())
			defer stop()

			buf := &syncBuffer{}
			done := make(chan error, 1)
			go func() {
				defer GinkgoRecover()
				cmd := app.New(fs)
				cmd.SetOut(buf)
				cmd.SetArgs([]string{"-s", base, "watch", "--kind", "Created"})
				done <- cmd.ExecuteContext(ctx)
			}()

			Eventually(func() string {
				// the watch may not yet be registered
				create("org.infogrid.model.Test/C")
				return buf.String()
			}, 5*time.Second, 100*time.Millisecond).Should(ContainSubstring("Created test/"))
			Expect(buf.String()).NotTo(ContainSubstring("PropertyChanged"))

			stop()
			Eventually(done, 5*time.Second).Should(Receive(BeNil()))
		})
	})

	Context("model", func() {
		It("lists subject areas", func() {
			out := Must(run("model", "list"))
			Expect(out).To(HavePrefix("NAME"))
			Expect(out).To(ContainSubstring("org.infogrid.model.Test "))
			Expect(out).To(MatchRegexp(`org.infogrid.model.Blob +[0-9a-f]+ +org.infogrid.model.Common`))

			out = Must(run("model", "list", "--dir", "models"))
			Expect(out).To(ContainSubstring("org.example.extra "))
		})

		It("lists the subject areas of the server", func() {
			out := Must(run("model", "list", "--remote", "-o", "json"))
			var items service.Items[*service.SubjectAreaInfo]
			MustBeSuccessful(json.Unmarshal([]byte(out), &items))
			Expect(items.Items).NotTo(BeEmpty())
		})

		It("shows meta types", func() {
			out := Must(run("model", "show", "org.infogrid.model.Test/A_X"))
			Expect(out).To(ContainSubstring("data type: String"))
			Expect(out).To(ContainSubstring("optional:  true"))

			out = Must(run("model", "show", "org.infogrid.model.Test/RR"))
			Expect(out).To(ContainSubstring("refines org.infogrid.model.Test/R-S"))

			out = Must(run("model", "show", "org.example.extra", "--dir", "models"))
			Expect(out).To(ContainSubstring("name: org.example.extra"))
		})

		It("dumps subject areas", func() {
			out := Must(run("model", "dump", "org.infogrid.model.Bookmark"))
			Expect(out).To(HavePrefix("Subject area: org.infogrid.model.Bookmark\n"))
		})

		It("validates subject areas", func() {
			out := Must(run("model", "validate", "--dir", "models"))
			Expect(out).To(ContainSubstring("OK     org.example.extra"))

			MustBeSuccessful(vfs.WriteFile(fs, "models/broken.yaml", []byte("name: org.example.broken\nentityTypes:\n  - name: X\n    supertypes: [ Missing ]\n"), 0o600))
			out, err := run("model", "validate", "--dir", "models")
			Expect(err).To(MatchError("invalid subject areas"))
			Expect(out).To(ContainSubstring("FAILED"))
		})
	})
})
