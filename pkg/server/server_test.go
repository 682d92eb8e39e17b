package server_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	. "github.com/mandelsoft/meshmodel/pkg/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	_ "github.com/mandelsoft/meshmodel/pkg/healthz"
	"github.com/mandelsoft/meshmodel/pkg/server"
)

func get(url string) (int, string) {
	resp := Must(http.Get(url))
	defer resp.Body.Close()
	return resp.StatusCode, string(Must(io.ReadAll(resp.Body)))
}

var _ = Describe("server", func() {
	var ctx context.Context
	var cancel context.CancelFunc
	var srv *server.Server
	var base string

	BeforeEach(func() {
		ctx, cancel = context.WithCancel(context.Background())
		srv = server.NewServer(0, true, time.Second)
		srv.Handle("/test", http.HandlerFunc(testHandler))

		fs := Must(FileSystemWith(map[string]string{
			"model.yaml":      "name: test\n",
			"notes.txt":       "not a model\n",
			"more/extra.yaml": "name: extra\n",
		}))
		server.NewDirectoryHandler(fs, "/files", ".yaml").RegisterHandler(srv)

		ready, _ := Must2(srv.Start(ctx))
		MustBeSuccessful(ready.Wait())
		base = fmt.Sprintf("http://%s", srv.ListenAddr())
	})

	AfterEach(func() {
		cancel()
		MustBeSuccessful(srv.Wait())
	})

	It("serves handlers", func() {
		code, body := get(base + "/test")
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(Equal("test handler\n"))
	})

	It("serves health checks", func() {
		code, _ := get(base + "/healthz")
		Expect(code).To(Equal(http.StatusOK))
	})

	It("serves directories", func() {
		code, body := get(base + "/files/model.yaml")
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(Equal("name: test\n"))

		code, body = get(base + "/files/more/extra.yaml")
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(Equal("name: extra\n"))
	})

	It("hides files with other suffixes", func() {
		code, _ := get(base + "/files/notes.txt")
		Expect(code).To(Equal(http.StatusNotFound))
	})

	It("stops on cancellation", func() {
		cancel()
		MustBeSuccessful(srv.Wait())
		_, err := http.Get(base + "/test")
		Expect(err).To(HaveOccurred())
	})
})

func testHandler(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, "test handler\n")
}
