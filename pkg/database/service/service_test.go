package service_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	. "github.com/mandelsoft/meshmodel/pkg/impl/database/filesystem/testtypes"
	. "github.com/mandelsoft/meshmodel/pkg/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/vfs/pkg/memoryfs"

	"github.com/mandelsoft/meshmodel/pkg/database/service"
	"github.com/mandelsoft/meshmodel/pkg/impl/database/filesystem"
	"github.com/mandelsoft/meshmodel/pkg/server"
)

var _ = Describe("raw database access", func() {
	var cancel context.CancelFunc
	var srv *server.Server
	var base string

	request := func(method, path string) (int, string) {
		req := Must(http.NewRequest(method, base+path, nil))
		resp := Must(http.DefaultClient.Do(req))
		defer resp.Body.Close()
		return resp.StatusCode, string(Must(io.ReadAll(resp.Body)))
	}

	BeforeEach(func() {
		var ctx context.Context
		ctx, cancel = context.WithCancel(context.Background())

		db := Must(filesystem.New[Object](Scheme, "/db", memoryfs.New()))
		MustBeSuccessful(db.SetObject(NewLink("ns1", "o1", "https://example.org/ns1/o1")))
		MustBeSuccessful(db.SetObject(NewNote("ns2", "o2", "second note")))

		srv = server.NewServer(0, false, time.Second)
		service.New(db, "/db").RegisterHandler(srv)
		ready, _ := Must2(srv.Start(ctx))
		MustBeSuccessful(ready.Wait())
		base = fmt.Sprintf("http://%s", srv.ListenAddr())
	})

	AfterEach(func() {
		cancel()
		MustBeSuccessful(srv.Wait())
	})

	It("gets records", func() {
		code, body := request(http.MethodGet, "/db/Link/ns1/o1")
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring(`"name":"o1"`))
		Expect(body).To(ContainSubstring(`"url":"https://example.org/ns1/o1"`))
	})

	It("reports missing records", func() {
		code, _ := request(http.MethodGet, "/db/Link/ns1/missing")
		Expect(code).To(Equal(http.StatusNotFound))
	})

	It("lists records", func() {
		code, body := request("LIST", "/db/Link/*")
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring(`"https://example.org/ns1/o1"`))
		Expect(body).NotTo(ContainSubstring(`"second note"`))

		code, body = request("LIST", "/db/Note/ns2")
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring(`"second note"`))

		code, _ = request("LIST", "/db/*")
		Expect(code).To(Equal(http.StatusBadRequest))
	})

	It("rejects modifications", func() {
		code, body := request(http.MethodDelete, "/db/Link/ns1/o1")
		Expect(code).To(Equal(http.StatusMethodNotAllowed))
		Expect(body).To(MatchJSON(`{"error":"method not allowed"}`))
	})
})
