package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	. "github.com/mandelsoft/meshmodel/pkg/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/vfs/pkg/memoryfs"

	"github.com/mandelsoft/meshmodel/pkg/impl/database/filesystem"
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/meshbase"
	"github.com/mandelsoft/meshmodel/pkg/meshbase/service"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
	"github.com/mandelsoft/meshmodel/pkg/server"
	"github.com/mandelsoft/meshmodel/watch"
)

const MODEL = `
name: org.example.service
entityTypes:
  - name: Item
    properties:
      - name: Name
        type: String
        optional: true
      - name: Count
        type:
          type: Integer
          min: 0
        default: 0
      - name: Kind
        type: String
        default: item
        readOnly: true
  - name: Tagged
    properties:
      - name: Tag
        type: String
        optional: true
  - name: Abstract
    abstract: true
relationshipTypes:
  - name: Contains
    source:
      entityType: Item
    destination:
      entityType: Item
      multiplicity: 0..1
`

const ITEM = "org.example.service/Item"
const CONTAINS = "org.example.service/Contains"

func request(method, url string, body interface{}) (int, []byte) {
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(Must(json.Marshal(body)))
	}
	req := Must(http.NewRequest(method, url, r))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := Must(http.DefaultClient.Do(req))
	defer resp.Body.Close()
	return resp.StatusCode, Must(io.ReadAll(resp.Body))
}

func view(data []byte) *service.ObjectView {
	var v service.ObjectView
	MustBeSuccessful(json.Unmarshal(data, &v))
	return &v
}

func str(s string) *string {
	return &s
}

var _ = Describe("mesh base service", func() {
	var ctx context.Context
	var cancel context.CancelFunc
	var srv *server.Server
	var access *service.MeshBaseAccess
	var base string

	BeforeEach(func() {
		ctx, cancel = context.WithCancel(context.Background())
		mdl := modelbase.New()
		Must(mdl.LoadSubjectArea(Must(modelbase.ParseSubjectArea([]byte(MODEL)))))
		db := Must(filesystem.New[meshbase.Object](meshbase.Scheme, "/db", memoryfs.New()))
		mb := Must(meshbase.New("test", db, meshbase.WithModelBase(mdl)))

		srv = server.NewServer(0, false, time.Second)
		access = service.New(mb, "/mesh")
		access.RegisterHandler(srv)
		Must2(srv.Start(ctx))
		base = fmt.Sprintf("http://%s", srv.ListenAddr())
	})

	AfterEach(func() {
		access.Close()
		cancel()
		MustBeSuccessful(srv.Wait())
	})

	create := func() *service.ObjectView {
		code, data := request(http.MethodPost, base+"/mesh/", &service.CreateRequest{
			Types:      []modelbase.Identifier{ITEM},
			Properties: map[string]*string{"Name": str("first")},
		})
		Expect(code).To(Equal(http.StatusCreated), string(data))
		return view(data)
	}

	It("creates and gets objects", func() {
		v := create()
		Expect(v.MeshBase).To(Equal("test"))
		Expect(v.Types).To(Equal([]modelbase.Identifier{ITEM}))
		Expect(v.Properties).To(Equal(map[modelbase.Identifier]*string{
			ITEM + "_Name":  str("first"),
			ITEM + "_Count": str("0"),
			ITEM + "_Kind":  str("item"),
		}))

		code, data := request(http.MethodGet, base+"/mesh/"+string(v.Identifier), nil)
		Expect(code).To(Equal(http.StatusOK))
		Expect(view(data).Properties).To(Equal(v.Properties))
	})

	It("lists objects", func() {
		v1 := create()
		v2 := create()
		code, data := request("LIST", base+"/mesh/", nil)
		Expect(code).To(Equal(http.StatusOK))
		var items service.Items[*service.ObjectView]
		MustBeSuccessful(json.Unmarshal(data, &items))
		var ids []mesh.MeshObjectIdentifier
		for _, i := range items.Items {
			ids = append(ids, i.Identifier)
		}
		Expect(ids).To(ConsistOf(v1.Identifier, v2.Identifier))
	})

	It("updates objects", func() {
		v := create()
		code, data := request(http.MethodPut, base+"/mesh/"+string(v.Identifier), &service.UpdateRequest{
			Bless: []modelbase.Identifier{"org.example.service/Tagged"},
			Properties: map[string]*string{
				"Tag":          str("red"),
				ITEM + "_Name": nil,
				"Count":        str("3"),
			},
		})
		Expect(code).To(Equal(http.StatusOK), string(data))
		u := view(data)
		Expect(u.Types).To(ConsistOf(modelbase.Identifier(ITEM), modelbase.Identifier("org.example.service/Tagged")))
		Expect(u.Properties[ITEM+"_Name"]).To(BeNil())
		Expect(u.Properties[ITEM+"_Count"]).To(Equal(str("3")))
		Expect(u.Properties["org.example.service/Tagged_Tag"]).To(Equal(str("red")))
	})

	It("relates objects", func() {
		v1 := create()
		v2 := create()
		v3 := create()
		code, data := request(http.MethodPut, base+"/mesh/"+string(v1.Identifier), &service.UpdateRequest{
			Relate: []service.Relation{
				{Neighbor: v2.Identifier, Roles: []modelbase.Identifier{CONTAINS + "-S"}},
				{Neighbor: v3.Identifier},
			},
		})
		Expect(code).To(Equal(http.StatusOK), string(data))
		Expect(view(data).Neighbors).To(Equal(map[mesh.MeshObjectIdentifier][]modelbase.Identifier{
			v2.Identifier: {CONTAINS + "-S"},
			v3.Identifier: {},
		}))

		code, data = request(http.MethodGet, base+"/mesh/"+string(v2.Identifier), nil)
		Expect(code).To(Equal(http.StatusOK))
		Expect(view(data).Neighbors).To(Equal(map[mesh.MeshObjectIdentifier][]modelbase.Identifier{
			v1.Identifier: {CONTAINS + "-D"},
		}))

		By("multiplicity")
		code, data = request(http.MethodPut, base+"/mesh/"+string(v3.Identifier), &service.UpdateRequest{
			Relate: []service.Relation{{Neighbor: v2.Identifier, Roles: []modelbase.Identifier{CONTAINS + "-S"}}},
		})
		Expect(code).To(Equal(http.StatusUnprocessableEntity), string(data))

		By("unrelate")
		code, data = request(http.MethodPut, base+"/mesh/"+string(v1.Identifier), &service.UpdateRequest{
			Unrelate: []mesh.MeshObjectIdentifier{v2.Identifier, v3.Identifier},
		})
		Expect(code).To(Equal(http.StatusOK), string(data))
		Expect(view(data).Neighbors).To(BeEmpty())

		code, _ = request(http.MethodPut, base+"/mesh/"+string(v1.Identifier), &service.UpdateRequest{
			Unrelate: []mesh.MeshObjectIdentifier{v2.Identifier},
		})
		Expect(code).To(Equal(http.StatusUnprocessableEntity))
	})

	It("deletes objects", func() {
		v := create()
		code, _ := request(http.MethodDelete, base+"/mesh/"+string(v.Identifier), nil)
		Expect(code).To(Equal(http.StatusOK))
		code, _ = request(http.MethodGet, base+"/mesh/"+string(v.Identifier), nil)
		Expect(code).To(Equal(http.StatusNotFound))
	})

	It("maps errors", func() {
		v := create()
		url := base + "/mesh/" + string(v.Identifier)

		code, data := request(http.MethodPut, url, &service.UpdateRequest{Properties: map[string]*string{"Count": str("-1")}})
		Expect(code).To(Equal(http.StatusUnprocessableEntity))
		var e service.Error
		MustBeSuccessful(json.Unmarshal(data, &e))
		Expect(e.Error).To(ContainSubstring("illegal property value"))

		code, _ = request(http.MethodPut, url, &service.UpdateRequest{Properties: map[string]*string{"Count": str("many")}})
		Expect(code).To(Equal(http.StatusUnprocessableEntity))

		code, _ = request(http.MethodPut, url, &service.UpdateRequest{Properties: map[string]*string{"Kind": str("other")}})
		Expect(code).To(Equal(http.StatusUnprocessableEntity))

		code, _ = request(http.MethodPut, url, &service.UpdateRequest{Properties: map[string]*string{"Tag": str("red")}})
		Expect(code).To(Equal(http.StatusUnprocessableEntity))

		code, _ = request(http.MethodPut, url, &service.UpdateRequest{Bless: []modelbase.Identifier{ITEM}})
		Expect(code).To(Equal(http.StatusUnprocessableEntity))

		code, _ = request(http.MethodPut, url, &service.UpdateRequest{Unbless: []modelbase.Identifier{"org.example.service/Tagged"}})
		Expect(code).To(Equal(http.StatusUnprocessableEntity))

		code, _ = request(http.MethodPost, base+"/mesh/", &service.CreateRequest{Types: []modelbase.Identifier{"org.example.service/Abstract"}})
		Expect(code).To(Equal(http.StatusUnprocessableEntity))

		code, _ = request(http.MethodPost, base+"/mesh/", &service.CreateRequest{Types: []modelbase.Identifier{"org.example.service/Unknown"}})
		Expect(code).To(Equal(http.StatusNotFound))

		code, _ = request(http.MethodGet, base+"/mesh/unknown", nil)
		Expect(code).To(Equal(http.StatusNotFound))

		code, _ = request(http.MethodPatch, url, nil)
		Expect(code).To(Equal(http.StatusMethodNotAllowed))
	})

	It("rejects oversized requests", func() {
		v := create()
		large := strings.Repeat("x", 2*service.MAX_REQUEST_SIZE)
		body := Must(json.Marshal(&service.UpdateRequest{
			Properties: map[string]*string{"Name": &large},
		}))
		rec := httptest.NewRecorder()
		access.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/mesh/"+string(v.Identifier), bytes.NewReader(body)))
		Expect(rec.Code).To(Equal(http.StatusRequestEntityTooLarge))
		var e service.Error
		MustBeSuccessful(json.Unmarshal(rec.Body.Bytes(), &e))
		Expect(e.Error).To(ContainSubstring("request body exceeds"))

		code, data := request(http.MethodGet, base+"/mesh/"+string(v.Identifier), nil)
		Expect(code).To(Equal(http.StatusOK))
		Expect(view(data).Properties[ITEM+"_Name"]).To(Equal(str("first")))
	})

	It("serves the model", func() {
		code, data := request(http.MethodGet, base+"/mesh/model", nil)
		Expect(code).To(Equal(http.StatusOK))
		var items service.Items[*service.SubjectAreaInfo]
		MustBeSuccessful(json.Unmarshal(data, &items))
		Expect(len(items.Items)).To(Equal(1))
		Expect(items.Items[0].Name).To(Equal(modelbase.Identifier("org.example.service")))
		Expect(items.Items[0].Fingerprint).NotTo(BeEmpty())

		code, data = request(http.MethodGet, base+"/mesh/model/org.example.service", nil)
		Expect(code).To(Equal(http.StatusOK))
		spec := Must(modelbase.ParseSubjectArea(data))
		Expect(len(spec.EntityTypes)).To(Equal(3))

		code, _ = request(http.MethodGet, base+"/mesh/model/org.example.unknown", nil)
		Expect(code).To(Equal(http.StatusNotFound))

		code, _ = request(http.MethodGet, base+"/model/", nil)
		Expect(code).To(Equal(http.StatusNotFound))
	})

	It("streams change events", func() {
		received := make(chan *mesh.ChangeEvent, 100)
		client := watch.NewClient[mesh.WatchRequest, *mesh.ChangeEvent](fmt.Sprintf("ws://%s/watch", srv.ListenAddr()))
		wctx, wcancel := context.WithCancel(ctx)
		defer wcancel()
		Must(client.Register(wctx, mesh.WatchRequest{MeshBase: "test", Kinds: []string{mesh.EVENT_CREATED}}, handler(received)))

		Eventually(func() int {
			create()
			return len(received)
		}).Should(BeNumerically(">", 0))
		e := <-received
		Expect(e.Kind).To(Equal(mesh.EVENT_CREATED))
		Expect(e.MeshBase).To(Equal("test"))
	})
})

type handler chan *mesh.ChangeEvent

func (h handler) HandleEvent(e *mesh.ChangeEvent) {
	h <- e
}
