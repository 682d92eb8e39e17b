package sqlite_test

import (
	"context"
	"sync"

	. "github.com/mandelsoft/meshmodel/pkg/impl/database/filesystem/testtypes"
	. "github.com/mandelsoft/meshmodel/pkg/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/meshmodel/pkg/database"
	me "github.com/mandelsoft/meshmodel/pkg/impl/database/sqlite"
)

var _ = Describe("sqlite database", func() {
	var db database.Database[Object]

	BeforeEach(func() {
		db = Must(me.New[Object](Scheme, me.InMemoryDSN))
		MustBeSuccessful(db.SetObject(NewLink("ns1", "o1", "https://example.org/ns1/o1")))
		MustBeSuccessful(db.SetObject(NewLink("ns2", "o1", "https://example.org/ns2/o1")))
		MustBeSuccessful(db.SetObject(NewNote("ns2", "o2", "second note")))
	})

	AfterEach(func() {
		MustBeSuccessful(db.(*me.Database[Object]).Close())
	})

	It("lists objects", func() {
		list := Must(db.ListObjects(TYPE_LINK, "ns1"))
		Expect(len(list)).To(Equal(1))
		Expect(list[0].GetData()).To(Equal("https://example.org/ns1/o1"))

		list = Must(db.ListObjects(TYPE_LINK, ""))
		Expect(len(list)).To(Equal(2))

		Expect(Must(db.ListObjectIds("", "ns2"))).To(ConsistOf(
			database.NewObjectId(TYPE_LINK, "ns2", "o1"),
			database.NewObjectId(TYPE_NOTE, "ns2", "o2"),
		))
	})

	It("gets and deletes objects", func() {
		id := database.NewObjectId(TYPE_NOTE, "ns2", "o2")
		o := Must(db.GetObject(id))
		Expect(o.GetData()).To(Equal("second note"))
		Expect(database.GetGeneration(o)).To(Equal(int64(1)))

		MustBeSuccessful(db.DeleteObject(id))
		_, err := db.GetObject(id)
		Expect(err).To(MatchError(database.ErrNotExist))
		Expect(db.DeleteObject(id)).To(MatchError(database.ErrNotExist))
	})

	It("detects race condition", func() {
		id := database.NewObjectId(TYPE_LINK, "ns1", "o1")
		o1 := Must(db.GetObject(id))
		o2 := Must(db.GetObject(id))

		o1.(*Link).URL = "modified"
		o2.(*Link).URL = "first"

		MustBeSuccessful(db.SetObject(o2))
		Expect(database.GetGeneration(o2)).To(Equal(int64(2)))

		Expect(db.SetObject(o1)).To(MatchError(database.ErrModified))
		Expect(database.GetGeneration(o1)).To(Equal(int64(1)))

		o1 = Must(db.GetObject(id))
		Expect(o1.(*Link).URL).To(Equal("first"))
	})

	It("writes batches atomically", func() {
		batch := db.(database.BatchWriter[Object])

		o1 := Must(db.GetObject(database.NewObjectId(TYPE_LINK, "ns1", "o1")))
		o1.(*Link).URL = "https://example.org/changed"
		stale := NewLink("ns2", "o1", "stale")
		stale.SetGeneration(5)
		created := NewNote("ns3", "o3", "third note")

		err := batch.WriteBatch([]Object{o1, created, stale}, []database.ObjectId{database.NewObjectId(TYPE_NOTE, "ns2", "o2")})
		Expect(err).To(MatchError(database.ErrModified))
		Expect(database.GetGeneration(o1)).To(Equal(int64(1)))
		Expect(database.GetGeneration(created)).To(Equal(int64(0)))

		Expect(Must(db.GetObject(o1)).(*Link).URL).To(Equal("https://example.org/ns1/o1"))
		_, err = db.GetObject(created)
		Expect(err).To(MatchError(database.ErrNotExist))
		Expect(Must(db.GetObject(database.NewObjectId(TYPE_NOTE, "ns2", "o2"))).GetData()).To(Equal("second note"))

		MustBeSuccessful(batch.WriteBatch([]Object{o1, created}, []database.ObjectId{
			database.NewObjectId(TYPE_NOTE, "ns2", "o2"),
			database.NewObjectId(TYPE_NOTE, "ns9", "missing"),
		}))
		Expect(Must(db.GetObject(o1)).(*Link).URL).To(Equal("https://example.org/changed"))
		Expect(database.GetGeneration(Must(db.GetObject(created)))).To(Equal(int64(1)))
		_, err = db.GetObject(database.NewObjectId(TYPE_NOTE, "ns2", "o2"))
		Expect(err).To(MatchError(database.ErrNotExist))
	})

	It("propagates events", func() {
		h := &Handler{}
		db.RegisterHandler(h, true, TYPE_LINK).Wait(context.Background())
		MustBeSuccessful(db.SetObject(NewLink("ns3", "o3", "https://example.org/ns3/o3")))
		MustBeSuccessful(db.DeleteObject(database.NewObjectId(TYPE_LINK, "ns1", "o1")))
		MustBeSuccessful(db.DeleteObject(database.NewObjectId(TYPE_NOTE, "ns2", "o2")))

		Expect(h.ids).To(Equal([]database.ObjectId{
			database.NewObjectId(TYPE_LINK, "ns1", "o1"),
			database.NewObjectId(TYPE_LINK, "ns2", "o1"),
			database.NewObjectId(TYPE_LINK, "ns3", "o3"),
			database.NewObjectId(TYPE_LINK, "ns1", "o1"),
		}))
	})
})

type Handler struct {
	lock sync.Mutex
	ids  []database.ObjectId
}

func (h *Handler) HandleEvent(id database.ObjectId) {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.ids = append(h.ids, id)
}
