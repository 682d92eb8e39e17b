package meshbase_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	. "github.com/mandelsoft/meshmodel/pkg/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/mandelsoft/meshmodel/pkg/database"
	"github.com/mandelsoft/meshmodel/pkg/impl/database/filesystem"
	"github.com/mandelsoft/meshmodel/pkg/impl/database/sqlite"
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	me "github.com/mandelsoft/meshmodel/pkg/meshbase"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

const MODEL = `
name: org.example.meshbase
entityTypes:
  - name: Base
    abstract: true
    properties:
      - name: Name
        type: String
        optional: true
      - name: Fixed
        type: String
        default: fixed
        readOnly: true
  - name: Thing
    supertypes: [ Base ]
    properties:
      - name: Count
        type:
          type: Integer
          min: 0
        default: 1
  - name: Special
    supertypes: [ Thing ]
    properties:
      - name: Color
        type: Color
        optional: true
  - name: Other
    properties:
      - name: Flag
        type: Boolean
        default: "TRUE"
relationshipTypes:
  - name: Relates
    source:
      entityType: Base
    destination: {}
  - name: Owns
    source:
      entityType: Thing
      refines: [ Relates-S ]
    destination:
      entityType: Other
      multiplicity: 0..1
`

type Model struct {
	base, thing, special, other modelbase.EntityType

	name, fixed, count, color, flag modelbase.PropertyType

	relatesS, ownsS, ownsD modelbase.RoleType
}

func NewModel(mb modelbase.ModelBase) *Model {
	sa := Must(mb.LoadSubjectArea(Must(modelbase.ParseSubjectArea([]byte(MODEL)))))
	return &Model{
		base:    sa.MustEntityType("Base"),
		thing:   sa.MustEntityType("Thing"),
		special: sa.MustEntityType("Special"),
		other:   sa.MustEntityType("Other"),
		name:    sa.MustPropertyType("Base_Name"),
		fixed:   sa.MustPropertyType("Base_Fixed"),
		count:   sa.MustPropertyType("Thing_Count"),
		color:   sa.MustPropertyType("Special_Color"),
		flag:    sa.MustPropertyType("Other_Flag"),

		relatesS: Must(mb.FindRoleType("org.example.meshbase/Relates-S")),
		ownsS:    Must(mb.FindRoleType("org.example.meshbase/Owns-S")),
		ownsD:    Must(mb.FindRoleType("org.example.meshbase/Owns-D")),
	}
}

func identifiers(objs []mesh.MeshObject) []mesh.MeshObjectIdentifier {
	ids := []mesh.MeshObjectIdentifier{}
	for _, o := range objs {
		ids = append(ids, o.Identifier())
	}
	return ids
}

type Handler struct {
	lock   sync.Mutex
	events []string
}

func (h *Handler) HandleEvent(e *mesh.ChangeEvent) {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.events = append(h.events, e.String())
}

func (h *Handler) Events() []string {
	h.lock.Lock()
	defer h.lock.Unlock()
	return append([]string(nil), h.events...)
}

type denySet struct {
	mesh.AccessManager
}

func (d *denySet) CheckPermittedGetProperty(obj mesh.MeshObject, pt modelbase.PropertyType) error {
	return nil
}

func (d *denySet) CheckPermittedSetProperty(obj mesh.MeshObject, pt modelbase.PropertyType, v primitives.PropertyValue) error {
	return fmt.Errorf("no write")
}

func (d *denySet) CheckPermittedBless(obj mesh.MeshObject, types ...modelbase.EntityType) error {
	return nil
}

// failingDB fails the nth write.
type failingDB struct {
	database.Database[me.Object]
	fail  int
	count int
}

func (d *failingDB) SetObject(o me.Object) error {
	d.count++
	if d.count == d.fail {
		return fmt.Errorf("disk full")
	}
	return d.Database.SetObject(o)
}

var _ = Describe("mesh base", func() {
	var mdl *Model
	var fs vfs.FileSystem
	var db database.Database[me.Object]
	var mb *me.MeshBase
	var mbase modelbase.ModelBase

	newMeshBase := func(opts ...me.Option) *me.MeshBase {
		return Must(me.New("test", db, append([]me.Option{me.WithModelBase(mbase)}, opts...)...))
	}

	BeforeEach(func() {
		mbase = modelbase.New()
		mdl = NewModel(mbase)
		fs = memoryfs.New()
		db = Must(filesystem.New[me.Object](me.Scheme, "/db", fs))
		mb = newMeshBase()
	})

	create := func(types ...modelbase.EntityType) mesh.MeshObject {
		var obj mesh.MeshObject
		MustBeSuccessful(mb.Execute(func(tx *me.Transaction) error {
			var err error
			obj, err = tx.CreateMeshObject(types...)
			return err
		}))
		return obj
	}

	Context("objects", func() {
		It("creates and persists objects", func() {
			obj := create(mdl.thing)
			Expect(obj.MeshBaseName()).To(Equal("test"))
			Expect(obj.Types()).To(Equal([]modelbase.EntityType{mdl.thing}))
			Expect(obj.PropertyTypes()).To(ConsistOf(mdl.name, mdl.fixed, mdl.count))
			Expect(obj.GetPropertyValue(mdl.count)).To(Equal(primitives.NewInteger(1)))
			Expect(obj.GetPropertyValue(mdl.name)).To(BeNil())

			r := Must(db.GetObject(database.NewObjectId(me.TYPE_MESHOBJECT, "test", string(obj.Identifier()))))
			rec := r.(*me.MeshObjectRecord)
			Expect(rec.Spec.Types).To(Equal([]modelbase.Identifier{mdl.thing.Identifier()}))
			Expect(*rec.Spec.Properties[mdl.count.Identifier()]).To(Equal("1"))
			Expect(rec.Spec.Properties[mdl.name.Identifier()]).To(BeNil())
			Expect(rec.GetGeneration()).To(Equal(int64(1)))

			other := newMeshBase()
			found := Must(other.FindMeshObject(obj.Identifier()))
			Expect(found.Types()).To(Equal([]modelbase.EntityType{mdl.thing}))
			Expect(found.GetPropertyValue(mdl.fixed)).To(Equal(primitives.NewString("fixed")))
			Expect(found.TimeCreated().Millis()).To(Equal(obj.TimeCreated().Millis()))
		})

		It("requires a transaction", func() {
			tx := mb.Begin()
			obj := Must(tx.CreateMeshObject(mdl.thing))
			MustBeSuccessful(tx.Commit())

			_, err := tx.CreateMeshObject(mdl.thing)
			Expect(err).To(MatchError(mesh.ErrTransaction))
			Expect(err).To(MatchError(mesh.ErrTransactionDone))

			_, err = obj.SetPropertyValue(mdl.count, primitives.NewInteger(3))
			Expect(err).To(MatchError(mesh.ErrTransaction))
			Expect(err).To(MatchError(mesh.ErrTransactionDone))
			Expect(tx.DeleteMeshObject(obj)).To(MatchError(mesh.ErrTransactionDone))

			found := Must(mb.FindMeshObject(obj.Identifier()))
			_, err = found.SetPropertyValue(mdl.count, primitives.NewInteger(3))
			Expect(err).To(MatchError(mesh.ErrTransaction))
			Expect(err).To(MatchError(mesh.ErrNoTransaction))
			Expect(found.Bless(mdl.other)).To(MatchError(mesh.ErrNoTransaction))
		})

		It("rejects modifications outside of the own transaction", func() {
			obj := create(mdl.thing)

			started := make(chan *me.Transaction)
			release := make(chan struct{})
			finished := make(chan error)
			go func() {
				defer GinkgoRecover()
				tx := mb.Begin()
				started <- tx
				<-release
				finished <- tx.Commit()
			}()
			tx := <-started

			found := Must(mb.FindMeshObject(obj.Identifier()))
			_, err := found.SetPropertyValue(mdl.count, primitives.NewInteger(3))
			Expect(err).To(MatchError(mesh.ErrNoTransaction))
			Expect(found.Bless(mdl.other)).To(MatchError(mesh.ErrNoTransaction))
			_, err = obj.SetPropertyValue(mdl.count, primitives.NewInteger(3))
			Expect(err).To(MatchError(mesh.ErrTransactionDone))

			close(release)
			MustBeSuccessful(<-finished)
			Expect(tx.Commit()).To(MatchError(mesh.ErrTransactionDone))
			Expect(found.GetPropertyValue(mdl.count)).To(Equal(primitives.NewInteger(1)))
		})

		It("rejects abstract types", func() {
			tx := mb.Begin()
			defer tx.Rollback()
			_, err := tx.CreateMeshObject(mdl.base)
			Expect(err).To(MatchError(mesh.ErrIsAbstract))
		})

		It("lists objects", func() {
			o1 := create(mdl.thing)
			o2 := create(mdl.other)

			tx := mb.Begin()
			o3 := Must(tx.CreateMeshObject(mdl.other))
			MustBeSuccessful(tx.DeleteMeshObject(o1))
			Expect(identifiers(Must(mb.ListMeshObjects()))).To(ConsistOf(o2.Identifier(), o3.Identifier()))
			MustBeSuccessful(tx.Rollback())

			Expect(identifiers(Must(mb.ListMeshObjects()))).To(ConsistOf(o1.Identifier(), o2.Identifier()))
		})

		It("deletes objects", func() {
			obj := create(mdl.thing)
			MustBeSuccessful(mb.Execute(func(tx *me.Transaction) error {
				return tx.DeleteMeshObject(obj)
			}))
			Expect(obj.IsDead()).To(BeTrue())
			_, err := obj.GetPropertyValue(mdl.count)
			Expect(err).To(MatchError(mesh.ErrObjectDead))
			_, err = mb.FindMeshObject(obj.Identifier())
			Expect(err).To(MatchError(mesh.ErrObjectNotFound))
			Expect(Must(db.ListObjectIds(me.TYPE_MESHOBJECT, "test"))).To(BeEmpty())
		})
	})

	Context("properties", func() {
		var obj mesh.MeshObject

		BeforeEach(func() {
			obj = create(mdl.thing)
		})

		It("sets values", func() {
			tx := mb.Begin()
			obj := Must(tx.Object(obj))
			old := Must(obj.SetPropertyValue(mdl.count, primitives.NewInteger(5)))
			Expect(old).To(Equal(primitives.NewInteger(1)))
			MustBeSuccessful(obj.SetPropertyValues(map[modelbase.PropertyType]primitives.PropertyValue{
				mdl.name: primitives.NewString("alice"),
			}))
			MustBeSuccessful(tx.Commit())

			found := Must(newMeshBase().FindMeshObject(obj.Identifier()))
			Expect(found.GetPropertyValue(mdl.count)).To(Equal(primitives.NewInteger(5)))
			Expect(found.GetPropertyValue(mdl.name)).To(Equal(primitives.NewString("alice")))
		})

		It("checks values", func() {
			tx := mb.Begin()
			defer tx.Rollback()
			obj := Must(tx.Object(obj))

			_, err := obj.SetPropertyValue(mdl.fixed, primitives.NewString("other"))
			Expect(err).To(MatchError(mesh.ErrPropertyReadOnly))

			_, err = obj.SetPropertyValue(mdl.count, nil)
			Expect(err).To(MatchError(mesh.ErrIllegalPropertyValue))

			_, err = obj.SetPropertyValue(mdl.count, (*primitives.IntegerValue)(nil))
			Expect(err).To(MatchError(mesh.ErrIllegalPropertyValue))

			_, err = obj.SetPropertyValue(mdl.count, primitives.NewInteger(-1))
			Expect(err).To(MatchError(mesh.ErrIllegalPropertyValue))
			Expect(err).To(MatchError(primitives.ErrNonConforming))

			_, err = obj.SetPropertyValue(mdl.count, primitives.NewString("5"))
			Expect(err).To(MatchError(mesh.ErrIllegalPropertyValue))
			Expect(err).To(MatchError(primitives.ErrIncompatibleValue))

			_, err = obj.SetPropertyValue(mdl.color, primitives.NewColor(1, 2, 3, 4))
			Expect(err).To(MatchError(mesh.ErrIllegalPropertyType))

			_, err = obj.GetPropertyValue(mdl.flag)
			Expect(err).To(MatchError(mesh.ErrIllegalPropertyType))

			MustBeSuccessful(obj.SetPropertyValues(map[modelbase.PropertyType]primitives.PropertyValue{
				mdl.name: nil,
			}))
		})

		It("rolls back", func() {
			tx := mb.Begin()
			Must(Must(tx.Object(obj)).SetPropertyValue(mdl.count, primitives.NewInteger(5)))
			Expect(obj.GetPropertyValue(mdl.count)).To(Equal(primitives.NewInteger(5)))
			MustBeSuccessful(tx.Rollback())
			Expect(obj.GetPropertyValue(mdl.count)).To(Equal(primitives.NewInteger(1)))
			Expect(tx.Commit()).To(MatchError(mesh.ErrTransactionDone))
		})

		It("rolls back on error", func() {
			err := mb.Execute(func(tx *me.Transaction) error {
				Must(Must(tx.Object(obj)).SetPropertyValue(mdl.count, primitives.NewInteger(5)))
				return fmt.Errorf("failed")
			})
			Expect(err).To(MatchError("failed"))
			Expect(obj.GetPropertyValue(mdl.count)).To(Equal(primitives.NewInteger(1)))
		})

		It("detects conflicts", func() {
			other := newMeshBase()
			foreign := Must(other.FindMeshObject(obj.Identifier()))
			MustBeSuccessful(other.Execute(func(tx *me.Transaction) error {
				_, err := Must(tx.Object(foreign)).SetPropertyValue(mdl.count, primitives.NewInteger(7))
				return err
			}))

			err := mb.Execute(func(tx *me.Transaction) error {
				_, err := Must(tx.Object(obj)).SetPropertyValue(mdl.count, primitives.NewInteger(5))
				return err
			})
			Expect(err).To(MatchError(mesh.ErrTransaction))
			Expect(err).To(MatchError(database.ErrModified))
			Expect(obj.GetPropertyValue(mdl.count)).To(Equal(primitives.NewInteger(7)))
		})

		It("reverts partial commits", func() {
			removed := create(mdl.other)
			fdb := &failingDB{Database: db, fail: 2}
			mb = Must(me.New("test", fdb, me.WithModelBase(mbase)))

			var created mesh.MeshObject
			err := mb.Execute(func(tx *me.Transaction) error {
				var err error
				Must(Must(tx.FindMeshObject(obj.Identifier())).SetPropertyValue(mdl.count, primitives.NewInteger(5)))
				created, err = tx.CreateMeshObject(mdl.thing)
				if err == nil {
					err = tx.DeleteMeshObject(Must(tx.FindMeshObject(removed.Identifier())))
				}
				return err
			})
			Expect(err).To(MatchError(mesh.ErrTransaction))
			Expect(err.Error()).To(ContainSubstring("disk full"))

			check := newMeshBase()
			Expect(Must(check.FindMeshObject(obj.Identifier())).GetPropertyValue(mdl.count)).To(Equal(primitives.NewInteger(1)))
			Must(check.FindMeshObject(removed.Identifier()))
			_, err = check.FindMeshObject(created.Identifier())
			Expect(err).To(MatchError(mesh.ErrObjectNotFound))
			Expect(Must(db.ListObjectIds(me.TYPE_MESHOBJECT, "test"))).To(HaveLen(2))

			Expect(Must(mb.FindMeshObject(obj.Identifier())).GetPropertyValue(mdl.count)).To(Equal(primitives.NewInteger(1)))
			MustBeSuccessful(mb.Execute(func(tx *me.Transaction) error {
				_, err := Must(tx.FindMeshObject(obj.Identifier())).SetPropertyValue(mdl.count, primitives.NewInteger(6))
				return err
			}))
			Expect(Must(newMeshBase().FindMeshObject(obj.Identifier())).GetPropertyValue(mdl.count)).To(Equal(primitives.NewInteger(6)))
		})
	})

	Context("blessing", func() {
		It("blesses and unblesses", func() {
			tx := mb.Begin()
			obj := Must(tx.Object(create(mdl.thing)))
			MustBeSuccessful(obj.Bless(mdl.other))
			Expect(obj.IsBlessedBy(mdl.other, false)).To(BeTrue())
			Expect(obj.GetPropertyValue(mdl.flag)).To(Equal(primitives.TRUE))

			Expect(obj.Bless(mdl.thing)).To(MatchError(mesh.ErrBlessedAlready))
			Expect(obj.Bless(mdl.base)).To(MatchError(mesh.ErrIsAbstract))

			MustBeSuccessful(obj.Unbless(mdl.other))
			Expect(obj.Unbless(mdl.other)).To(MatchError(mesh.ErrNotBlessed))
			_, err := obj.GetPropertyValue(mdl.flag)
			Expect(err).To(MatchError(mesh.ErrIllegalPropertyType))
			MustBeSuccessful(tx.Commit())
		})

		It("replaces supertypes by subtypes", func() {
			obj := create(mdl.thing)
			MustBeSuccessful(mb.Execute(func(tx *me.Transaction) error {
				obj := Must(tx.Object(obj))
				_, err := obj.SetPropertyValue(mdl.count, primitives.NewInteger(3))
				if err == nil {
					err = obj.Bless(mdl.special)
				}
				return err
			}))
			Expect(obj.Types()).To(Equal([]modelbase.EntityType{mdl.special}))
			Expect(obj.IsBlessedBy(mdl.thing, false)).To(BeFalse())
			Expect(obj.IsBlessedBy(mdl.thing, true)).To(BeTrue())
			Expect(obj.GetPropertyValue(mdl.count)).To(Equal(primitives.NewInteger(3)))
			Expect(obj.GetPropertyValue(mdl.color)).To(BeNil())
		})

		It("checks unblessing", func() {
			obj := create(mdl.special)
			tx := mb.Begin()
			defer tx.Rollback()
			Expect(Must(tx.Object(obj)).Unbless(mdl.thing)).To(MatchError(mesh.ErrNotBlessed))
		})
	})

	Context("access", func() {
		It("checks permissions", func() {
			mb = newMeshBase(me.WithAccessManager(&denySet{}))
			obj := create(mdl.thing)

			tx := mb.Begin()
			defer tx.Rollback()
			_, err := Must(tx.Object(obj)).SetPropertyValue(mdl.count, primitives.NewInteger(2))
			Expect(err).To(MatchError(mesh.ErrNotPermitted))
			Expect(err).To(MatchError("set on " + string(obj.Identifier()) + " for org.example.meshbase/Thing_Count not permitted: no write"))
			Expect(obj.GetPropertyValue(mdl.count)).To(Equal(primitives.NewInteger(1)))
		})

		It("supports read-only access", func() {
			obj := create(mdl.thing)
			other := create(mdl.other)
			ro := newMeshBase(me.WithAccessManager(mesh.ReadOnlyAccessManager))
			found := Must(ro.FindMeshObject(obj.Identifier()))
			tx := ro.Begin()
			defer tx.Rollback()
			Expect(tx.DeleteMeshObject(found)).To(MatchError(mesh.ErrNotPermitted))
			Expect(Must(tx.Object(found)).Relate(Must(ro.FindMeshObject(other.Identifier())))).To(MatchError(mesh.ErrNotPermitted))
			Expect(found.GetPropertyValue(mdl.count)).To(Equal(primitives.NewInteger(1)))
		})
	})

	Context("relationships", func() {
		var thing, other mesh.MeshObject

		BeforeEach(func() {
			thing = create(mdl.thing)
			other = create(mdl.other)
		})

		It("relates and traverses", func() {
			tx := mb.Begin()
			t := Must(tx.Object(thing))
			o := Must(tx.Object(other))
			MustBeSuccessful(t.RelateAndBless(o, mdl.ownsS))
			Expect(t.IsRelated(o)).To(BeTrue())
			Expect(o.IsRelated(t)).To(BeTrue())
			Expect(Must(t.RoleTypes(o))).To(Equal([]modelbase.RoleType{mdl.ownsS}))
			Expect(Must(o.RoleTypes(t))).To(Equal([]modelbase.RoleType{mdl.ownsD}))

			Expect(identifiers(Must(t.Traverse(mdl.ownsS)))).To(Equal([]mesh.MeshObjectIdentifier{other.Identifier()}))
			Expect(identifiers(Must(t.Traverse(mdl.relatesS)))).To(Equal([]mesh.MeshObjectIdentifier{other.Identifier()}))
			Expect(identifiers(Must(o.Traverse(mdl.ownsD)))).To(Equal([]mesh.MeshObjectIdentifier{thing.Identifier()}))
			Expect(Must(t.Traverse(mdl.ownsD))).To(BeEmpty())

			neighbors := Must(o.NeighborMeshObjects())
			Expect(identifiers(neighbors)).To(Equal([]mesh.MeshObjectIdentifier{thing.Identifier()}))
			Must(neighbors[0].SetPropertyValue(mdl.count, primitives.NewInteger(2)))
			MustBeSuccessful(tx.Commit())

			r := Must(db.GetObject(database.NewObjectId(me.TYPE_MESHOBJECT, "test", string(thing.Identifier()))))
			Expect(r.(*me.MeshObjectRecord).Spec.Neighbors).To(Equal(map[mesh.MeshObjectIdentifier][]modelbase.Identifier{
				other.Identifier(): {mdl.ownsS.Identifier()},
			}))

			found := Must(newMeshBase().FindMeshObject(other.Identifier()))
			related := Must(found.Traverse(mdl.ownsD))
			Expect(identifiers(related)).To(Equal([]mesh.MeshObjectIdentifier{thing.Identifier()}))
			Expect(related[0].GetPropertyValue(mdl.count)).To(Equal(primitives.NewInteger(2)))
		})

		It("checks relationships", func() {
			tx := mb.Begin()
			defer tx.Rollback()
			t := Must(tx.Object(thing))
			o := Must(tx.Object(other))

			Expect(t.Relate(t)).To(MatchError(mesh.ErrRelateToSelf))
			Expect(t.Unrelate(o)).To(MatchError(mesh.ErrNotRelated))
			Expect(t.BlessRelationship(o, mdl.ownsS)).To(MatchError(mesh.ErrNotRelated))
			_, err := t.RoleTypes(o)
			Expect(err).To(MatchError(mesh.ErrNotRelated))

			MustBeSuccessful(t.Relate(o))
			Expect(t.Relate(o)).To(MatchError(mesh.ErrRelatedAlready))
			Expect(o.Relate(t)).To(MatchError(mesh.ErrRelatedAlready))
			Expect(o.BlessRelationship(t, mdl.ownsS)).To(MatchError(mesh.ErrNotBlessed))

			MustBeSuccessful(t.BlessRelationship(o, mdl.ownsS))
			Expect(t.BlessRelationship(o, mdl.ownsS)).To(MatchError(mesh.ErrRoleBlessedAlready))
			Expect(t.UnblessRelationship(o, mdl.relatesS)).To(MatchError(mesh.ErrRoleNotBlessed))

			By("multiplicity")
			t2 := Must(tx.CreateMeshObject(mdl.thing))
			err = t2.RelateAndBless(o, mdl.ownsS)
			Expect(err).To(MatchError(mesh.ErrMultiplicity))
			Expect(err.Error()).To(ContainSubstring("org.example.meshbase/Owns-D"))
			Expect(t2.IsRelated(o)).To(BeFalse())
			MustBeSuccessful(t2.RelateAndBless(o, mdl.relatesS))

			By("entity types required by roles")
			MustBeSuccessful(t.Bless(mdl.other))
			Expect(t.Unbless(mdl.thing)).To(MatchError(mesh.ErrRoleRequiresEntity))
			MustBeSuccessful(t.UnblessRelationship(o, mdl.ownsS))
			Expect(Must(t.RoleTypes(o))).To(BeEmpty())
			MustBeSuccessful(t.Unbless(mdl.thing))

			MustBeSuccessful(t.Unrelate(o))
			Expect(t.IsRelated(o)).To(BeFalse())
			Expect(o.IsRelated(t)).To(BeFalse())
			Expect(identifiers(Must(o.NeighborMeshObjects()))).To(Equal([]mesh.MeshObjectIdentifier{t2.Identifier()}))
		})

		It("requires a transaction", func() {
			Expect(thing.Relate(other)).To(MatchError(mesh.ErrTransaction))
			found := Must(mb.FindMeshObject(thing.Identifier()))
			Expect(found.Relate(other)).To(MatchError(mesh.ErrNoTransaction))
			Expect(found.IsRelated(other)).To(BeFalse())
		})

		It("removes relationships of deleted objects", func() {
			MustBeSuccessful(mb.Execute(func(tx *me.Transaction) error {
				return Must(tx.Object(thing)).RelateAndBless(Must(tx.Object(other)), mdl.ownsS)
			}))
			Expect(thing.IsRelated(other)).To(BeTrue())

			h := &Handler{}
			mb.RegisterHandler(h, false, mesh.EVENT_NEIGHBOR_REMOVED)
			MustBeSuccessful(mb.Execute(func(tx *me.Transaction) error {
				return tx.DeleteMeshObject(other)
			}))
			Expect(thing.IsRelated(other)).To(BeFalse())
			Expect(Must(thing.NeighborMeshObjects())).To(BeEmpty())
			Expect(h.Events()).To(Equal([]string{
				"NeighborRemoved test/" + string(thing.Identifier()) + " " + string(other.Identifier()),
			}))

			found := Must(newMeshBase().FindMeshObject(thing.Identifier()))
			Expect(Must(found.NeighborMeshObjects())).To(BeEmpty())
		})

		It("dispatches relationship events", func() {
			h := &Handler{}
			mb.RegisterHandler(h, false, "")
			MustBeSuccessful(mb.Execute(func(tx *me.Transaction) error {
				return Must(tx.Object(thing)).RelateAndBless(Must(tx.Object(other)), mdl.ownsS)
			}))
			tid := string(thing.Identifier())
			oid := string(other.Identifier())
			Expect(h.Events()).To(Equal([]string{
				"NeighborAdded test/" + tid + " " + oid,
				"NeighborAdded test/" + oid + " " + tid,
				"RoleTypesAdded test/" + tid + " " + oid + ": org.example.meshbase/Owns-S",
				"RoleTypesAdded test/" + oid + " " + tid + ": org.example.meshbase/Owns-D",
			}))
		})
	})

	Context("transactions", func() {
		It("serializes transactions", func() {
			tx := mb.Begin()
			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()
			_, err := mb.BeginContext(ctx)
			Expect(err).To(MatchError(mesh.ErrTransaction))
			MustBeSuccessful(tx.Commit())

			tx = Must(mb.BeginContext(context.Background()))
			MustBeSuccessful(tx.Rollback())
		})
	})

	Context("events", func() {
		It("dispatches events on commit", func() {
			h := &Handler{}
			mb.RegisterHandler(h, false, "")

			var obj mesh.MeshObject
			tx := mb.Begin()
			obj = Must(tx.CreateMeshObject(mdl.thing))
			Expect(h.Events()).To(BeEmpty())
			Must(obj.SetPropertyValue(mdl.count, primitives.NewInteger(2)))
			Must(obj.SetPropertyValue(mdl.count, primitives.NewInteger(2)))
			MustBeSuccessful(tx.Commit())

			id := "test/" + string(obj.Identifier())
			Expect(h.Events()).To(Equal([]string{
				"Created " + id,
				"TypesAdded " + id + " org.example.meshbase/Thing",
				"PropertyChanged " + id + ` org.example.meshbase/Thing_Count: "1" -> "2"`,
			}))
		})

		It("discards events on rollback", func() {
			h := &Handler{}
			mb.RegisterHandler(h, false, mesh.EVENT_CREATED)

			tx := mb.Begin()
			Must(tx.CreateMeshObject(mdl.thing))
			MustBeSuccessful(tx.Rollback())
			Expect(h.Events()).To(BeEmpty())
		})

		It("ramps up handlers", func() {
			obj := create(mdl.thing)
			h := &Handler{}
			Expect(mb.RegisterHandler(h, true, mesh.EVENT_CREATED).Wait(context.Background())).To(BeTrue())
			Expect(h.Events()).To(Equal([]string{"Created test/" + string(obj.Identifier())}))
		})

		It("dispatches asynchronously", func() {
			ctx, cancel := context.WithCancel(context.Background())
			mb = newMeshBase(me.WithAsyncDispatch(ctx))
			h := &Handler{}
			mb.RegisterHandler(h, false, mesh.EVENT_DELETED)

			obj := create(mdl.other)
			MustBeSuccessful(mb.Execute(func(tx *me.Transaction) error {
				return tx.DeleteMeshObject(obj)
			}))
			Eventually(h.Events).Should(Equal([]string{"Deleted test/" + string(obj.Identifier())}))
			cancel()
			mb.Wait()
		})

		It("unregisters handlers", func() {
			h := &Handler{}
			req := mesh.WatchRequest{MeshBase: "test", Kinds: []string{mesh.EVENT_CREATED}}
			mb.RegisterWatchHandler(req, h)
			create(mdl.thing)
			mb.UnregisterWatchHandler(req, h)
			create(mdl.thing)
			Expect(len(h.Events())).To(Equal(1))
		})
	})

	Context("sqlite", func() {
		It("persists objects", func() {
			sdb := Must(sqlite.New[me.Object](me.Scheme, sqlite.InMemoryDSN))
			smb := Must(me.New("sql", sdb, me.WithModelBase(mbase)))
			defer smb.Close()

			var obj mesh.MeshObject
			MustBeSuccessful(smb.Execute(func(tx *me.Transaction) error {
				var err error
				obj, err = tx.CreateMeshObject(mdl.special)
				if err == nil {
					_, err = obj.SetPropertyValue(mdl.color, primitives.NewColor(1, 2, 3, 4))
				}
				return err
			}))

			found := Must(Must(me.New("sql", sdb, me.WithModelBase(mbase))).FindMeshObject(obj.Identifier()))
			Expect(found.GetPropertyValue(mdl.color)).To(Equal(primitives.NewColor(1, 2, 3, 4)))
		})
	})
})
