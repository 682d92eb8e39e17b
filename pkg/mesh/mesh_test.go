package mesh_test

import (
	"encoding/json"
	"errors"
	"fmt"

	. "github.com/mandelsoft/meshmodel/pkg/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	me "github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

const MODEL = `
name: org.example.mesh
entityTypes:
  - name: T
    properties:
      - name: P
        type: Integer
        default: 1
relationshipTypes:
  - name: R
    source:
      entityType: T
      multiplicity: 0..N
    destination:
      entityType: T
      multiplicity: 0..1
`

type object struct {
	me.MeshObject
	id me.MeshObjectIdentifier
}

func (o *object) Identifier() me.MeshObjectIdentifier {
	return o.id
}

func (o *object) MeshBaseName() string {
	return "test"
}

var _ = Describe("mesh", func() {
	var et modelbase.EntityType
	var pt modelbase.PropertyType
	var rt modelbase.RoleType
	var obj, neighbor me.MeshObject

	BeforeEach(func() {
		mb := modelbase.New()
		sa := Must(mb.LoadSubjectArea(Must(modelbase.ParseSubjectArea([]byte(MODEL)))))
		et = sa.MustEntityType("T")
		pt = sa.MustPropertyType("T_P")
		rt = sa.MustRoleType("R-D")
		obj = &object{id: "o1"}
		neighbor = &object{id: "o2"}
	})

	Context("errors", func() {
		It("matches sentinels", func() {
			reason := fmt.Errorf("denied")
			var err error = &me.NotPermittedError{Object: obj, Operation: "set", Type: pt, Reason: reason}
			Expect(err).To(MatchError(me.ErrNotPermitted))
			Expect(errors.Is(err, reason)).To(BeTrue())
			Expect(err.Error()).To(Equal("set on o1 for org.example.mesh/T_P not permitted: denied"))

			err = &me.IllegalPropertyValueError{Object: obj, PropertyType: pt, Reason: fmt.Errorf("mandatory")}
			Expect(err).To(MatchError(me.ErrIllegalPropertyValue))
			Expect(err.Error()).To(Equal("illegal property value null for org.example.mesh/T_P of o1: mandatory"))

			err = &me.TransactionError{Reason: me.ErrNoTransaction}
			Expect(err).To(MatchError(me.ErrTransaction))
			Expect(err).To(MatchError(me.ErrNoTransaction))

			Expect(&me.IsAbstractError{EntityType: et}).To(MatchError(me.ErrIsAbstract))
			Expect(&me.EntityBlessedAlreadyError{Object: obj, EntityType: et}).To(MatchError("o1 blessed already with org.example.mesh/T"))
			Expect(&me.EntityNotBlessedError{Object: obj, EntityType: et}).To(MatchError(me.ErrNotBlessed))
			Expect(&me.PropertyReadOnlyError{Object: obj, PropertyType: pt}).To(MatchError(me.ErrPropertyReadOnly))
			Expect(&me.IllegalPropertyTypeError{Object: obj, PropertyType: pt}).To(MatchError(me.ErrIllegalPropertyType))
			Expect(&me.ObjectDeadError{Object: obj}).To(MatchError(me.ErrObjectDead))
			Expect(&me.ObjectNotFoundError{Identifier: "o2"}).To(MatchError("mesh object not found: o2"))
		})

		It("describes relationship errors", func() {
			Expect(&me.RelatedAlreadyError{Object: obj, Neighbor: neighbor}).To(MatchError("o1 related already to o2"))
			Expect(&me.NotRelatedError{Object: obj, Neighbor: neighbor}).To(MatchError(me.ErrNotRelated))
			Expect(&me.RoleTypeBlessedAlreadyError{Object: obj, RoleType: rt, Neighbor: neighbor}).To(MatchError(me.ErrRoleBlessedAlready))
			Expect(&me.RoleTypeNotBlessedError{Object: obj, RoleType: rt, Neighbor: neighbor}).To(MatchError(me.ErrRoleNotBlessed))
			Expect(&me.RoleTypeRequiresEntityTypeError{Object: obj, RoleType: rt, EntityType: et}).To(MatchError(me.ErrRoleRequiresEntity))

			err := &me.MultiplicityError{Object: obj, RoleType: rt, Count: 2}
			Expect(err).To(MatchError(me.ErrMultiplicity))
			Expect(err.Error()).To(Equal("multiplicity violation: org.example.mesh/R-D of o1 would have 2 neighbors, but allows 0..1"))
		})
	})

	Context("events", func() {
		It("routes by kind and mesh base", func() {
			e := me.NewPropertyChangedEvent(obj, pt, nil, primitives.NewInteger(5))
			Expect(e.GetType()).To(Equal(me.EVENT_PROPERTY_CHANGED))
			Expect(e.GetNamespace()).To(Equal("test"))
			Expect(e.String()).To(Equal(`PropertyChanged test/o1 org.example.mesh/T_P: null -> "5"`))
		})

		It("serializes", func() {
			e := me.NewTypesAddedEvent(obj, et)
			data := Must(json.Marshal(e))

			var r me.ChangeEvent
			MustBeSuccessful(json.Unmarshal(data, &r))
			Expect(r.Kind).To(Equal(me.EVENT_TYPES_ADDED))
			Expect(r.Types).To(Equal([]modelbase.Identifier{et.Identifier()}))
			Expect(r.Time.Millis()).To(Equal(e.Time.Millis()))
		})

		It("describes relationship changes", func() {
			Expect(me.NewNeighborAddedEvent(obj, "o2").String()).To(Equal("NeighborAdded test/o1 o2"))
			Expect(me.NewNeighborRemovedEvent(obj, "o2").String()).To(Equal("NeighborRemoved test/o1 o2"))
			Expect(me.NewRoleTypesAddedEvent(obj, "o2", rt).String()).To(Equal("RoleTypesAdded test/o1 o2: org.example.mesh/R-D"))
			Expect(me.NewRoleTypesRemovedEvent(obj, "o2", rt).Roles).To(Equal([]modelbase.Identifier{rt.Identifier()}))
		})
	})

	Context("access", func() {
		It("permits reading only", func() {
			Expect(me.ReadOnlyAccessManager.CheckPermittedGetProperty(obj, pt)).To(Succeed())
			Expect(me.ReadOnlyAccessManager.CheckPermittedSetProperty(obj, pt, nil)).To(MatchError(me.ErrReadOnlyAccess))
			Expect(me.ReadOnlyAccessManager.CheckPermittedDelete(obj)).To(MatchError(me.ErrReadOnlyAccess))
			Expect(me.ReadOnlyAccessManager.CheckPermittedRelate(obj, neighbor)).To(MatchError(me.ErrReadOnlyAccess))
			Expect(me.ReadOnlyAccessManager.CheckPermittedBlessRelationship(obj, neighbor, rt)).To(MatchError(me.ErrReadOnlyAccess))
		})
	})
})
