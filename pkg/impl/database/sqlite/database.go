package sqlite

import (
	"errors"
	"fmt"
	"sync"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mandelsoft/meshmodel/pkg/database"
)

// InMemoryDSN opens a private in-memory database.
const InMemoryDSN = "file::memory:"

// record is the table row of a stored object. The generation
// is kept as column to check concurrent modifications without
// decoding the stored object.
type record struct {
	Type       string `gorm:"primaryKey"`
	Namespace  string `gorm:"primaryKey"`
	Name       string `gorm:"primaryKey"`
	Generation int64
	Data       []byte
}

func (record) TableName() string {
	return "objects"
}

// Database stores encoded objects in a single sqlite table.
type Database[O database.Object] struct {
	lock     sync.Mutex
	encoding database.Encoding[O]
	db       *gorm.DB

	database.HandlerRegistry
}

var (
	_ database.Database[database.Object]    = (*Database[database.Object])(nil)
	_ database.BatchWriter[database.Object] = (*Database[database.Object])(nil)
	_ database.HandlerRegistrationTest      = (*Database[database.Object])(nil)
)

func New[O database.Object](enc database.Encoding[O], dsn string) (database.Database[O], error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("cannot open sqlite database %q: %w", dsn, err)
	}
	sqldb, err := db.DB()
	if err != nil {
		return nil, err
	}
	// single connection to avoid table lock issues
	sqldb.SetMaxOpenConns(1)

	err = db.AutoMigrate(&record{})
	if err != nil {
		return nil, fmt.Errorf("cannot migrate sqlite database %q: %w", dsn, err)
	}

	d := &Database[O]{encoding: enc, db: db}
	d.HandlerRegistry = database.NewHandlerRegistry(d)
	log.Info("sqlite database {{dsn}}", "dsn", dsn)
	return d, nil
}

func (d *Database[O]) SchemeTypes() database.SchemeTypes[O] {
	return d.encoding
}

func (d *Database[O]) query(typ, ns string) *gorm.DB {
	q := d.db.Model(&record{})
	if typ != "" {
		q = q.Where("type = ?", typ)
	}
	if ns != "" {
		q = q.Where("namespace = ?", ns)
	}
	return q.Order("type, namespace, name")
}

func (d *Database[O]) ListObjectIds(typ string, ns string, atomic ...func()) ([]database.ObjectId, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	for _, f := range atomic {
		f()
	}

	var list []record
	err := d.query(typ, ns).Select("type", "namespace", "name").Find(&list).Error
	if err != nil {
		return nil, err
	}
	result := make([]database.ObjectId, len(list))
	for i, r := range list {
		result[i] = database.NewObjectId(r.Type, r.Namespace, r.Name)
	}
	return result, nil
}

func (d *Database[O]) ListObjects(typ, ns string) ([]O, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	var list []record
	err := d.query(typ, ns).Find(&list).Error
	if err != nil {
		return nil, err
	}
	result := make([]O, 0, len(list))
	for _, r := range list {
		o, err := d.decode(&r)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, nil
}

func (d *Database[O]) GetObject(id database.ObjectId) (O, error) {
	var _nil O

	d.lock.Lock()
	defer d.lock.Unlock()

	r, err := get(d.db, id)
	if err != nil {
		return _nil, err
	}
	return d.decode(r)
}

func get(db *gorm.DB, id database.ObjectId) (*record, error) {
	var r record
	err := db.Where("type = ? AND namespace = ? AND name = ?", id.GetType(), id.GetNamespace(), id.GetName()).First(&r).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s: %w", database.StringId(id), database.ErrNotExist)
		}
		return nil, err
	}
	return &r, nil
}

func (d *Database[O]) decode(r *record) (O, error) {
	var _nil O

	o, err := d.encoding.Decode(r.Data)
	if err != nil {
		return _nil, fmt.Errorf("corrupted database entry %s/%s/%s: %w", r.Type, r.Namespace, r.Name, err)
	}
	if !database.EqualObjectId(o, database.NewObjectId(r.Type, r.Namespace, r.Name)) {
		return _nil, fmt.Errorf("corrupted database: entry %s/%s/%s contains object %s", r.Type, r.Namespace, r.Name, database.StringId(o))
	}
	return o, nil
}

func (d *Database[O]) SetObject(o O) error {
	err := d.setObject(o)
	if err == nil {
		d.TriggerEvent(o)
	}
	return err
}

func (d *Database[O]) setObject(o O) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	return d.db.Transaction(func(tx *gorm.DB) error {
		_, err := d.save(tx, o)
		return err
	})
}

// save stores an object using a gorm transaction. It provides the
// generation of the object before the write, or -1 for objects
// without generation.
func (d *Database[O]) save(tx *gorm.DB, o O) (int64, error) {
	old, err := get(tx, o)
	if err != nil && !errors.Is(err, database.ErrNotExist) {
		return -1, err
	}

	g, versioned := any(o).(database.GenerationAccess)
	prev, gen := int64(-1), int64(0)
	if versioned {
		if old != nil && old.Generation != g.GetGeneration() {
			return -1, fmt.Errorf("%s: %w", database.StringId(o), database.ErrModified)
		}
		prev = g.GetGeneration()
		gen = prev + 1
		g.SetGeneration(gen)
	}
	data, err := d.encoding.Encode(o)
	if err == nil {
		err = tx.Save(&record{
			Type:       o.GetType(),
			Namespace:  o.GetNamespace(),
			Name:       o.GetName(),
			Generation: gen,
			Data:       data,
		}).Error
	}
	if err != nil {
		if versioned {
			g.SetGeneration(prev)
		}
		return -1, err
	}
	return prev, nil
}

func remove(db *gorm.DB, id database.ObjectId) (int64, error) {
	r := db.Where("type = ? AND namespace = ? AND name = ?", id.GetType(), id.GetNamespace(), id.GetName()).Delete(&record{})
	return r.RowsAffected, r.Error
}

// WriteBatch stores and deletes a set of objects in a single
// database transaction.
func (d *Database[O]) WriteBatch(set []O, del []database.ObjectId) error {
	err := d.writeBatch(set, del)
	if err != nil {
		return err
	}
	for _, o := range set {
		d.TriggerEvent(o)
	}
	for _, id := range del {
		d.TriggerEvent(id)
	}
	return nil
}

func (d *Database[O]) writeBatch(set []O, del []database.ObjectId) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	gens := make([]int64, 0, len(set))
	err := d.db.Transaction(func(tx *gorm.DB) error {
		for _, o := range set {
			prev, err := d.save(tx, o)
			if err != nil {
				return err
			}
			gens = append(gens, prev)
		}
		for _, id := range del {
			if _, err := remove(tx, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// the stored generations are rolled back, too
		for i, prev := range gens {
			if prev >= 0 {
				any(set[i]).(database.GenerationAccess).SetGeneration(prev)
			}
		}
	}
	return err
}

func (d *Database[O]) DeleteObject(id database.ObjectId) error {
	err := d.deleteObject(id)
	if err == nil {
		d.TriggerEvent(id)
	}
	return err
}

func (d *Database[O]) deleteObject(id database.ObjectId) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	n, err := remove(d.db, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", database.StringId(id), database.ErrNotExist)
	}
	return nil
}

// Close closes the underlying connection.
func (d *Database[O]) Close() error {
	sqldb, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqldb.Close()
}
