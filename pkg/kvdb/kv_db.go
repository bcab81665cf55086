package kvdb

import (
	"errors"
	"strconv"
	"sync"

	"github.com/lintang-b-s/go-area-edit/pkg/datastructure"

	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

var (
	ErrorsKeyNotExists = errors.New("key not exists")
)

const (
	BBOLTDB_POLYGON_BUCKET = "polygons"
)

type KVDB struct {
	db *bbolt.DB
	sync.Mutex
}

func NewKVDB(db *bbolt.DB) (*KVDB, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(BBOLTDB_POLYGON_BUCKET))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &KVDB{db,
		sync.Mutex{}}, nil
}

// NextID hands out polygon ids from the bucket sequence.
func (db *KVDB) NextID() (int, error) {
	var id uint64
	err := db.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_POLYGON_BUCKET))
		var err error
		id, err = b.NextSequence()
		return err
	})
	return int(id), err
}

func (db *KVDB) SavePolygon(poly datastructure.Polygon) error {
	return db.db.Update(func(tx *bbolt.Tx) error {
		polyBytes, err := serializePolygon(poly)
		if err != nil {
			return err
		}
		b := tx.Bucket([]byte(BBOLTDB_POLYGON_BUCKET))
		return b.Put([]byte(strconv.Itoa(poly.ID)), polyBytes)
	})
}

// SavePolygons writes many records in one batch, used by workspace import.
// The bucket sequence is bumped past the largest imported id so that
// NextID never hands out an id that is already taken.
func (db *KVDB) SavePolygons(polys []datastructure.Polygon) error {
	db.Lock()
	defer db.Unlock()
	return db.db.Batch(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_POLYGON_BUCKET))
		maxID := b.Sequence()
		for _, poly := range polys {
			polyBytes, err := serializePolygon(poly)
			if err != nil {
				return err
			}
			if err := b.Put([]byte(strconv.Itoa(poly.ID)), polyBytes); err != nil {
				return err
			}
			if uint64(poly.ID) > maxID {
				maxID = uint64(poly.ID)
			}
		}
		return b.SetSequence(maxID)
	})
}

func (db *KVDB) GetPolygon(id int) (poly datastructure.Polygon, err error) {
	db.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_POLYGON_BUCKET))
		polyBytes := b.Get([]byte(strconv.Itoa(id)))
		if polyBytes == nil {
			err = ErrorsKeyNotExists
			return nil
		}
		poly, err = deserializePolygon(polyBytes)
		return nil
	})
	return
}

func (db *KVDB) DeletePolygon(id int) error {
	return db.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_POLYGON_BUCKET))
		if b.Get([]byte(strconv.Itoa(id))) == nil {
			return ErrorsKeyNotExists
		}
		return b.Delete([]byte(strconv.Itoa(id)))
	})
}

func (db *KVDB) AllPolygons() (polys []datastructure.Polygon, err error) {
	err = db.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_POLYGON_BUCKET))
		return b.ForEach(func(_, v []byte) error {
			poly, derr := deserializePolygon(v)
			if derr != nil {
				return derr
			}
			polys = append(polys, poly)
			return nil
		})
	})
	return
}

func serializePolygon(poly datastructure.Polygon) ([]byte, error) {
	return msgpack.Marshal(poly)
}

func deserializePolygon(buf []byte) (datastructure.Polygon, error) {
	var poly datastructure.Polygon
	err := msgpack.Unmarshal(buf, &poly)
	return poly, err
}
