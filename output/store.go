package output

import (
	"github.com/google/uuid"
	"github.com/peterbourgon/diskv"
	"github.com/pkg/errors"
	"sort"
)

// BlockTransform determines how diskv should partition folders.
func BlockTransform(blockSize int) func(string) []string {
	return func(s string) []string {
		var (
			sliceSize = len(s) / blockSize
			pathSlice = make([]string, sliceSize)
		)
		for i := 0; i < sliceSize; i++ {
			from, to := i*blockSize, (i*blockSize)+blockSize
			pathSlice[i] = s[from:to]
		}
		return pathSlice
	}
}

// Store persists reports on disk, keyed by report ID.
type Store struct {
	*diskv.Diskv
}

// NewStore creates a compressed report store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{diskv.New(diskv.Options{
		BasePath:     dir,
		Transform:    BlockTransform(9),
		CacheSizeMax: 1024 * 1024,
		Compression:  diskv.NewGzipCompression(),
	})}
}

// Put writes a report, replacing any report with the same ID.
func (s *Store) Put(r Report) error {
	b, err := r.MarshalJSON()
	if err != nil {
		return err
	}
	return errors.Wrapf(s.Write(r.ID.String(), b), "could not store report %s", r.ID)
}

// Get reads the report with the given ID.
func (s *Store) Get(id uuid.UUID) (Report, error) {
	b, err := s.Read(id.String())
	if err != nil {
		return Report{}, errors.Wrapf(err, "could not read report %s", id)
	}
	var r Report
	if err := r.UnmarshalJSON(b); err != nil {
		return Report{}, errors.Wrapf(err, "report %s is corrupt", id)
	}
	return r, nil
}

// IDs lists the IDs of every stored report in sorted order.
func (s *Store) IDs() []uuid.UUID {
	var ids []uuid.UUID
	for key := range s.Keys(nil) {
		id, err := uuid.Parse(key)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})
	return ids
}
