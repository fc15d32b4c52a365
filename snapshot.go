package ncarray

import (
	"encoding/json"
	"fmt"
)

// snapshot captures the full array state for serialization. Data is stored
// in raw physical order alongside the offset vector, so decoding restores
// the exact in-memory layout without any normalizing copies.
type snapshot[T any] struct {
	Shape  []int `json:"shape"`
	Offset []int `json:"offset"`
	Data   []T   `json:"data"`
}

// MarshalJSON encodes shape, offsets and raw data.
func (a *Array[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(snapshot[T]{
		Shape:  a.Shape(),
		Offset: a.Offset(),
		Data:   a.data,
	})
}

// UnmarshalJSON restores an array encoded by MarshalJSON. The snapshot is
// validated as in NewOffset; on error the receiver is left unchanged.
func (a *Array[T]) UnmarshalJSON(b []byte) error {
	var snap snapshot[T]
	if err := json.Unmarshal(b, &snap); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	restored, err := NewOffset(snap.Shape, snap.Offset, snap.Data)
	if err != nil {
		return err
	}
	*a = *restored
	return nil
}
