package height

import (
	"errors"
	"fmt"

	"github.com/soypat/glgl/math/ms3"
)

// VecPool serves as a pool of Vec3 and float32 slices for evaluating noise
// on the CPU while reducing garbage generation. A VecPool must not be used
// by more than one evaluation at a time.
type VecPool struct {
	V3    bufPool[ms3.Vec]
	Float bufPool[float32]
}

// AssertAllReleased checks all buffers are not in use. Should be called
// after ending a run to find memory leaks.
func (vp *VecPool) AssertAllReleased() error {
	err := vp.Float.assertAllReleased()
	if err != nil {
		return err
	}
	return vp.V3.assertAllReleased()
}

type bufPool[T any] struct {
	_ins      [][]T
	_acquired []bool
}

// Acquire returns a buffer of length length, reusing a released one when possible.
func (bp *bufPool[T]) Acquire(length int) []T {
	if length <= 0 {
		panic("bufPool: acquire of non-positive length")
	}
	for i, locked := range bp._acquired {
		if !locked && len(bp._ins[i]) >= length {
			bp._acquired[i] = true
			return bp._ins[i][:length]
		}
	}
	newSlice := make([]T, length)
	bp._ins = append(bp._ins, newSlice)
	bp._acquired = append(bp._acquired, true)
	return newSlice
}

// Release returns a buffer obtained from Acquire to the pool.
func (bp *bufPool[T]) Release(buf []T) error {
	if len(buf) == 0 {
		return errors.New("release of empty buffer")
	}
	for i, instance := range bp._ins {
		if &instance[0] == &buf[0] {
			if !bp._acquired[i] {
				return errors.New("release of unacquired resource")
			}
			bp._acquired[i] = false
			return nil
		}
	}
	return errors.New("release of nonexistent resource")
}

func (bp *bufPool[T]) assertAllReleased() error {
	for _, locked := range bp._acquired {
		if locked {
			return fmt.Errorf("locked %T resource found in height.bufPool.assertAllReleased, memory leak?", *new(T))
		}
	}
	return nil
}
