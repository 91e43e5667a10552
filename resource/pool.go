// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package resource

import (
	"errors"
	"fmt"
	"sync"
)

// Pool errors.
var (
	// ErrPoolFull is returned when the pool has no free slots left.
	ErrPoolFull = errors.New("resource: pool full")

	// ErrZeroSize is returned when an image is created with a zero dimension.
	ErrZeroSize = errors.New("resource: image dimensions must be non-zero")
)

// InvalidHandleError indicates a packed handle that does not resolve to a
// live resource in the pool.
type InvalidHandleError struct {
	Handle PackedID
	Reason string
}

func (e *InvalidHandleError) Error() string {
	return fmt.Sprintf("resource: invalid handle %#x: %s", uint32(e.Handle), e.Reason)
}

// TypeError indicates a handle whose encoded type does not match the
// requested resource kind.
type TypeError struct {
	Handle PackedID
	Want   Type
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("resource: handle %#x is a %s, want %s",
		uint32(e.Handle), e.Handle.Type(), e.Want)
}

// Pool holds the image targets a dispatch can address through packed
// handles. It is the CPU analog of a bindless descriptor table: the host
// creates images, passes their packed IDs through the parameter block, and
// the kernel resolves them back before writing.
//
// Pool is safe for concurrent use. Resolution takes a read lock only, so
// many invocations may resolve the same handle while a frame is in flight;
// creating or destroying images concurrently with a dispatch that uses
// them is a host-side protocol violation, same as on the GPU.
type Pool struct {
	mu     sync.RWMutex
	images []*Image
	free   []ImageID
}

// NewPool creates an empty resource pool.
func NewPool() *Pool {
	return &Pool{}
}

// CreateImage allocates an image target and returns its ID.
// Destroyed slots are reused before the pool grows.
func (p *Pool) CreateImage(info ImageInfo) (ImageID, error) {
	if info.Width == 0 || info.Height == 0 {
		return 0, ErrZeroSize
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if n := len(p.free); n > 0 {
		id := p.free[n-1]
		p.free = p.free[:n-1]
		p.images[id] = newImage(info)
		return id, nil
	}

	if len(p.images) >= MaxPoolSize {
		return 0, ErrPoolFull
	}

	p.images = append(p.images, newImage(info))
	return ImageID(len(p.images) - 1), nil
}

// Image returns the image for an ID issued by CreateImage.
func (p *Pool) Image(id ImageID) (*Image, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if int(id) >= len(p.images) || p.images[id] == nil {
		return nil, &InvalidHandleError{
			Handle: id.Pack(false),
			Reason: "no such image",
		}
	}
	return p.images[id], nil
}

// ResolveImage resolves a packed handle to a writable image target.
//
// This is the indirection step the kernel performs before its pixel write.
// A handle that does not resolve is a violated host precondition; the error
// return is the Go-native surface for it, since a library cannot leave the
// failure undefined the way a shader does.
func (p *Pool) ResolveImage(h PackedID) (*Image, error) {
	if h.Type() != TypeStorageImage {
		return nil, &TypeError{Handle: h, Want: TypeStorageImage}
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	idx := h.Index()
	if int(idx) >= len(p.images) || p.images[idx] == nil {
		return nil, &InvalidHandleError{Handle: h, Reason: "no such image"}
	}
	return p.images[idx], nil
}

// Recreate replaces the image in an existing slot with a freshly allocated
// one of the given dimensions, keeping the ID stable. This is the resize
// path: handles held by the host stay valid across a resolution change.
func (p *Pool) Recreate(id ImageID, info ImageInfo) error {
	if info.Width == 0 || info.Height == 0 {
		return ErrZeroSize
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if int(id) >= len(p.images) || p.images[id] == nil {
		return &InvalidHandleError{
			Handle: id.Pack(false),
			Reason: "no such image",
		}
	}
	p.images[id] = newImage(info)
	return nil
}

// DestroyImage releases the image and recycles its slot.
// Destroying an unknown or already destroyed ID is a no-op.
func (p *Pool) DestroyImage(id ImageID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if int(id) >= len(p.images) || p.images[id] == nil {
		return
	}
	p.images[id] = nil
	p.free = append(p.free, id)
}

// Len returns the number of live images in the pool.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	n := 0
	for _, im := range p.images {
		if im != nil {
			n++
		}
	}
	return n
}
