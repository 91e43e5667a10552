// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package resource

import (
	"errors"
	"testing"
)

func TestPool_CreateAndResolve(t *testing.T) {
	p := NewPool()

	id, err := p.CreateImage(ImageInfo{Label: "target", Width: 64, Height: 32})
	if err != nil {
		t.Fatalf("CreateImage: %v", err)
	}

	img, err := p.Image(id)
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if img.Label() != "target" || img.Width() != 64 || img.Height() != 32 {
		t.Errorf("got %q %dx%d, want \"target\" 64x32", img.Label(), img.Width(), img.Height())
	}

	resolved, err := p.ResolveImage(id.Pack(true))
	if err != nil {
		t.Fatalf("ResolveImage: %v", err)
	}
	if resolved != img {
		t.Error("ResolveImage returned a different image than Image")
	}

	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}
}

func TestPool_CreateZeroSize(t *testing.T) {
	p := NewPool()

	if _, err := p.CreateImage(ImageInfo{Width: 0, Height: 8}); !errors.Is(err, ErrZeroSize) {
		t.Errorf("zero width: err = %v, want ErrZeroSize", err)
	}
	if _, err := p.CreateImage(ImageInfo{Width: 8, Height: 0}); !errors.Is(err, ErrZeroSize) {
		t.Errorf("zero height: err = %v, want ErrZeroSize", err)
	}
}

func TestPool_ResolveUnknownHandle(t *testing.T) {
	p := NewPool()

	_, err := p.ResolveImage(ImageID(3).Pack(true))
	var ihe *InvalidHandleError
	if !errors.As(err, &ihe) {
		t.Fatalf("err = %v, want InvalidHandleError", err)
	}
	if ihe.Handle.Index() != 3 {
		t.Errorf("error handle index = %d, want 3", ihe.Handle.Index())
	}
}

func TestPool_ResolveWrongType(t *testing.T) {
	p := NewPool()
	if _, err := p.CreateImage(ImageInfo{Width: 8, Height: 8}); err != nil {
		t.Fatal(err)
	}

	bufferHandle := PackedID(uint32(TypeBuffer) << 20)
	_, err := p.ResolveImage(bufferHandle)
	var te *TypeError
	if !errors.As(err, &te) {
		t.Fatalf("err = %v, want TypeError", err)
	}
	if te.Want != TypeStorageImage {
		t.Errorf("Want = %v, want storage image", te.Want)
	}
}

func TestPool_DestroyAndReuse(t *testing.T) {
	p := NewPool()

	id, err := p.CreateImage(ImageInfo{Width: 8, Height: 8})
	if err != nil {
		t.Fatal(err)
	}

	p.DestroyImage(id)
	if _, err := p.Image(id); err == nil {
		t.Error("resolving a destroyed image should fail")
	}
	if p.Len() != 0 {
		t.Errorf("Len() = %d after destroy, want 0", p.Len())
	}

	// The freed slot is reissued before the pool grows.
	again, err := p.CreateImage(ImageInfo{Width: 4, Height: 4})
	if err != nil {
		t.Fatal(err)
	}
	if again != id {
		t.Errorf("reissued ID = %d, want recycled slot %d", again, id)
	}

	p.DestroyImage(ImageID(99)) // unknown ID is a no-op
	p.DestroyImage(id)
	p.DestroyImage(id) // double destroy is a no-op
}

func TestPool_Recreate(t *testing.T) {
	p := NewPool()

	id, err := p.CreateImage(ImageInfo{Width: 8, Height: 8})
	if err != nil {
		t.Fatal(err)
	}

	if err := p.Recreate(id, ImageInfo{Width: 32, Height: 16}); err != nil {
		t.Fatalf("Recreate: %v", err)
	}

	img, err := p.Image(id)
	if err != nil {
		t.Fatalf("Image after Recreate: %v", err)
	}
	if img.Width() != 32 || img.Height() != 16 {
		t.Errorf("recreated image is %dx%d, want 32x16", img.Width(), img.Height())
	}

	if err := p.Recreate(id, ImageInfo{Width: 0, Height: 1}); !errors.Is(err, ErrZeroSize) {
		t.Errorf("zero-size recreate: err = %v, want ErrZeroSize", err)
	}

	var ihe *InvalidHandleError
	if err := p.Recreate(ImageID(42), ImageInfo{Width: 4, Height: 4}); !errors.As(err, &ihe) {
		t.Errorf("recreate of unknown ID: err = %v, want InvalidHandleError", err)
	}
}
