//go:build unix
// +build unix

// File: mem/block.go
// Author: wyattgill9 <wyattgill9@gmail.com>
// License: Apache-2.0
//
// Page-aligned memory blocks allocated outside the Go heap.

package mem

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// ErrInvalidSize reports a non-positive block size.
var ErrInvalidSize = errors.New("mem: block size must be positive")

// Block is a page-aligned memory region mapped outside the Go heap.
// The zero value is not usable; allocate with NewBlock.
type Block struct {
	data []byte
}

// NewBlock maps size bytes of zeroed memory. The region starts on a
// page boundary, so any alignment up to the page size holds.
func NewBlock(size int) (*Block, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("Mmap: %w", err)
	}
	return &Block{data: data}, nil
}

// Bytes returns the block contents. The slice dies with Close.
func (b *Block) Bytes() []byte {
	return b.data
}

// Len returns the block size in bytes.
func (b *Block) Len() int {
	return len(b.data)
}

// Fill sets every byte to value.
func (b *Block) Fill(value byte) {
	for i := range b.data {
		b.data[i] = value
	}
}

// Zero wipes the block. Call before Close when the block held key
// material or other secrets.
func (b *Block) Zero() {
	for i := range b.data {
		b.data[i] = 0
	}
}

// Close unmaps the block. Safe to call more than once.
func (b *Block) Close() error {
	if b.data == nil {
		return nil
	}
	data := b.data
	b.data = nil
	if err := unix.Munmap(data); err != nil {
		return fmt.Errorf("Munmap: %w", err)
	}
	return nil
}
