// Package memory implementa los puertos de persistencia en memoria. El estado vive lo que
// vive el proceso; cada tabla guarda el orden de inserción y devuelve copias para que
// los casos de uso nunca muten filas compartidas.
package memory

import (
	"fmt"
	"sync"

	"github.com/jhoicas/epi-console/internal/domain"
)

// table almacenamiento ordenado por inserción con índice por ID. Seguro entre goroutines.
type table[T any] struct {
	mu    sync.RWMutex
	name  string
	rows  []*T
	index map[string]int
	key   func(*T) string
	clone func(*T) *T
}

func newTable[T any](name string, key func(*T) string, clone func(*T) *T) *table[T] {
	return &table[T]{
		name:  name,
		index: make(map[string]int),
		key:   key,
		clone: clone,
	}
}

func (t *table[T]) insert(row *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.key(row)
	if _, ok := t.index[id]; ok {
		return fmt.Errorf("insert %s %s: %w", t.name, id, domain.ErrDuplicate)
	}
	t.index[id] = len(t.rows)
	t.rows = append(t.rows, t.clone(row))
	return nil
}

func (t *table[T]) replace(row *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.key(row)
	i, ok := t.index[id]
	if !ok {
		return fmt.Errorf("update %s %s: %w", t.name, id, domain.ErrNotFound)
	}
	t.rows[i] = t.clone(row)
	return nil
}

// get devuelve una copia o nil si no existe.
func (t *table[T]) get(id string) *T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	i, ok := t.index[id]
	if !ok {
		return nil
	}
	return t.clone(t.rows[i])
}

// find devuelve la primera fila (en orden de inserción) que cumple match.
func (t *table[T]) find(match func(*T) bool) *T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, r := range t.rows {
		if match(r) {
			return t.clone(r)
		}
	}
	return nil
}

// list devuelve copias de las filas que cumplen keep (todas si keep es nil).
func (t *table[T]) list(keep func(*T) bool) []*T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*T, 0, len(t.rows))
	for _, r := range t.rows {
		if keep == nil || keep(r) {
			out = append(out, t.clone(r))
		}
	}
	return out
}
