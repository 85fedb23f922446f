package omap

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// node is a single key value pair in the chain. Each node owns
// the node that follows it.
type node[K, V any] struct {
	key  K
	val  V
	next *node[K, V]
}

func (n *node[K, V]) String() string {
	return fmt.Sprintf("node[key=%v, val=%v, next=%p]", n.key, n.val, n.next)
}

// copyNode returns a detached node holding owned copies of n's key and
// value. Nothing is left allocated when it fails.
func (m *Map[K, V]) copyNode(n *node[K, V]) (*node[K, V], error) {
	val, err := m.fns.CopyValue(n.val)
	if err != nil {
		m.log.Debug("copy value failed", zap.Error(err))
		return nil, errors.Wrapf(ErrOutOfMemory, "copy value: %v", err)
	}
	key, err := m.fns.CopyKey(n.key)
	if err != nil {
		m.fns.FreeValue(val)
		m.log.Debug("copy key failed, released value copy", zap.Error(err))
		return nil, errors.Wrapf(ErrOutOfMemory, "copy key: %v", err)
	}
	return &node[K, V]{key: key, val: val}, nil
}

// destroyNode releases the key and value owned by n.
func (m *Map[K, V]) destroyNode(n *node[K, V]) {
	m.fns.FreeKey(n.key)
	m.fns.FreeValue(n.val)
	n.next = nil
}
