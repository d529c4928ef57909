package handlers

import (
	"github.com/Sill-Liu/test-platform/internal/mocknet"
	"github.com/Sill-Liu/test-platform/internal/store"
)

var (
	stores *store.Store
	mock   *mocknet.Client
)

// Init wires the handler package to its stores and the mock transport.
// Must run before the router starts serving.
func Init(s *store.Store, m *mocknet.Client) {
	stores = s
	mock = m
}
