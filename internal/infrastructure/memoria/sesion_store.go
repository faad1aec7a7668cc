package memoria

import (
	"context"
	"sync"

	"github.com/ucampus/consola-clubes/internal/domain/entity"
	"github.com/ucampus/consola-clubes/internal/domain/repository"
)

var _ repository.SesionStore = (*SesionStore)(nil)

// SesionStore implementación en memoria del puerto de sesiones.
// Útil en desarrollo sin Redis y como doble en tests. No sobrevive
// reinicios del proceso.
type SesionStore struct {
	mu       sync.RWMutex
	sesiones map[string]entity.Sesion
}

// NewSesionStore construye el store vacío.
func NewSesionStore() *SesionStore {
	return &SesionStore{sesiones: make(map[string]entity.Sesion)}
}

// Load devuelve (nil, nil) si no hay sesión o si la guardada está incompleta.
func (m *SesionStore) Load(_ context.Context, id string) (*entity.Sesion, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sesiones[id]
	if !ok || !s.Completa() {
		return nil, nil
	}
	copia := s
	return &copia, nil
}

// Save reemplaza por completo cualquier sesión previa del mismo id.
func (m *SesionStore) Save(_ context.Context, id string, s entity.Sesion) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sesiones[id] = s
	return nil
}

// Clear es idempotente.
func (m *SesionStore) Clear(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sesiones, id)
	return nil
}
