package repository

import (
	"context"

	"github.com/ucampus/consola-clubes/internal/domain/entity"
)

// SesionStore es el puerto de persistencia de sesiones. Guarda a lo sumo
// una Sesion por id y sobrevive reinicios del proceso.
//
// Contrato:
//   - Load devuelve (nil, nil) si no hay sesión o si la guardada está
//     incompleta; la ausencia es un estado normal, no un error.
//   - Save sobreescribe cualquier sesión previa del mismo id. Para los
//     consumidores es todo-o-nada: un Load nunca observa un Save a medias.
//   - Clear es idempotente; limpiar un store vacío no es un error.
type SesionStore interface {
	Load(ctx context.Context, id string) (*entity.Sesion, error)
	Save(ctx context.Context, id string, s entity.Sesion) error
	Clear(ctx context.Context, id string) error
}
