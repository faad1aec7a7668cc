package redis

import (
	"context"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ucampus/consola-clubes/internal/domain/entity"
	"github.com/ucampus/consola-clubes/internal/domain/repository"
)

// Campos del hash de sesión. Se escriben y borran siempre como unidad;
// si al leer falta cualquiera, la sesión se considera ausente.
const (
	campoToken     = "token"
	campoRol       = "rol"
	campoNombre    = "nombre"
	campoEmail     = "email"
	campoUsuarioID = "usuario_id"
)

// Verificación en tiempo de compilación del puerto.
var _ repository.SesionStore = (*SesionStore)(nil)

// SesionStore persiste cada sesión como un hash de Redis bajo
// "sesion:<id>". Con ttl en 0 la sesión no expira: la consola no
// invalida credenciales por su cuenta.
type SesionStore struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

// NewSesionStore construye el store. ttlMinutes en 0 desactiva la expiración.
func NewSesionStore(client *goredis.Client, ttlMinutes int) *SesionStore {
	return &SesionStore{
		client: client,
		prefix: "sesion:",
		ttl:    time.Duration(ttlMinutes) * time.Minute,
	}
}

func (r *SesionStore) key(id string) string {
	return r.prefix + id
}

// Load lee el hash completo. Devuelve (nil, nil) si no existe o si el
// estado guardado es parcial (por ejemplo token sin rol).
func (r *SesionStore) Load(ctx context.Context, id string) (*entity.Sesion, error) {
	if id == "" {
		return nil, nil
	}
	campos, err := r.client.HGetAll(ctx, r.key(id)).Result()
	if err != nil {
		return nil, err
	}
	if len(campos) == 0 {
		return nil, nil
	}

	usuarioID, _ := strconv.Atoi(campos[campoUsuarioID])
	s := entity.Sesion{
		UsuarioID: usuarioID,
		Token:     campos[campoToken],
		Rol:       campos[campoRol],
		Nombre:    campos[campoNombre],
		Email:     campos[campoEmail],
	}
	if !s.Completa() {
		return nil, nil
	}
	return &s, nil
}

// Save escribe los cinco campos en una sola operación HSet, sobre-
// escribiendo cualquier sesión previa del mismo id.
func (r *SesionStore) Save(ctx context.Context, id string, s entity.Sesion) error {
	key := r.key(id)
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, map[string]interface{}{
		campoToken:     s.Token,
		campoRol:       s.Rol,
		campoNombre:    s.Nombre,
		campoEmail:     s.Email,
		campoUsuarioID: strconv.Itoa(s.UsuarioID),
	})
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// Clear elimina la sesión. Borrar una sesión inexistente no es un error.
func (r *SesionStore) Clear(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return r.client.Del(ctx, r.key(id)).Err()
}
