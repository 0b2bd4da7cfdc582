// Package filestore guarda la base de datos de la tienda como un snapshot JSON en disco.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jhoicas/hardware-store/internal/domain/entity"
	"github.com/jhoicas/hardware-store/internal/domain/repository"
)

var (
	_ repository.DatabaseRepository = (*DatabaseRepo)(nil)
	_ repository.Quarantiner        = (*DatabaseRepo)(nil)
)

// formatVersion versión del formato del archivo.
const formatVersion = 1

type document struct {
	Version int `json:"version"`
	entity.Snapshot
}

// DatabaseRepo implementación de DatabaseRepository sobre un archivo JSON.
type DatabaseRepo struct {
	path string
}

// NewDatabaseRepository construye el adaptador para el archivo en path.
func NewDatabaseRepository(path string) *DatabaseRepo {
	return &DatabaseRepo{path: path}
}

// Path devuelve la ruta del archivo.
func (r *DatabaseRepo) Path() string { return r.path }

// Load lee el snapshot. Si el archivo no existe devuelve una base vacía.
func (r *DatabaseRepo) Load(_ context.Context) (*entity.Snapshot, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &entity.Snapshot{NextUserID: 1}, nil
		}
		return nil, fmt.Errorf("leer base de datos: %w", err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decodificar base de datos %s: %w", r.path, err)
	}
	if doc.Version > formatVersion {
		return nil, fmt.Errorf("base de datos %s: versión %d no soportada", r.path, doc.Version)
	}
	snap := doc.Snapshot
	return &snap, nil
}

// Save escribe el snapshot en un archivo temporal y lo renombra, para no dejar el archivo a medias.
func (r *DatabaseRepo) Save(_ context.Context, snap *entity.Snapshot) error {
	data, err := json.MarshalIndent(document{Version: formatVersion, Snapshot: *snap}, "", "  ")
	if err != nil {
		return fmt.Errorf("codificar base de datos: %w", err)
	}
	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".hardware-store-*.json")
	if err != nil {
		return fmt.Errorf("crear archivo temporal: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("escribir base de datos: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sincronizar base de datos: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar base de datos: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("reemplazar base de datos: %w", err)
	}
	return nil
}

// maxQuarantineCopies límite de archivos <path>.invalid.N que se prueban antes de rendirse.
const maxQuarantineCopies = 100

// Quarantine renombra el archivo a <path>.invalid (o <path>.invalid.N si ya existe) y devuelve la ruta nueva.
// Nunca pisa una copia apartada antes.
func (r *DatabaseRepo) Quarantine(_ context.Context) (string, error) {
	target := r.path + ".invalid"
	for n := 1; ; n++ {
		_, err := os.Lstat(target)
		if errors.Is(err, fs.ErrNotExist) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("apartar base de datos: %w", err)
		}
		if n > maxQuarantineCopies {
			return "", fmt.Errorf("apartar base de datos: demasiadas copias en %s", filepath.Dir(r.path))
		}
		target = r.path + ".invalid." + strconv.Itoa(n)
	}
	if err := os.Rename(r.path, target); err != nil {
		return "", fmt.Errorf("apartar base de datos: %w", err)
	}
	return target, nil
}
