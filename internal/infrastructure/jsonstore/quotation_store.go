// Package jsonstore persiste ofertas en un archivo JSON local. El volumen es
// bajo (una herramienta interna de back-office) y un archivo versionable
// resulta más operable que otra base de datos.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/klium/quotation-api/internal/domain/entity"
	"github.com/klium/quotation-api/internal/domain/repository"
)

var _ repository.QuotationRepository = (*QuotationStore)(nil)

// QuotationStore almacén de ofertas sobre un archivo JSON. Todas las
// operaciones se serializan con un mutex: el archivo completo se lee y
// reescribe en cada alta.
type QuotationStore struct {
	mu   sync.Mutex
	path string
}

// NewQuotationStore construye el store y crea el directorio del archivo si no
// existe. El archivo en sí se crea en el primer Append.
func NewQuotationStore(path string) (*QuotationStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio del store: %w", err)
		}
	}
	return &QuotationStore{path: path}, nil
}

// List devuelve todas las ofertas guardadas, en orden de inserción.
// Archivo inexistente equivale a lista vacía.
func (s *QuotationStore) List() ([]entity.Quotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Append asigna el siguiente ID (máximo actual + 1), agrega la oferta al final
// y reescribe el archivo. Devuelve la oferta con su ID asignado.
func (s *QuotationStore) Append(q entity.Quotation) (entity.Quotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load()
	if err != nil {
		return entity.Quotation{}, err
	}
	maxID := 0
	for _, existing := range list {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	q.ID = maxID + 1
	list = append(list, q)

	if err := s.save(list); err != nil {
		return entity.Quotation{}, err
	}
	return q, nil
}

func (s *QuotationStore) load() ([]entity.Quotation, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []entity.Quotation{}, nil
		}
		return nil, fmt.Errorf("leer store: %w", err)
	}
	if len(data) == 0 {
		return []entity.Quotation{}, nil
	}
	var list []entity.Quotation
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parsear store: %w", err)
	}
	return list, nil
}

func (s *QuotationStore) save(list []entity.Quotation) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("escribir store: %w", err)
	}
	return nil
}
