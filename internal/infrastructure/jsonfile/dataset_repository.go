// Package jsonfile implementa DatasetRepository sobre un documento JSON con la
// forma {"sellers": [...], "products": [...], "purchase_records": [...]}.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/jhoicas/sales-analytics/internal/application/dto"
	"github.com/jhoicas/sales-analytics/internal/domain"
	"github.com/jhoicas/sales-analytics/internal/domain/repository"
	"github.com/jhoicas/sales-analytics/internal/domain/sales"
)

var _ repository.DatasetRepository = (*DatasetRepo)(nil)

// DatasetRepo lee el dataset completo en cada llamada (el archivo puede cambiar entre reportes).
type DatasetRepo struct {
	path string
}

// NewDatasetRepository construye el adaptador para el archivo indicado.
func NewDatasetRepository(path string) *DatasetRepo {
	return &DatasetRepo{path: path}
}

// LoadDataset abre y decodifica el archivo.
// Archivo inexistente → domain.ErrNotFound envuelto.
func (r *DatasetRepo) LoadDataset(ctx context.Context) (*sales.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("jsonfile: %s: %w", r.path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("jsonfile: abrir %s: %w", r.path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode lee un dataset desde r. Un documento "null" devuelve un dataset nil.
func Decode(r io.Reader) (*sales.Dataset, error) {
	var doc *dto.SalesDatasetDTO
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("jsonfile: decodificar dataset: %w", err)
	}
	return doc.Dataset(), nil
}
