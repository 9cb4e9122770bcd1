// Package manual supplies appliance manual text to the extraction
// pipeline. Text reaches the store out of band (pasted in, imported
// from a file); this package only reads it back.
package manual

import (
	"context"
	"fmt"
	"os"
)

// Source yields the stored manual text for an appliance. An appliance
// with no manual yields an empty string, not an error.
type Source interface {
	ManualText(ctx context.Context, applianceID int64) (string, error)
}

// TextGetter is the slice of the appliance store this package needs.
type TextGetter interface {
	GetManualText(id int64) (string, error)
}

// StoreSource reads manual text previously saved on the appliance row.
type StoreSource struct {
	appliances TextGetter
}

func NewStoreSource(appliances TextGetter) *StoreSource {
	return &StoreSource{appliances: appliances}
}

func (s *StoreSource) ManualText(ctx context.Context, applianceID int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, err := s.appliances.GetManualText(applianceID)
	if err != nil {
		return "", fmt.Errorf("load manual text: %w", err)
	}
	return text, nil
}

// FileSource serves one file's contents regardless of appliance, for
// imports from a text dump on disk.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) ManualText(ctx context.Context, _ int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("read manual file: %w", err)
	}
	return string(data), nil
}
