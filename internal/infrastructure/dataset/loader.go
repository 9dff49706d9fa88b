// Package dataset implementa los puertos de lectura (users, categories, products) sobre un
// documento YAML. Por defecto usa el dataset embebido en el binario; CATALOG_DATA_PATH lo
// reemplaza por un archivo.
package dataset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/catalogo-productos/internal/domain"
	"github.com/jhoicas/catalogo-productos/internal/domain/entity"
)

//go:embed data/catalog.yaml
var defaultDataset []byte

type document struct {
	Users      []userRecord     `yaml:"users"`
	Categories []categoryRecord `yaml:"categories"`
	Products   []productRecord  `yaml:"products"`
}

type userRecord struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
	Sex  string `yaml:"sex"`
}

type categoryRecord struct {
	ID      int    `yaml:"id"`
	Title   string `yaml:"title"`
	Icon    string `yaml:"icon"`
	OwnerID int    `yaml:"ownerId"`
}

type productRecord struct {
	ID         int    `yaml:"id"`
	Name       string `yaml:"name"`
	CategoryID int    `yaml:"categoryId"`
}

// Tables las tres tablas de consulta ya convertidas a entidades.
type Tables struct {
	Users      []entity.User
	Categories []entity.Category
	Products   []entity.Product
}

// Load lee el dataset de path, o el embebido si path está vacío.
func Load(path string) (*Tables, error) {
	if path == "" {
		return Decode(bytes.NewReader(defaultDataset))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir dataset: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode lee un documento YAML. Rechaza claves desconocidas y valores de sex fuera de la
// enumeración. No valida referencias: eso lo hace catalog.Build.
func Decode(r io.Reader) (*Tables, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decodificar dataset: %w", err)
	}

	t := &Tables{
		Users:      make([]entity.User, 0, len(doc.Users)),
		Categories: make([]entity.Category, 0, len(doc.Categories)),
		Products:   make([]entity.Product, 0, len(doc.Products)),
	}
	for _, u := range doc.Users {
		sex := entity.Sex(u.Sex)
		if !sex.Valid() {
			return nil, fmt.Errorf("usuario %d: sex %q: %w", u.ID, u.Sex, domain.ErrInvalidInput)
		}
		t.Users = append(t.Users, entity.User{ID: u.ID, Name: u.Name, Sex: sex})
	}
	for _, c := range doc.Categories {
		t.Categories = append(t.Categories, entity.Category{ID: c.ID, Title: c.Title, Icon: c.Icon, OwnerID: c.OwnerID})
	}
	for _, p := range doc.Products {
		t.Products = append(t.Products, entity.Product{ID: p.ID, Name: p.Name, CategoryID: p.CategoryID})
	}
	return t, nil
}
