// Package cli implementa los comandos cobra del binario catalog.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jhoicas/catalogo-productos/internal/application/usecase"
	"github.com/jhoicas/catalogo-productos/internal/domain/catalog"
	"github.com/jhoicas/catalogo-productos/internal/infrastructure/dataset"
	"github.com/jhoicas/catalogo-productos/pkg/config"
)

// NewRootCommand construye el árbol de comandos. --data (o CATALOG_DATA_PATH) elige el dataset.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	root := &cobra.Command{
		Use:          "catalog",
		Short:        "Consulta el catálogo de productos",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("data", "", "Ruta del dataset YAML (por defecto el embebido)")
	_ = v.BindPFlag("CATALOG_DATA_PATH", root.PersistentFlags().Lookup("data"))

	load := func(ctx context.Context) (*usecase.CatalogUseCase, error) {
		cfg, err := config.FromViper(v)
		if err != nil {
			return nil, err
		}
		tables, err := dataset.Load(cfg.Catalog.DataPath)
		if err != nil {
			return nil, err
		}
		return usecase.NewCatalogUseCase(ctx,
			dataset.NewUserRepository(tables),
			dataset.NewCategoryRepository(tables),
			dataset.NewProductRepository(tables),
		)
	}

	root.AddCommand(newListCommand(load), newUsersCommand(load), newCategoriesCommand(load))
	return root
}

type loaderFunc func(ctx context.Context) (*usecase.CatalogUseCase, error)

func newListCommand(load loaderFunc) *cobra.Command {
	var (
		user       string
		categories []string
		query      string
		sortColumn string
		sortOrder  string
	)
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Lista los productos que cumplen los filtros",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			column, err := catalog.ParseSortColumn(sortColumn)
			if err != nil {
				return err
			}
			order, err := catalog.ParseSortOrder(sortOrder)
			if err != nil {
				return err
			}
			if column != "" && order == catalog.OrderNone {
				order = catalog.OrderAsc
			}

			uc, err := load(cmd.Context())
			if err != nil {
				return err
			}

			state := catalog.NewState().WithUser(user).WithQuery(query)
			for _, title := range categories {
				if !state.HasCategory(title) {
					state = state.ToggleCategory(title)
				}
			}
			visible := uc.Visible(state, catalog.SortState{Column: column, Order: order})
			return WriteCatalog(cmd.OutOrStdout(), visible)
		},
	}
	cmd.Flags().StringVarP(&user, "user", "u", catalog.AllUsers, "Nombre exacto del usuario")
	cmd.Flags().StringArrayVarP(&categories, "category", "c", nil, "Título de categoría (repetible)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Texto contenido en el nombre del producto")
	cmd.Flags().StringVar(&sortColumn, "sort", "", "Columna de orden: id, product, category, user")
	cmd.Flags().StringVar(&sortOrder, "order", "", "Dirección: asc, desc (por defecto asc si hay --sort)")
	return cmd
}

func newUsersCommand(load loaderFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "Lista la tabla de usuarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := load(cmd.Context())
			if err != nil {
				return err
			}
			t := NewTable("ID", "NAME", "SEX")
			for _, u := range uc.Users() {
				t.AddRow(fmt.Sprint(u.ID), u.Name, string(u.Sex))
			}
			return t.Write(cmd.OutOrStdout())
		},
	}
}

func newCategoriesCommand(load loaderFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Lista la tabla de categorías",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := load(cmd.Context())
			if err != nil {
				return err
			}
			t := NewTable("ID", "ICON", "TITLE", "OWNER")
			for _, c := range uc.Categories() {
				t.AddRow(fmt.Sprint(c.ID), c.Icon, c.Title, fmt.Sprint(c.OwnerID))
			}
			return t.Write(cmd.OutOrStdout())
		},
	}
}
